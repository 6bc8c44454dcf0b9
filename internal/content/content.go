// Package content holds the portfolio's static data. The document is
// embedded at build time and validated when loaded.
package content

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	folioerrors "github.com/jahasielva/folio/pkg/errors"
)

// AllCategory is the project category key that matches every project.
const AllCategory = "all"

// EmbeddedName is the name parse errors report for the embedded document.
const EmbeddedName = "portfolio.yaml"

//go:embed portfolio.yaml
var embedded []byte

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
	keyPattern    = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// Portfolio is the whole site's content.
type Portfolio struct {
	Profile           Profile       `yaml:"profile"`
	CallsToAction     []Link        `yaml:"calls_to_action" validate:"dive"`
	Nav               []NavLink     `yaml:"nav" validate:"required,min=1,dive"`
	Highlights        []Highlight   `yaml:"highlights" validate:"dive"`
	Strengths         []string      `yaml:"strengths" validate:"dive,required"`
	SkillGroups       []SkillGroup  `yaml:"skill_groups" validate:"dive"`
	SoftSkills        []SoftSkill   `yaml:"soft_skills" validate:"dive"`
	Tools             []string      `yaml:"tools" validate:"dive,required"`
	Attributes        []Attribute   `yaml:"attributes" validate:"dive"`
	ProjectCategories []Category    `yaml:"project_categories" validate:"required,min=1,dive"`
	Projects          []Project     `yaml:"projects" validate:"dive"`
	Experiences       []Experience  `yaml:"experiences" validate:"dive"`
	Testimonials      []Testimonial `yaml:"testimonials" validate:"dive"`
	Socials           []Social      `yaml:"socials" validate:"dive"`
	Footer            Footer        `yaml:"footer"`
}

type Profile struct {
	Name         string   `yaml:"name" validate:"required"`
	Brand        string   `yaml:"brand"`
	Initials     string   `yaml:"initials"`
	Title        string   `yaml:"title" validate:"required"`
	Tagline      string   `yaml:"tagline"`
	Availability string   `yaml:"availability"`
	Location     string   `yaml:"location"`
	Email        string   `yaml:"email" validate:"omitempty,email"`
	Phone        string   `yaml:"phone"`
	PhoneDisplay string   `yaml:"phone_display"`
	Description  string   `yaml:"description"`
	Summary      []string `yaml:"summary"`
}

// Link is a call to action pointing at a nav key.
type Link struct {
	Label  string `yaml:"label" validate:"required"`
	Target string `yaml:"target" validate:"required,content_key"`
}

type NavLink struct {
	Key   string `yaml:"key" validate:"required,content_key"`
	Label string `yaml:"label" validate:"required"`
}

type Highlight struct {
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
}

type SkillGroup struct {
	Name   string  `yaml:"name" validate:"required"`
	Skills []Skill `yaml:"skills" validate:"required,min=1,dive"`
}

// Skill is a named proficiency in percent.
type Skill struct {
	Name  string `yaml:"name" validate:"required"`
	Level int    `yaml:"level" validate:"min=0,max=100"`
}

type SoftSkill struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
}

type Attribute struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

type Category struct {
	Key   string `yaml:"key" validate:"required,content_key"`
	Label string `yaml:"label" validate:"required"`
}

type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category" validate:"required,content_key"`
	Tags        []string `yaml:"tags"`
	Date        string   `yaml:"date"`
	Status      string   `yaml:"status"`
}

// Experience is one entry on the timeline.
type Experience struct {
	Kind         string   `yaml:"kind" validate:"required,oneof=work project education"`
	Title        string   `yaml:"title" validate:"required"`
	Organization string   `yaml:"organization"`
	Location     string   `yaml:"location"`
	Period       string   `yaml:"period"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Skills       []string `yaml:"skills"`
}

type Testimonial struct {
	Name    string `yaml:"name" validate:"required"`
	Role    string `yaml:"role"`
	Company string `yaml:"company"`
	Rating  int    `yaml:"rating" validate:"min=1,max=5"`
	Quote   string `yaml:"quote" validate:"required"`
}

// Initials derives the testimonial author's initials from their name.
func (t Testimonial) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(t.Name) {
		b.WriteString(string([]rune(part)[:1]))
	}
	return b.String()
}

type Social struct {
	Label string `yaml:"label" validate:"required"`
	URL   string `yaml:"url"`
}

type Footer struct {
	Blurb        string `yaml:"blurb"`
	CallToAction string `yaml:"call_to_action"`
}

// Load parses and validates the embedded document.
func Load() (*Portfolio, error) {
	return Parse(EmbeddedName, embedded)
}

// Parse decodes data as a portfolio document and validates it. name is
// only used in error messages.
func Parse(name string, data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, folioerrors.NewParseError(name, extractLine(err), err)
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks struct constraints and cross references: nav and
// category keys are unique, calls to action point at nav keys and every
// project belongs to a declared category other than AllCategory.
func Validate(p *Portfolio) error {
	if p == nil {
		return folioerrors.NewValidationError("portfolio", "portfolio is nil", nil)
	}
	if err := validatorInstance().Struct(p); err != nil {
		return convertValidationError(err)
	}

	navKeys := make(map[string]struct{}, len(p.Nav))
	for i, link := range p.Nav {
		if _, dup := navKeys[link.Key]; dup {
			return folioerrors.NewValidationError(fmt.Sprintf("nav[%d].key", i), fmt.Sprintf("duplicate nav key %q", link.Key), nil)
		}
		navKeys[link.Key] = struct{}{}
	}

	for i, cta := range p.CallsToAction {
		if _, ok := navKeys[cta.Target]; !ok {
			return folioerrors.NewValidationError(fmt.Sprintf("calls_to_action[%d].target", i), fmt.Sprintf("unknown nav key %q", cta.Target), nil)
		}
	}

	categories := make(map[string]struct{}, len(p.ProjectCategories))
	for i, cat := range p.ProjectCategories {
		if _, dup := categories[cat.Key]; dup {
			return folioerrors.NewValidationError(fmt.Sprintf("project_categories[%d].key", i), fmt.Sprintf("duplicate category %q", cat.Key), nil)
		}
		categories[cat.Key] = struct{}{}
	}

	for i, project := range p.Projects {
		field := fmt.Sprintf("projects[%d].category", i)
		if project.Category == AllCategory {
			return folioerrors.NewValidationError(field, fmt.Sprintf("%q matches every project and cannot be assigned", AllCategory), nil)
		}
		if _, ok := categories[project.Category]; !ok {
			return folioerrors.NewValidationError(field, fmt.Sprintf("undeclared category %q", project.Category), nil)
		}
	}

	return nil
}

// ProjectsIn returns the projects in category, in document order.
// AllCategory returns every project.
func (p *Portfolio) ProjectsIn(category string) []Project {
	if category == AllCategory {
		return append([]Project(nil), p.Projects...)
	}
	var out []Project
	for _, project := range p.Projects {
		if project.Category == category {
			out = append(out, project)
		}
	}
	return out
}

// CategoryLabel returns the display label for a category key, or the key
// itself when it is not declared.
func (p *Portfolio) CategoryLabel(key string) string {
	for _, cat := range p.ProjectCategories {
		if cat.Key == key {
			return cat.Label
		}
	}
	return key
}

// NavLabel returns the display label for a nav key, or the key itself.
func (p *Portfolio) NavLabel(key string) string {
	for _, link := range p.Nav {
		if link.Key == key {
			return link.Label
		}
	}
	return key
}

// NavKeys returns the nav keys in document order.
func (p *Portfolio) NavKeys() []string {
	keys := make([]string, 0, len(p.Nav))
	for _, link := range p.Nav {
		keys = append(keys, link.Key)
	}
	return keys
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("content_key", func(fl validator.FieldLevel) bool {
			return keyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := strings.ToLower(ve.StructNamespace())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return folioerrors.NewValidationError(field, msg, err)
	}

	return folioerrors.NewValidationError("portfolio", err.Error(), err)
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
