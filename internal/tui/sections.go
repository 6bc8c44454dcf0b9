package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/jahasielva/folio/internal/content"
	"github.com/jahasielva/folio/internal/ui"
	"github.com/jahasielva/folio/internal/ui/components"
)

// Section keys, in nav order.
const (
	SectionHome         = "home"
	SectionAbout        = "about"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
	SectionExperience   = "experience"
	SectionTestimonials = "testimonials"
	SectionContact      = "contact"
)

// wideLayout is the content width from which cards sit side by side.
const wideLayout = 96

// sections draws portfolio sections. It owns the state sections keep
// between frames: the project category tabs and the carousel position.
type sections struct {
	portfolio   *content.Portfolio
	categories  *components.Tabs
	testimonial int
	md          markdown
	year        int
}

func newSections(p *content.Portfolio) *sections {
	s := &sections{
		portfolio: p,
		year:      time.Now().Year(),
	}

	s.categories = components.NewTabs(content.AllCategory)
	for _, cat := range p.ProjectCategories {
		s.categories.Trigger(cat.Key, cat.Label)
		s.categories.Content(cat.Key, projectGrid{projects: p.ProjectsIn(cat.Key)})
	}
	return s
}

// render draws one section by nav key. Unknown keys render nothing.
func (s *sections) render(ctx components.RenderContext, key string) string {
	switch key {
	case SectionHome:
		return s.hero(ctx)
	case SectionAbout:
		return s.about(ctx)
	case SectionSkills:
		return s.skills(ctx)
	case SectionProjects:
		return s.projects(ctx)
	case SectionExperience:
		return s.experience(ctx)
	case SectionTestimonials:
		return s.testimonials(ctx)
	case SectionContact:
		return s.contact(ctx)
	default:
		return ""
	}
}

func (s *sections) nextTestimonial() {
	if n := len(s.portfolio.Testimonials); n > 0 {
		s.testimonial = (s.testimonial + 1) % n
	}
}

func (s *sections) prevTestimonial() {
	if n := len(s.portfolio.Testimonials); n > 0 {
		s.testimonial = (s.testimonial - 1 + n) % n
	}
}

func sectionHeader(eyebrow, title, subtitle string) *components.Header {
	return components.NewHeader(title).WithEyebrow(eyebrow).WithSubtitle(subtitle)
}

func (s *sections) hero(ctx components.RenderContext) string {
	p := s.portfolio.Profile
	width := ctx.Width(80)

	name := components.AccentText(p.Name).ViewWithContext(ctx)
	greeting := components.TitleText("Hi, I'm ").ViewWithContext(ctx) + name

	buttons := make([]ui.Renderable, 0, len(s.portfolio.CallsToAction))
	for i, cta := range s.portfolio.CallsToAction {
		button := components.NewButton(cta.Label)
		if i > 0 {
			button = components.OutlineButton(cta.Label)
		}
		if idx := indexOf(s.portfolio.NavKeys(), cta.Target); idx >= 0 {
			button.WithHint(fmt.Sprintf("[%d]", idx+1))
		}
		buttons = append(buttons, button)
	}

	contact := []string{}
	if p.Email != "" {
		contact = append(contact, "✉ "+p.Email)
	}
	if p.PhoneDisplay != "" {
		contact = append(contact, "☎ "+p.PhoneDisplay)
	}

	return components.VStack(
		components.NewBadge("● "+p.Availability).WithVariant(components.BadgeVariantPrimary),
		ui.RenderFunc(func() string { return greeting }),
		components.SubtitleText(p.Tagline).WithWrap(true),
		components.BodyText(p.Description).WithWrap(true),
		components.HStack(buttons...).WithGap(2),
		components.MutedText(strings.Join(contact, "    ")),
		components.MutedText(socialLine(s.portfolio.Socials)),
	).WithGap(1).ViewWithContext(ctx.WithWidth(width))
}

func (s *sections) about(ctx components.RenderContext) string {
	p := s.portfolio.Profile
	width := ctx.Width(80)

	identity := components.VStack(
		components.TitleText(p.Name),
		components.AccentText(p.Title),
		components.MutedText("📍 "+p.Location),
	)

	summary := s.md.render(summaryMarkdown(p), ctx.Theme.Mode, width-4)
	card := components.NewCard(
		identity,
		ui.RenderFunc(func() string { return summary }),
		ui.RenderFunc(func() string {
			return components.BadgeRow(ctx, s.portfolio.Strengths, components.BadgeVariantOutline)
		}),
	)

	highlights := make([]ui.Renderable, 0, len(s.portfolio.Highlights))
	for _, h := range s.portfolio.Highlights {
		highlights = append(highlights, components.NewCard(
			components.TitleText(h.Value),
			components.MutedText(h.Label),
		))
	}

	return components.VStack(
		sectionHeader("About Me", "Professional Summary", "Get to know more about my background, experience, and what drives me"),
		card,
		grid(highlights, width, 4),
	).WithGap(1).ViewWithContext(ctx.WithWidth(width))
}

func summaryMarkdown(p content.Profile) string {
	return strings.Join(p.Summary, "\n\n")
}

func (s *sections) skills(ctx components.RenderContext) string {
	width := ctx.Width(80)

	groups := make([]ui.Renderable, 0, len(s.portfolio.SkillGroups))
	for _, group := range s.portfolio.SkillGroups {
		rows := make([]ui.Renderable, 0, len(group.Skills)*2)
		for _, skill := range group.Skills {
			rows = append(rows,
				components.BodyText(skill.Name),
				components.NewProgress(float64(skill.Level)).WithShowValue(true),
			)
		}
		groups = append(groups, components.NewCard(rows...).WithTitle(group.Name))
	}

	soft := make([]ui.Renderable, 0, len(s.portfolio.SoftSkills))
	for _, skill := range s.portfolio.SoftSkills {
		soft = append(soft, components.NewCard(
			components.EmphasisText(skill.Name),
			components.MutedText(skill.Description).WithWrap(true),
		))
	}

	attributes := make([]ui.Renderable, 0, len(s.portfolio.Attributes))
	for _, attr := range s.portfolio.Attributes {
		attributes = append(attributes, components.VStack(
			components.EmphasisText(attr.Icon+" "+attr.Title),
			components.MutedText(attr.Description).WithWrap(true),
		))
	}

	return components.VStack(
		sectionHeader("What I Offer", "Skills & Expertise", "A comprehensive toolkit of technical and interpersonal skills honed through years of experience"),
		grid(groups, width, 3),
		components.SubtitleText("Soft Skills"),
		grid(soft, width, 3),
		components.SubtitleText("Tools I Use"),
		ui.RenderFunc(func() string {
			return components.BadgeRow(ctx, s.portfolio.Tools, components.BadgeVariantOutline)
		}),
		components.SubtitleText("How I Work"),
		components.VStack(attributes...).WithGap(1),
	).WithGap(1).ViewWithContext(ctx.WithWidth(width))
}

func (s *sections) projects(ctx components.RenderContext) string {
	width := ctx.Width(80)

	return components.VStack(
		sectionHeader("Portfolio", "Featured Projects", "A showcase of projects and tasks that demonstrate my skills and problem-solving abilities"),
		components.MutedText("←/→ switch category"),
		s.categories,
	).WithGap(1).ViewWithContext(ctx.WithWidth(width))
}

// projectGrid is the panel body for one project category.
type projectGrid struct {
	projects []content.Project
}

func (g projectGrid) View() string {
	return g.ViewWithContext(components.DefaultContext())
}

func (g projectGrid) ViewWithContext(ctx components.RenderContext) string {
	if len(g.projects) == 0 {
		return components.MutedText("No projects in this category yet.").ViewWithContext(ctx)
	}

	cards := make([]ui.Renderable, 0, len(g.projects))
	for _, project := range g.projects {
		status := components.StatusBadge(project.Status)
		meta := ui.RenderFunc(func() string {
			return status.ViewWithContext(ctx) + "  " +
				components.MutedText("📅 "+project.Date).ViewWithContext(ctx)
		})
		tags := project.Tags
		cards = append(cards, components.NewCard(
			meta,
			components.BodyText(project.Description).WithWrap(true),
			ui.RenderFunc(func() string {
				return components.BadgeRow(ctx, tags, components.BadgeVariantDefault)
			}),
		).WithTitle(project.Title))
	}
	return grid(cards, ctx.Width(80), 2).ViewWithContext(ctx)
}

func (s *sections) experience(ctx components.RenderContext) string {
	width := ctx.Width(80)

	entries := make([]ui.Renderable, 0, len(s.portfolio.Experiences))
	for _, exp := range s.portfolio.Experiences {
		achievements := make([]string, 0, len(exp.Achievements))
		for _, a := range exp.Achievements {
			achievements = append(achievements, "▸ "+a)
		}
		skills := exp.Skills
		entries = append(entries, components.NewCard(
			components.AccentText(exp.Organization),
			components.MutedText(fmt.Sprintf("%s  ·  %s", exp.Period, exp.Location)),
			components.BodyText(exp.Description).WithWrap(true),
			components.BodyText(strings.Join(achievements, "\n")).WithWrap(true),
			ui.RenderFunc(func() string {
				return components.BadgeRow(ctx, skills, components.BadgeVariantOutline)
			}),
		).WithTitle(experienceIcon(exp.Kind)+" "+exp.Title))
	}

	return components.VStack(
		sectionHeader("Journey", "Experience & Education", "A timeline of my professional journey and educational background"),
		components.VStack(entries...).WithGap(1),
	).WithGap(1).ViewWithContext(ctx.WithWidth(width))
}

func experienceIcon(kind string) string {
	switch kind {
	case "education":
		return "🎓"
	case "project":
		return "🚀"
	default:
		return "💼"
	}
}

func (s *sections) testimonials(ctx components.RenderContext) string {
	width := ctx.Width(80)
	list := s.portfolio.Testimonials
	if len(list) == 0 {
		return ""
	}
	current := list[s.testimonial]

	quote := components.NewCard(
		components.AccentText(strings.Repeat("★", current.Rating)),
		components.BodyText("“"+current.Quote+"”").WithWrap(true),
		components.EmphasisText(fmt.Sprintf("%s  (%s)", current.Name, current.Initials())),
		components.MutedText(fmt.Sprintf("%s at %s", current.Role, current.Company)),
	).WithHighlight(true)

	dots := make([]string, 0, len(list))
	for i := range list {
		if i == s.testimonial {
			dots = append(dots, "●")
		} else {
			dots = append(dots, "○")
		}
	}
	nav := fmt.Sprintf("‹ prev   %s   next ›", strings.Join(dots, " "))

	companies := make([]string, 0, len(list))
	for i, t := range list {
		label := t.Name + " · " + t.Company
		if i == s.testimonial {
			companies = append(companies, components.AccentText("▶ "+label).ViewWithContext(ctx))
		} else {
			companies = append(companies, components.MutedText("  "+label).ViewWithContext(ctx))
		}
	}

	return components.VStack(
		sectionHeader("Testimonials", "What Clients Say", "Feedback from clients I've had the pleasure of working with"),
		quote,
		components.MutedText(nav),
		ui.RenderFunc(func() string { return strings.Join(companies, "\n") }),
	).WithGap(1).ViewWithContext(ctx.WithWidth(width))
}

func (s *sections) contact(ctx components.RenderContext) string {
	p := s.portfolio.Profile
	width := ctx.Width(80)

	details := components.NewCard(
		components.BodyText("✉  "+p.Email),
		components.BodyText("☎  "+p.PhoneDisplay),
		components.BodyText("📍 "+p.Location),
		components.NewBadge("● "+p.Availability).WithVariant(components.BadgeVariantSuccess),
	).WithTitle("Contact Information")

	return components.VStack(
		sectionHeader("Get In Touch", "Let's Work Together", s.portfolio.Footer.CallToAction),
		details,
		components.MutedText(socialLine(s.portfolio.Socials)),
	).WithGap(1).ViewWithContext(ctx.WithWidth(width))
}

func (s *sections) footer(ctx components.RenderContext) string {
	p := s.portfolio.Profile
	width := ctx.Width(80)

	brand := components.TitleText(p.Name).ViewWithContext(ctx) +
		components.AccentText(p.Brand).ViewWithContext(ctx)

	return components.VStack(
		components.HorizontalDivider().WithAppliers(components.MutedForeground(components.PaletteNeutral)),
		ui.RenderFunc(func() string { return brand }),
		components.MutedText(s.portfolio.Footer.Blurb).WithWrap(true),
		components.MutedText(fmt.Sprintf("© %d %s %s. Made with ♥", s.year, p.Name, p.Brand)),
	).ViewWithContext(ctx.WithWidth(width))
}

func socialLine(socials []content.Social) string {
	labels := make([]string, 0, len(socials))
	for _, social := range socials {
		labels = append(labels, social.Label)
	}
	return strings.Join(labels, "  ·  ")
}

// grid lays items out in rows of up to perRow columns when the width
// allows it, otherwise in a single column.
func grid(items []ui.Renderable, width, perRow int) *components.Stack {
	if width < wideLayout || perRow <= 1 {
		return components.VStack(items...).WithGap(1)
	}

	rows := make([]ui.Renderable, 0, (len(items)+perRow-1)/perRow)
	for start := 0; start < len(items); start += perRow {
		end := min(start+perRow, len(items))
		rows = append(rows, components.HStack(items[start:end]...).WithGap(1))
	}
	return components.VStack(rows...).WithGap(1)
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}

// sectionWidth clamps the terminal width to a readable content width.
func sectionWidth(width int) int {
	return max(20, min(width-2, 120))
}
