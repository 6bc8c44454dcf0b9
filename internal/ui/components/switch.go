package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Switch displays a boolean it does not own. Toggle proposes the inverse of
// the value it was given; the owner decides whether to apply it and passes
// the new value back with SetChecked.
type Switch struct {
	BaseComponent
	checked         bool
	disabled        bool
	onCheckedChange func(checked bool)
	offLabel        string
	onLabel         string
}

// NewSwitch creates a switch showing checked.
func NewSwitch(checked bool) *Switch {
	return &Switch{
		BaseComponent: NewBaseComponent(),
		checked:       checked,
	}
}

// WithOnCheckedChange sets the callback receiving proposed values.
func (s *Switch) WithOnCheckedChange(fn func(checked bool)) *Switch {
	s.onCheckedChange = fn
	return s
}

// WithLabels sets the labels drawn either side of the track.
func (s *Switch) WithLabels(off, on string) *Switch {
	s.offLabel, s.onLabel = off, on
	return s
}

// WithDisabled makes Toggle a no-op and dims the switch.
func (s *Switch) WithDisabled(disabled bool) *Switch {
	s.disabled = disabled
	return s
}

// SetChecked updates the displayed value. Only the owner calls it.
func (s *Switch) SetChecked(checked bool) *Switch {
	s.checked = checked
	return s
}

// Checked returns the displayed value.
func (s *Switch) Checked() bool {
	return s.checked
}

// Toggle reports !Checked() to the callback. It never changes Checked.
func (s *Switch) Toggle() {
	if s.disabled || s.onCheckedChange == nil {
		return
	}
	s.onCheckedChange(!s.checked)
}

func (s *Switch) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s *Switch) ViewWithContext(ctx RenderContext) string {
	p := ctx.Theme.Palette
	track := lipgloss.NewStyle().Background(p.Accent.Muted).Foreground(p.Surface.OnBase)
	knob := "●  "
	if s.checked {
		track = lipgloss.NewStyle().Background(p.Primary.Base).Foreground(p.Primary.OnBase)
		knob = "  ●"
	}

	active := lipgloss.NewStyle().Foreground(p.Primary.Base).Bold(true)
	idle := lipgloss.NewStyle().Foreground(p.Neutral.Base)
	offStyle, onStyle := active, idle
	if s.checked {
		offStyle, onStyle = idle, active
	}

	parts := make([]string, 0, 5)
	if s.offLabel != "" {
		parts = append(parts, offStyle.Render(s.offLabel), " ")
	}
	parts = append(parts, track.Render(knob))
	if s.onLabel != "" {
		parts = append(parts, " ", onStyle.Render(s.onLabel))
	}

	style := s.ComputeStyle(ctx.Theme)
	if s.disabled {
		style = style.Faint(true)
	}
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
}
