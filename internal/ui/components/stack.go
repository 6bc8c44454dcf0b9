package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jahasielva/folio/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in one direction with an optional gap.
// Children rendering to the empty string take no space.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx
	if s.direction == DirectionHorizontal && len(s.children) > 0 {
		if width := ctx.Width(0); width > 0 {
			available := width - s.gap*(len(s.children)-1)
			if available > 0 {
				childCtx = ctx.WithWidth(available / len(s.children))
			}
		}
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return ""
	}

	pos := s.crossAlign.toLipglossPosition()
	if s.direction == DirectionHorizontal {
		if s.gap > 0 {
			views = interleave(views, strings.Repeat(" ", s.gap))
		}
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}
	if s.gap > 0 {
		views = interleave(views, strings.Repeat("\n", s.gap-1))
	}
	return style.Render(lipgloss.JoinVertical(pos, views...))
}

func interleave(views []string, sep string) []string {
	out := make([]string, 0, len(views)*2)
	for i, view := range views {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, view)
	}
	return out
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the blank lines (vertical) or columns (horizontal) between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithAppliers adds theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
