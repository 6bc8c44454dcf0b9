// Package ui holds the rendering contract shared by the component library and
// the terminal application.
package ui

// Renderable is anything that can draw itself as a string.
type Renderable interface {
	View() string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

func (f RenderFunc) View() string {
	return f()
}
