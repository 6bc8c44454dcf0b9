package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jahasielva/folio/internal/tui"
)

const defaultRenderWidth = 80

type renderOptions struct {
	section string
	width   int
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the portfolio without the interactive program",
		Long: `Print one section, or every section in order, followed by the footer.
The theme comes from the stored preference resolved against the platform
colour scheme; --scheme pins the platform answer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.section, "section", "s", "", "Section to print (home, about, skills, projects, experience, testimonials, contact)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Output width in columns (default terminal width or 80)")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts renderOptions) error {
	app, err := newAppContext(cmd.Context(), flags, appOptions{logWriter: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	defer app.Close()

	width := opts.width
	if width <= 0 {
		width = outputWidth()
	}

	out, err := tui.Render(app.Portfolio, opts.section, width, app.Theme.Resolved())
	if err != nil {
		return fmt.Errorf("failed to render portfolio: %w", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func outputWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultRenderWidth
}
