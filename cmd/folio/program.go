package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jahasielva/folio/internal/tui"
)

func runProgram(cmd *cobra.Command, flags *rootFlags) error {
	ctx := cmd.Context()

	app, err := newAppContext(ctx, flags, appOptions{interactive: true, logWriter: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	defer app.Close()

	model := tui.New(ctx, tui.Options{
		Portfolio:        app.Portfolio,
		Theme:            app.Theme,
		Logger:           app.Logger,
		CarouselInterval: app.Config.TUI.CarouselInterval,
	})
	defer model.Close()

	options := []tea.ProgramOption{tea.WithContext(ctx), tea.WithMouseCellMotion()}
	if app.Config.TUI.AltScreen {
		options = append(options, tea.WithAltScreen())
	}

	app.Logger.WithFields(map[string]any{
		"preference": app.Theme.Preference().String(),
		"resolved":   app.Theme.Resolved().String(),
	}).Info("starting portfolio")

	if _, err := tea.NewProgram(model, options...).Run(); err != nil {
		app.Logger.Error(err, "program exited with error")
		return fmt.Errorf("failed to run portfolio: %w", err)
	}
	return nil
}
