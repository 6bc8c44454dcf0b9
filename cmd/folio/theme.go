package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jahasielva/folio/internal/prefstore"
	"github.com/jahasielva/folio/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the theme preference",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newThemeGetCmd(flags))
	cmd.AddCommand(newThemeSetCmd(flags))
	cmd.AddCommand(newThemeToggleCmd(flags))

	return cmd
}

func newThemeGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the stored preference and the theme it resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd.Context(), flags, appOptions{logWriter: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "preference: %s\n", app.Theme.Preference())
			fmt.Fprintf(out, "resolved: %s\n", app.Theme.Resolved())
			if app.Watcher != nil {
				fmt.Fprintf(out, "platform: %s (%s)\n", schemeName(app.Watcher.PrefersDark()), app.Watcher.Source())
			} else {
				fmt.Fprintf(out, "platform: %s (flag)\n", flags.scheme)
			}
			if db, ok := app.Store.(*prefstore.SQLiteStore); ok {
				updated, err := db.UpdatedAt(cmd.Context(), app.Theme.StorageKey())
				switch {
				case err == nil:
					fmt.Fprintf(out, "updated: %s\n", updated.Local().Format(time.RFC3339))
				case !errors.Is(err, prefstore.ErrNotFound):
					app.Logger.WarnErr(err, "failed to read preference timestamp")
				}
			}
			return nil
		},
	}
}

func newThemeSetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "set <light|dark|system>",
		Short:     "Store a theme preference",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark), string(theme.System)},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd.Context(), flags, appOptions{logWriter: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Theme.SetPreference(cmd.Context(), theme.Preference(args[0])); err != nil {
				return err
			}
			printThemeChange(cmd, app.Theme)
			return nil
		},
	}
}

func newThemeToggleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Store the opposite of the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd.Context(), flags, appOptions{logWriter: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Theme.Toggle(cmd.Context()); err != nil {
				return err
			}
			printThemeChange(cmd, app.Theme)
			return nil
		},
	}
}

func printThemeChange(cmd *cobra.Command, p *theme.Provider) {
	fmt.Fprintf(cmd.OutOrStdout(), "theme preference set to %s (resolved %s)\n", p.Preference(), p.Resolved())
}

func schemeName(prefersDark bool) string {
	if prefersDark {
		return "dark"
	}
	return "light"
}
