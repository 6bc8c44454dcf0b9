package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logLevel   string
	scheme     string
}

// isInteractive reports whether the program owns a terminal on both ends.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "folio presents a virtual assistant portfolio in the terminal",
		Long:          "folio presents a virtual assistant portfolio in the terminal. It starts the interactive program on a terminal and prints a static render otherwise.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isInteractive() {
				return runRender(cmd, flags, renderOptions{})
			}
			return runProgram(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the config file (default ~/.folio/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.scheme, "scheme", "", "Pretend the platform prefers light or dark instead of detecting it")

	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
