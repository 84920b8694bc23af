package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	apiURL     string
	timeout    time.Duration
	locale     string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "signup",
		Short:         "Register a new account from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "The interactive form needs a terminal. Use 'signup register' in scripts.")
				return nil
			}
			return runForm(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to a YAML settings file")
	pf.StringVar(&flags.apiURL, "api-url", "", "Registration webhook URL (env "+envAPIURLName+")")
	pf.DurationVar(&flags.timeout, "timeout", 0, "Request timeout, e.g. 10s")
	pf.StringVar(&flags.locale, "locale", "", "Message language: es or en")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRegisterCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newMockhookCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
