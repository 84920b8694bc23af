package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/signup/internal/theme"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the stored colour theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := ""
			if len(args) == 1 {
				action = args[0]
			}
			return runTheme(cmd, rootFlags, action)
		},
	}

	return cmd
}

func runTheme(cmd *cobra.Command, rootFlags *rootFlags, action string) error {
	app, err := newAppContext(cmd, rootFlags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	themes := app.themeManager(cmd)
	out := cmd.OutOrStdout()

	switch action {
	case "":
		_, _ = fmt.Fprintln(out, themes.Mode())
		return nil
	case "toggle":
		mode, err := themes.Toggle()
		if err != nil {
			return newCommandError("change theme", "saving preference", err, "Check that the preferences directory is writable.")
		}
		_, _ = fmt.Fprintln(out, mode)
		return nil
	}

	mode, err := theme.ParseMode(action)
	if err != nil {
		return newCommandError("change theme", "parsing argument", err, "Use light, dark or toggle.")
	}
	if err := themes.Set(mode); err != nil {
		return newCommandError("change theme", "saving preference", err, "Check that the preferences directory is writable.")
	}
	_, _ = fmt.Fprintln(out, mode)
	return nil
}
