package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/signup/internal/form"
	"github.com/alexisbeaulieu97/signup/internal/validation"
)

type registerOptions struct {
	fullName      string
	email         string
	passwordStdin bool
}

var errInvalidFields = errors.New("one or more fields are invalid")

func newRegisterCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &registerOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Submit a registration without the interactive form",
		Example: `  signup register --full-name "Ana López" --email ana@example.com
  echo "$PASSWORD" | signup register --full-name "Ana López" --email ana@example.com --password-stdin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.fullName, "full-name", "", "Full name")
	cmd.Flags().StringVar(&opts.email, "email", "", "Email address")
	cmd.Flags().BoolVar(&opts.passwordStdin, "password-stdin", false, "Read the password from stdin")

	return cmd
}

func runRegister(cmd *cobra.Command, rootFlags *rootFlags, opts *registerOptions) error {
	app, err := newAppContext(cmd, rootFlags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	password, err := readPassword(cmd, opts.passwordStdin)
	if err != nil {
		return newCommandError("register", "reading password", err, "Pipe the password with --password-stdin when not running in a terminal.")
	}

	controller := form.NewController(app.Catalog, app.Logger)
	controller.OnFieldChange(validation.FieldFullName, opts.fullName)
	controller.OnFieldChange(validation.FieldEmail, opts.email)
	controller.OnFieldChange(validation.FieldPassword, password)

	out := cmd.OutOrStdout()
	if !controller.Submit(cmd.Context(), app.Client) {
		errs := controller.Errors()
		for _, field := range validation.Fields {
			if msg, ok := errs[field]; ok {
				_, _ = fmt.Fprintf(out, "✗ %s: %s\n", field, msg)
			}
		}
		return errInvalidFields
	}

	result, _ := controller.Result()
	if result.Kind == form.ResultSuccess {
		_, _ = fmt.Fprintf(out, "✓ %s\n", result.Text)
		return nil
	}

	_, _ = fmt.Fprintf(out, "✗ %s\n", result.Text)
	return fmt.Errorf("registration failed: %s", result.Text)
}

func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	in := cmd.InOrStdin()
	if fromStdin {
		return readLine(in)
	}

	file, ok := in.(*os.File)
	if !ok || !isTerminal(file) {
		return "", errors.New("stdin is not a terminal")
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	raw, err := term.ReadPassword(int(file.Fd()))
	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// readLine returns the first line of r without its line ending.
func readLine(r io.Reader) (string, error) {
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if line == "" && errors.Is(err, io.EOF) {
		return "", errors.New("no password on stdin")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
