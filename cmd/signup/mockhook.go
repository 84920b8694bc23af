package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/signup/internal/mockhook"
)

type mockhookOptions struct {
	addr  string
	path  string
	limit int
}

func newMockhookCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &mockhookOptions{}

	cmd := &cobra.Command{
		Use:   "mockhook",
		Short: "Run a local registration webhook for development",
		Long: `Run an in-memory registration webhook.

Emails starting with fail500@ or down503@ get a 500 or 503 response, a
repeated email gets 409, and --limit caps the number of requests of any kind,
including rejected ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMockhook(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":5678", "Listen address")
	cmd.Flags().StringVar(&opts.path, "path", "/webhook", "Webhook route")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Requests allowed before answering 429, counting rejected and malformed ones (0 disables)")

	return cmd
}

func runMockhook(cmd *cobra.Command, rootFlags *rootFlags, opts *mockhookOptions) error {
	app, err := newAppContext(cmd, rootFlags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	hook := mockhook.New(mockhook.Options{Path: opts.path, Limit: opts.limit, Logger: app.Logger})
	server := &http.Server{
		Addr:              opts.addr,
		Handler:           hook.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mock webhook listening on %s%s\n", opts.addr, opts.path)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return newCommandError("run mock webhook", "listening on "+opts.addr, err, "Pick a free address with --addr.")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown mock webhook: %w", err)
	}
	app.Logger.Info("mock webhook stopped")
	return nil
}
