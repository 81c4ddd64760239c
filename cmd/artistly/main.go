// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command artistly is the operator CLI: dataset checks, offline catalogue
// queries, manager password hashing and database migrations.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "artistly: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "artistly",
		Short:        "Artistly operator CLI",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at info level to stderr")
	cmd.AddCommand(
		newValidateDataCmd(),
		newFilterCmd(),
		newCategoriesCmd(),
		newHashPasswordCmd(),
		newMigrateCmd(),
	)
	return cmd
}

// logger writes JSON to the command's stderr; quiet unless --verbose.
func logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func readFileOr(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	return os.ReadFile(path)
}

func readLine(r io.Reader) (string, error) {
	var line string
	if _, err := fmt.Fscanln(r, &line); err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return line, nil
}
