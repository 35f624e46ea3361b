// Package main is the operator CLI for the decision service. It applies
// schema migrations and runs maintenance tasks against the same store the
// server uses.
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

	"github.com/jsamuelsen11/decisionnote/internal/platform/config"
	"github.com/jsamuelsen11/decisionnote/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	profile   string
	configDir string
	stderr    io.Writer
}

func (g *globals) load() (*config.Config, *slog.Logger, error) {
	var opts []config.Option
	if g.configDir != "" {
		opts = append(opts, config.WithConfigDir(g.configDir))
	}

	cfg, err := config.Load(g.profile, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, logging.New(cfg.Log.Level, cfg.Log.Format, g.stderr), nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globals{stderr: stderr}

	cmd := &cobra.Command{
		Use:           "decisionctl",
		Short:         "Operate the decision service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = "local"
	}
	cmd.PersistentFlags().StringVarP(&g.profile, "profile", "p", profile, "Config profile (local, dev, qa, prod)")
	cmd.PersistentFlags().StringVar(&g.configDir, "config-dir", "", "Directory holding base.yaml and profile files")

	cmd.AddCommand(newMigrateCmd(g), newProposalsCmd(g))
	return cmd
}
