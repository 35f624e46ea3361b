package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/decisionnote/internal/app"
	"github.com/jsamuelsen11/decisionnote/internal/container"
	"github.com/jsamuelsen11/decisionnote/internal/platform/telemetry"
)

func newProposalsCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "Inspect and maintain proposals",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "sweep",
			Short: "Expire pending proposals whose voting window has closed",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withWorkflow(g, func(wf *app.Workflow) error {
					n, err := wf.Sweep(cmd.Context())
					if err != nil {
						return fmt.Errorf("sweeping proposals: %w", err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "expired %d proposal(s)\n", n)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "pending",
			Short: "List proposals still open for voting",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withWorkflow(g, func(wf *app.Workflow) error {
					pending, err := wf.PendingProposals(cmd.Context())
					if err != nil {
						return fmt.Errorf("listing proposals: %w", err)
					}
					out := cmd.OutOrStdout()
					if len(pending) == 0 {
						fmt.Fprintln(out, "no pending proposals")
						return nil
					}
					for _, p := range pending {
						fmt.Fprintf(out, "#%d %q by %s (%d/%d approvals, expires %s)\n",
							p.ID, p.Text, p.Proposer, len(p.Approvals), p.Threshold,
							p.ExpiresAt.UTC().Format(time.RFC3339))
					}
					return nil
				})
			},
		},
	)
	return cmd
}

func withWorkflow(g *globals, fn func(*app.Workflow) error) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	c := container.New(cfg, logger, telemetry.NewNoopMetrics())
	defer func() {
		if cerr := c.Close(); cerr != nil {
			logger.Warn("releasing resources", slog.Any("error", cerr))
		}
	}()

	wf, err := c.Workflow()
	if err != nil {
		return fmt.Errorf("wiring workflow: %w", err)
	}
	return fn(wf)
}
