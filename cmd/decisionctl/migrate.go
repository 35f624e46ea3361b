package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/decisionnote/internal/adapters/store/postgres"
	"github.com/jsamuelsen11/decisionnote/internal/container"
)

var errNoDatabaseURL = errors.New("database.url is not configured (set APP_DATABASE_URL)")

func newMigrateCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the postgres schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				url, logger, err := databaseURL(g)
				if err != nil {
					return err
				}
				return container.Migrate(url, logger)
			},
		},
		newMigrateDownCmd(g),
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(g, func(m *postgres.Migrator) error {
					version, dirty, err := m.Version()
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty=%t)\n", version, dirty)
					return nil
				})
			},
		},
	)
	return cmd
}

func newMigrateDownCmd(g *globals) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be >= 1, got %d", steps)
			}
			return withMigrator(g, func(m *postgres.Migrator) error {
				if err := m.Down(steps); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d migration(s)\n", steps)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")
	return cmd
}

func databaseURL(g *globals) (string, *slog.Logger, error) {
	cfg, logger, err := g.load()
	if err != nil {
		return "", nil, err
	}
	if cfg.Database.URL == "" {
		return "", nil, errNoDatabaseURL
	}
	return cfg.Database.URL, logger, nil
}

func withMigrator(g *globals, fn func(*postgres.Migrator) error) error {
	url, logger, err := databaseURL(g)
	if err != nil {
		return err
	}

	m, err := postgres.NewMigrator(url)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			logger.Warn("closing migrator", slog.Any("error", cerr))
		}
	}()

	return fn(m)
}
