package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/salareserva/room-reservation-backend/internal/app"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Runs reminders, completions and the expiry sweep once",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg, log, pool, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		container := app.NewContainer(app.Config{
			IsProduction: cfg.IsProduction,
			ProdOrigins:  cfg.ProdOrigins,
			Location:     cfg.Location,
			Logger:       log,
			Repos:        app.PgxRepositories(pool, log),
		})

		ctx, cancel := context.WithTimeout(ctx, cfg.SweepTimeout)
		defer cancel()

		result, err := container.Sweeper.RunAll(ctx)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}
