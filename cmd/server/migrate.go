package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/salareserva/room-reservation-backend/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Applies or rolls back database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Applies all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, pool, err := bootstrap(context.Background())
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.MigrateUp(pool); err != nil {
			return err
		}
		log.Info("migrations applied")
		return nil
	},
}

var migrateDownSteps int

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Rolls back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, pool, err := bootstrap(context.Background())
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.MigrateDown(pool, migrateDownSteps); err != nil {
			return err
		}
		log.WithField("steps", migrateDownSteps).Info("migrations rolled back")
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&migrateDownSteps, "steps", 1, "number of migrations to roll back, 0 for all")
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}
