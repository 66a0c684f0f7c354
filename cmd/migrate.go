package cmd

import (
	"context"
	"fmt"

	"skillcal_backend/internal/app"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update database tables and seed the course catalog, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg.MigrateOnly = true

		application, err := app.NewApp(cfg)
		if err != nil {
			return err
		}
		defer application.Close(context.Background())

		fmt.Println("Database migration completed")
		return nil
	},
}
