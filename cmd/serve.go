package cmd

import (
	"skillcal_backend/internal/app"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// release 模式默认不迁移，--migrate 强制执行
		cfg.ForceMigrate, _ = cmd.Flags().GetBool("migrate")

		application, err := app.NewApp(cfg)
		if err != nil {
			return err
		}
		return application.Run()
	},
}

func init() {
	serveCmd.Flags().Bool("migrate", false, "Run database migrations on startup even in release mode")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())
}
