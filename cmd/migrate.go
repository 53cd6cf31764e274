package cmd

import (
	"log/slog"

	"tabebui/internal/config"
	"tabebui/internal/repository"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "テーブルを作成・更新する",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()

			dbCfg := config.Cfg.Database
			dbCfg.AutoMigrate = false
			db, err := repository.NewDB(dbCfg, logger)
			if err != nil {
				return err
			}
			defer closeDB(db, logger)

			if err := repository.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			logger.Info("Migration completed", slog.String("driver", dbCfg.Driver))
			return nil
		},
	}
}
