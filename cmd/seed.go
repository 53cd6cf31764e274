package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"tabebui/internal/config"
	"tabebui/internal/middleware"
	"tabebui/internal/model"
	"tabebui/internal/repository"
	"tabebui/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "部位マスターを登録・更新する",
		Example: `  # 埋め込みの部位マスター (35部位) を登録
  tabebui seed

  # 独自の YAML を登録
  tabebui seed --file parts.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()

			parts, err := loadParts(file)
			if err != nil {
				return err
			}

			// 空のDBでも実行できるようにスキーマを先に合わせる
			dbCfg := config.Cfg.Database
			dbCfg.AutoMigrate = true
			db, err := repository.NewDB(dbCfg, logger)
			if err != nil {
				return err
			}
			defer closeDB(db, logger)

			ctx := middleware.WithLogger(cmd.Context(), logger)
			n, err := seed.Apply(ctx, db, repository.NewGormPartRepository(), parts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d animal parts\n", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "部位マスターの YAML (省略時は埋め込みデータ)")

	return cmd
}

func loadParts(file string) ([]model.AnimalPart, error) {
	if file == "" {
		return seed.Load()
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return seed.Parse(data)
}
