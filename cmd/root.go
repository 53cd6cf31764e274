package cmd

import (
	"fmt"
	"log/slog"

	"tabebui/internal/config"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "牛・豚・鳥の部位制覇トラッカー (API サーバー)",
		Long: `tabebui は食べた部位を記録し、動物ごとの制覇率やダッシュボード、
制覇状況を踏まえたチャット提案を提供する API サーバーです。`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env の読み込みは LoadConfig 内で行う
			if err := config.LoadConfig(configDir); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			slog.SetDefault(newLogger(config.Cfg.Log.Level))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", "configs", "config.yaml を置いたディレクトリ")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSeedCmd())

	return cmd
}
