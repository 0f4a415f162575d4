package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"walker-generator/internal/config"
)

var (
	checkConfig string
	checkRoot   string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Extract and emit without writing anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg, err := config.Load(checkConfig)
		if err != nil {
			return err
		}
		if checkRoot != "" {
			cfg.Root = checkRoot
		}

		docs, err := run(logger, cfg, false)
		if err != nil {
			return err
		}
		logger.Info("schema generates cleanly", zap.Int("files", len(docs)))
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkConfig, "config", config.DefaultFile, "config file")
	checkCmd.Flags().StringVar(&checkRoot, "root", "", "schema root file (overrides config)")
	rootCmd.AddCommand(checkCmd)
}
