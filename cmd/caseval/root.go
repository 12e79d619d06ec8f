package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gregglawdallas/caseval/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "caseval",
	Short: "Settlement valuation engine for personal-injury intake",
	Long:  "Computes settlement estimates for minor-injury, serious-injury, and wrongful-death cases, gates the figures behind lead capture, and manages the captured-lead inbox.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
