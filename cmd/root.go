package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pstankie/ft5dgen/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ft5dgen",
	Short: "Yaesu FT-5D memory file generator",
	Long:  "Fetches the przemienniki.net repeater directory, filters repeaters around a reference locator, and writes an ADMS-14 import CSV.",
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
