package cmd

import (
	"context"
	"fmt"

	"cdn-manager/core/bunny"
	"cdn-manager/core/config"
	"cdn-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// purgeCmd purges cached URLs from the pull zone without starting the server.
var purgeCmd = &cobra.Command{
	Use:   "purge <url> [url...]",
	Short: "Purge cached URLs from the pull zone",
	Long: `Invalidates cached copies of the given URLs across the CDN's edge nodes.
Requires BUNNY_PULL_ZONE_ID and BUNNY_API_KEY to be configured.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		client := bunny.NewClient(cfg.Bunny, logg)
		result := client.PurgeCache(context.Background(), args)

		logg.Info("Purge finished",
			zap.Int("succeeded", len(result.Success)),
			zap.Int("failed", len(result.Failed)))

		if len(result.Failed) > 0 {
			return fmt.Errorf("failed to purge %d of %d urls", len(result.Failed), len(args))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(purgeCmd)
}
