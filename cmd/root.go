package cmd

import (
	"fmt"
	"os"

	"cdn-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cdn-manager",
	Short: "CDN Manager Service",
	Long: `CDN Manager pushes compressed media to a Bunny CDN storage zone,
keeps originals in an origin archive, and manages pull zone cache purging.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// Console format matches user expectations for a CLI tool, and the
		// debug level configuration gives ISO8601 timestamps instead of Epoch
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
