package cmd

import (
	"fmt"
	"os"

	"gam-provisioner/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gam-provisioner",
	Short: "Google Ad Manager provisioning for Sape RTB",
	Long: `gam-provisioner creates the advertiser, order, line items, creatives and
custom targeting a Sape RTB setup needs in Google Ad Manager, together with the
matching Sape places. Runs are idempotent: existing entities are reused.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps, as for the rest of the CLI output
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
