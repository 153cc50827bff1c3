package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"gam-provisioner/core/config"
	"gam-provisioner/core/gam"
	"gam-provisioner/core/logger"
	"gam-provisioner/core/sape"
	"gam-provisioner/core/storage"
	"gam-provisioner/feature/provision"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configDir  string
	yesConfirm bool
)

// createItemsCmd provisions the configured price × ad unit × size product.
var createItemsCmd = &cobra.Command{
	Use:   "create-items",
	Short: "Create ad items in Google Ad Manager",
	Long: `Validate the settings, print what is going to be created and ask for
confirmation. Then create every missing advertiser, order, custom targeting
key and value, Sape place, creative, line item and line item creative
association.

Examples:
  # Interactive
  create-items

  # Non-interactive, settings from /etc/gam-provisioner/config/app.yaml
  create-items --config-dir /etc/gam-provisioner --yes`,
	RunE: runCreateItems,
}

func init() {
	createItemsCmd.Flags().StringVar(&configDir, "config-dir", ".", "Directory holding config/app.yaml and .env")
	createItemsCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Skip the confirmation prompt")

	RootCmd.AddCommand(createItemsCmd)
}

func runCreateItems(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Validate the settings and ask for confirmation from the user. Then,")
	fmt.Fprintln(out, "start all necessary GAM tasks.")

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	adCfg := cfg.AdManager
	if !filepath.IsAbs(adCfg.KeyFile) {
		adCfg.KeyFile = filepath.Join(configDir, adCfg.KeyFile)
	}
	adClient, err := gam.NewClient(ctx, adCfg)
	if err != nil {
		return fmt.Errorf("failed to create ad manager client: %w", err)
	}

	svc := provision.NewService(gam.NewService(adClient), sape.NewClient(cfg.Sape), cfg.App, l)

	plan, err := svc.Plan(ctx)
	if err != nil {
		return fmt.Errorf("failed to plan: %w", err)
	}

	provision.WriteSummary(out, cfg.App, plan)

	if !confirm(cmd.InOrStdin(), out) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Call all necessary GAM tasks for a RtbSape setup.")
	fmt.Fprintln(out)

	report, err := svc.Apply(ctx, plan)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	if cfg.Storage.Enabled {
		archiveReport(ctx, l, cfg.Storage, report)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Please review your order, line items, and creatives to")
	fmt.Fprintln(out, "make sure they are correct. Then, approve the order in GAM.")
	fmt.Fprintln(out)
	return nil
}

// archiveReport uploads the run report; a failed upload does not fail the run.
func archiveReport(ctx context.Context, l *zap.Logger, cfg storage.Config, report *provision.Report) {
	client, err := storage.NewClient(cfg)
	if err != nil {
		l.Warn("Failed to connect to storage, report not archived", zap.Error(err))
		return
	}

	key, err := report.Archive(ctx, client, cfg)
	if err != nil {
		l.Warn("Failed to archive report", zap.Error(err))
		return
	}
	l.Info("Archived report", zap.String("bucket", cfg.Bucket), zap.String("key", key))
}

// confirm asks "Is this correct? (y/n)" unless --yes was given.
func confirm(in io.Reader, out io.Writer) bool {
	if yesConfirm {
		fmt.Fprintln(out, "Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(out, "Is this correct? (y/n) ")
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
