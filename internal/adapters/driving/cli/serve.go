package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	httpadapter "github.com/custodia-labs/asb-site/internal/adapters/driving/http"
	"github.com/custodia-labs/asb-site/internal/logger"
)

var (
	serveAddr        string
	serveWatchConfig bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site data as a JSON API",
	Long: `Starts the HTTP server that serves speakers, videos, consultants,
academy courses and campaign microsites, and accepts lead submissions.

Prometheus metrics are exposed on /metrics.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().BoolVar(&serveWatchConfig, "watch-config", false, "reload the config file and clear the speaker cache when it changes")
	serveCmd.Flags().StringVar(&draftsDir, "drafts-db", "", "directory for the application drafts database (default in memory)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	addr := serveAddr
	if addr == "" {
		addr = settings.Server.ListenAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveWatchConfig {
		startConfigWatch(ctx)
	}

	var (
		reg      prometheus.Registerer
		gatherer prometheus.Gatherer
	)
	if registry != nil {
		reg, gatherer = registry, registry
	}
	server := httpadapter.New(httpadapter.Services{
		Speakers:    speakerService,
		Videos:      videoService,
		Consultants: consultantService,
		Academy:     academyService,
		Campaigns:   campaignService,
		Leads:       leadService,
	}, reg, gatherer)

	cmd.Printf("Listening on %s\n", addr)
	return httpadapter.ListenAndServe(ctx, addr, server.Routes())
}

// startConfigWatch clears the speaker lookup cache whenever the config file
// changes. Services already built keep their table names until restart.
func startConfigWatch(ctx context.Context) {
	if configStore == nil {
		logger.Warn("config watch requested but no config file is loaded")
		return
	}
	go func() {
		err := configStore.Watch(ctx, func() {
			logger.Info("config file changed, clearing speaker cache")
			if lookupCache != nil {
				lookupCache.Clear()
			}
		})
		if err != nil {
			logger.Warn("config watch stopped: %v", err)
		}
	}()
}
