package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
	"github.com/custodia-labs/asb-site/internal/core/ports/driving"
	"github.com/custodia-labs/asb-site/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	configPath string
	jsonOutput bool
)

// Services used by commands. They are wired from configuration before a
// command runs unless already set, which tests rely on.
var (
	settingsService   driving.SettingsService
	speakerService    driving.SpeakerService
	videoService      driving.VideoService
	consultantService driving.ConsultantService
	academyService    driving.AcademyService
	campaignService   driving.CampaignService
	leadService       driving.LeadService
	lookupCache       driven.LookupCache
)

var rootCmd = &cobra.Command{
	Use:   "asb",
	Short: "Speaker bureau site data service",
	Long: `asb serves the speaker bureau website's data from its Airtable base.

Run "asb serve" to start the JSON API, or use the inspection commands to
query speakers, videos, consultants, courses and campaigns directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if cmd.Annotations[skipWiring] == "true" {
			return nil
		}
		return wire()
	},
	PersistentPostRunE: func(*cobra.Command, []string) error {
		return closeResources()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.asb/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON (default when stdout is not a terminal)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Command output goes to stdout so JSON can
// be piped; logs stay on stderr.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}
