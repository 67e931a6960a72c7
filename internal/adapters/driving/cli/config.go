package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/asb-site/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the Airtable connection and table names.

Environment variables such as AIRTABLE_BASE_ID and AIRTABLE_API_KEY take
precedence over the config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetTableCmd = &cobra.Command{
	Use:   "set-table [name] [table]",
	Short: "Override a table name or ID",
	Long: `Override the table used for one kind of record.

Names: ` + strings.Join(services.TableKeys(), ", "),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSetTable,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the Airtable access token",
	Args:  cobra.NoArgs,
	RunE:  runConfigSetKey,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetTableCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[Airtable]")
	cmd.Printf("  API URL: %s\n", settings.Airtable.APIURL)
	cmd.Printf("  Base ID: %s\n", valueOrUnset(settings.Airtable.BaseID))
	if settings.Airtable.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Airtable.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Timeout: %s\n", settings.Airtable.Timeout)
	cmd.Printf("  Max retries: %d\n", settings.Airtable.MaxRetries)
	cmd.Printf("  Requests/second: %g\n", settings.Airtable.RequestsPerSecond)
	status := "configured"
	if settings.Validate() != nil {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	t := settings.Tables
	cmd.Println("[Tables]")
	cmd.Printf("  videos: %s\n", t.Videos)
	cmd.Printf("  speakers: %s\n", t.Speakers)
	cmd.Printf("  speaker_lookup: %s\n", t.SpeakerLookup)
	cmd.Printf("  consultants_landing: %s\n", t.ConsultantsLanding)
	cmd.Printf("  consultants: %s\n", t.Consultants)
	cmd.Printf("  academy_landing: %s\n", t.AcademyLanding)
	cmd.Printf("  academy_courses: %s\n", t.AcademyCourses)
	cmd.Printf("  campaigns: %s\n", t.Campaigns)
	cmd.Printf("  campaign_speakers: %s\n", t.CampaignSpeakers)
	cmd.Printf("  client_inquiries: %s\n", t.ClientInquiries)
	cmd.Printf("  consultant_applications: %s\n", t.ConsultantApplications)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Listen address: %s\n", settings.Server.ListenAddr)
	cmd.Printf("  Drafts database: %s\n", valueOrUnset(settings.Server.DraftsDB))
	cmd.Printf("  WhatsApp: %s\n", settings.WhatsAppPhone)
	if settings.LookupCacheTTL > 0 {
		cmd.Printf("  Speaker cache TTL: %s\n", settings.LookupCacheTTL)
	} else {
		cmd.Printf("  Speaker cache TTL: (process lifetime)\n")
	}

	return nil
}

func runConfigSetTable(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetTable(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set table: %w", err)
	}
	cmd.Printf("Table %s set to %s\n", args[0], args[1])
	return nil
}

func runConfigSetKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Airtable access token: ")
	key := readPassword()
	cmd.Println()

	if err := settingsService.SetAPIKey(key); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}
	cmd.Printf("API key saved (%s)\n", maskAPIKey(strings.TrimSpace(key)))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not loaded")
	}
	cmd.Println(configStore.Path())
	return nil
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

// stdin is read by readPassword; tests replace it.
var stdin = os.Stdin

func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(stdin.Fd())) {
		password, err := term.ReadPassword(int(stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
