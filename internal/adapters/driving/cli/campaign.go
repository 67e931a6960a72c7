package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

var campaignCmd = &cobra.Command{
	Use:   "campaign [country] [slug]",
	Short: "Show a live campaign microsite",
	Long: `Shows the live campaign for an ISO country code and slug, with up to
five speaker cards and the booking and WhatsApp links.`,
	Args: cobra.ExactArgs(2),
	RunE: runCampaign,
}

func init() {
	rootCmd.AddCommand(campaignCmd)
}

func runCampaign(cmd *cobra.Command, args []string) error {
	if campaignService == nil {
		return errors.New("campaign service not configured")
	}

	site, err := load(cmd, func(ctx context.Context) (*domain.Microsite, error) {
		return campaignService.Microsite(ctx, args[0], args[1])
	})
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd, site)
	}

	cmd.Printf("%s (%s/%s)\n", site.Campaign.Title, site.Campaign.Country, site.Campaign.Slug)
	field(cmd, "Headline", site.Campaign.HeroHeadline)
	field(cmd, "Call to action", site.PrimaryCTA)
	field(cmd, "Book", site.BookURL)
	field(cmd, "WhatsApp", site.WhatsAppURL)
	cmd.Println()
	for i := range site.Speakers {
		s := &site.Speakers[i]
		cmd.Printf("  [%d] %s\n", i+1, s.DisplayName)
		if s.AngleHeadline != "" {
			cmd.Printf("      %s\n", s.AngleHeadline)
		}
	}
	return nil
}
