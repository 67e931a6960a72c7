package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

var consultantFilter domain.ConsultantFilter

var consultantsCmd = &cobra.Command{
	Use:   "consultants",
	Short: "Inspect the consultants directory",
}

var consultantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of published consultants",
	Args:  cobra.NoArgs,
	RunE:  runConsultantsList,
}

var consultantsGetCmd = &cobra.Command{
	Use:   "get [slug]",
	Short: "Show a consultant profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runConsultantsGet,
}

var consultantsFeaturedCmd = &cobra.Command{
	Use:   "featured",
	Short: "List the consultants featured on the landing page",
	Args:  cobra.NoArgs,
	RunE:  runConsultantsFeatured,
}

var consultantsLandingCmd = &cobra.Command{
	Use:   "landing",
	Short: "Show the consultants landing page copy",
	Args:  cobra.NoArgs,
	RunE:  runConsultantsLanding,
}

func init() {
	f := consultantsListCmd.Flags()
	f.StringVar(&consultantFilter.Search, "search", "", "match name, title, company or expertise")
	f.StringVar(&consultantFilter.Country, "country", "", "filter by country")
	f.StringVar(&consultantFilter.Availability, "availability", "", "filter by availability window")
	f.StringVar(&consultantFilter.FeeBand, "fee-band", "", "filter by general fee range")
	f.StringVar(&consultantFilter.Offset, "offset", "", "continue from a previous page")

	consultantsCmd.AddCommand(consultantsListCmd)
	consultantsCmd.AddCommand(consultantsGetCmd)
	consultantsCmd.AddCommand(consultantsFeaturedCmd)
	consultantsCmd.AddCommand(consultantsLandingCmd)
	rootCmd.AddCommand(consultantsCmd)
}

func runConsultantsList(cmd *cobra.Command, _ []string) error {
	if consultantService == nil {
		return errors.New("consultant service not configured")
	}

	page, err := load(cmd, func(ctx context.Context) (*domain.ConsultantPage, error) {
		return consultantService.List(ctx, consultantFilter)
	})
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd, page)
	}

	printConsultants(cmd, page.Consultants)
	if page.Offset != "" {
		cmd.Printf("\nMore results: --offset %s\n", page.Offset)
	}
	return nil
}

func runConsultantsGet(cmd *cobra.Command, args []string) error {
	if consultantService == nil {
		return errors.New("consultant service not configured")
	}

	c, err := load(cmd, func(ctx context.Context) (*domain.Consultant, error) {
		return consultantService.GetBySlug(ctx, args[0])
	})
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd, c)
	}

	cmd.Printf("%s (%s)\n", c.FullName, c.Slug)
	field(cmd, "Title", c.ProfessionalTitle)
	field(cmd, "Company", c.Company)
	field(cmd, "Country", c.Country)
	field(cmd, "Availability", c.AvailabilityWindow)
	field(cmd, "Fee range", c.FeeRangeGeneral)
	return nil
}

func runConsultantsFeatured(cmd *cobra.Command, _ []string) error {
	if consultantService == nil {
		return errors.New("consultant service not configured")
	}

	featured, err := load(cmd, consultantService.Featured)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd, featured)
	}
	printConsultants(cmd, featured)
	return nil
}

func runConsultantsLanding(cmd *cobra.Command, _ []string) error {
	if consultantService == nil {
		return errors.New("consultant service not configured")
	}

	landing, err := load(cmd, consultantService.Landing)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd, landing)
	}

	cmd.Println(landing.HeroHeading)
	field(cmd, "Subheading", landing.HeroSubheading)
	field(cmd, "Status", landing.Status)
	cmd.Printf("  Featured consultants: %d\n", len(landing.FeaturedConsultantIDs))
	return nil
}

func printConsultants(cmd *cobra.Command, consultants []domain.Consultant) {
	if len(consultants) == 0 {
		cmd.Println("No consultants found.")
		return
	}
	for i := range consultants {
		c := &consultants[i]
		cmd.Printf("  %s (%s)\n", c.FullName, c.Slug)
		if c.ProfessionalTitle != "" {
			cmd.Printf("      %s\n", c.ProfessionalTitle)
		}
	}
}
