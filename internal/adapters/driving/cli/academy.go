package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

var academyCmd = &cobra.Command{
	Use:   "academy",
	Short: "Inspect the academy pages",
}

var academyLandingCmd = &cobra.Command{
	Use:   "landing",
	Short: "Show the academy landing page copy",
	Args:  cobra.NoArgs,
	RunE:  runAcademyLanding,
}

var academyCoursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List published courses in display order",
	Args:  cobra.NoArgs,
	RunE:  runAcademyCourses,
}

var academyCourseCmd = &cobra.Command{
	Use:   "course [slug]",
	Short: "Show a course",
	Args:  cobra.ExactArgs(1),
	RunE:  runAcademyCourse,
}

func init() {
	academyCmd.AddCommand(academyLandingCmd)
	academyCmd.AddCommand(academyCoursesCmd)
	academyCmd.AddCommand(academyCourseCmd)
	rootCmd.AddCommand(academyCmd)
}

func runAcademyLanding(cmd *cobra.Command, _ []string) error {
	if academyService == nil {
		return errors.New("academy service not configured")
	}

	landing, err := load(cmd, academyService.Landing)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd, landing)
	}

	cmd.Println(landing.HeroHeading)
	field(cmd, "Subheading", landing.HeroSubheading)
	field(cmd, "Intro", landing.IntroTitle)
	return nil
}

func runAcademyCourses(cmd *cobra.Command, _ []string) error {
	if academyService == nil {
		return errors.New("academy service not configured")
	}

	courses, err := load(cmd, academyService.Courses)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd, courses)
	}

	if len(courses) == 0 {
		cmd.Println("No published courses.")
		return nil
	}
	for i := range courses {
		c := &courses[i]
		cmd.Printf("  [%d] %s (%s)\n", c.DisplayOrder, c.Name, c.Slug)
		if c.Tagline != "" {
			cmd.Printf("      %s\n", c.Tagline)
		}
	}
	return nil
}

func runAcademyCourse(cmd *cobra.Command, args []string) error {
	if academyService == nil {
		return errors.New("academy service not configured")
	}

	course, err := load(cmd, func(ctx context.Context) (*domain.AcademyCourse, error) {
		return academyService.CourseBySlug(ctx, args[0])
	})
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd, course)
	}

	cmd.Printf("%s (%s)\n", course.Name, course.Slug)
	field(cmd, "Level", course.Level)
	field(cmd, "Duration", course.Duration)
	field(cmd, "Delivery", course.DeliveryMode)
	field(cmd, "Summary", course.ShortDescription)
	return nil
}
