package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

var speakersCmd = &cobra.Command{
	Use:   "speakers",
	Short: "Inspect speaker profiles",
}

var speakersFeaturedOnly bool

var speakersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published speakers",
	Args:  cobra.NoArgs,
	RunE:  runSpeakersList,
}

var speakersGetCmd = &cobra.Command{
	Use:   "get [slug]",
	Short: "Show a speaker profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpeakersGet,
}

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Inspect the interviews library",
}

var videosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published videos, newest first",
	Args:  cobra.NoArgs,
	RunE:  runVideosList,
}

var videosForCmd = &cobra.Command{
	Use:   "for [speaker-slug]",
	Short: "Show one speaker's videos grouped by type",
	Args:  cobra.ExactArgs(1),
	RunE:  runVideosFor,
}

func init() {
	speakersListCmd.Flags().BoolVar(&speakersFeaturedOnly, "featured", false, "only speakers marked as featured")

	speakersCmd.AddCommand(speakersListCmd)
	speakersCmd.AddCommand(speakersGetCmd)
	videosCmd.AddCommand(videosListCmd)
	videosCmd.AddCommand(videosForCmd)
	rootCmd.AddCommand(speakersCmd)
	rootCmd.AddCommand(videosCmd)
}

func runSpeakersList(cmd *cobra.Command, _ []string) error {
	if speakerService == nil {
		return errors.New("speaker service not configured")
	}

	list := speakerService.List
	if speakersFeaturedOnly {
		list = speakerService.Featured
	}
	speakers, err := load(cmd, list)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd, speakers)
	}

	if len(speakers) == 0 {
		cmd.Println("No published speakers.")
		return nil
	}
	for _, s := range speakers {
		line := fmt.Sprintf("  %s (%s)", s.Name, s.Slug)
		if s.ProfessionalTitle != "" {
			line += " - " + s.ProfessionalTitle
		}
		cmd.Println(line)
	}
	return nil
}

func runSpeakersGet(cmd *cobra.Command, args []string) error {
	if speakerService == nil {
		return errors.New("speaker service not configured")
	}

	speaker, err := load(cmd, func(ctx context.Context) (*domain.Speaker, error) {
		return speakerService.GetBySlug(ctx, args[0])
	})
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd, speaker)
	}

	cmd.Printf("%s (%s)\n", speaker.Name, speaker.Slug)
	field(cmd, "Title", speaker.ProfessionalTitle)
	field(cmd, "Company", speaker.Company)
	field(cmd, "Country", speaker.Country)
	field(cmd, "Expertise", strings.Join(speaker.ExpertiseAreas, ", "))
	field(cmd, "Fee range", speaker.FeeRange)
	return nil
}

func runVideosList(cmd *cobra.Command, _ []string) error {
	if videoService == nil {
		return errors.New("video service not configured")
	}

	videos, err := load(cmd, videoService.ListPublished)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd, videos)
	}

	if len(videos) == 0 {
		cmd.Println("No published videos.")
		return nil
	}
	for i := range videos {
		printVideo(cmd, &videos[i])
	}
	return nil
}

func runVideosFor(cmd *cobra.Command, args []string) error {
	if videoService == nil {
		return errors.New("video service not configured")
	}

	grouped, err := load(cmd, func(ctx context.Context) (*domain.SpeakerVideos, error) {
		return videoService.ForSpeaker(ctx, args[0])
	})
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(cmd, grouped)
	}

	if len(grouped.All) == 0 {
		cmd.Printf("No videos for %s.\n", args[0])
		return nil
	}
	if grouped.Full != nil {
		cmd.Println("Full interview:")
		printVideo(cmd, grouped.Full)
	}
	if len(grouped.Highlights) > 0 {
		cmd.Printf("Highlights (%d):\n", len(grouped.Highlights))
		for i := range grouped.Highlights {
			printVideo(cmd, &grouped.Highlights[i])
		}
	}
	if len(grouped.Reels) > 0 {
		cmd.Printf("Reels (%d):\n", len(grouped.Reels))
		for i := range grouped.Reels {
			printVideo(cmd, &grouped.Reels[i])
		}
	}
	return nil
}

func printVideo(cmd *cobra.Command, v *domain.Video) {
	cmd.Printf("  [%s] %s\n", v.Type, v.Title)
	if v.SpeakerName != "" {
		cmd.Printf("      %s (%s)\n", v.SpeakerName, v.SpeakerSlug)
	}
	if v.PublishDate != "" {
		cmd.Printf("      Published %s\n", v.PublishDate)
	}
}
