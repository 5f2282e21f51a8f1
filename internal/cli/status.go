package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	glowerrors "github.com/tessro/glow/internal/errors"
	"github.com/tessro/glow/internal/spotify/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the currently playing track",
	Long:  `Queries Spotify once and prints the track glow would be displaying.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

var (
	statusTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusArtistStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func runStatus(cmd *cobra.Command, args []string) error {
	if cfg.Spotify.AccessToken == "" {
		return glowerrors.ErrNoToken
	}

	token := cfg.Spotify.AccessToken
	spotifyClient := client.New(func(ctx context.Context) (string, error) {
		return token, nil
	})
	if Verbose() {
		spotifyClient.SetVerbose(true, func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	playing, err := spotifyClient.GetCurrentlyPlaying(ctx)
	if err != nil {
		return err
	}

	if playing == nil || playing.Item == nil {
		if JSONOutput() {
			return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"playing": false,
			})
		}
		fmt.Println("Nothing playing")
		return nil
	}

	if JSONOutput() {
		return outputStatusJSON(playing)
	}
	return outputStatusText(playing)
}

func outputStatusJSON(playing *client.CurrentlyPlaying) error {
	item := map[string]interface{}{
		"playing":     playing.IsPlaying,
		"progress_ms": playing.ProgressMS,
		"track": map[string]interface{}{
			"id":          playing.Item.ID,
			"title":       playing.Item.Name,
			"artist":      artistNames(playing.Item),
			"album":       playing.Item.Album.Name,
			"duration_ms": playing.Item.DurationMS,
		},
	}
	return json.NewEncoder(os.Stdout).Encode(item)
}

func outputStatusText(playing *client.CurrentlyPlaying) error {
	playIcon := "▶"
	if !playing.IsPlaying {
		playIcon = "⏸"
	}

	fmt.Printf("%s %s\n", playIcon, statusTitleStyle.Render(playing.Item.Name))
	fmt.Printf("  %s\n", statusArtistStyle.Render(artistNames(playing.Item)+" — "+playing.Item.Album.Name))

	bar := FormatProgress(playing.ProgressMS, playing.Item.DurationMS, 30)
	fmt.Printf("  %s %s / %s\n", bar,
		FormatDuration(playing.ProgressMS/1000),
		FormatDuration(playing.Item.DurationMS/1000))

	return nil
}

func artistNames(t *client.Track) string {
	names := ""
	for i, a := range t.Artists {
		if i > 0 {
			names += ", "
		}
		names += a.Name
	}
	return names
}
