package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tessro/glow/internal/assets"
	"github.com/tessro/glow/internal/core"
	"github.com/tessro/glow/internal/display"
	glowerrors "github.com/tessro/glow/internal/errors"
	"github.com/tessro/glow/internal/latest"
	"github.com/tessro/glow/internal/lyrics/lrclib"
	"github.com/tessro/glow/internal/poller"
	"github.com/tessro/glow/internal/render"
	"github.com/tessro/glow/internal/spotify/client"
	"github.com/tessro/glow/internal/spotify/source"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the now-playing display",
	Long:  `Polls Spotify for the current track and renders album art, title, and lyrics until interrupted.`,
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if cfg.Spotify.AccessToken == "" {
		return glowerrors.ErrNoToken
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	titleFont, err := display.LoadFont(cfg.Render.TitleFont)
	if err != nil {
		return err
	}
	lyricFont, err := display.LoadFont(cfg.Render.LyricFont)
	if err != nil {
		return err
	}

	layout, err := render.NewLayout(
		cfg.Matrix.Cols, cfg.Matrix.Rows, cfg.Matrix.AlbumSide,
		cfg.Render.TitleBaselinePx, cfg.Render.TitleLyricGapPx,
		titleFont, lyricFont)
	if err != nil {
		return err
	}

	var dev display.Device
	switch cfg.Matrix.Output {
	case "terminal":
		term := display.NewTerm(cfg.Matrix.Cols, cfg.Matrix.Rows, os.Stdout)
		defer func() { _ = term.Close() }()
		dev = term
	case "none":
		dev = display.NewFramebuffer(cfg.Matrix.Cols, cfg.Matrix.Rows)
	default:
		return glowerrors.ErrNoDisplay
	}
	screen := display.NewScreen(dev)

	token := cfg.Spotify.AccessToken
	spotifyClient := client.New(func(ctx context.Context) (string, error) {
		return token, nil
	})
	if Verbose() {
		spotifyClient.SetVerbose(true, logger.Printf)
	}

	lyricsClient := lrclib.New()
	if cfg.Lyrics.BaseURL != "" {
		lyricsClient.SetBaseURL(cfg.Lyrics.BaseURL)
	}

	snaps := latest.New[core.Snapshot]()
	reqs := latest.New[core.TrackInfo]()
	trackAssets := latest.New[core.TrackAssets]()

	p := poller.New(source.New(spotifyClient), snaps,
		time.Duration(cfg.Spotify.PollMS)*time.Millisecond)
	p.SetLogFunc(logger.Printf)

	f := assets.New(reqs, trackAssets, lyricsClient, cfg.Matrix.AlbumSide)
	f.SetLogFunc(logger.Printf)

	coord := render.New(screen, titleFont, lyricFont, layout, render.Options{
		FPS:         float64(cfg.Render.FPS),
		TitleCPS:    float64(cfg.Render.TitleSpeed),
		LyricCPS:    float64(cfg.Render.LyricSpeed),
		GapChars:    cfg.Render.GapChars,
		LyricOffset: time.Duration(cfg.Lyrics.OffsetMS) * time.Millisecond,
	}, snaps, reqs, trackAssets)
	coord.SetLogFunc(logger.Printf)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = p.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		_ = f.Run(ctx)
	}()

	err = coord.Run(ctx)
	stop()
	wg.Wait()

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
