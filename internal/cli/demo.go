package cli

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tessro/glow/internal/display"
)

var (
	demoText   string
	demoColor  string
	demoSpeed  float64
	demoFPS    int
	demoRepeat int
	demoFont   string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Scroll a test message across the matrix",
	Long:  `Scrolls a fixed message across the panel. Useful for checking geometry, fonts, and colors without a Spotify token.`,
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().StringVarP(&demoText, "text", "t", "HELLO WORLD", "message to scroll")
	demoCmd.Flags().StringVar(&demoColor, "color", "#FFFFFF", "text color, #RRGGBB or R,G,B")
	demoCmd.Flags().Float64Var(&demoSpeed, "speed", 24, "scroll speed in pixels/second")
	demoCmd.Flags().IntVar(&demoFPS, "fps", 30, "frames per second")
	demoCmd.Flags().IntVar(&demoRepeat, "repeat", 0, "number of passes, 0 means until interrupted")
	demoCmd.Flags().StringVar(&demoFont, "font", "", "font name (default: the configured title font)")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	fontName := demoFont
	if fontName == "" {
		fontName = cfg.Render.TitleFont
	}
	font, err := display.LoadFont(fontName)
	if err != nil {
		return err
	}

	c, err := parseColor(demoColor)
	if err != nil {
		return err
	}
	if demoFPS <= 0 {
		return fmt.Errorf("fps must be positive")
	}
	if demoSpeed <= 0 {
		return fmt.Errorf("speed must be positive")
	}

	term := display.NewTerm(cfg.Matrix.Cols, cfg.Matrix.Rows, os.Stdout)
	defer func() { _ = term.Close() }()
	screen := display.NewScreen(term)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = scrollText(ctx, screen, font, c, demoText, demoSpeed, demoFPS, demoRepeat)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// scrollText moves the message right to left across the full panel,
// one pass taking the text from just past the right edge until its
// last pixel leaves the left edge.
func scrollText(ctx context.Context, screen *display.Screen, font *display.Font,
	c color.RGBA, text string, pxPerSec float64, fps, repeat int) error {

	width, height := screen.Size()
	baseline := (height + font.Ascent) / 2
	textWidth := len([]rune(text)) * font.CharWidth
	span := width + textWidth

	frame := time.Duration(float64(time.Second) / float64(fps))
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		offset := int(time.Since(start).Seconds() * pxPerSec)
		if repeat > 0 && offset >= span*repeat {
			return nil
		}

		x := width - offset%span
		screen.Clear()
		screen.DrawText(font, x, baseline, c, text)
		if err := screen.Present(); err != nil {
			return err
		}
	}
}

// parseColor accepts "#RRGGBB" or "R,G,B".
func parseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return color.RGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 255,
		}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB or R,G,B", s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return color.RGBA{}, fmt.Errorf("invalid color component %q", p)
		}
		rgb[i] = uint8(n)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}
