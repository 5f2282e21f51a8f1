package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/tessro/glow/internal/display"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Spotify.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("spotify: %w", err))
	}
	if err := c.Lyrics.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("lyrics: %w", err))
	}
	if err := c.Matrix.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("matrix: %w", err))
	}
	if err := c.Render.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("render: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks SpotifyConfig for errors.
func (c *SpotifyConfig) Validate() error {
	if c.PollMS < 0 {
		return errors.New("poll_ms must be non-negative")
	}
	return nil
}

// Validate checks LyricsConfig for errors.
func (c *LyricsConfig) Validate() error {
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid base_url scheme: %s (must be http or https)", u.Scheme)
		}
	}
	return nil
}

// Validate checks MatrixConfig for errors.
func (c *MatrixConfig) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.New("rows and cols must be positive")
	}
	if c.AlbumSide < 0 {
		return errors.New("album_side must be non-negative")
	}
	if c.AlbumSide > c.Rows || c.AlbumSide > c.Cols {
		return fmt.Errorf("album_side %d does not fit a %dx%d panel", c.AlbumSide, c.Cols, c.Rows)
	}
	switch c.Output {
	case "", "terminal", "none":
		// valid
	default:
		return fmt.Errorf("invalid output: %s (must be terminal or none)", c.Output)
	}
	return nil
}

// Validate checks RenderConfig for errors.
func (c *RenderConfig) Validate() error {
	if c.FPS <= 0 {
		return errors.New("fps must be positive")
	}
	if c.TitleSpeed < 0 || c.LyricSpeed < 0 {
		return errors.New("scroll speeds must be non-negative")
	}
	if c.GapChars < 0 {
		return errors.New("gap_chars must be non-negative")
	}
	for _, name := range []string{c.TitleFont, c.LyricFont} {
		if name == "" {
			continue
		}
		if _, err := display.LoadFont(name); err != nil {
			return err
		}
	}
	return nil
}
