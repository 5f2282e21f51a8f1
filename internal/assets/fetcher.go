// Package assets runs the background worker that resolves per-track
// visuals: the album art variant closest to the display's square side
// and the track's lyrics, synced when available.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	// Album art arrives as JPEG or PNG depending on the CDN.
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"

	"github.com/tessro/glow/internal/core"
	"github.com/tessro/glow/internal/latest"
	"github.com/tessro/glow/internal/lyrics"
	"github.com/tessro/glow/internal/lyrics/lrclib"
)

const (
	// idleWait bounds the blocking pull on the request channel so the
	// worker notices cancellation while idle.
	idleWait = 500 * time.Millisecond

	// artRetryPause is the pause before the single art fetch retry.
	artRetryPause = 150 * time.Millisecond

	maxArtBytes = 4 << 20
)

// LyricsSource looks up lyrics for a track.
type LyricsSource interface {
	Lookup(ctx context.Context, title, artists string) (*lrclib.Result, error)
}

// Fetcher consumes track requests and publishes fully-formed
// TrackAssets values. A newer request supersedes any unprocessed one;
// a request already in flight is allowed to finish.
type Fetcher struct {
	in         *latest.Chan[core.TrackInfo]
	out        *latest.Chan[core.TrackAssets]
	lyrics     LyricsSource
	httpClient *http.Client
	side       int
	logf       func(format string, args ...interface{})
}

// New creates a new fetcher resolving art to a side×side square.
func New(in *latest.Chan[core.TrackInfo], out *latest.Chan[core.TrackAssets], ly LyricsSource, side int) *Fetcher {
	return &Fetcher{
		in:         in,
		out:        out,
		lyrics:     ly,
		httpClient: &http.Client{Timeout: 6 * time.Second},
		side:       side,
	}
}

// SetLogFunc enables logging of asset fetch failures.
func (f *Fetcher) SetLogFunc(logf func(format string, args ...interface{})) {
	f.logf = logf
}

// Run serves requests until ctx is cancelled.
func (f *Fetcher) Run(ctx context.Context) error {
	for {
		req, ok := f.in.Wait(ctx, idleWait)
		if err := ctx.Err(); err != nil {
			return err
		}
		if !ok {
			continue
		}
		f.out.Put(f.build(ctx, req))
	}
}

// build assembles one TrackAssets value. Failures degrade the value
// (no art, empty timeline) instead of propagating.
func (f *Fetcher) build(ctx context.Context, track core.TrackInfo) core.TrackAssets {
	assets := core.TrackAssets{
		TrackID: track.ID,
		Title:   track.Title,
		Artists: track.Artists,
	}

	if url := bestImage(track.Images, f.side); url != "" {
		assets.Art = f.fetchArt(ctx, url)
	}

	result, err := f.lyrics.Lookup(ctx, track.Title, track.Artists)
	if err != nil {
		f.log("lyrics lookup failed for %q: %v", track.Title, err)
		return assets
	}
	if synced := strings.TrimSpace(result.Synced); synced != "" {
		assets.Timeline = lyrics.Parse(synced)
	} else if plain := strings.TrimSpace(result.Plain); plain != "" {
		assets.PlainLines = splitLines(plain)
	}
	return assets
}

// bestImage picks the variant whose width is closest to the target
// (floored at 32px). Variants without widths fall back to the last
// listed, conventionally the smallest.
func bestImage(images []core.ImageRef, side int) string {
	if len(images) == 0 {
		return ""
	}

	target := side
	if target < 32 {
		target = 32
	}

	best := ""
	bestDiff := -1
	for _, img := range images {
		if img.Width <= 0 {
			continue
		}
		diff := img.Width - target
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best = img.URL
			bestDiff = diff
		}
	}
	if best == "" {
		return images[len(images)-1].URL
	}
	return best
}

// fetchArt downloads, decodes and resizes album art. It retries once,
// then gives up and leaves the art unset.
func (f *Fetcher) fetchArt(ctx context.Context, url string) image.Image {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(artRetryPause):
			}
		}

		img, err := f.fetchArtOnce(ctx, url)
		if err == nil {
			return img
		}
		lastErr = err
	}
	f.log("album art fetch failed: %v", lastErr)
	return nil
}

func (f *Fetcher) fetchArtOnce(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxArtBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return resize.Resize(uint(f.side), uint(f.side), img, resize.Lanczos3), nil
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (f *Fetcher) log(format string, args ...interface{}) {
	if f.logf != nil {
		f.logf(format, args...)
	}
}
