// Package render holds the single-threaded frame loop that composes
// the now-playing display: it drains the worker channels without
// blocking, extrapolates playback progress between polls, and paces
// itself to a fixed nominal frame rate.
package render

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/tessro/glow/internal/core"
	"github.com/tessro/glow/internal/display"
	"github.com/tessro/glow/internal/latest"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	dim   = color.RGBA{R: 170, G: 170, B: 170, A: 255}
)

// idlePace slows the loop down while nothing is playing.
const idlePace = 250 * time.Millisecond

// Surface is the drawing side of the display used by the composer.
// *display.Screen implements it; tests substitute a recorder.
type Surface interface {
	Clear()
	DrawText(f *display.Font, x, baselineY int, c color.RGBA, text string) int
	Blit(img image.Image, x, y int)
	Outline(x0, y0, x1, y1 int, c color.RGBA)
	Present() error
}

// Options tune the frame loop.
type Options struct {
	FPS         float64
	TitleCPS    float64 // title scroll speed, chars/second
	LyricCPS    float64 // lyric scroll speed, chars/second
	GapChars    int     // spaces between marquee loops
	LyricOffset time.Duration
	PlainDwell  time.Duration // per-line dwell when only plain lyrics exist
}

// Coordinator owns the render loop. It is the only consumer of the
// worker channels and the only producer toward the display; nothing
// in its loop performs blocking I/O.
type Coordinator struct {
	surface   Surface
	titleFont *display.Font
	lyricFont *display.Font
	layout    Layout
	opts      Options

	snaps  *latest.Chan[core.Snapshot]
	reqs   *latest.Chan[core.TrackInfo]
	assets *latest.Chan[core.TrackAssets]

	// Seams for tests; real clocks in production.
	now   func() time.Time
	sleep func(time.Duration)
	logf  func(format string, args ...interface{})

	snap     core.Snapshot
	cur      core.TrackAssets
	lastSeen string
	tick     int
}

// New creates a coordinator. The three channels are the only paths
// data enters or leaves the loop.
func New(surface Surface, titleFont, lyricFont *display.Font, layout Layout, opts Options,
	snaps *latest.Chan[core.Snapshot], reqs *latest.Chan[core.TrackInfo], assets *latest.Chan[core.TrackAssets]) *Coordinator {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.PlainDwell <= 0 {
		opts.PlainDwell = 2 * time.Second
	}
	return &Coordinator{
		surface:   surface,
		titleFont: titleFont,
		lyricFont: lyricFont,
		layout:    layout,
		opts:      opts,
		snaps:     snaps,
		reqs:      reqs,
		assets:    assets,
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// SetLogFunc enables logging of presentation errors.
func (c *Coordinator) SetLogFunc(logf func(format string, args ...interface{})) {
	c.logf = logf
}

// Run renders frames until ctx is cancelled. Each iteration draws one
// frame and sleeps for whatever is left of the frame interval; a slow
// frame skips the sleep but is never compensated for.
func (c *Coordinator) Run(ctx context.Context) error {
	frame := time.Duration(float64(time.Second) / c.opts.FPS)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := c.now()
		idle := c.step(start)
		c.tick++

		pace := frame
		if idle {
			pace = idlePace
		}
		if elapsed := c.now().Sub(start); elapsed < pace {
			c.sleep(pace - elapsed)
		}
	}
}

// step composes and presents one frame. It reports whether nothing is
// playing, which lets Run relax its pacing.
func (c *Coordinator) step(now time.Time) bool {
	// Freshest snapshot, if any; otherwise keep the previous one.
	if snap, ok := c.snaps.Take(); ok {
		c.snap = snap
	}

	// A track change requests new assets, once per change.
	if track := c.snap.Track; track != nil && track.ID != "" && track.ID != c.lastSeen {
		c.lastSeen = track.ID
		c.reqs.Put(*track)
	}

	// Newly fetched assets fully replace the current set.
	if assets, ok := c.assets.Take(); ok {
		c.cur = assets
	}

	c.surface.Clear()

	if !c.snap.HasTrack() {
		c.surface.DrawText(c.lyricFont, c.layout.RightX, c.layout.LyricBaseline, dim, "Nothing")
		c.present()
		return true
	}

	progress := c.snap.ProgressAt(now) + c.opts.LyricOffset

	c.drawArt()
	c.drawTitle()
	c.drawLyric(progress)
	c.present()
	return false
}

func (c *Coordinator) drawArt() {
	if c.cur.HasArt() && c.cur.TrackID == c.snap.TrackID() {
		c.surface.Blit(c.cur.Art, 0, 0)
		return
	}
	c.surface.Outline(0, 0, c.layout.AlbumSide-1, c.layout.AlbumSide-1, dim)
}

// drawTitle centers the title when it fits the panel, scrolls it
// otherwise.
func (c *Coordinator) drawTitle() {
	title := c.cur.Title
	if c.cur.TrackID != c.snap.TrackID() {
		// Assets lag at most one in-flight request behind; show the
		// snapshot's own title instead of a stale one.
		title = c.snap.Track.Title
	}
	if title == "" {
		title = "(untitled)"
	}

	runes := []rune(title)
	if len(runes) <= c.layout.MaxTitleChars {
		px := len(runes) * c.titleFont.CharWidth
		cx := c.layout.RightX + (c.layout.RightW-px)/2
		c.surface.DrawText(c.titleFont, cx, c.layout.TitleBaseline, white, title)
		return
	}

	window := Slice(title, c.layout.MaxTitleChars, c.tick, c.opts.TitleCPS, c.opts.GapChars, c.opts.FPS)
	c.surface.DrawText(c.titleFont, c.layout.RightX, c.layout.TitleBaseline, white, window)
}

// drawLyric picks the active line and scrolls it under the baseline
// that clears both the title and the album art.
func (c *Coordinator) drawLyric(progress time.Duration) {
	line := c.lyricLine(progress)
	if line == "" {
		return
	}
	window := Slice(line, c.layout.MaxLyricChars, c.tick, c.opts.LyricCPS, c.opts.GapChars, c.opts.FPS)
	c.surface.DrawText(c.lyricFont, c.layout.RightX, c.layout.LyricBaseline, white, window)
}

// lyricLine returns the text shown on the lyric row: the timed line
// at progress, a dwelling plain line, or the artist names.
func (c *Coordinator) lyricLine(progress time.Duration) string {
	if c.cur.TrackID != c.snap.TrackID() {
		// Never pair another track's lyrics with this one.
		return c.snap.Track.Artists
	}

	if len(c.cur.Timeline) > 0 {
		if idx := c.cur.Timeline.IndexAt(progress); idx >= 0 {
			return c.cur.Timeline[idx].Text
		}
		return c.cur.Artists
	}

	if len(c.cur.PlainLines) > 0 {
		elapsed := time.Duration(float64(c.tick) / c.opts.FPS * float64(time.Second))
		which := int(elapsed/c.opts.PlainDwell) % len(c.cur.PlainLines)
		return c.cur.PlainLines[which]
	}

	return c.cur.Artists
}

func (c *Coordinator) present() {
	if err := c.surface.Present(); err != nil && c.logf != nil {
		c.logf("present failed: %v", err)
	}
}
