package render

import (
	"fmt"

	"github.com/tessro/glow/internal/display"
)

// Layout fixes every pixel position used by the frame composer. It is
// computed once at startup; nothing in the render loop moves.
type Layout struct {
	Width, Height int
	AlbumSide     int

	// Text panel right of the album art.
	RightX, RightW int

	TitleBaseline int
	LyricBaseline int
	MaxTitleChars int
	MaxLyricChars int
}

// NewLayout derives the frame layout from the display geometry, the
// album art side and the font metrics. The lyric baseline is pushed
// below both the title and the album art.
func NewLayout(width, height, albumSide, titleBaseline, titleLyricGapPx int, title, lyric *display.Font) (Layout, error) {
	if albumSide <= 0 || albumSide > height {
		return Layout{}, fmt.Errorf("album side %d does not fit a %dx%d display", albumSide, width, height)
	}

	rightX := albumSide + 2
	rightW := width - rightX
	if rightW < title.CharWidth {
		return Layout{}, fmt.Errorf("no room for text right of %dpx album art on a %dpx-wide display", albumSide, width)
	}

	tb := clamp(titleBaseline, title.Ascent, height-lyric.Height-1)
	lb := tb + titleLyricGapPx + lyric.Height
	if lb < albumSide+1 {
		lb = albumSide + 1
	}
	if lb > height-1 {
		lb = height - 1
	}

	return Layout{
		Width:         width,
		Height:        height,
		AlbumSide:     albumSide,
		RightX:        rightX,
		RightW:        rightW,
		TitleBaseline: tb,
		LyricBaseline: lb,
		MaxTitleChars: maxOf(1, rightW/title.CharWidth),
		MaxLyricChars: maxOf(1, rightW/lyric.CharWidth),
	}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}
