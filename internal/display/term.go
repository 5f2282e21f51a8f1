package display

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Term renders the matrix in a terminal, two pixels per character
// cell using the upper-half-block glyph. It lets the whole pipeline
// run without LED hardware attached.
type Term struct {
	fb    *Framebuffer
	out   io.Writer
	first bool
}

// NewTerm creates a w×h terminal matrix writing to out.
func NewTerm(w, h int, out io.Writer) *Term {
	return &Term{
		fb:    NewFramebuffer(w, h),
		out:   out,
		first: true,
	}
}

// Size returns the pixel dimensions.
func (t *Term) Size() (int, int) { return t.fb.Size() }

// Clear blanks the back buffer.
func (t *Term) Clear() { t.fb.Clear() }

// SetPixel writes one pixel into the back buffer.
func (t *Term) SetPixel(x, y int, c color.RGBA) { t.fb.SetPixel(x, y, c) }

// Present swaps buffers and repaints the terminal in place.
func (t *Term) Present() error {
	if err := t.fb.Present(); err != nil {
		return err
	}

	var sb strings.Builder
	if t.first {
		// Hide the cursor and start on a clean screen once.
		sb.WriteString("\x1b[?25l\x1b[2J")
		t.first = false
	}
	sb.WriteString("\x1b[H")

	w, h := t.fb.Size()
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := t.fb.At(x, y)
			bottom := color.RGBA{}
			if y+1 < h {
				bottom = t.fb.At(x, y+1)
			}
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom)))
			sb.WriteString(cell.Render("▀"))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(t.out, sb.String())
	return err
}

// Close restores the cursor.
func (t *Term) Close() error {
	_, err := io.WriteString(t.out, "\x1b[?25h")
	return err
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
