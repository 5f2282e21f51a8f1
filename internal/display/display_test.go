package display

import (
	"image"
	"image/color"
	"testing"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestFramebufferPresentSwaps(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(1, 2, white)

	// Not visible until presented.
	if got := fb.At(1, 2); got != (color.RGBA{}) {
		t.Errorf("pixel visible before Present: %+v", got)
	}

	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if got := fb.At(1, 2); got != white {
		t.Errorf("At(1,2) = %+v, want white", got)
	}
}

func TestFramebufferBounds(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	// Must not panic.
	fb.SetPixel(-1, 0, white)
	fb.SetPixel(0, -1, white)
	fb.SetPixel(2, 0, white)
	fb.SetPixel(0, 2, white)
	if got := fb.At(-1, -1); got != (color.RGBA{}) {
		t.Errorf("out-of-bounds At = %+v, want zero", got)
	}
}

func TestScreenBlit(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	s := NewScreen(fb)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 1, white)

	s.Blit(img, 3, 3)
	_ = s.Present()

	if got := fb.At(3, 3); got != red {
		t.Errorf("At(3,3) = %+v, want red", got)
	}
	if got := fb.At(4, 4); got != white {
		t.Errorf("At(4,4) = %+v, want white", got)
	}
}

func TestScreenOutline(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	s := NewScreen(fb)

	s.Outline(0, 0, 3, 3, white)
	_ = s.Present()

	corners := [][2]int{{0, 0}, {3, 0}, {0, 3}, {3, 3}}
	for _, p := range corners {
		if got := fb.At(p[0], p[1]); got != white {
			t.Errorf("corner (%d,%d) = %+v, want white", p[0], p[1], got)
		}
	}
	if got := fb.At(1, 1); got != (color.RGBA{}) {
		t.Errorf("interior (1,1) = %+v, want unset", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	fb := NewFramebuffer(64, 32)
	s := NewScreen(fb)

	font, err := LoadFont("tomthumb")
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}

	w := s.DrawText(font, 0, 10, white, "HI")
	if w <= 0 {
		t.Errorf("DrawText width = %d, want > 0", w)
	}
	_ = s.Present()

	// Some pixel of the glyphs must have landed on the buffer.
	lit := false
	for y := 0; y < 32 && !lit; y++ {
		for x := 0; x < 64; x++ {
			if fb.At(x, y) == white {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("DrawText lit no pixels")
	}
}

func TestLoadFont(t *testing.T) {
	for _, name := range FontNames() {
		f, err := LoadFont(name)
		if err != nil {
			t.Errorf("LoadFont(%q): %v", name, err)
			continue
		}
		if f.CharWidth <= 0 || f.Height <= 0 || f.Ascent <= 0 {
			t.Errorf("LoadFont(%q) metrics = %+v", name, f)
		}
	}

	if _, err := LoadFont("no-such-font"); err == nil {
		t.Error("expected an error for an unknown font")
	}
}
