package display

import "image/color"

// Framebuffer is an in-memory Device. It backs the terminal emulator
// and the tests; hardware backends can embed it as their staging
// buffer.
type Framebuffer struct {
	w, h  int
	back  []color.RGBA
	front []color.RGBA
}

// NewFramebuffer creates a w×h framebuffer with both buffers black.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{
		w:     w,
		h:     h,
		back:  make([]color.RGBA, w*h),
		front: make([]color.RGBA, w*h),
	}
}

// Size returns the pixel dimensions.
func (f *Framebuffer) Size() (int, int) {
	return f.w, f.h
}

// Clear blanks the back buffer.
func (f *Framebuffer) Clear() {
	for i := range f.back {
		f.back[i] = color.RGBA{}
	}
}

// SetPixel writes one pixel into the back buffer. Out-of-bounds
// writes are dropped.
func (f *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	f.back[y*f.w+x] = c
}

// Present swaps the back buffer to the front.
func (f *Framebuffer) Present() error {
	f.front, f.back = f.back, f.front
	return nil
}

// At reads a presented pixel from the front buffer.
func (f *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return color.RGBA{}
	}
	return f.front[y*f.w+x]
}
