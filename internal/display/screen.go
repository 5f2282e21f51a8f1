package display

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// displayer adapts a Device to the drawing target tinyfont expects.
type displayer struct {
	dev Device
}

var _ drivers.Displayer = displayer{}

func (d displayer) Size() (int16, int16) {
	w, h := d.dev.Size()
	return int16(w), int16(h)
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	d.dev.SetPixel(int(x), int(y), c)
}

func (d displayer) Display() error {
	return nil
}

// Screen wraps a Device with the drawing primitives the frame
// composer uses: text, image blits and rectangle outlines.
type Screen struct {
	dev Device
}

// NewScreen creates a Screen over a device.
func NewScreen(dev Device) *Screen {
	return &Screen{dev: dev}
}

// Size returns the device dimensions.
func (s *Screen) Size() (int, int) {
	return s.dev.Size()
}

// Clear blanks the back buffer.
func (s *Screen) Clear() {
	s.dev.Clear()
}

// Present swaps the frame to the viewer.
func (s *Screen) Present() error {
	return s.dev.Present()
}

// DrawText draws text with its baseline at y and reports its pixel
// width.
func (s *Screen) DrawText(f *Font, x, baselineY int, c color.RGBA, text string) int {
	tinyfont.WriteLine(displayer{s.dev}, f.Face, int16(x), int16(baselineY), text, c)
	_, w := tinyfont.LineWidth(f.Face, text)
	return int(w)
}

// Blit copies an image onto the device with its top-left at (x0, y0).
func (s *Screen) Blit(img image.Image, x0, y0 int) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			s.dev.SetPixel(x0+x, y0+y, color.RGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(bl >> 8),
				A: 255,
			})
		}
	}
}

// Outline draws the border of the rectangle spanning (x0,y0)-(x1,y1)
// inclusive.
func (s *Screen) Outline(x0, y0, x1, y1 int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		s.dev.SetPixel(x, y0, c)
		s.dev.SetPixel(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		s.dev.SetPixel(x0, y, c)
		s.dev.SetPixel(x1, y, c)
	}
}
