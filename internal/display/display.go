// Package display abstracts the pixel-addressable output the render
// loop draws on, and provides text drawing over any such device.
package display

import "image/color"

// Device is a pixel-addressable output with double-buffered
// presentation: drawing calls touch the back buffer, Present swaps it
// to the viewer.
type Device interface {
	Size() (w, h int)
	Clear()
	SetPixel(x, y int, c color.RGBA)
	Present() error
}
