package display

import (
	"fmt"
	"sort"
	"strings"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// Font couples a pixel font face with the cell metrics the layout
// math needs: the advance of a typical glyph and the line extents
// around the baseline.
type Font struct {
	Name      string
	Face      tinyfont.Fonter
	CharWidth int // advance of a typical glyph, px
	Height    int // line height, px
	Ascent    int // baseline to top, px
}

type fontSpec struct {
	face   tinyfont.Fonter
	height int
	ascent int
}

var fonts = map[string]fontSpec{
	"tomthumb":  {face: &tinyfont.TomThumb, height: 6, ascent: 5},
	"picopixel": {face: &tinyfont.Picopixel, height: 7, ascent: 6},
	"org01":     {face: &tinyfont.Org01, height: 7, ascent: 5},
	"freemono9": {face: &freemono.Regular9pt7b, height: 18, ascent: 13},
}

// LoadFont resolves a font by name. Unknown names are an error listing
// the known faces; an undrawable face is also an error, so a bad font
// is caught at startup rather than mid-frame.
func LoadFont(name string) (*Font, error) {
	spec, ok := fonts[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown font %q (available: %s)", name, strings.Join(FontNames(), ", "))
	}

	_, w := tinyfont.LineWidth(spec.face, "0")
	if w == 0 {
		return nil, fmt.Errorf("font %q has no usable glyph metrics", name)
	}

	return &Font{
		Name:      strings.ToLower(name),
		Face:      spec.face,
		CharWidth: int(w),
		Height:    spec.height,
		Ascent:    spec.ascent,
	}, nil
}

// FontNames lists the available font names, sorted.
func FontNames() []string {
	names := make([]string, 0, len(fonts))
	for name := range fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
