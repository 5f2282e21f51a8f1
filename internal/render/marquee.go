package render

import (
	"math"
	"strings"
)

// Slice returns the marquee window of text visible at a given tick.
// Text that fits is returned unchanged; the caller centers it. Longer
// text cycles through text+gap+text at charsPerSecond, with the
// offset derived purely from the tick counter and the nominal frame
// rate. A late frame shows the same window it would have shown on
// time, so jitter never changes how far the text has scrolled.
func Slice(text string, maxChars, tick int, charsPerSecond float64, gapChars int, framesPerSecond float64) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}

	span := len(runes) + gapChars
	offset := int(float64(tick)*charsPerSecond/framesPerSecond) % span

	loop := make([]rune, 0, 2*len(runes)+gapChars)
	loop = append(loop, runes...)
	loop = append(loop, []rune(strings.Repeat(" ", gapChars))...)
	loop = append(loop, runes...)

	return string(loop[offset : offset+maxChars])
}

// Period reports the number of ticks after which Slice repeats for
// the given text.
func Period(text string, gapChars int, charsPerSecond, framesPerSecond float64) int {
	span := len([]rune(text)) + gapChars
	return int(math.Round(float64(span) * framesPerSecond / charsPerSecond))
}
