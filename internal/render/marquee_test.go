package render

import (
	"strings"
	"testing"
)

func TestSliceReturnsShortTextUnchanged(t *testing.T) {
	for tick := 0; tick < 100; tick += 7 {
		if got := Slice("short", 10, tick, 6, 3, 30); got != "short" {
			t.Fatalf("Slice(tick=%d) = %q, want %q", tick, got, "short")
		}
	}
}

func TestSliceExactFitUnchanged(t *testing.T) {
	if got := Slice("12345", 5, 99, 6, 3, 30); got != "12345" {
		t.Errorf("Slice = %q, want %q", got, "12345")
	}
}

func TestSliceWindowLength(t *testing.T) {
	text := "a longer line than the panel"
	for tick := 0; tick < 500; tick++ {
		got := Slice(text, 8, tick, 6, 3, 30)
		if len([]rune(got)) != 8 {
			t.Fatalf("Slice(tick=%d) window length = %d, want 8", tick, len([]rune(got)))
		}
	}
}

func TestSliceStartsAtOrigin(t *testing.T) {
	got := Slice("hello world", 6, 0, 6, 3, 30)
	if got != "hello " {
		t.Errorf("Slice(tick=0) = %q, want %q", got, "hello ")
	}
}

func TestSliceAdvances(t *testing.T) {
	// 6 chars/second at 30 fps advances one char every 5 ticks.
	text := "hello world"
	if got := Slice(text, 6, 5, 6, 3, 30); got != "ello w" {
		t.Errorf("Slice(tick=5) = %q, want %q", got, "ello w")
	}
	if got := Slice(text, 6, 10, 6, 3, 30); got != "llo wo" {
		t.Errorf("Slice(tick=10) = %q, want %q", got, "llo wo")
	}
}

func TestSlicePeriodicInTick(t *testing.T) {
	text := "periodic marquee line"
	const (
		cps = 6.0
		fps = 30.0
		gap = 3
	)
	period := Period(text, gap, cps, fps)
	// (21+3) chars * 30 fps / 6 cps = 120 ticks.
	if period != 120 {
		t.Fatalf("Period = %d, want 120", period)
	}

	for tick := 0; tick < period; tick += 11 {
		a := Slice(text, 7, tick, cps, gap, fps)
		b := Slice(text, 7, tick+period, cps, gap, fps)
		if a != b {
			t.Fatalf("Slice not periodic at tick %d: %q vs %q", tick, a, b)
		}
	}
}

func TestSliceWrapsThroughGap(t *testing.T) {
	text := "abc def"
	seen := false
	for tick := 0; tick < 1000; tick++ {
		got := Slice(text, 4, tick, 6, 3, 30)
		if strings.Contains(got, "  ") {
			seen = true
			break
		}
	}
	if !seen {
		t.Error("the gap between loops never became visible")
	}
}

func TestSliceUnicode(t *testing.T) {
	text := "héllø wörld — über"
	for tick := 0; tick < 300; tick++ {
		got := Slice(text, 5, tick, 6, 3, 30)
		if len([]rune(got)) != 5 {
			t.Fatalf("Slice(tick=%d) rune length = %d, want 5", tick, len([]rune(got)))
		}
	}
}
