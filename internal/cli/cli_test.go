package cli

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#FFFFFF", want: color.RGBA{255, 255, 255, 255}},
		{in: "#00ff80", want: color.RGBA{0, 255, 128, 255}},
		{in: "255, 0, 64", want: color.RGBA{255, 0, 64, 255}},
		{in: "0,0,0", want: color.RGBA{0, 0, 0, 255}},
		{in: "#FFF", wantErr: true},
		{in: "1,2", wantErr: true},
		{in: "1,2,999", wantErr: true},
		{in: "red", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseColor(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{61, "1:01"},
		{3600, "1:00:00"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatProgress(t *testing.T) {
	if got := FormatProgress(5, 10, 10); got != "━━━━━─────" {
		t.Errorf("FormatProgress(5,10,10) = %q", got)
	}
	if got := FormatProgress(0, 0, 4); got != "────" {
		t.Errorf("FormatProgress with zero total = %q", got)
	}
	if got := FormatProgress(20, 10, 4); got != "━━━━" {
		t.Errorf("FormatProgress past the end = %q", got)
	}
}
