package lyrics

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	raw := "[00:01.00]first\n[00:04.50]second\n"
	want := Timeline{
		{At: time.Second, Text: "first"},
		{At: 4500 * time.Millisecond, Text: "second"},
	}
	if diff := cmp.Diff(want, Parse(raw)); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	raw := "[00:01.00]good one\nnot a lyric line at all\n[xx:yy]broken tag\n[00:02.00]good two\n"
	got := Parse(raw)
	want := Timeline{
		{At: time.Second, Text: "good one"},
		{At: 2 * time.Second, Text: "good two"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMultipleTagsExpand(t *testing.T) {
	raw := "[00:10.00][01:10.00]chorus\n[00:05.00]verse\n"
	got := Parse(raw)
	want := Timeline{
		{At: 5 * time.Second, Text: "verse"},
		{At: 10 * time.Second, Text: "chorus"},
		{At: 70 * time.Second, Text: "chorus"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOutOfOrderIsSorted(t *testing.T) {
	got := Parse("[00:30.00]late\n[00:10.00]early\n")
	if len(got) != 2 || got[0].Text != "early" || got[1].Text != "late" {
		t.Errorf("Parse did not sort: %+v", got)
	}
}

func TestIndexAt(t *testing.T) {
	tl := Timeline{
		{At: 0, Text: "a"},
		{At: 4 * time.Second, Text: "b"},
		{At: 9 * time.Second, Text: "c"},
	}

	tests := []struct {
		name string
		tl   Timeline
		t    time.Duration
		want int
	}{
		{"empty", Timeline{}, time.Second, -1},
		{"nil", nil, time.Second, -1},
		{"single before", Timeline{{At: time.Second}}, 0, -1},
		{"single at", Timeline{{At: time.Second}}, time.Second, 0},
		{"single after", Timeline{{At: time.Second}}, time.Hour, 0},
		{"at first", tl, 0, 0},
		{"between first and second", tl, 3 * time.Second, 0},
		{"at second", tl, 4 * time.Second, 1},
		{"between second and third", tl, 8 * time.Second, 1},
		{"at third", tl, 9 * time.Second, 2},
		{"past the end", tl, time.Hour, 2},
		{"before all", Timeline{{At: 2 * time.Second}, {At: 5 * time.Second}}, time.Second, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tl.IndexAt(tt.t); got != tt.want {
				t.Errorf("IndexAt(%v) = %d, want %d", tt.t, got, tt.want)
			}
		})
	}
}

func TestIndexAtStableForNonDecreasingTime(t *testing.T) {
	tl := Parse("[00:00.00]la la\n[00:04.00]second line\n")
	prev := -1
	for ms := 0; ms <= 6000; ms += 250 {
		idx := tl.IndexAt(time.Duration(ms) * time.Millisecond)
		if idx < prev {
			t.Fatalf("IndexAt went backwards at %dms: %d < %d", ms, idx, prev)
		}
		prev = idx
	}
}
