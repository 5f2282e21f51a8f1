// Package lyrics holds the timed lyric timeline: parsing of
// LRC-style text and the lookup of the line active at a given
// playback position.
package lyrics

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Line is a single timed lyric line.
type Line struct {
	At   time.Duration
	Text string
}

// Timeline is a sequence of lines sorted ascending by timestamp.
type Timeline []Line

// Parse reads LRC-style text into a Timeline. Each line may carry one
// or more leading [mm:ss.xx] tags; a line with several tags expands
// into one entry per tag sharing the trailing text. Malformed tags and
// lines are skipped; a bad line never invalidates the rest.
func Parse(raw string) Timeline {
	var tl Timeline
	for _, row := range strings.Split(raw, "\n") {
		row = strings.TrimRight(row, "\r")
		if strings.TrimSpace(row) == "" {
			continue
		}
		parts := strings.Split(row, "]")
		text := strings.TrimSpace(parts[len(parts)-1])
		for _, p := range parts[:len(parts)-1] {
			p = strings.TrimSpace(p)
			if !strings.HasPrefix(p, "[") {
				continue
			}
			at, ok := parseTag(p[1:])
			if !ok {
				continue
			}
			tl = append(tl, Line{At: at, Text: text})
		}
	}
	sort.SliceStable(tl, func(i, j int) bool { return tl[i].At < tl[j].At })
	return tl
}

// parseTag converts "mm:ss.xx" into a duration.
func parseTag(tag string) (time.Duration, bool) {
	m, s, ok := strings.Cut(tag, ":")
	if !ok {
		return 0, false
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 {
		return 0, false
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(mins)*time.Minute + time.Duration(secs*float64(time.Second)), true
}

// IndexAt returns the index of the last line whose timestamp is at or
// before t, or -1 if there is none. Binary search; stable for
// repeated calls with non-decreasing t.
func (tl Timeline) IndexAt(t time.Duration) int {
	lo, hi, ans := 0, len(tl)-1, -1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		if tl[mid].At <= t {
			ans = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return ans
}
