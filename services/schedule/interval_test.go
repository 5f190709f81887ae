package schedule

import (
	"testing"
	"time"
)

var day = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC) // a Monday

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func iv(sh, sm, eh, em int) Interval {
	return Interval{Start: at(sh, sm), End: at(eh, em)}
}

func TestNewInterval_RejectsInverted(t *testing.T) {
	if _, err := NewInterval(at(10, 0), at(9, 0)); err == nil {
		t.Fatal("expected error for inverted range")
	}
	if _, err := NewInterval(at(10, 0), at(10, 0)); err == nil {
		t.Fatal("expected error for empty range")
	}
	if _, err := NewInterval(at(9, 0), at(10, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOverlaps_Symmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", iv(9, 0, 10, 0), iv(11, 0, 12, 0), false},
		{"touching endpoints do not overlap", iv(9, 0, 10, 0), iv(10, 0, 11, 0), false},
		{"partial", iv(9, 0, 10, 30), iv(10, 0, 11, 0), true},
		{"contained", iv(9, 0, 12, 0), iv(10, 0, 11, 0), true},
		{"identical", iv(9, 0, 10, 0), iv(9, 0, 10, 0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Fatalf("Overlaps(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Fatalf("Overlaps not symmetric for %s, %s", tc.a, tc.b)
			}
		})
	}
}

func TestContains(t *testing.T) {
	outer := iv(9, 0, 19, 0)
	if !outer.Contains(iv(9, 0, 19, 0)) {
		t.Fatal("an interval should contain itself")
	}
	if !outer.Contains(iv(10, 0, 11, 0)) {
		t.Fatal("expected outer to contain inner")
	}
	if outer.Contains(iv(8, 30, 10, 0)) {
		t.Fatal("interval starting before outer must not be contained")
	}
	if outer.Contains(iv(18, 30, 19, 30)) {
		t.Fatal("interval ending after outer must not be contained")
	}
}

func TestClip(t *testing.T) {
	window := iv(10, 0, 19, 0)

	clipped, ok := iv(9, 0, 11, 0).Clip(window)
	if !ok || !clipped.Start.Equal(at(10, 0)) || !clipped.End.Equal(at(11, 0)) {
		t.Fatalf("expected [10:00, 11:00), got %s ok=%v", clipped, ok)
	}

	if _, ok := iv(7, 0, 9, 0).Clip(window); ok {
		t.Fatal("interval fully outside the window must clip to nothing")
	}

	clipped, ok = iv(18, 0, 20, 0).Clip(window)
	if !ok || clipped.Duration() != time.Hour {
		t.Fatalf("expected one clipped hour, got %s ok=%v", clipped, ok)
	}
}
