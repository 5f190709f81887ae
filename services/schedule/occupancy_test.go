package schedule

import (
	"math"
	"testing"
	"time"
)

// One barber, 10:00-19:00 window (18 half-hour slots), one 1-hour booking:
// 2 of 18 slots, roughly 11.1 percent.
func TestOccupancy_SingleBooking(t *testing.T) {
	days := []BarberDay{{
		Window:   iv(10, 0, 19, 0),
		Bookings: []Interval{iv(14, 0, 15, 0)},
	}}

	total, booked, rate := Occupancy(days, grain)
	if total != 18 {
		t.Fatalf("expected 18 total slots, got %d", total)
	}
	if booked != 2 {
		t.Fatalf("expected 2 booked slots, got %d", booked)
	}
	if math.Abs(rate-100.0*2.0/18.0) > 0.01 {
		t.Fatalf("expected rate around 11.1, got %.2f", rate)
	}
}

func TestOccupancy_BlocksReduceCapacity(t *testing.T) {
	days := []BarberDay{{
		Window: iv(10, 0, 19, 0),
		Blocks: []Interval{
			iv(12, 0, 13, 0),  // lunch: 2 slots
			iv(18, 0, 20, 0),  // clipped to one hour inside the window: 2 slots
			iv(7, 0, 8, 0),    // outside the window entirely: ignored
			iv(15, 0, 15, 20), // shorter than a slot: floor to 0
		},
	}}

	total, booked, rate := Occupancy(days, grain)
	if total != 14 {
		t.Fatalf("expected 14 total slots, got %d", total)
	}
	if booked != 0 || rate != 0 {
		t.Fatalf("expected an empty day, got booked=%d rate=%.2f", booked, rate)
	}
}

// A booking that does not divide evenly into the granularity still consumes
// whole slots.
func TestOccupancy_BookingRoundsUp(t *testing.T) {
	days := []BarberDay{{
		Window:   iv(10, 0, 19, 0),
		Bookings: []Interval{iv(14, 0, 14, 50)},
	}}

	_, booked, _ := Occupancy(days, grain)
	if booked != 2 {
		t.Fatalf("a 50-minute booking must consume 2 half-hour slots, got %d", booked)
	}
}

// Manually created overlapping appointments can overrun nominal capacity;
// the rate is clamped so dashboards never show more than 100 percent.
func TestOccupancy_RateClamped(t *testing.T) {
	var bookings []Interval
	for i := 0; i < 30; i++ {
		bookings = append(bookings, iv(10, 0, 11, 0))
	}
	days := []BarberDay{{
		Window:   iv(10, 0, 12, 0),
		Bookings: bookings,
	}}

	total, booked, rate := Occupancy(days, grain)
	if booked <= total {
		t.Fatalf("fixture should overrun capacity: booked=%d total=%d", booked, total)
	}
	if rate != 100 {
		t.Fatalf("expected clamped rate of 100, got %.2f", rate)
	}
}

func TestOccupancy_EmptyAndInvalid(t *testing.T) {
	if total, booked, rate := Occupancy(nil, grain); total != 0 || booked != 0 || rate != 0 {
		t.Fatalf("no days must report zeros, got %d %d %.2f", total, booked, rate)
	}
	days := []BarberDay{{Window: iv(10, 0, 19, 0)}}
	if total, _, _ := Occupancy(days, 0); total != 0 {
		t.Fatal("non-positive step must report zeros")
	}
}

func TestOccupancy_MultipleBarbers(t *testing.T) {
	days := []BarberDay{
		{Window: iv(10, 0, 19, 0), Bookings: []Interval{iv(10, 0, 11, 0)}},
		{Window: iv(9, 0, 13, 0), Blocks: []Interval{iv(12, 0, 13, 0)}},
	}

	total, booked, _ := Occupancy(days, grain)
	if total != 18+6 {
		t.Fatalf("expected 24 total slots across barbers, got %d", total)
	}
	if booked != 2 {
		t.Fatalf("expected 2 booked slots, got %d", booked)
	}
}

func TestCeilSlots(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want int
	}{
		{0, 0},
		{10 * time.Minute, 1},
		{30 * time.Minute, 1},
		{31 * time.Minute, 2},
		{60 * time.Minute, 2},
	}
	for _, tc := range cases {
		if got := ceilSlots(tc.d, grain); got != tc.want {
			t.Fatalf("ceilSlots(%s) = %d, want %d", tc.d, got, tc.want)
		}
	}
}
