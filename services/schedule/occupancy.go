package schedule

import "time"

// BarberDay is one barber's day as seen by the occupancy aggregation: the
// working window, the intervals that reduce bookable capacity (lunch break
// and availability-blocking custom blocks) and the booked appointments.
type BarberDay struct {
	Window   Interval
	Blocks   []Interval
	Bookings []Interval
}

// Occupancy computes booked versus bookable slots across barbers for one day
// at granularity step.
//
// Capacity per barber is floor(window/step) minus floor(clipped block/step)
// for each blocking interval. A booking consumes ceil(duration/step) slots: a
// booking that does not divide evenly still burns a whole slot. The rate is
// clamped to 100 so manually created overlapping appointments cannot report
// an occupancy above capacity.
func Occupancy(days []BarberDay, step time.Duration) (totalSlots, bookedSlots int, ratePercent float64) {
	if step <= 0 {
		return 0, 0, 0
	}
	for _, d := range days {
		capacity := int(d.Window.Duration() / step)
		for _, b := range d.Blocks {
			clipped, ok := b.Clip(d.Window)
			if !ok {
				continue
			}
			capacity -= int(clipped.Duration() / step)
		}
		if capacity < 0 {
			capacity = 0
		}
		totalSlots += capacity

		for _, bk := range d.Bookings {
			bookedSlots += ceilSlots(bk.Duration(), step)
		}
	}
	if totalSlots > 0 {
		ratePercent = float64(bookedSlots) / float64(totalSlots) * 100
		if ratePercent > 100 {
			ratePercent = 100
		}
	}
	return totalSlots, bookedSlots, ratePercent
}

func ceilSlots(d, step time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + step - 1) / step)
}
