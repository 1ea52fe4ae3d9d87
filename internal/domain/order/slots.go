package order

import "time"

// TimeSlots is the fixed daily catalog of one-hour appointment windows.
// The booking page renders exactly this list, and order creation rejects
// anything outside it, so client and server can never drift apart.
var TimeSlots = []string{
	"09:00",
	"10:00",
	"11:00",
	"12:00",
	"13:00",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
	"18:00",
}

func IsValidSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// DayBounds returns the half-open interval [local midnight, next midnight)
// for the calendar day containing t. Queries use >= start and < end, which
// is equivalent to the inclusive 00:00:00.000–23:59:59.999 day window.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
