package booking

import (
	"strings"
	"time"
)

// Interval is a half-open time interval [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect:
// A.start < B.end AND A.end > B.start.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// Accepted slot layouts: 24-hour first, then 12-hour with AM/PM.
var slotLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 3:04 PM",
}

// ParseSlot builds the [start, start+duration) interval for a consultation
// request. Date is "YYYY-MM-DD"; the time of day may be "HH:MM" or
// "HH:MM AM/PM". Times are naive local timestamps.
func ParseSlot(date, timeOfDay string, durationMinutes int) (Interval, error) {
	raw := strings.TrimSpace(date) + " " + strings.ToUpper(strings.TrimSpace(timeOfDay))
	for _, layout := range slotLayouts {
		start, err := time.ParseInLocation(layout, raw, time.Local)
		if err != nil {
			continue
		}
		return Interval{
			Start: start,
			End:   start.Add(time.Duration(durationMinutes) * time.Minute),
		}, nil
	}
	return Interval{}, &MalformedTimeError{Value: raw}
}
