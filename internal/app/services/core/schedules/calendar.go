package schedules

import (
	"creapar-service/internal/pkg/constvars"
	"fmt"
	"iter"
	"time"
)

type DayKind int

const (
	DayKindWeekday DayKind = iota
	DayKindSaturday
)

const slotInterval = 30 * time.Minute

// clock holds a local wall time (hour and minute).
type clock struct {
	H int
	M int
}

// dayWindow defines an inclusive start and exclusive end wall-clock window.
type dayWindow struct {
	Start clock
	End   clock
}

var dayKindWindows = map[DayKind][]dayWindow{
	DayKindWeekday: {
		{Start: clock{H: 8}, End: clock{H: 12}},
		{Start: clock{H: 16}, End: clock{H: 20}},
	},
	DayKindSaturday: {
		{Start: clock{H: 9}, End: clock{H: 12}},
	},
}

// TimeSlotsForDayKind returns the bookable times of day for kind, ascending,
// formatted as HH:MM:SS.
func TimeSlotsForDayKind(kind DayKind) []string {
	times := make([]string, 0)
	for _, window := range dayKindWindows[kind] {
		start := window.Start.H*60 + window.Start.M
		end := window.End.H*60 + window.End.M
		for minute := start; minute < end; minute += int(slotInterval / time.Minute) {
			times = append(times, fmt.Sprintf("%02d:%02d:00", minute/60, minute%60))
		}
	}
	return times
}

// dayKindFor maps a weekday to its template. Sundays have none.
func dayKindFor(weekday time.Weekday) (DayKind, bool) {
	switch weekday {
	case time.Sunday:
		return 0, false
	case time.Saturday:
		return DayKindSaturday, true
	default:
		return DayKindWeekday, true
	}
}

// ExpandSchedule yields each non-Sunday date in the weeks*7 days starting at
// startDate together with its times of day. Every call walks the range anew.
func ExpandSchedule(startDate time.Time, weeks int) iter.Seq2[time.Time, []string] {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	return func(yield func(time.Time, []string) bool) {
		for offset := 0; offset < weeks*7; offset++ {
			date := start.AddDate(0, 0, offset)
			kind, ok := dayKindFor(date.Weekday())
			if !ok {
				continue
			}
			if !yield(date, TimeSlotsForDayKind(kind)) {
				return
			}
		}
	}
}

// CountScheduleSlots is the number of slots ExpandSchedule describes.
func CountScheduleSlots(startDate time.Time, weeks int) int {
	total := 0
	for _, times := range ExpandSchedule(startDate, weeks) {
		total += len(times)
	}
	return total
}

func formatScheduleDate(date time.Time) string {
	return date.Format(constvars.DateLayout)
}
