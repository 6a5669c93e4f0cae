package schedules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlotsForDayKind(t *testing.T) {
	t.Run("Weekday Template", func(t *testing.T) {
		times := TimeSlotsForDayKind(DayKindWeekday)

		require.Len(t, times, 16)
		assert.Equal(t, []string{
			"08:00:00", "08:30:00", "09:00:00", "09:30:00",
			"10:00:00", "10:30:00", "11:00:00", "11:30:00",
			"16:00:00", "16:30:00", "17:00:00", "17:30:00",
			"18:00:00", "18:30:00", "19:00:00", "19:30:00",
		}, times)
	})

	t.Run("Saturday Template", func(t *testing.T) {
		times := TimeSlotsForDayKind(DayKindSaturday)

		assert.Equal(t, []string{
			"09:00:00", "09:30:00", "10:00:00", "10:30:00", "11:00:00", "11:30:00",
		}, times)
	})

	t.Run("Each Call Returns A Fresh Slice", func(t *testing.T) {
		first := TimeSlotsForDayKind(DayKindWeekday)
		first[0] = "changed"

		assert.Equal(t, "08:00:00", TimeSlotsForDayKind(DayKindWeekday)[0])
	})
}

func TestExpandSchedule(t *testing.T) {
	monday := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("One Week From A Monday", func(t *testing.T) {
		dates := make([]string, 0)
		counts := make([]int, 0)
		for date, times := range ExpandSchedule(monday, 1) {
			dates = append(dates, formatScheduleDate(date))
			counts = append(counts, len(times))
		}

		assert.Equal(t, []string{
			"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06",
		}, dates, "sunday 2024-01-07 must be skipped")
		assert.Equal(t, []int{16, 16, 16, 16, 16, 6}, counts)
	})

	t.Run("Start Mid Week Covers Seven Days Per Week", func(t *testing.T) {
		wednesday := time.Date(2024, time.January, 3, 15, 45, 0, 0, time.UTC)

		days := 0
		var last time.Time
		for date := range ExpandSchedule(wednesday, 2) {
			days++
			last = date
			assert.NotEqual(t, time.Sunday, date.Weekday())
			assert.Zero(t, date.Hour(), "dates are truncated to midnight")
		}

		assert.Equal(t, 12, days)
		assert.Equal(t, "2024-01-16", formatScheduleDate(last))
	})

	t.Run("Restartable", func(t *testing.T) {
		sequence := ExpandSchedule(monday, 1)

		first, second := 0, 0
		for range sequence {
			first++
		}
		for range sequence {
			second++
		}

		assert.Equal(t, first, second)
	})

	t.Run("Early Break Stops Iteration", func(t *testing.T) {
		seen := 0
		for range ExpandSchedule(monday, 52) {
			seen++
			if seen == 3 {
				break
			}
		}

		assert.Equal(t, 3, seen)
	})

	t.Run("Slot Count Formula", func(t *testing.T) {
		for _, weeks := range []int{1, 2, 4, 52} {
			assert.Equal(t, 16*5*weeks+6*weeks, CountScheduleSlots(monday, weeks))
		}
	})
}
