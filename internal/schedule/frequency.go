package schedule

import (
	"math"
	"time"

	"github.com/example/limudbot/pkg/models"
)

// spreadDays picks count slots out of total, evenly spaced. Used both for
// weekdays (total=7) and days of a month (total=28..31).
func spreadDays(total, count int) []int {
	if count >= total {
		out := make([]int, total)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, int(math.Round(float64(i*total)/float64(count))))
	}
	return out
}

func contains(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func daysInMonth(date time.Time) int {
	// day 0 of the next month is the last day of this one
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location()).Day()
}

// IsLearningDay reports whether a calendar date counts as a learning day
// under the given frequency. Weekday numbering follows time.Weekday
// (0=Sunday). An unrecognized frequency type counts every day.
func IsLearningDay(date time.Time, freq models.ScheduleFrequency) bool {
	switch freq.Type {
	case models.FreqSpecificDays:
		return contains(freq.Days, int(date.Weekday()))
	case models.FreqDaysPerWeek:
		return contains(spreadDays(7, freq.Value), int(date.Weekday()))
	case models.FreqDaysPerMonth:
		// month length varies, so the spread is recomputed per month
		return contains(spreadDays(daysInMonth(date), freq.Value), date.Day()-1)
	}
	return true
}

// CountLearningDays counts learning days from start to end inclusive. The
// walk is O(range length); plan horizons are months to a few years, so this
// stays cheap.
func CountLearningDays(start, end time.Time, freq models.ScheduleFrequency) int {
	count := 0
	for d := truncateToDay(start); !d.After(truncateToDay(end)); d = d.AddDate(0, 0, 1) {
		if IsLearningDay(d, freq) {
			count++
		}
	}
	return count
}

// ReviewDays returns how many of learningDays are consumed by periodic
// review under the frequency's ReviewEvery setting. Review is a post-hoc
// reduction of the productive day count, not a property of specific dates.
func ReviewDays(learningDays int, freq models.ScheduleFrequency) int {
	if freq.ReviewEvery <= 0 {
		return 0
	}
	return learningDays / (freq.ReviewEvery + 1)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
