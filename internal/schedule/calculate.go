package schedule

import (
	"time"

	"github.com/example/limudbot/internal/structure"
	"github.com/example/limudbot/pkg/models"
)

// BookSchedule is the result of planning toward a target date
type BookSchedule struct {
	AmountPerDay int
	TotalUnits   int
	LearningDays int
	Distribution models.Distribution
}

// CalculateByBook plans the masechet selection to finish by targetDate.
// Review days are subtracted from the learning-day count before the
// distribution is computed; the headline daily amount is the ceiling, which
// is what the even strategy learns every day.
func CalculateByBook(masechetIDs []string, unit models.LearningUnit, targetDate time.Time, freq models.ScheduleFrequency, startDate time.Time) BookSchedule {
	learningDays := CountLearningDays(startDate, targetDate, freq)
	actualDays := learningDays - ReviewDays(learningDays, freq)
	totalUnits := structure.MultiMasechetTotalUnits(masechetIDs, unit)
	dist := CalculateDistribution(totalUnits, actualDays)
	return BookSchedule{
		AmountPerDay: dist.HighAmount,
		TotalUnits:   totalUnits,
		LearningDays: learningDays,
		Distribution: dist,
	}
}

// maxPlanHorizonDays bounds the calendar walk in CalculateByPace so a
// frequency that never matches (e.g. an empty weekday set that slipped past
// input validation) cannot spin forever.
const maxPlanHorizonDays = 365 * 100

// PaceSchedule is the result of planning at a fixed daily amount
type PaceSchedule struct {
	EstimatedEndDate time.Time
	TotalUnits       int
	TotalDays        int
}

// CalculateByPace walks the calendar forward from startDate until enough
// learning days have passed to cover the content at amountPerDay units per
// day, and reports the resulting end date.
func CalculateByPace(masechetIDs []string, unit models.LearningUnit, amountPerDay int, freq models.ScheduleFrequency, startDate time.Time) PaceSchedule {
	totalUnits := structure.MultiMasechetTotalUnits(masechetIDs, unit)
	if amountPerDay < 1 {
		amountPerDay = 1
	}
	daysNeeded := (totalUnits + amountPerDay - 1) / amountPerDay

	counted := 0
	calendarDays := 0
	current := truncateToDay(startDate)
	for counted < daysNeeded && calendarDays < maxPlanHorizonDays {
		if IsLearningDay(current, freq) {
			counted++
		}
		current = current.AddDate(0, 0, 1)
		calendarDays++
	}

	return PaceSchedule{
		EstimatedEndDate: current.AddDate(0, 0, -1),
		TotalUnits:       totalUnits,
		TotalDays:        calendarDays,
	}
}

// RecalculateSpread recomputes the daily amount for the content remaining
// after a position jump, keeping the original target date
func RecalculateSpread(masechetIDs []string, unit models.LearningUnit, newPosition int, targetDate time.Time, freq models.ScheduleFrequency, today time.Time) int {
	totalUnits := structure.MultiMasechetTotalUnits(masechetIDs, unit)
	remaining := totalUnits - newPosition
	if remaining <= 0 {
		return 1
	}

	learningDays := CountLearningDays(today, targetDate, freq)
	actual := learningDays - ReviewDays(learningDays, freq)
	if actual < 1 {
		actual = 1
	}
	return (remaining + actual - 1) / actual
}
