package schedule

import (
	"testing"
	"time"

	"github.com/example/limudbot/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateByBook(t *testing.T) {
	daily := models.ScheduleFrequency{Type: models.FreqDaysPerWeek, Value: 7}

	// Berakhot, 57 mishnayot, over 10 days inclusive
	result := CalculateByBook([]string{"berakhot"}, models.UnitMishnah,
		date(2026, time.March, 10), daily, date(2026, time.March, 1))

	assert.Equal(t, 57, result.TotalUnits)
	assert.Equal(t, 10, result.LearningDays)
	// 57/10: 7 days of 6, 3 days of 5
	assert.Equal(t, 6, result.AmountPerDay)
	assert.Equal(t, 6, result.Distribution.HighAmount)
	assert.Equal(t, 5, result.Distribution.LowAmount)
	assert.Equal(t, 7, result.Distribution.HighDays)
	assert.Equal(t, 3, result.Distribution.LowDays)
}

func TestCalculateByBookSubtractsReviewDays(t *testing.T) {
	daily := models.ScheduleFrequency{Type: models.FreqDaysPerWeek, Value: 7, ReviewEvery: 6}

	// 14 learning days, two of them review: 57 units over 12 productive days
	result := CalculateByBook([]string{"berakhot"}, models.UnitMishnah,
		date(2026, time.March, 14), daily, date(2026, time.March, 1))

	assert.Equal(t, 14, result.LearningDays)
	assert.Equal(t, 5, result.AmountPerDay)
	assert.Equal(t, 12, result.Distribution.HighDays+result.Distribution.LowDays)
}

func TestCalculateByBookPastTargetDate(t *testing.T) {
	daily := models.ScheduleFrequency{Type: models.FreqDaysPerWeek, Value: 7}

	// target before start: zero learning days degrade to a single-day plan
	result := CalculateByBook([]string{"berakhot"}, models.UnitMishnah,
		date(2026, time.February, 1), daily, date(2026, time.March, 1))

	assert.Equal(t, 0, result.LearningDays)
	assert.Equal(t, 57, result.AmountPerDay)
}

func TestCalculateByPace(t *testing.T) {
	daily := models.ScheduleFrequency{Type: models.FreqDaysPerWeek, Value: 7}

	// 57 mishnayot at 6 per day: 10 learning days, ending March 10
	result := CalculateByPace([]string{"berakhot"}, models.UnitMishnah, 6, daily,
		date(2026, time.March, 1))

	assert.Equal(t, 57, result.TotalUnits)
	assert.Equal(t, 10, result.TotalDays)
	assert.Equal(t, date(2026, time.March, 10), result.EstimatedEndDate)
}

func TestCalculateByPaceSkipsOffDays(t *testing.T) {
	three := models.ScheduleFrequency{Type: models.FreqDaysPerWeek, Value: 3}

	// Bikkurim has 4 chapters; at 2/day that is 2 learning days. With the
	// Sun/Tue/Fri spread and a Sunday March 1 start, the second learning
	// day is Tuesday March 3.
	result := CalculateByPace([]string{"bikkurim"}, models.UnitPerek, 2, three,
		date(2026, time.March, 1))
	assert.Equal(t, 4, result.TotalUnits)
	assert.Equal(t, date(2026, time.March, 3), result.EstimatedEndDate)
}

func TestCalculateByPaceZeroAmount(t *testing.T) {
	daily := models.ScheduleFrequency{Type: models.FreqDaysPerWeek, Value: 7}

	result := CalculateByPace([]string{"bikkurim"}, models.UnitPerek, 0, daily,
		date(2026, time.March, 1))
	// amount below 1 is treated as 1
	assert.Equal(t, 4, result.TotalDays)
}

func TestCalculateByPaceImpossibleFrequencyTerminates(t *testing.T) {
	never := models.ScheduleFrequency{Type: models.FreqSpecificDays}

	result := CalculateByPace([]string{"berakhot"}, models.UnitMishnah, 5, never,
		date(2026, time.March, 1))
	assert.Equal(t, maxPlanHorizonDays, result.TotalDays)
}

func TestRecalculateSpread(t *testing.T) {
	daily := models.ScheduleFrequency{Type: models.FreqDaysPerWeek, Value: 7}

	// 57 total, 13 done, 44 left over 10 days -> ceil(44/10) = 5
	amount := RecalculateSpread([]string{"berakhot"}, models.UnitMishnah, 13,
		date(2026, time.March, 10), daily, date(2026, time.March, 1))
	assert.Equal(t, 5, amount)
}

func TestRecalculateSpreadNothingRemaining(t *testing.T) {
	daily := models.ScheduleFrequency{Type: models.FreqDaysPerWeek, Value: 7}

	amount := RecalculateSpread([]string{"berakhot"}, models.UnitMishnah, 57,
		date(2026, time.March, 10), daily, date(2026, time.March, 1))
	assert.Equal(t, 1, amount)
}

func TestRecalculateSpreadPastTarget(t *testing.T) {
	daily := models.ScheduleFrequency{Type: models.FreqDaysPerWeek, Value: 7}

	// target already passed: everything remaining lands on a single day
	amount := RecalculateSpread([]string{"berakhot"}, models.UnitMishnah, 13,
		date(2026, time.February, 1), daily, date(2026, time.March, 1))
	assert.Equal(t, 44, amount)
}
