package schedule

import "github.com/example/limudbot/pkg/models"

// CalculateDistribution splits totalUnits across learningDays. When the
// division is inexact the first highDays days carry the ceiling amount and
// the rest the floor, so highDays*high + lowDays*low == totalUnits.
// learningDays below 1 is treated as 1.
func CalculateDistribution(totalUnits, learningDays int) models.Distribution {
	days := learningDays
	if days < 1 {
		days = 1
	}
	low := totalUnits / days
	remainder := totalUnits % days
	high := low
	if remainder != 0 {
		high = low + 1
	}
	isExact := remainder == 0

	highDays := remainder
	lowDays := days - remainder
	if isExact {
		highDays = 0
		lowDays = days
	}
	cutoff := highDays * high

	// How many days early an even (ceiling every day) distribution finishes
	earlyFinishDays := 0
	if high > 0 {
		earlyFinishDays = (high*days - totalUnits) / high
	}

	return models.Distribution{
		IsExact:         isExact,
		HighAmount:      high,
		LowAmount:       low,
		HighDays:        highDays,
		LowDays:         lowDays,
		CutoffPosition:  cutoff,
		EarlyFinishDays: earlyFinishDays,
	}
}

// AmountForPosition returns the daily amount at a cursor position. Derived
// from the stored distribution on every call so strategy or pace edits take
// effect on the next query.
func AmountForPosition(currentPosition, calculatedAmountPerDay int, dist *models.Distribution) int {
	if dist == nil || dist.Strategy == models.StrategyEven || dist.IsExact {
		return calculatedAmountPerDay
	}
	// Tapered: the first HighDays days get the higher amount
	if currentPosition < dist.CutoffPosition {
		return dist.HighAmount
	}
	return dist.LowAmount
}
