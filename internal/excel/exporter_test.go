package excel

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/example/limudbot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportTestPlan() *models.LearningPlan {
	return &models.LearningPlan{
		ID:          "export-test",
		MasechetIDs: []string{"berakhot"},
		PlanName:    "מסכת ברכות",
		Mode:        models.ModeByPace,
		Unit:        models.UnitMishnah,
		Frequency: models.ScheduleFrequency{
			Type:  models.FreqDaysPerWeek,
			Value: 7,
		},
		AmountPerDay:           6,
		CalculatedAmountPerDay: 6,
		TotalUnits:             57,
	}
}

func TestExportSchedule(t *testing.T) {
	plan := exportTestPlan()
	path := filepath.Join(t.TempDir(), "schedule.xlsx")

	result, err := ExportSchedule(plan, ExportConfig{
		FilePath:  path,
		StartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// 57 mishnayot at 6 per day: 10 learning days
	assert.Equal(t, 10, result.LearningDays)
	assert.Equal(t, 0, result.ReviewDays)
	assert.Equal(t, 10, result.RowsWritten)

	// the projection must not move the caller's plan
	assert.Equal(t, 0, plan.CurrentPosition)
	assert.False(t, plan.IsCompleted)
	assert.Empty(t, plan.CompletedDates)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	firstDate, err := f.GetCellValue("Schedule", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", firstDate)

	firstRef, err := f.GetCellValue("Schedule", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Mishnah Berakhot 1:1-5; Mishnah Berakhot 2:1", firstRef)

	lastPosition, err := f.GetCellValue("Schedule", "E11")
	require.NoError(t, err)
	assert.Equal(t, "57", lastPosition)

	planName, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "מסכת ברכות", planName)
}

func TestExportScheduleWithReviewDays(t *testing.T) {
	plan := exportTestPlan()
	plan.Frequency.ReviewEvery = 6
	path := filepath.Join(t.TempDir(), "schedule.xlsx")

	result, err := ExportSchedule(plan, ExportConfig{
		FilePath:  path,
		StartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// every 7th learning day is a review row
	assert.Greater(t, result.ReviewDays, 0)
	assert.Equal(t, result.LearningDays+result.ReviewDays, result.RowsWritten)
}

func TestExportScheduleSkipsOffDays(t *testing.T) {
	plan := exportTestPlan()
	plan.Frequency = models.ScheduleFrequency{Type: models.FreqSpecificDays, Days: []int{0}}
	path := filepath.Join(t.TempDir(), "schedule.xlsx")

	result, err := ExportSchedule(plan, ExportConfig{
		FilePath:  path,
		StartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, result.LearningDays)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// Sundays only: consecutive rows are a week apart
	first, _ := f.GetCellValue("Schedule", "A2")
	second, _ := f.GetCellValue("Schedule", "A3")
	assert.Equal(t, "2026-03-01", first)
	assert.Equal(t, "2026-03-08", second)
}

func TestExportScheduleRespectsMaxDays(t *testing.T) {
	plan := exportTestPlan()
	plan.CalculatedAmountPerDay = 1
	path := filepath.Join(t.TempDir(), "schedule.xlsx")

	result, err := ExportSchedule(plan, ExportConfig{
		FilePath:  path,
		StartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		MaxDays:   5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.LearningDays)
}

func TestExportScheduleElidesPreLearned(t *testing.T) {
	plan := exportTestPlan()
	plan.CalculatedAmountPerDay = 5
	plan.PreLearnedChapters = []models.ChapterRef{{MasechetID: "berakhot", Chapter: 2}}
	path := filepath.Join(t.TempDir(), "schedule.xlsx")

	result, err := ExportSchedule(plan, ExportConfig{
		FilePath:  path,
		StartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// day one ends exactly at chapter 2's start, so its 8 mishnayot are
	// folded in without consuming quota: 49 charged units over 5/day
	assert.Equal(t, 10, result.LearningDays)
	// the stored plan's exception list is untouched by the projection
	assert.Len(t, plan.PreLearnedChapters, 1)
}
