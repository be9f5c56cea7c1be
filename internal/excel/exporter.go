package excel

import (
	"fmt"
	"time"

	"github.com/example/limudbot/internal/schedule"
	"github.com/example/limudbot/internal/structure"
	"github.com/example/limudbot/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ExportConfig defines the export configuration
type ExportConfig struct {
	FilePath  string    // Destination .xlsx path
	StartDate time.Time // First calendar day of the projection
	MaxDays   int       // Cap on projected calendar days (0 = default)
}

// DefaultMaxDays bounds the projection for plans with distant end dates
const DefaultMaxDays = 366 * 3

// ExportResult holds the result of an export operation
type ExportResult struct {
	LearningDays int
	ReviewDays   int
	RowsWritten  int
}

// ExportSchedule writes a plan's projected day-by-day schedule to an xlsx
// workbook: a Schedule sheet with one row per learning day and a Summary
// sheet with the plan's progress counters. The projection runs on a copy of
// the plan so the stored plan is untouched.
func ExportSchedule(plan *models.LearningPlan, config ExportConfig) (*ExportResult, error) {
	if config.MaxDays <= 0 {
		config.MaxDays = DefaultMaxDays
	}

	f := excelize.NewFile()
	defer f.Close()

	const scheduleSheet = "Schedule"
	f.SetSheetName("Sheet1", scheduleSheet)
	if _, err := f.NewSheet("Summary"); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %v", err)
	}

	headers := []string{"Date", "Portion", "Reference", "Units", "Position After"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(scheduleSheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %v", err)
		}
	}

	sim := clonePlan(plan)
	result := &ExportResult{}
	row := 2
	learningDayIndex := 0

	for day := 0; day < config.MaxDays && !sim.IsCompleted; day++ {
		date := config.StartDate.AddDate(0, 0, day)
		if !schedule.IsLearningDay(date, sim.Frequency) {
			continue
		}
		learningDayIndex++

		// Every (ReviewEvery+1)-th learning day is a review day
		if sim.Frequency.ReviewEvery > 0 && learningDayIndex%(sim.Frequency.ReviewEvery+1) == 0 {
			writeRow(f, scheduleSheet, row, date, "חזרה", "", 0, sim.CurrentPosition)
			result.ReviewDays++
			row++
			continue
		}

		amount := schedule.AmountForPosition(sim.CurrentPosition, sim.CalculatedAmountPerDay, sim.Distribution)
		items := schedule.ItemsForDay(sim.MasechetIDs, sim.Unit, sim.CurrentPosition, amount, sim.PreLearnedChapters)

		learned := schedule.UnitsCovered(sim.Unit, items)
		schedule.MarkDayComplete(sim, date.Format("2006-01-02"), learned)

		writeRow(f, scheduleSheet, row, date, describeItems(items, sim.Unit), refs(items), learned, sim.CurrentPosition)
		result.LearningDays++
		row++
	}
	result.RowsWritten = row - 2

	if err := writeSummary(f, plan, result); err != nil {
		return nil, err
	}

	if err := f.SaveAs(config.FilePath); err != nil {
		return nil, fmt.Errorf("failed to save workbook: %v", err)
	}
	return result, nil
}

func writeRow(f *excelize.File, sheet string, row int, date time.Time, portion, ref string, units, position int) {
	values := []interface{}{date.Format("2006-01-02"), portion, ref, units, position}
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func describeItems(items []schedule.LearningItem, unit models.LearningUnit) string {
	if len(items) == 0 {
		return ""
	}
	out := ""
	for i, item := range items {
		if i > 0 {
			out += "; "
		}
		m := structure.GetMasechet(item.MasechetID)
		if m != nil && structure.ContentTypeOf(item.MasechetID) == structure.ContentGemara {
			out += item.MasechetName + " " + structure.FormatGemaraItem(m, item.Chapter, item.FromMishnah, item.ToMishnah)
			continue
		}
		if unit == models.UnitPerek || item.FromMishnah == item.ToMishnah {
			out += fmt.Sprintf("%s פרק %d", item.MasechetName, item.Chapter)
			if unit != models.UnitPerek {
				out += fmt.Sprintf(" משנה %d", item.FromMishnah)
			}
		} else {
			out += fmt.Sprintf("%s פרק %d משניות %d-%d", item.MasechetName, item.Chapter, item.FromMishnah, item.ToMishnah)
		}
	}
	return out
}

func refs(items []schedule.LearningItem) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += "; "
		}
		out += item.SefariaRef
	}
	return out
}

func writeSummary(f *excelize.File, plan *models.LearningPlan, result *ExportResult) error {
	rows := [][]interface{}{
		{"Plan", plan.PlanName},
		{"Mode", string(plan.Mode)},
		{"Unit", string(plan.Unit)},
		{"Total units", plan.TotalUnits},
		{"Current position", plan.CurrentPosition},
		{"Completed days", len(plan.CompletedDates)},
		{"Skipped chapters", len(plan.SkippedChapters)},
		{"Pre-learned chapters", len(plan.PreLearnedChapters)},
		{"Projected learning days", result.LearningDays},
		{"Projected review days", result.ReviewDays},
	}
	for r, pair := range rows {
		for c, v := range pair {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue("Summary", cell, v); err != nil {
				return fmt.Errorf("failed to write summary: %v", err)
			}
		}
	}
	return nil
}

// clonePlan copies the plan deeply enough that the projection cannot touch
// the caller's slices
func clonePlan(plan *models.LearningPlan) *models.LearningPlan {
	sim := *plan
	sim.MasechetIDs = append([]string(nil), plan.MasechetIDs...)
	sim.CompletedDates = append([]string(nil), plan.CompletedDates...)
	sim.SkippedChapters = append([]models.ChapterRef(nil), plan.SkippedChapters...)
	sim.PreLearnedChapters = append([]models.ChapterRef(nil), plan.PreLearnedChapters...)
	if plan.Distribution != nil {
		dist := *plan.Distribution
		sim.Distribution = &dist
	}
	return &sim
}
