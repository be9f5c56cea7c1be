package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/limudbot/internal/schedule"
	"github.com/example/limudbot/internal/structure"
	"github.com/example/limudbot/pkg/models"
)

// formatItem renders one learning item in Hebrew, e.g.
// "ברכות פרק א משניות א-ה" or "שבת דף ב. - דף ג:"
func formatItem(item schedule.LearningItem, unit models.LearningUnit) string {
	m := structure.GetMasechet(item.MasechetID)
	if m == nil {
		return item.MasechetName
	}
	ct := structure.ContentTypeOf(item.MasechetID)

	if ct == structure.ContentGemara && unit == models.UnitMishnah {
		return m.Name + " " + structure.FormatGemaraItem(m, item.Chapter, item.FromMishnah, item.ToMishnah)
	}

	if unit == models.UnitPerek || ct == structure.ContentRambam {
		return fmt.Sprintf("%s %s %s", m.Name, structure.UnitLabel(ct, models.UnitPerek, false), structure.Gematria(item.Chapter))
	}

	chapter := structure.Gematria(item.Chapter)
	if item.FromMishnah == item.ToMishnah {
		return fmt.Sprintf("%s פרק %s משנה %s", m.Name, chapter, structure.Gematria(item.FromMishnah))
	}
	return fmt.Sprintf("%s פרק %s משניות %s-%s", m.Name, chapter, structure.Gematria(item.FromMishnah), structure.Gematria(item.ToMishnah))
}

// formatItems renders a day's items, one per line. Long runs of whole
// chapters in the same masechet collapse into a single range line.
func formatItems(items []schedule.LearningItem, unit models.LearningUnit) string {
	cfg := DefaultConfig()
	var lines []string
	for i := 0; i < len(items); {
		run := wholeChapterRun(items, i, unit)
		if run >= cfg.CollapseRunThreshold {
			first, last := items[i], items[i+run-1]
			m := structure.GetMasechet(first.MasechetID)
			ct := structure.ContentTypeOf(first.MasechetID)
			label := structure.LabelsFor(ct).ChapterPlural
			lines = append(lines, fmt.Sprintf("%s %s %s-%s", m.Name, label,
				structure.Gematria(first.Chapter), structure.Gematria(last.Chapter)))
			i += run
			continue
		}
		lines = append(lines, formatItem(items[i], unit))
		i++
	}
	return strings.Join(lines, "\n")
}

// wholeChapterRun counts how many consecutive items starting at idx are
// complete consecutive chapters of the same masechet
func wholeChapterRun(items []schedule.LearningItem, idx int, unit models.LearningUnit) int {
	run := 0
	for i := idx; i < len(items); i++ {
		item := items[i]
		if item.MasechetID != items[idx].MasechetID {
			break
		}
		if item.Chapter != items[idx].Chapter+(i-idx) {
			break
		}
		if unit == models.UnitMishnah && !coversWholeChapter(item) {
			break
		}
		run++
	}
	return run
}

func coversWholeChapter(item schedule.LearningItem) bool {
	m := structure.GetMasechet(item.MasechetID)
	if m == nil || item.Chapter < 1 || item.Chapter > len(m.Chapters) {
		return false
	}
	return item.FromMishnah == 1 && item.ToMishnah == m.Chapters[item.Chapter-1]
}

// planSummary renders a one-plan overview for /plans
func planSummary(index int, plan *models.LearningPlan) string {
	ct := structure.ContentTypeOf(firstID(plan.MasechetIDs))

	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s\n", index, plan.PlanName)
	if plan.IsCompleted {
		b.WriteString("   ✅ הושלם\n")
		return b.String()
	}

	fmt.Fprintf(&b, "   התקדמות: %d/%d %s\n", plan.CurrentPosition, plan.TotalUnits,
		structure.UnitLabel(ct, plan.Unit, true))
	if loc := structure.GlobalToLocal(plan.MasechetIDs, plan.CurrentPosition, plan.Unit); loc != nil {
		fmt.Fprintf(&b, "   כעת: %s\n", positionDisplay(loc, plan.Unit))
	}
	amount := schedule.AmountForPosition(plan.CurrentPosition, plan.CalculatedAmountPerDay, plan.Distribution)
	fmt.Fprintf(&b, "   קצב: %d %s ליום\n", amount, structure.UnitLabel(ct, plan.Unit, true))
	if plan.Mode == models.ModeByBook && plan.TargetDate != "" {
		fmt.Fprintf(&b, "   יעד: %s\n", plan.TargetDate)
	} else if plan.EstimatedEndDate != "" {
		fmt.Fprintf(&b, "   סיום משוער: %s\n", plan.EstimatedEndDate)
	}
	return b.String()
}

// positionDisplay formats the current location inside a plan
func positionDisplay(loc *structure.Location, unit models.LearningUnit) string {
	m := loc.Masechet
	ct := structure.ContentTypeOf(m.ID)
	if ct == structure.ContentGemara && unit == models.UnitMishnah {
		return m.Name + " " + structure.FormatGemaraPoint(m, loc.PositionInMasechet)
	}
	if unit == models.UnitPerek || ct == structure.ContentRambam {
		return fmt.Sprintf("%s %s %s", m.Name, structure.UnitLabel(ct, models.UnitPerek, false),
			structure.Gematria(loc.PositionInMasechet+1))
	}
	ref := structure.IndexToRef(m, loc.PositionInMasechet)
	return fmt.Sprintf("%s פרק %s משנה %s", m.Name, structure.Gematria(ref.Chapter), structure.Gematria(ref.Mishnah))
}

func firstID(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

// todayHeader says whether today is a learning day for the plan
func todayHeader(plan *models.LearningPlan, now time.Time) string {
	if schedule.IsLearningDay(now, plan.Frequency) {
		return "📖 הלימוד להיום — " + plan.PlanName
	}
	return "היום אינו יום לימוד לפי התוכנית, אבל הנה המנה הבאה — " + plan.PlanName
}
