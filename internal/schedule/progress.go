package schedule

import (
	"github.com/example/limudbot/internal/structure"
	"github.com/example/limudbot/pkg/models"
)

// chapterAt describes the chapter a global position falls in
type chapterAt struct {
	MasechetID       string
	Chapter          int
	IsAtChapterStart bool
	ChapterUnits     int
}

// chapterAtGlobalPosition determines which chapter a global position falls
// in and whether it sits on the chapter's first unit. Returns nil when the
// position is past the span.
func chapterAtGlobalPosition(masechetIDs []string, unit models.LearningUnit, position int) *chapterAt {
	globalOffset := 0
	for _, id := range masechetIDs {
		m := structure.GetMasechet(id)
		if m == nil {
			continue
		}
		units := structure.MasechetUnits(m, unit)
		if position < globalOffset+units {
			localPos := position - globalOffset
			if unit == models.UnitPerek {
				// localPos is the 0-based chapter index, always a chapter start
				return &chapterAt{
					MasechetID:       id,
					Chapter:          localPos + 1,
					IsAtChapterStart: true,
					ChapterUnits:     1,
				}
			}
			cumulative := 0
			for ch, size := range m.Chapters {
				if localPos < cumulative+size {
					return &chapterAt{
						MasechetID:       id,
						Chapter:          ch + 1,
						IsAtChapterStart: localPos == cumulative,
						ChapterUnits:     size,
					}
				}
				cumulative += size
			}
		}
		globalOffset += units
	}
	return nil
}

// skipPreLearnedFromPosition advances past every consecutive pre-learned
// chapter that starts exactly at the position, returning the new position
// and the consumed entries. A bounded loop: each pass either consumes a
// chapter (strictly advancing) or stops.
func skipPreLearnedFromPosition(masechetIDs []string, unit models.LearningUnit, position int, preLearned []models.ChapterRef) (int, []models.ChapterRef) {
	if len(preLearned) == 0 {
		return position, nil
	}

	var consumed []models.ChapterRef
	pos := position
	for {
		loc := chapterAtGlobalPosition(masechetIDs, unit, pos)
		if loc == nil {
			break
		}
		if !loc.IsAtChapterStart || !isPreLearned(preLearned, loc.MasechetID, loc.Chapter) {
			break
		}
		consumed = append(consumed, models.ChapterRef{MasechetID: loc.MasechetID, Chapter: loc.Chapter})
		pos += loc.ChapterUnits
	}
	return pos, consumed
}

// MarkDayComplete advances the plan by unitsCompleted, folds in any
// pre-learned chapters the new position lands on, and records the date.
// This is the only place pre-learned entries are permanently consumed.
func MarkDayComplete(plan *models.LearningPlan, date string, unitsCompleted int) {
	newPosition := plan.CurrentPosition + unitsCompleted

	pos, consumed := skipPreLearnedFromPosition(plan.MasechetIDs, plan.Unit, newPosition, plan.PreLearnedChapters)
	newPosition = pos

	if len(consumed) > 0 {
		remaining := plan.PreLearnedChapters[:0:0]
		for _, pl := range plan.PreLearnedChapters {
			used := false
			for _, c := range consumed {
				if c.MasechetID == pl.MasechetID && c.Chapter == pl.Chapter {
					used = true
					break
				}
			}
			if !used {
				remaining = append(remaining, pl)
			}
		}
		plan.PreLearnedChapters = remaining
	}

	if newPosition > plan.TotalUnits {
		newPosition = plan.TotalUnits
	}
	plan.CurrentPosition = newPosition
	plan.IsCompleted = newPosition >= plan.TotalUnits
	plan.CompletedDates = append(plan.CompletedDates, date)
	plan.LastLearningDate = date
}

// UpdatePosition moves the cursor and refreshes the completion flag
func UpdatePosition(plan *models.LearningPlan, newPosition int) {
	if newPosition > plan.TotalUnits {
		newPosition = plan.TotalUnits
	}
	plan.CurrentPosition = newPosition
	plan.IsCompleted = newPosition >= plan.TotalUnits
}

// JumpPosition moves the cursor and optionally rewrites the daily amount
// and the skipped list, used when the user jumps ahead leaving holes
func JumpPosition(plan *models.LearningPlan, newPosition int, newAmountPerDay int, newSkipped []models.ChapterRef) {
	UpdatePosition(plan, newPosition)
	if newAmountPerDay > 0 {
		plan.CalculatedAmountPerDay = newAmountPerDay
	}
	if newSkipped != nil {
		plan.SkippedChapters = newSkipped
	}
}

// ToggleSkippedChapter flips a chapter's membership in the skipped list.
// Only meaningful for chapters behind the cursor; the caller enforces that.
func ToggleSkippedChapter(plan *models.LearningPlan, masechetID string, chapter int) {
	for i, s := range plan.SkippedChapters {
		if s.MasechetID == masechetID && s.Chapter == chapter {
			plan.SkippedChapters = append(plan.SkippedChapters[:i], plan.SkippedChapters[i+1:]...)
			return
		}
	}
	plan.SkippedChapters = append(plan.SkippedChapters, models.ChapterRef{MasechetID: masechetID, Chapter: chapter})
}

// MarkChapterLearned closes a hole: removes the chapter from the skipped list
func MarkChapterLearned(plan *models.LearningPlan, masechetID string, chapter int) {
	for i, s := range plan.SkippedChapters {
		if s.MasechetID == masechetID && s.Chapter == chapter {
			plan.SkippedChapters = append(plan.SkippedChapters[:i], plan.SkippedChapters[i+1:]...)
			return
		}
	}
}

// AddPreLearnedChapters unions chapters into the pre-learned list without
// duplicates. Entries already behind the cursor are harmless: the consume
// logic never reaches them and they stay listed until removed manually.
func AddPreLearnedChapters(plan *models.LearningPlan, chapters []models.ChapterRef) {
	for _, c := range chapters {
		if !isPreLearned(plan.PreLearnedChapters, c.MasechetID, c.Chapter) {
			plan.PreLearnedChapters = append(plan.PreLearnedChapters, c)
		}
	}
}

// RemovePreLearnedChapter drops one entry from the pre-learned list
func RemovePreLearnedChapter(plan *models.LearningPlan, masechetID string, chapter int) {
	for i, c := range plan.PreLearnedChapters {
		if c.MasechetID == masechetID && c.Chapter == chapter {
			plan.PreLearnedChapters = append(plan.PreLearnedChapters[:i], plan.PreLearnedChapters[i+1:]...)
			return
		}
	}
}

// UpdatePace rewrites the daily amount and distribution
func UpdatePace(plan *models.LearningPlan, newAmount int, newDistribution *models.Distribution) {
	plan.CalculatedAmountPerDay = newAmount
	plan.Distribution = newDistribution
}

// AddMasechtot appends (or inserts at insertAt when >= 0) masechtot not yet
// in the plan and recomputes the total, the display name and the completion
// flag. Books already fully behind the cursor must not move before it; the
// caller enforces that when choosing insertAt.
func AddMasechtot(plan *models.LearningPlan, newIDs []string, insertAt int) {
	existing := make(map[string]bool, len(plan.MasechetIDs))
	for _, id := range plan.MasechetIDs {
		existing[id] = true
	}
	var toAdd []string
	for _, id := range newIDs {
		if !existing[id] {
			toAdd = append(toAdd, id)
		}
	}
	if len(toAdd) == 0 {
		return
	}

	if insertAt >= 0 && insertAt <= len(plan.MasechetIDs) {
		updated := make([]string, 0, len(plan.MasechetIDs)+len(toAdd))
		updated = append(updated, plan.MasechetIDs[:insertAt]...)
		updated = append(updated, toAdd...)
		updated = append(updated, plan.MasechetIDs[insertAt:]...)
		plan.MasechetIDs = updated
	} else {
		plan.MasechetIDs = append(plan.MasechetIDs, toAdd...)
	}

	plan.TotalUnits = structure.MultiMasechetTotalUnits(plan.MasechetIDs, plan.Unit)
	plan.PlanName = structure.PlanDisplayName(plan.MasechetIDs)
	plan.IsCompleted = false
}

// ReorderMasechtot replaces the masechet order
func ReorderMasechtot(plan *models.LearningPlan, newOrder []string) {
	plan.MasechetIDs = newOrder
	plan.TotalUnits = structure.MultiMasechetTotalUnits(plan.MasechetIDs, plan.Unit)
}

// ResetPlan returns the plan to its initial state
func ResetPlan(plan *models.LearningPlan) {
	plan.CurrentPosition = 0
	plan.CompletedDates = nil
	plan.LastLearningDate = ""
	plan.IsCompleted = false
	plan.SkippedChapters = nil
	plan.PreLearnedChapters = nil
}

// IsChapterSkipped reports whether a chapter is a hole behind the cursor
func IsChapterSkipped(plan *models.LearningPlan, masechetID string, chapter int) bool {
	for _, s := range plan.SkippedChapters {
		if s.MasechetID == masechetID && s.Chapter == chapter {
			return true
		}
	}
	return false
}

// IsChapterPreLearned reports whether a chapter is listed as pre-learned
func IsChapterPreLearned(plan *models.LearningPlan, masechetID string, chapter int) bool {
	return isPreLearned(plan.PreLearnedChapters, masechetID, chapter)
}

func chapterRefUnits(refs []models.ChapterRef, unit models.LearningUnit) int {
	if unit == models.UnitPerek {
		return len(refs)
	}
	total := 0
	for _, s := range refs {
		m := structure.GetMasechet(s.MasechetID)
		if m == nil || s.Chapter < 1 || s.Chapter > len(m.Chapters) {
			continue
		}
		total += m.Chapters[s.Chapter-1]
	}
	return total
}

// SkippedUnitsCount is the total size of the plan's holes in plan units
func SkippedUnitsCount(plan *models.LearningPlan) int {
	return chapterRefUnits(plan.SkippedChapters, plan.Unit)
}

// PreLearnedUnitsCount is the total pre-learned size in plan units
func PreLearnedUnitsCount(plan *models.LearningPlan) int {
	return chapterRefUnits(plan.PreLearnedChapters, plan.Unit)
}

// SkippedInMasechet counts skipped chapters within one masechet
func SkippedInMasechet(plan *models.LearningPlan, masechetID string) int {
	n := 0
	for _, s := range plan.SkippedChapters {
		if s.MasechetID == masechetID {
			n++
		}
	}
	return n
}

// PreLearnedInMasechet counts pre-learned chapters within one masechet
func PreLearnedInMasechet(plan *models.LearningPlan, masechetID string) int {
	n := 0
	for _, s := range plan.PreLearnedChapters {
		if s.MasechetID == masechetID {
			n++
		}
	}
	return n
}
