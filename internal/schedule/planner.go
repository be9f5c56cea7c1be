package schedule

import (
	"github.com/example/limudbot/internal/structure"
	"github.com/example/limudbot/pkg/models"
)

// LearningItem is one contiguous portion of a day's learning: a whole
// chapter in perek mode, or an inclusive mishnah range inside one chapter.
type LearningItem struct {
	MasechetID   string `json:"masechet_id"`
	MasechetName string `json:"masechet_name"`
	SefariaName  string `json:"sefaria_name"`
	Chapter      int    `json:"chapter"`
	FromMishnah  int    `json:"from_mishnah"`
	ToMishnah    int    `json:"to_mishnah"`
	SefariaRef   string `json:"sefaria_ref"`
}

// UnitsCovered counts the charged units a day's items represent: whole
// chapters in perek mode, individual mishnayot otherwise. Elided
// pre-learned chapters are absent from items and so never counted.
func UnitsCovered(unit models.LearningUnit, items []LearningItem) int {
	if unit == models.UnitPerek {
		return len(items)
	}
	total := 0
	for _, item := range items {
		total += item.ToMishnah - item.FromMishnah + 1
	}
	return total
}

func isPreLearned(preLearned []models.ChapterRef, masechetID string, chapter int) bool {
	for _, pl := range preLearned {
		if pl.MasechetID == masechetID && pl.Chapter == chapter {
			return true
		}
	}
	return false
}

// ItemsForDay produces the ordered learning items for one day, starting at
// globalPosition and consuming amountPerDay units. Pre-learned chapters are
// passed over without charging the day's quota: one position step in perek
// mode, the whole chapter remainder in mishnah mode. An item never spans a
// chapter boundary; a day that crosses chapters gets one item per chapter.
// Every iteration advances the position, so the loop terminates.
func ItemsForDay(masechetIDs []string, unit models.LearningUnit, globalPosition, amountPerDay int, preLearned []models.ChapterRef) []LearningItem {
	var items []LearningItem
	totalUnits := structure.MultiMasechetTotalUnits(masechetIDs, unit)

	if globalPosition >= totalUnits {
		return items
	}

	remaining := amountPerDay
	pos := globalPosition

	for remaining > 0 && pos < totalUnits {
		loc := structure.GlobalToLocal(masechetIDs, pos, unit)
		if loc == nil {
			break
		}
		m := loc.Masechet

		if unit == models.UnitPerek {
			chapterIndex := loc.PositionInMasechet
			if chapterIndex >= len(m.Chapters) {
				break
			}
			chapter := chapterIndex + 1

			if isPreLearned(preLearned, m.ID, chapter) {
				pos++
				continue
			}

			items = append(items, LearningItem{
				MasechetID:   m.ID,
				MasechetName: m.Name,
				SefariaName:  m.SefariaName,
				Chapter:      chapter,
				FromMishnah:  1,
				ToMishnah:    m.Chapters[chapterIndex],
				SefariaRef:   structure.SefariaChapterRef(m, chapter),
			})
			remaining--
			pos++
			continue
		}

		ref := structure.IndexToRef(m, loc.PositionInMasechet)

		if isPreLearned(preLearned, m.ID, ref.Chapter) {
			// skip the remainder of the pre-learned chapter, unscheduled
			chapterSize := m.Chapters[ref.Chapter-1]
			pos += chapterSize - ref.Mishnah + 1
			continue
		}

		available := m.Chapters[ref.Chapter-1] - ref.Mishnah + 1
		take := remaining
		if take > available {
			take = available
		}
		to := ref.Mishnah + take - 1

		items = append(items, LearningItem{
			MasechetID:   m.ID,
			MasechetName: m.Name,
			SefariaName:  m.SefariaName,
			Chapter:      ref.Chapter,
			FromMishnah:  ref.Mishnah,
			ToMishnah:    to,
			SefariaRef:   structure.SefariaRangeRef(m, ref.Chapter, ref.Mishnah, to),
		})
		remaining -= take
		pos += take
	}

	return items
}
