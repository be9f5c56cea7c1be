package schedule

import (
	"testing"

	"github.com/example/limudbot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Berakhot's chapters hold 5, 8, 6, 7, 5, 8, 5, 8, 5 mishnayot.
var berakhot = []string{"berakhot"}

func TestItemsForDaySingleChapter(t *testing.T) {
	items := ItemsForDay(berakhot, models.UnitMishnah, 0, 3, nil)
	require.Len(t, items, 1)
	assert.Equal(t, "berakhot", items[0].MasechetID)
	assert.Equal(t, 1, items[0].Chapter)
	assert.Equal(t, 1, items[0].FromMishnah)
	assert.Equal(t, 3, items[0].ToMishnah)
	assert.Equal(t, "Mishnah Berakhot 1:1-3", items[0].SefariaRef)
}

func TestItemsForDayCrossesChapterBoundary(t *testing.T) {
	// starting at mishnah 1:4, four units reach into chapter 2
	items := ItemsForDay(berakhot, models.UnitMishnah, 3, 4, nil)
	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].Chapter)
	assert.Equal(t, 4, items[0].FromMishnah)
	assert.Equal(t, 5, items[0].ToMishnah)

	assert.Equal(t, 2, items[1].Chapter)
	assert.Equal(t, 1, items[1].FromMishnah)
	assert.Equal(t, 2, items[1].ToMishnah)
}

func TestItemsForDayCrossesBookBoundary(t *testing.T) {
	ids := []string{"berakhot", "peah"}

	// Berakhot has 57 mishnayot; start on its last one
	items := ItemsForDay(ids, models.UnitMishnah, 56, 3, nil)
	require.Len(t, items, 2)

	assert.Equal(t, "berakhot", items[0].MasechetID)
	assert.Equal(t, 9, items[0].Chapter)
	assert.Equal(t, 5, items[0].FromMishnah)
	assert.Equal(t, 5, items[0].ToMishnah)

	assert.Equal(t, "peah", items[1].MasechetID)
	assert.Equal(t, 1, items[1].Chapter)
	assert.Equal(t, 1, items[1].FromMishnah)
	assert.Equal(t, 2, items[1].ToMishnah)
}

func TestItemsForDayElidesPreLearnedChapter(t *testing.T) {
	preLearned := []models.ChapterRef{{MasechetID: "berakhot", Chapter: 2}}

	// starting at 1:4 with 4 units: chapter 2 is passed over without
	// charging the quota, so the day continues into chapter 3
	items := ItemsForDay(berakhot, models.UnitMishnah, 3, 4, preLearned)
	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].Chapter)
	assert.Equal(t, 4, items[0].FromMishnah)
	assert.Equal(t, 5, items[0].ToMishnah)

	assert.Equal(t, 3, items[1].Chapter)
	assert.Equal(t, 1, items[1].FromMishnah)
	assert.Equal(t, 2, items[1].ToMishnah)
}

func TestItemsForDayPreLearnedMidChapter(t *testing.T) {
	preLearned := []models.ChapterRef{{MasechetID: "berakhot", Chapter: 1}}

	// position 2 is inside the pre-learned chapter 1: only its remainder
	// is skipped, then chapter 2 is scheduled in full
	items := ItemsForDay(berakhot, models.UnitMishnah, 2, 3, preLearned)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Chapter)
	assert.Equal(t, 1, items[0].FromMishnah)
	assert.Equal(t, 3, items[0].ToMishnah)
}

func TestItemsForDayPerekMode(t *testing.T) {
	items := ItemsForDay(berakhot, models.UnitPerek, 0, 2, nil)
	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].Chapter)
	assert.Equal(t, 1, items[0].FromMishnah)
	assert.Equal(t, 5, items[0].ToMishnah)
	assert.Equal(t, "Mishnah Berakhot 1", items[0].SefariaRef)

	assert.Equal(t, 2, items[1].Chapter)
	assert.Equal(t, 8, items[1].ToMishnah)
}

func TestItemsForDayPerekModeElidesPreLearned(t *testing.T) {
	preLearned := []models.ChapterRef{{MasechetID: "berakhot", Chapter: 2}}

	items := ItemsForDay(berakhot, models.UnitPerek, 1, 2, preLearned)
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Chapter)
	assert.Equal(t, 4, items[1].Chapter)
}

func TestItemsForDayPastEnd(t *testing.T) {
	total := 57
	assert.Empty(t, ItemsForDay(berakhot, models.UnitMishnah, total, 3, nil))
	assert.Empty(t, ItemsForDay(berakhot, models.UnitMishnah, total+5, 3, nil))
}

func TestItemsForDayAllRemainingPreLearned(t *testing.T) {
	preLearned := []models.ChapterRef{
		{MasechetID: "berakhot", Chapter: 8},
		{MasechetID: "berakhot", Chapter: 9},
	}

	// position at the start of chapter 8: everything ahead is pre-learned
	pos := 5 + 8 + 6 + 7 + 5 + 8 + 5
	items := ItemsForDay(berakhot, models.UnitMishnah, pos, 3, preLearned)
	assert.Empty(t, items)
}

func TestUnitsCovered(t *testing.T) {
	mishnah := ItemsForDay(berakhot, models.UnitMishnah, 3, 4, nil)
	assert.Equal(t, 4, UnitsCovered(models.UnitMishnah, mishnah))

	// two whole chapters count as two units, not their mishnah total
	perek := ItemsForDay(berakhot, models.UnitPerek, 0, 2, nil)
	assert.Equal(t, 2, UnitsCovered(models.UnitPerek, perek))

	assert.Zero(t, UnitsCovered(models.UnitMishnah, nil))
}

func TestItemsForDayTruncatedAtEnd(t *testing.T) {
	// last two mishnayot of the plan, quota larger than the remainder
	items := ItemsForDay(berakhot, models.UnitMishnah, 55, 10, nil)
	require.Len(t, items, 1)
	assert.Equal(t, 9, items[0].Chapter)
	assert.Equal(t, 4, items[0].FromMishnah)
	assert.Equal(t, 5, items[0].ToMishnah)
}
