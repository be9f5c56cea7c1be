package structure

import (
	"testing"

	"github.com/example/limudbot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMasechet(t *testing.T) {
	m := GetMasechet("berakhot")
	require.NotNil(t, m)
	assert.Equal(t, "ברכות", m.Name)
	assert.Equal(t, []int{5, 8, 6, 7, 5, 8, 5, 8, 5}, m.Chapters)

	assert.Nil(t, GetMasechet("no_such_masechet"))
	assert.Nil(t, GetMasechet(""))
}

func TestGetMasechetAcrossCorpora(t *testing.T) {
	g := GetMasechet("g_berakhot")
	require.NotNil(t, g)
	assert.Equal(t, ContentGemara, ContentTypeOf(g.ID))

	r := GetMasechet("r_yesodei_hatorah")
	require.NotNil(t, r)
	assert.Equal(t, ContentRambam, ContentTypeOf(r.ID))
}

func TestCorpusSizes(t *testing.T) {
	assert.Len(t, AllMasechtot(ContentMishnah), 63)
	assert.Len(t, AllMasechtot(ContentGemara), 37)
	assert.Len(t, AllMasechtot(ContentRambam), 83)
}

func TestTotalMishnayot(t *testing.T) {
	m := GetMasechet("berakhot")
	require.NotNil(t, m)
	assert.Equal(t, 57, TotalMishnayot(m))
	assert.Equal(t, 9, TotalChapters(m))
	assert.Equal(t, 57, MasechetUnits(m, models.UnitMishnah))
	assert.Equal(t, 9, MasechetUnits(m, models.UnitPerek))
}

func TestMultiMasechetTotalUnits(t *testing.T) {
	ids := []string{"berakhot", "peah"}
	peah := GetMasechet("peah")
	require.NotNil(t, peah)

	want := 57 + TotalMishnayot(peah)
	assert.Equal(t, want, MultiMasechetTotalUnits(ids, models.UnitMishnah))
	assert.Equal(t, 9+8, MultiMasechetTotalUnits(ids, models.UnitPerek))

	// unknown ids contribute nothing
	assert.Equal(t, 57, MultiMasechetTotalUnits([]string{"berakhot", "bogus"}, models.UnitMishnah))
	assert.Equal(t, 0, MultiMasechetTotalUnits(nil, models.UnitMishnah))
}

func TestIndexRefRoundTrip(t *testing.T) {
	for _, ct := range []ContentType{ContentMishnah, ContentGemara, ContentRambam} {
		for _, m := range AllMasechtot(ct) {
			m := m
			total := TotalMishnayot(&m)
			for i := 0; i < total; i++ {
				ref := IndexToRef(&m, i)
				require.Equal(t, i, RefToIndex(&m, ref.Chapter, ref.Mishnah),
					"masechet %s index %d", m.ID, i)
				require.GreaterOrEqual(t, ref.Chapter, 1)
				require.LessOrEqual(t, ref.Chapter, len(m.Chapters))
				require.GreaterOrEqual(t, ref.Mishnah, 1)
				require.LessOrEqual(t, ref.Mishnah, m.Chapters[ref.Chapter-1])
			}
		}
	}
}

func TestIndexToRefClampsPastEnd(t *testing.T) {
	m := GetMasechet("berakhot")
	require.NotNil(t, m)

	ref := IndexToRef(m, 1000)
	assert.Equal(t, 9, ref.Chapter)
	assert.Equal(t, 5, ref.Mishnah)

	// exactly at the total also clamps
	ref = IndexToRef(m, TotalMishnayot(m))
	assert.Equal(t, 9, ref.Chapter)
	assert.Equal(t, 5, ref.Mishnah)
}

func TestIndexToRefBoundaries(t *testing.T) {
	m := GetMasechet("berakhot")
	require.NotNil(t, m)

	assert.Equal(t, Ref{Chapter: 1, Mishnah: 1}, IndexToRef(m, 0))
	assert.Equal(t, Ref{Chapter: 1, Mishnah: 5}, IndexToRef(m, 4))
	assert.Equal(t, Ref{Chapter: 2, Mishnah: 1}, IndexToRef(m, 5))
	assert.Equal(t, Ref{Chapter: 3, Mishnah: 1}, IndexToRef(m, 13))
}

func TestGlobalLocalRoundTrip(t *testing.T) {
	ids := []string{"berakhot", "peah", "demai"}
	total := MultiMasechetTotalUnits(ids, models.UnitMishnah)

	for pos := 0; pos < total; pos++ {
		loc := GlobalToLocal(ids, pos, models.UnitMishnah)
		require.NotNil(t, loc, "position %d", pos)
		require.Equal(t, pos, LocalToGlobal(ids, loc.MasechetIdx, loc.PositionInMasechet, models.UnitMishnah))
	}
}

func TestGlobalToLocalCrossesBookBoundary(t *testing.T) {
	ids := []string{"berakhot", "peah"}

	loc := GlobalToLocal(ids, 56, models.UnitMishnah)
	require.NotNil(t, loc)
	assert.Equal(t, "berakhot", loc.Masechet.ID)
	assert.Equal(t, 56, loc.PositionInMasechet)

	loc = GlobalToLocal(ids, 57, models.UnitMishnah)
	require.NotNil(t, loc)
	assert.Equal(t, "peah", loc.Masechet.ID)
	assert.Equal(t, 0, loc.PositionInMasechet)
}

func TestGlobalToLocalClampsPastEnd(t *testing.T) {
	ids := []string{"berakhot", "peah"}
	total := MultiMasechetTotalUnits(ids, models.UnitMishnah)

	loc := GlobalToLocal(ids, total+10, models.UnitMishnah)
	require.NotNil(t, loc)
	assert.Equal(t, 1, loc.MasechetIdx)
	assert.Equal(t, "peah", loc.Masechet.ID)
	assert.Equal(t, MasechetUnits(loc.Masechet, models.UnitMishnah), loc.PositionInMasechet)
}

func TestGlobalToLocalUnknownIDs(t *testing.T) {
	assert.Nil(t, GlobalToLocal([]string{"bogus"}, 0, models.UnitMishnah))
	assert.Nil(t, GlobalToLocal(nil, 0, models.UnitMishnah))

	// a stale id in the middle of the list is passed over
	loc := GlobalToLocal([]string{"berakhot", "bogus", "peah"}, 57, models.UnitMishnah)
	require.NotNil(t, loc)
	assert.Equal(t, "peah", loc.Masechet.ID)
	assert.Equal(t, 0, loc.PositionInMasechet)
}

func TestGlobalToLocalPerekMode(t *testing.T) {
	ids := []string{"berakhot", "peah"}

	loc := GlobalToLocal(ids, 9, models.UnitPerek)
	require.NotNil(t, loc)
	assert.Equal(t, "peah", loc.Masechet.ID)
	assert.Equal(t, 0, loc.PositionInMasechet)
}

func TestPlanDisplayName(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"empty", nil, ""},
		{"single mishnah book", []string{"berakhot"}, "מסכת ברכות"},
		{"single gemara book", []string{"g_berakhot"}, "מסכת ברכות"},
		{"single rambam section", []string{"r_yesodei_hatorah"}, "הלכות יסודי התורה"},
		{"whole seder", SederMasechetIDs("zeraim"), "סדר זרעים"},
		{"whole mishnah", AllMasechetIDs(ContentMishnah), "ש\"ס משנה"},
		{"whole shas", AllMasechetIDs(ContentGemara), "ש\"ס"},
		{"two books", []string{"berakhot", "peah"}, "ברכות, פאה"},
		{"five books", []string{"berakhot", "peah", "demai", "kilayim", "sheviit"}, "ברכות, פאה, דמאי (+2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlanDisplayName(tt.ids))
		})
	}
}

func TestSederMasechetIDs(t *testing.T) {
	ids := SederMasechetIDs("zeraim")
	require.Len(t, ids, 11)
	assert.Equal(t, "berakhot", ids[0])

	assert.Nil(t, SederMasechetIDs("no_such_seder"))
}

func TestGetSederForMasechet(t *testing.T) {
	seder := GetSederForMasechet("berakhot")
	require.NotNil(t, seder)
	assert.Equal(t, "zeraim", seder.ID)

	assert.Nil(t, GetSederForMasechet("bogus"))
}
