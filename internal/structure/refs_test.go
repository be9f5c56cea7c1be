package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSefariaRefs(t *testing.T) {
	m := GetMasechet("berakhot")
	require.NotNil(t, m)

	assert.Equal(t, "Mishnah Berakhot 1:3", SefariaRef(m, 1, 3))
	assert.Equal(t, "Mishnah Berakhot 2", SefariaChapterRef(m, 2))
	assert.Equal(t, "Mishnah Berakhot 1:2-4", SefariaRangeRef(m, 1, 2, 4))
	assert.Equal(t, "Mishnah Berakhot 1:2", SefariaRangeRef(m, 1, 2, 2))
}

func TestGemaraRefs(t *testing.T) {
	m := GetMasechet("g_berakhot")
	require.NotNil(t, m)

	// chapter index 0 is daf 2
	assert.Equal(t, "Berakhot 2", GemaraDafRef(m, 0))
	assert.Equal(t, "Berakhot 2a", GemaraAmudRef(m, 0, 0))
	assert.Equal(t, "Berakhot 2b", GemaraAmudRef(m, 0, 1))
	assert.Equal(t, "Berakhot 5a", GemaraAmudRef(m, 3, 0))
}

func TestTamidStartsAtDaf25(t *testing.T) {
	m := GetMasechet("g_tamid")
	require.NotNil(t, m)

	// the first daf of Tamid has only its b side
	assert.Equal(t, 1, m.Chapters[0])
	assert.Equal(t, "Tamid 25b", GemaraAmudRef(m, 0, 0))
	assert.Equal(t, "Tamid 26a", GemaraAmudRef(m, 1, 0))
	assert.Equal(t, "Tamid 26b", GemaraAmudRef(m, 1, 1))
}

func TestFormatGemaraPoint(t *testing.T) {
	m := GetMasechet("g_berakhot")
	require.NotNil(t, m)

	assert.Equal(t, "דף ב'.", FormatGemaraPoint(m, 0))
	assert.Equal(t, "דף ב':", FormatGemaraPoint(m, 1))
	assert.Equal(t, "דף ג'.", FormatGemaraPoint(m, 2))
}

func TestFormatGemaraItem(t *testing.T) {
	m := GetMasechet("g_berakhot")
	require.NotNil(t, m)

	assert.Equal(t, "דף ב'.", FormatGemaraItem(m, 1, 1, 1))
	assert.Equal(t, "דף ב':", FormatGemaraItem(m, 1, 2, 2))
	assert.Equal(t, "דף ב'", FormatGemaraItem(m, 1, 1, 2))
}

func TestDafDisplay(t *testing.T) {
	m := GetMasechet("g_berakhot")
	require.NotNil(t, m)
	assert.Equal(t, "ב'", DafDisplay(m, 0))

	tamid := GetMasechet("g_tamid")
	require.NotNil(t, tamid)
	assert.Equal(t, "כ\"ה", DafDisplay(tamid, 0))
}
