package structure

import "fmt"

// SefariaRef builds the Sefaria API reference for a single mishnah
func SefariaRef(m *Masechet, chapter, mishnah int) string {
	return fmt.Sprintf("%s %d:%d", m.SefariaName, chapter, mishnah)
}

// SefariaChapterRef builds the Sefaria API reference for a whole chapter
func SefariaChapterRef(m *Masechet, chapter int) string {
	return fmt.Sprintf("%s %d", m.SefariaName, chapter)
}

// SefariaRangeRef builds a reference for a mishnah range within a chapter
func SefariaRangeRef(m *Masechet, chapter, from, to int) string {
	if from == to {
		return SefariaRef(m, chapter, from)
	}
	return fmt.Sprintf("%s %d:%d-%d", m.SefariaName, chapter, from, to)
}

func startDaf(m *Masechet) int {
	if m.StartDaf != 0 {
		return m.StartDaf
	}
	return 2
}

// GemaraDafRef builds the Sefaria reference for a whole daf. chapterIndex
// is 0-based into the masechet's chapter list.
func GemaraDafRef(m *Masechet, chapterIndex int) string {
	return fmt.Sprintf("%s %d", m.SefariaName, startDaf(m)+chapterIndex)
}

// GemaraAmudRef builds the Sefaria reference for a single amud. A daf with
// a single tracked amud (Tamid's first daf) is its b side.
func GemaraAmudRef(m *Masechet, chapterIndex, amudIndex int) string {
	dafNumber := startDaf(m) + chapterIndex
	if chapterIndex < len(m.Chapters) && m.Chapters[chapterIndex] == 1 {
		return fmt.Sprintf("%s %db", m.SefariaName, dafNumber)
	}
	amud := "a"
	if amudIndex != 0 {
		amud = "b"
	}
	return fmt.Sprintf("%s %d%s", m.SefariaName, dafNumber, amud)
}

// DafDisplay renders a daf number in Hebrew letters, e.g. "ב'" for daf 2
func DafDisplay(m *Masechet, chapterIndex int) string {
	return Gematria(startDaf(m) + chapterIndex)
}

// FormatGemaraPoint renders a single global amud position as "דף ב'." / "דף ב':"
func FormatGemaraPoint(m *Masechet, amudIndex int) string {
	ref := IndexToRef(m, amudIndex)
	daf := DafDisplay(m, ref.Chapter-1)
	symbol := ":"
	if ref.Mishnah == 1 {
		symbol = "."
	}
	return "דף " + daf + symbol
}

// FormatGemaraItem renders a daily Gemara item: one amud as "דף ב'." or
// "דף ב':", a full daf as "דף ב'"
func FormatGemaraItem(m *Masechet, chapter, fromAmud, toAmud int) string {
	if m == nil {
		return "דף " + Gematria(chapter+1)
	}
	daf := DafDisplay(m, chapter-1)
	switch {
	case fromAmud == 1 && toAmud == 1:
		return "דף " + daf + "."
	case fromAmud == 2 && toAmud == 2:
		return "דף " + daf + ":"
	default:
		return "דף " + daf
	}
}
