package structure

import (
	"fmt"
	"strings"

	"github.com/example/limudbot/pkg/models"
)

// GetMasechet finds a masechet by id across all three corpora. Returns nil
// for unknown ids; callers treat that as "nothing to display", never as a
// fatal condition.
func GetMasechet(masechetID string) *Masechet {
	for _, corpus := range allStructures() {
		for si := range corpus {
			for mi := range corpus[si].Masechtot {
				if corpus[si].Masechtot[mi].ID == masechetID {
					return &corpus[si].Masechtot[mi]
				}
			}
		}
	}
	return nil
}

// GetSederForMasechet returns the seder containing a masechet, or nil
func GetSederForMasechet(masechetID string) *Seder {
	for _, corpus := range allStructures() {
		for si := range corpus {
			for mi := range corpus[si].Masechtot {
				if corpus[si].Masechtot[mi].ID == masechetID {
					return &corpus[si]
				}
			}
		}
	}
	return nil
}

// TotalMishnayot is the sum of sub-units across all chapters
func TotalMishnayot(m *Masechet) int {
	total := 0
	for _, count := range m.Chapters {
		total += count
	}
	return total
}

// TotalChapters is the chapter count
func TotalChapters(m *Masechet) int {
	return len(m.Chapters)
}

// MasechetUnits returns the masechet's size at the given granularity
func MasechetUnits(m *Masechet, unit models.LearningUnit) int {
	if unit == models.UnitMishnah {
		return TotalMishnayot(m)
	}
	return TotalChapters(m)
}

// MultiMasechetTotalUnits sums unit counts over an ordered masechet-id
// list. Unknown ids contribute zero so stale plan data degrades instead of
// failing.
func MultiMasechetTotalUnits(masechetIDs []string, unit models.LearningUnit) int {
	total := 0
	for _, id := range masechetIDs {
		if m := GetMasechet(id); m != nil {
			total += MasechetUnits(m, unit)
		}
	}
	return total
}

// AllMasechtot returns every masechet of one corpus in canonical order
func AllMasechtot(ct ContentType) []Masechet {
	var out []Masechet
	for _, seder := range StructureFor(ct) {
		out = append(out, seder.Masechtot...)
	}
	return out
}

// Ref is a structured position within a masechet, both fields 1-based
type Ref struct {
	Chapter int
	Mishnah int
}

// IndexToRef converts a flat 0-based sub-unit index to chapter:mishnah.
// Indices past the end clamp to the last mishnah of the last chapter;
// callers rely on this for off-by-one safety at book boundaries.
func IndexToRef(m *Masechet, flatIndex int) Ref {
	remaining := flatIndex
	for ch, size := range m.Chapters {
		if remaining < size {
			return Ref{Chapter: ch + 1, Mishnah: remaining + 1}
		}
		remaining -= size
	}
	last := len(m.Chapters)
	return Ref{Chapter: last, Mishnah: m.Chapters[last-1]}
}

// RefToIndex converts 1-based chapter:mishnah back to a flat 0-based index
func RefToIndex(m *Masechet, chapter, mishnah int) int {
	index := 0
	for ch := 0; ch < chapter-1 && ch < len(m.Chapters); ch++ {
		index += m.Chapters[ch]
	}
	return index + mishnah - 1
}

// Location resolves a global plan position to a specific masechet
type Location struct {
	MasechetIdx        int
	Masechet           *Masechet
	PositionInMasechet int
}

// GlobalToLocal walks the ordered masechet list and locates the global
// position inside it. Positions past the total span clamp to the end of the
// last masechet; callers must check plan completion before treating the
// result as "more content exists". Returns nil only when no masechet id in
// the list resolves.
func GlobalToLocal(masechetIDs []string, globalPosition int, unit models.LearningUnit) *Location {
	remaining := globalPosition
	for i, id := range masechetIDs {
		m := GetMasechet(id)
		if m == nil {
			continue
		}
		units := MasechetUnits(m, unit)
		if remaining < units {
			return &Location{MasechetIdx: i, Masechet: m, PositionInMasechet: remaining}
		}
		remaining -= units
	}
	if len(masechetIDs) == 0 {
		return nil
	}
	lastM := GetMasechet(masechetIDs[len(masechetIDs)-1])
	if lastM == nil {
		return nil
	}
	return &Location{
		MasechetIdx:        len(masechetIDs) - 1,
		Masechet:           lastM,
		PositionInMasechet: MasechetUnits(lastM, unit),
	}
}

// LocalToGlobal is the inverse of GlobalToLocal
func LocalToGlobal(masechetIDs []string, masechetIdx, positionInMasechet int, unit models.LearningUnit) int {
	global := 0
	for i := 0; i < masechetIdx && i < len(masechetIDs); i++ {
		if m := GetMasechet(masechetIDs[i]); m != nil {
			global += MasechetUnits(m, unit)
		}
	}
	return global + positionInMasechet
}

// PlanDisplayName derives a plan name from its masechet selection: the
// corpus name for a full corpus, "סדר X" for a full seder, the single book
// name, or the first three names with a +N suffix.
func PlanDisplayName(masechetIDs []string) string {
	if len(masechetIDs) == 0 {
		return ""
	}

	ct := ContentTypeOf(masechetIDs[0])
	labels := LabelsFor(ct)
	corpus := StructureFor(ct)

	selected := make(map[string]bool, len(masechetIDs))
	for _, id := range masechetIDs {
		selected[id] = true
	}

	allCount := 0
	for _, seder := range corpus {
		allCount += len(seder.Masechtot)
	}
	if len(masechetIDs) == allCount {
		allSelected := true
		for _, seder := range corpus {
			for _, m := range seder.Masechtot {
				if !selected[m.ID] {
					allSelected = false
				}
			}
		}
		if allSelected {
			return labels.AllName
		}
	}

	for _, seder := range corpus {
		if len(masechetIDs) != len(seder.Masechtot) {
			continue
		}
		whole := true
		for _, m := range seder.Masechtot {
			if !selected[m.ID] {
				whole = false
				break
			}
		}
		if whole {
			return labels.OrderSingular + " " + seder.Name
		}
	}

	if len(masechetIDs) == 1 {
		m := GetMasechet(masechetIDs[0])
		if m == nil {
			return ""
		}
		if ct == ContentRambam {
			return "הלכות " + m.Name
		}
		return labels.BookSingular + " " + m.Name
	}

	var names []string
	for _, id := range masechetIDs {
		if len(names) == 3 {
			break
		}
		if m := GetMasechet(id); m != nil {
			names = append(names, m.Name)
		}
	}
	name := strings.Join(names, ", ")
	if len(masechetIDs) > 3 {
		name += fmt.Sprintf(" (+%d)", len(masechetIDs)-3)
	}
	return name
}

// SederMasechetIDs returns the ids of a seder's masechtot in order
func SederMasechetIDs(sederID string) []string {
	for _, corpus := range allStructures() {
		for _, seder := range corpus {
			if seder.ID != sederID {
				continue
			}
			ids := make([]string, len(seder.Masechtot))
			for i, m := range seder.Masechtot {
				ids[i] = m.ID
			}
			return ids
		}
	}
	return nil
}

// AllMasechetIDs returns every masechet id of one corpus in canonical order
func AllMasechetIDs(ct ContentType) []string {
	all := AllMasechtot(ct)
	ids := make([]string, len(all))
	for i, m := range all {
		ids[i] = m.ID
	}
	return ids
}
