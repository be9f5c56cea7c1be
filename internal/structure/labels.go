package structure

import "github.com/example/limudbot/pkg/models"

// ContentTypeOf determines the corpus from the masechet id prefix
func ContentTypeOf(masechetID string) ContentType {
	if len(masechetID) >= 2 && masechetID[:2] == "g_" {
		return ContentGemara
	}
	if len(masechetID) >= 2 && masechetID[:2] == "r_" {
		return ContentRambam
	}
	return ContentMishnah
}

// StructureFor returns the seder list for a content type
func StructureFor(ct ContentType) []Seder {
	switch ct {
	case ContentGemara:
		return GemaraStructure
	case ContentRambam:
		return RambamStructure
	default:
		return MishnahStructure
	}
}

func allStructures() [][]Seder {
	return [][]Seder{MishnahStructure, GemaraStructure, RambamStructure}
}

// LabelsFor returns the Hebrew vocabulary for a content type
func LabelsFor(ct ContentType) Labels {
	switch ct {
	case ContentGemara:
		return Labels{
			Name:            "גמרא",
			UnitSingular:    "עמוד",
			UnitPlural:      "עמודים",
			ChapterSingular: "דף",
			ChapterPlural:   "דפים",
			BookSingular:    "מסכת",
			BookPlural:      "מסכתות",
			OrderSingular:   "סדר",
			OrderPlural:     "סדרים",
			AllName:         "ש\"ס",
		}
	case ContentRambam:
		return Labels{
			Name:            "רמב\"ם",
			UnitSingular:    "הלכה",
			UnitPlural:      "הלכות",
			ChapterSingular: "פרק",
			ChapterPlural:   "פרקים",
			BookSingular:    "הלכות",
			BookPlural:      "חלקים",
			OrderSingular:   "ספר",
			OrderPlural:     "ספרים",
			AllName:         "משנה תורה",
		}
	default:
		return Labels{
			Name:            "משנה",
			UnitSingular:    "משנה",
			UnitPlural:      "משניות",
			ChapterSingular: "פרק",
			ChapterPlural:   "פרקים",
			BookSingular:    "מסכת",
			BookPlural:      "מסכתות",
			OrderSingular:   "סדר",
			OrderPlural:     "סדרים",
			AllName:         "ש\"ס משנה",
		}
	}
}

// UnitLabel returns the display label for the plan's unit granularity
func UnitLabel(ct ContentType, unit models.LearningUnit, plural bool) string {
	labels := LabelsFor(ct)
	if unit == models.UnitMishnah {
		if plural {
			return labels.UnitPlural
		}
		return labels.UnitSingular
	}
	if plural {
		return labels.ChapterPlural
	}
	return labels.ChapterSingular
}
