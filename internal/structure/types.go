package structure

// Masechet is a single book: a tractate, a Gemara masechet or a Mishneh
// Torah section. Chapters holds one entry per chapter with that chapter's
// sub-unit count (mishnayot, amudim, or 1 for chapter-only tracking).
// StartDaf is the first daf number for Gemara masechtot; zero means the
// conventional start at daf 2.
type Masechet struct {
	ID          string
	Name        string
	SefariaName string
	Chapters    []int
	StartDaf    int
}

// Seder is an ordered grouping of masechtot within one content type
type Seder struct {
	ID        string
	Name      string
	Masechtot []Masechet
}

// ContentType identifies which corpus a masechet belongs to
type ContentType string

const (
	ContentMishnah ContentType = "mishnah"
	ContentGemara  ContentType = "gemara"
	ContentRambam  ContentType = "rambam"
)

// Labels holds the Hebrew vocabulary for one content type
type Labels struct {
	Name            string
	UnitSingular    string
	UnitPlural      string
	ChapterSingular string
	ChapterPlural   string
	BookSingular    string
	BookPlural      string
	OrderSingular   string
	OrderPlural     string
	// AllName is the display name for a plan covering the whole corpus
	AllName string
}
