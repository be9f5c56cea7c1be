package structure

// dafim builds a chapter list for a masechet of n dafim, two amudim each.
func dafim(n int) []int {
	ch := make([]int, n)
	for i := range ch {
		ch[i] = 2
	}
	return ch
}

// GemaraStructure lists the Babylonian Talmud. A "chapter" here is a daf and
// its sub-units are amudim. Tamid starts at daf 25b (non-standard pagination).
var GemaraStructure = []Seder{
	{
		ID:   "g_zeraim",
		Name: "זרעים",
		Masechtot: []Masechet{
			{ID: "g_berakhot", Name: "ברכות", SefariaName: "Berakhot", Chapters: dafim(63)},
		},
	},
	{
		ID:   "g_moed",
		Name: "מועד",
		Masechtot: []Masechet{
			{ID: "g_shabbat", Name: "שבת", SefariaName: "Shabbat", Chapters: dafim(156)},
			{ID: "g_eruvin", Name: "עירובין", SefariaName: "Eruvin", Chapters: dafim(104)},
			{ID: "g_pesachim", Name: "פסחים", SefariaName: "Pesachim", Chapters: dafim(120)},
			{ID: "g_yoma", Name: "יומא", SefariaName: "Yoma", Chapters: dafim(87)},
			{ID: "g_sukkah", Name: "סוכה", SefariaName: "Sukkah", Chapters: dafim(55)},
			{ID: "g_beitzah", Name: "ביצה", SefariaName: "Beitzah", Chapters: dafim(39)},
			{ID: "g_rosh_hashanah", Name: "ראש השנה", SefariaName: "Rosh Hashanah", Chapters: dafim(34)},
			{ID: "g_taanit", Name: "תענית", SefariaName: "Taanit", Chapters: dafim(30)},
			{ID: "g_megillah", Name: "מגילה", SefariaName: "Megillah", Chapters: dafim(31)},
			{ID: "g_moed_katan", Name: "מועד קטן", SefariaName: "Moed Katan", Chapters: dafim(28)},
			{ID: "g_chagigah", Name: "חגיגה", SefariaName: "Chagigah", Chapters: dafim(26)},
		},
	},
	{
		ID:   "g_nashim",
		Name: "נשים",
		Masechtot: []Masechet{
			{ID: "g_yevamot", Name: "יבמות", SefariaName: "Yevamot", Chapters: dafim(121)},
			{ID: "g_ketubot", Name: "כתובות", SefariaName: "Ketubot", Chapters: dafim(111)},
			{ID: "g_nedarim", Name: "נדרים", SefariaName: "Nedarim", Chapters: dafim(90)},
			{ID: "g_nazir", Name: "נזיר", SefariaName: "Nazir", Chapters: dafim(65)},
			{ID: "g_sotah", Name: "סוטה", SefariaName: "Sotah", Chapters: dafim(48)},
			{ID: "g_gittin", Name: "גיטין", SefariaName: "Gittin", Chapters: dafim(89)},
			{ID: "g_kiddushin", Name: "קידושין", SefariaName: "Kiddushin", Chapters: dafim(81)},
		},
	},
	{
		ID:   "g_nezikin",
		Name: "נזיקין",
		Masechtot: []Masechet{
			{ID: "g_bava_kamma", Name: "בבא קמא", SefariaName: "Bava Kamma", Chapters: dafim(118)},
			{ID: "g_bava_metzia", Name: "בבא מציעא", SefariaName: "Bava Metzia", Chapters: dafim(118)},
			{ID: "g_bava_batra", Name: "בבא בתרא", SefariaName: "Bava Batra", Chapters: dafim(175)},
			{ID: "g_sanhedrin", Name: "סנהדרין", SefariaName: "Sanhedrin", Chapters: dafim(112)},
			{ID: "g_makkot", Name: "מכות", SefariaName: "Makkot", Chapters: dafim(23)},
			{ID: "g_shevuot", Name: "שבועות", SefariaName: "Shevuot", Chapters: dafim(48)},
			{ID: "g_avodah_zarah", Name: "עבודה זרה", SefariaName: "Avodah Zarah", Chapters: dafim(75)},
			{ID: "g_horayot", Name: "הוריות", SefariaName: "Horayot", Chapters: dafim(13)},
		},
	},
	{
		ID:   "g_kodashim",
		Name: "קדשים",
		Masechtot: []Masechet{
			{ID: "g_zevachim", Name: "זבחים", SefariaName: "Zevachim", Chapters: dafim(119)},
			{ID: "g_menachot", Name: "מנחות", SefariaName: "Menachot", Chapters: dafim(109)},
			{ID: "g_chullin", Name: "חולין", SefariaName: "Chullin", Chapters: dafim(141)},
			{ID: "g_bekhorot", Name: "בכורות", SefariaName: "Bekhorot", Chapters: dafim(60)},
			{ID: "g_arakhin", Name: "ערכין", SefariaName: "Arakhin", Chapters: dafim(33)},
			{ID: "g_temurah", Name: "תמורה", SefariaName: "Temurah", Chapters: dafim(33)},
			{ID: "g_keritot", Name: "כריתות", SefariaName: "Keritot", Chapters: dafim(27)},
			{ID: "g_meilah", Name: "מעילה", SefariaName: "Meilah", Chapters: dafim(21)},
			{ID: "g_tamid", Name: "תמיד", SefariaName: "Tamid", Chapters: append([]int{1}, dafim(8)...), StartDaf: 25},
		},
	},
	{
		ID:   "g_taharot",
		Name: "טהרות",
		Masechtot: []Masechet{
			{ID: "g_niddah", Name: "נידה", SefariaName: "Niddah", Chapters: dafim(72)},
		},
	},
}
