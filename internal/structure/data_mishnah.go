package structure

// MishnahStructure lists the six sedarim of the Mishnah. Each chapter entry
// is that chapter's mishnah count.
var MishnahStructure = []Seder{
	{
		ID:   "zeraim",
		Name: "זרעים",
		Masechtot: []Masechet{
			{ID: "berakhot", Name: "ברכות", SefariaName: "Mishnah Berakhot", Chapters: []int{5, 8, 6, 7, 5, 8, 5, 8, 5}},
			{ID: "peah", Name: "פאה", SefariaName: "Mishnah Peah", Chapters: []int{6, 8, 8, 11, 8, 11, 8, 9}},
			{ID: "demai", Name: "דמאי", SefariaName: "Mishnah Demai", Chapters: []int{4, 5, 6, 7, 11, 12, 8}},
			{ID: "kilayim", Name: "כלאים", SefariaName: "Mishnah Kilayim", Chapters: []int{9, 11, 7, 9, 8, 9, 8, 6, 10}},
			{ID: "sheviit", Name: "שביעית", SefariaName: "Mishnah Sheviit", Chapters: []int{8, 10, 10, 10, 9, 6, 7, 11, 9, 9}},
			{ID: "terumot", Name: "תרומות", SefariaName: "Mishnah Terumot", Chapters: []int{10, 6, 9, 13, 9, 6, 7, 12, 7, 12, 10}},
			{ID: "maaserot", Name: "מעשרות", SefariaName: "Mishnah Maaserot", Chapters: []int{8, 8, 10, 6, 8}},
			{ID: "maaser_sheni", Name: "מעשר שני", SefariaName: "Mishnah Maaser Sheni", Chapters: []int{7, 10, 13, 12, 15}},
			{ID: "challah", Name: "חלה", SefariaName: "Mishnah Challah", Chapters: []int{9, 8, 10, 11}},
			{ID: "orlah", Name: "ערלה", SefariaName: "Mishnah Orlah", Chapters: []int{9, 17, 9}},
			{ID: "bikkurim", Name: "ביכורים", SefariaName: "Mishnah Bikkurim", Chapters: []int{11, 11, 12, 5}},
		},
	},
	{
		ID:   "moed",
		Name: "מועד",
		Masechtot: []Masechet{
			{ID: "shabbat", Name: "שבת", SefariaName: "Mishnah Shabbat", Chapters: []int{11, 7, 6, 2, 4, 10, 4, 7, 7, 6, 6, 6, 7, 4, 3, 8, 8, 3, 6, 5, 3, 6, 5, 5}},
			{ID: "eruvin", Name: "עירובין", SefariaName: "Mishnah Eruvin", Chapters: []int{10, 6, 9, 11, 9, 10, 11, 11, 4, 15}},
			{ID: "pesachim", Name: "פסחים", SefariaName: "Mishnah Pesachim", Chapters: []int{7, 8, 8, 9, 10, 6, 13, 8, 11, 9}},
			{ID: "shekalim", Name: "שקלים", SefariaName: "Mishnah Shekalim", Chapters: []int{7, 5, 4, 9, 6, 6, 7, 8}},
			{ID: "yoma", Name: "יומא", SefariaName: "Mishnah Yoma", Chapters: []int{8, 7, 11, 6, 7, 8, 5, 9}},
			{ID: "sukkah", Name: "סוכה", SefariaName: "Mishnah Sukkah", Chapters: []int{11, 9, 15, 10, 8}},
			{ID: "beitzah", Name: "ביצה", SefariaName: "Mishnah Beitzah", Chapters: []int{10, 10, 8, 7, 7}},
			{ID: "rosh_hashanah", Name: "ראש השנה", SefariaName: "Mishnah Rosh Hashanah", Chapters: []int{9, 9, 8, 9}},
			{ID: "taanit", Name: "תענית", SefariaName: "Mishnah Taanit", Chapters: []int{7, 10, 9, 8}},
			{ID: "megillah", Name: "מגילה", SefariaName: "Mishnah Megillah", Chapters: []int{11, 6, 6, 10}},
			{ID: "moed_katan", Name: "מועד קטן", SefariaName: "Mishnah Moed Katan", Chapters: []int{10, 5, 9}},
			{ID: "chagigah", Name: "חגיגה", SefariaName: "Mishnah Chagigah", Chapters: []int{8, 7, 8}},
		},
	},
	{
		ID:   "nashim",
		Name: "נשים",
		Masechtot: []Masechet{
			{ID: "yevamot", Name: "יבמות", SefariaName: "Mishnah Yevamot", Chapters: []int{4, 10, 10, 13, 6, 6, 6, 6, 6, 9, 7, 6, 13, 9, 10, 7}},
			{ID: "ketubot", Name: "כתובות", SefariaName: "Mishnah Ketubot", Chapters: []int{10, 10, 9, 12, 9, 7, 10, 8, 9, 6, 6, 4, 11}},
			{ID: "nedarim", Name: "נדרים", SefariaName: "Mishnah Nedarim", Chapters: []int{4, 5, 11, 8, 6, 10, 9, 7, 10, 8, 12}},
			{ID: "nazir", Name: "נזיר", SefariaName: "Mishnah Nazir", Chapters: []int{7, 10, 7, 7, 7, 11, 4, 2, 5}},
			{ID: "sotah", Name: "סוטה", SefariaName: "Mishnah Sotah", Chapters: []int{9, 6, 8, 5, 5, 4, 8, 7, 15}},
			{ID: "gittin", Name: "גיטין", SefariaName: "Mishnah Gittin", Chapters: []int{6, 7, 8, 9, 9, 7, 9, 10, 10}},
			{ID: "kiddushin", Name: "קידושין", SefariaName: "Mishnah Kiddushin", Chapters: []int{10, 10, 13, 14}},
		},
	},
	{
		ID:   "nezikin",
		Name: "נזיקין",
		Masechtot: []Masechet{
			{ID: "bava_kamma", Name: "בבא קמא", SefariaName: "Mishnah Bava Kamma", Chapters: []int{4, 6, 11, 9, 7, 6, 7, 7, 12, 10}},
			{ID: "bava_metzia", Name: "בבא מציעא", SefariaName: "Mishnah Bava Metzia", Chapters: []int{8, 11, 12, 12, 11, 8, 11, 9, 13, 6}},
			{ID: "bava_batra", Name: "בבא בתרא", SefariaName: "Mishnah Bava Batra", Chapters: []int{6, 14, 8, 9, 11, 8, 4, 8, 10, 8}},
			{ID: "sanhedrin", Name: "סנהדרין", SefariaName: "Mishnah Sanhedrin", Chapters: []int{6, 5, 8, 5, 5, 6, 11, 7, 6, 6, 6}},
			{ID: "makkot", Name: "מכות", SefariaName: "Mishnah Makkot", Chapters: []int{10, 8, 16}},
			{ID: "shevuot", Name: "שבועות", SefariaName: "Mishnah Shevuot", Chapters: []int{7, 5, 11, 13, 5, 7, 8, 6}},
			{ID: "eduyot", Name: "עדויות", SefariaName: "Mishnah Eduyot", Chapters: []int{14, 10, 12, 12, 7, 3, 9, 7}},
			{ID: "avodah_zarah", Name: "עבודה זרה", SefariaName: "Mishnah Avodah Zarah", Chapters: []int{9, 7, 10, 12, 12}},
			{ID: "avot", Name: "אבות", SefariaName: "Pirkei Avot", Chapters: []int{18, 16, 18, 22, 23, 11}},
			{ID: "horayot", Name: "הוריות", SefariaName: "Mishnah Horayot", Chapters: []int{5, 7, 8}},
		},
	},
	{
		ID:   "kodashim",
		Name: "קדשים",
		Masechtot: []Masechet{
			{ID: "zevachim", Name: "זבחים", SefariaName: "Mishnah Zevachim", Chapters: []int{4, 5, 6, 6, 8, 7, 6, 12, 7, 8, 8, 6, 8, 10}},
			{ID: "menachot", Name: "מנחות", SefariaName: "Mishnah Menachot", Chapters: []int{4, 5, 7, 5, 9, 7, 6, 7, 9, 9, 9, 5, 11}},
			{ID: "chullin", Name: "חולין", SefariaName: "Mishnah Chullin", Chapters: []int{7, 10, 7, 7, 5, 7, 6, 6, 8, 4, 2, 5}},
			{ID: "bekhorot", Name: "בכורות", SefariaName: "Mishnah Bekhorot", Chapters: []int{7, 9, 4, 10, 6, 12, 7, 10, 8}},
			{ID: "arakhin", Name: "ערכין", SefariaName: "Mishnah Arakhin", Chapters: []int{4, 6, 5, 4, 6, 5, 5, 7, 8}},
			{ID: "temurah", Name: "תמורה", SefariaName: "Mishnah Temurah", Chapters: []int{6, 3, 5, 4, 6, 5, 6}},
			{ID: "keritot", Name: "כריתות", SefariaName: "Mishnah Keritot", Chapters: []int{7, 6, 10, 3, 8, 9}},
			{ID: "meilah", Name: "מעילה", SefariaName: "Mishnah Meilah", Chapters: []int{4, 9, 8, 6, 5, 6}},
			{ID: "tamid", Name: "תמיד", SefariaName: "Mishnah Tamid", Chapters: []int{4, 5, 9, 3, 6, 3, 4}},
			{ID: "middot", Name: "מידות", SefariaName: "Mishnah Middot", Chapters: []int{9, 6, 8, 7, 4}},
			{ID: "kinnim", Name: "קינים", SefariaName: "Mishnah Kinnim", Chapters: []int{4, 5, 6}},
		},
	},
	{
		ID:   "tahorot",
		Name: "טהרות",
		Masechtot: []Masechet{
			{ID: "kelim", Name: "כלים", SefariaName: "Mishnah Kelim", Chapters: []int{9, 8, 8, 4, 11, 4, 6, 11, 8, 8, 9, 8, 8, 8, 6, 8, 17, 9, 10, 7, 3, 10, 5, 17, 9, 9, 12, 10, 8, 4}},
			{ID: "oholot", Name: "אהלות", SefariaName: "Mishnah Oholot", Chapters: []int{8, 7, 7, 3, 7, 7, 6, 6, 16, 7, 9, 8, 6, 7, 10, 5, 5, 10}},
			{ID: "negaim", Name: "נגעים", SefariaName: "Mishnah Negaim", Chapters: []int{6, 5, 8, 11, 5, 8, 5, 10, 3, 10, 12, 7, 12, 13}},
			{ID: "parah", Name: "פרה", SefariaName: "Mishnah Parah", Chapters: []int{4, 5, 11, 4, 9, 5, 12, 11, 9, 6, 9, 11}},
			{ID: "tahorot_m", Name: "טהרות", SefariaName: "Mishnah Tahorot", Chapters: []int{9, 8, 8, 13, 9, 10, 9, 9, 9, 8}},
			{ID: "mikvaot", Name: "מקוואות", SefariaName: "Mishnah Mikvaot", Chapters: []int{8, 10, 4, 5, 6, 11, 7, 5, 7, 8}},
			{ID: "niddah", Name: "נידה", SefariaName: "Mishnah Niddah", Chapters: []int{7, 7, 7, 7, 9, 14, 5, 4, 11, 8}},
			{ID: "makhshirin", Name: "מכשירין", SefariaName: "Mishnah Makhshirin", Chapters: []int{6, 11, 8, 10, 11, 8}},
			{ID: "zavim", Name: "זבים", SefariaName: "Mishnah Zavim", Chapters: []int{6, 4, 3, 7, 12}},
			{ID: "tevul_yom", Name: "טבול יום", SefariaName: "Mishnah Tevul Yom", Chapters: []int{5, 8, 6, 7}},
			{ID: "yadayim", Name: "ידיים", SefariaName: "Mishnah Yadayim", Chapters: []int{5, 4, 5, 8}},
			{ID: "uktzin", Name: "עוקצין", SefariaName: "Mishnah Oktzin", Chapters: []int{6, 10, 12}},
		},
	},
}
