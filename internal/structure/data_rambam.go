package structure

// perakim builds a chapter list for a section of n chapters tracked whole.
func perakim(n int) []int {
	ch := make([]int, n)
	for i := range ch {
		ch[i] = 1
	}
	return ch
}

// RambamStructure lists Mishneh Torah by sefer.
var RambamStructure = []Seder{
	{
		ID:   "r_madda",
		Name: "מדע",
		Masechtot: []Masechet{
			{ID: "r_yesodei_hatorah", Name: "יסודי התורה", SefariaName: "Mishneh Torah, Foundations of the Torah", Chapters: perakim(10)},
			{ID: "r_deot", Name: "דעות", SefariaName: "Mishneh Torah, Human Dispositions", Chapters: perakim(7)},
			{ID: "r_talmud_torah", Name: "תלמוד תורה", SefariaName: "Mishneh Torah, Torah Study", Chapters: perakim(7)},
			{ID: "r_avodah_zarah", Name: "עבודה זרה", SefariaName: "Mishneh Torah, Foreign Worship and Customs of the Nations", Chapters: perakim(12)},
			{ID: "r_teshuvah", Name: "תשובה", SefariaName: "Mishneh Torah, Repentance", Chapters: perakim(10)},
		},
	},
	{
		ID:   "r_ahavah",
		Name: "אהבה",
		Masechtot: []Masechet{
			{ID: "r_kriat_shema", Name: "קריאת שמע", SefariaName: "Mishneh Torah, Reading the Shema", Chapters: perakim(4)},
			{ID: "r_tefilah", Name: "תפילה וברכת כהנים", SefariaName: "Mishneh Torah, Prayer and the Priestly Blessing", Chapters: perakim(15)},
			{ID: "r_tefillin", Name: "תפילין ומזוזה וספר תורה", SefariaName: "Mishneh Torah, Tefillin, Mezuzah and the Torah Scroll", Chapters: perakim(10)},
			{ID: "r_tzitzit", Name: "ציצית", SefariaName: "Mishneh Torah, Fringes", Chapters: perakim(3)},
			{ID: "r_berakhot", Name: "ברכות", SefariaName: "Mishneh Torah, Blessings", Chapters: perakim(11)},
			{ID: "r_milah", Name: "מילה", SefariaName: "Mishneh Torah, Circumcision", Chapters: perakim(3)},
		},
	},
	{
		ID:   "r_zemanim",
		Name: "זמנים",
		Masechtot: []Masechet{
			{ID: "r_shabbat", Name: "שבת", SefariaName: "Mishneh Torah, Shabbat", Chapters: perakim(30)},
			{ID: "r_eruvin", Name: "עירובין", SefariaName: "Mishneh Torah, Eruvin", Chapters: perakim(8)},
			{ID: "r_shevitat_asor", Name: "שביתת עשור", SefariaName: "Mishneh Torah, Rest on the Tenth of Tishrei", Chapters: perakim(3)},
			{ID: "r_shevitat_yom_tov", Name: "שביתת יום טוב", SefariaName: "Mishneh Torah, Rest on a Holiday", Chapters: perakim(8)},
			{ID: "r_chametz_umatzah", Name: "חמץ ומצה", SefariaName: "Mishneh Torah, Leavened and Unleavened Bread", Chapters: perakim(8)},
			{ID: "r_shofar", Name: "שופר וסוכה ולולב", SefariaName: "Mishneh Torah, Shofar, Sukkah and Lulav", Chapters: perakim(8)},
			{ID: "r_shekalim", Name: "שקלים", SefariaName: "Mishneh Torah, Sheqel Dues", Chapters: perakim(4)},
			{ID: "r_kiddush_hachodesh", Name: "קידוש החודש", SefariaName: "Mishneh Torah, Sanctification of the New Month", Chapters: perakim(19)},
			{ID: "r_taaniyot", Name: "תעניות", SefariaName: "Mishneh Torah, Fasts", Chapters: perakim(5)},
			{ID: "r_megillah", Name: "מגילה וחנוכה", SefariaName: "Mishneh Torah, Scroll of Esther and Hanukkah", Chapters: perakim(4)},
		},
	},
	{
		ID:   "r_nashim",
		Name: "נשים",
		Masechtot: []Masechet{
			{ID: "r_ishut", Name: "אישות", SefariaName: "Mishneh Torah, Marriage", Chapters: perakim(25)},
			{ID: "r_gerushin", Name: "גירושין", SefariaName: "Mishneh Torah, Divorce", Chapters: perakim(13)},
			{ID: "r_yibum", Name: "ייבום וחליצה", SefariaName: "Mishneh Torah, Levirate Marriage and Release", Chapters: perakim(8)},
			{ID: "r_naarah", Name: "נערה בתולה", SefariaName: "Mishneh Torah, Virgin Maiden", Chapters: perakim(3)},
			{ID: "r_sotah", Name: "סוטה", SefariaName: "Mishneh Torah, Woman Suspected of Infidelity", Chapters: perakim(4)},
		},
	},
	{
		ID:   "r_kedushah",
		Name: "קדושה",
		Masechtot: []Masechet{
			{ID: "r_issurei_biah", Name: "איסורי ביאה", SefariaName: "Mishneh Torah, Forbidden Intercourse", Chapters: perakim(22)},
			{ID: "r_maakhalot_assurot", Name: "מאכלות אסורות", SefariaName: "Mishneh Torah, Forbidden Foods", Chapters: perakim(17)},
			{ID: "r_shechitah", Name: "שחיטה", SefariaName: "Mishneh Torah, Ritual Slaughter", Chapters: perakim(14)},
		},
	},
	{
		ID:   "r_haflaah",
		Name: "הפלאה",
		Masechtot: []Masechet{
			{ID: "r_shevuot", Name: "שבועות", SefariaName: "Mishneh Torah, Oaths", Chapters: perakim(12)},
			{ID: "r_nedarim", Name: "נדרים", SefariaName: "Mishneh Torah, Vows", Chapters: perakim(13)},
			{ID: "r_nezirut", Name: "נזירות", SefariaName: "Mishneh Torah, Nazirite Vows", Chapters: perakim(10)},
			{ID: "r_arakhin", Name: "ערכים וחרמין", SefariaName: "Mishneh Torah, Valuations and Devoted Property", Chapters: perakim(8)},
		},
	},
	{
		ID:   "r_zeraim",
		Name: "זרעים",
		Masechtot: []Masechet{
			{ID: "r_kilayim", Name: "כלאים", SefariaName: "Mishneh Torah, Diverse Species", Chapters: perakim(10)},
			{ID: "r_matnot_aniyim", Name: "מתנות עניים", SefariaName: "Mishneh Torah, Gifts to the Poor", Chapters: perakim(10)},
			{ID: "r_terumot", Name: "תרומות", SefariaName: "Mishneh Torah, Heave Offerings", Chapters: perakim(15)},
			{ID: "r_maaserot", Name: "מעשרות", SefariaName: "Mishneh Torah, Tithes", Chapters: perakim(14)},
			{ID: "r_maaser_sheni", Name: "מעשר שני ונטע רבעי", SefariaName: "Mishneh Torah, Second Tithes and Fourth Year's Fruit", Chapters: perakim(11)},
			{ID: "r_bikkurim", Name: "ביכורים", SefariaName: "Mishneh Torah, First Fruits and other Priestly Dues", Chapters: perakim(12)},
			{ID: "r_shemitah", Name: "שמיטה ויובל", SefariaName: "Mishneh Torah, Sabbatical Year and the Jubilee", Chapters: perakim(13)},
		},
	},
	{
		ID:   "r_avodah",
		Name: "עבודה",
		Masechtot: []Masechet{
			{ID: "r_beit_habechirah", Name: "בית הבחירה", SefariaName: "Mishneh Torah, The Chosen Temple", Chapters: perakim(8)},
			{ID: "r_klei_hamikdash", Name: "כלי המקדש", SefariaName: "Mishneh Torah, Vessels of the Sanctuary and Those who Serve Therein", Chapters: perakim(10)},
			{ID: "r_biat_hamikdash", Name: "ביאת המקדש", SefariaName: "Mishneh Torah, Entering the Temple", Chapters: perakim(9)},
			{ID: "r_issurei_mizbeiach", Name: "איסורי המזבח", SefariaName: "Mishneh Torah, Things Forbidden on the Altar", Chapters: perakim(7)},
			{ID: "r_maaseh_hakorbanot", Name: "מעשה הקרבנות", SefariaName: "Mishneh Torah, Sacrificial Procedure", Chapters: perakim(19)},
			{ID: "r_temidin", Name: "תמידין ומוספין", SefariaName: "Mishneh Torah, Daily Offerings and Additional Offerings", Chapters: perakim(10)},
			{ID: "r_pesulei_hamukdashin", Name: "פסולי המוקדשין", SefariaName: "Mishneh Torah, Offerings Made Unfit", Chapters: perakim(19)},
			{ID: "r_avodat_yom_hakippurim", Name: "עבודת יום הכיפורים", SefariaName: "Mishneh Torah, Service on the Day of Atonement", Chapters: perakim(5)},
			{ID: "r_meilah", Name: "מעילה", SefariaName: "Mishneh Torah, Trespass", Chapters: perakim(8)},
		},
	},
	{
		ID:   "r_korbanot",
		Name: "קרבנות",
		Masechtot: []Masechet{
			{ID: "r_korban_pesach", Name: "קרבן פסח", SefariaName: "Mishneh Torah, Paschal Offering", Chapters: perakim(10)},
			{ID: "r_chagigah", Name: "חגיגה", SefariaName: "Mishneh Torah, Festal Offering", Chapters: perakim(3)},
			{ID: "r_bechorot", Name: "בכורות", SefariaName: "Mishneh Torah, Firstlings", Chapters: perakim(8)},
			{ID: "r_shegagot", Name: "שגגות", SefariaName: "Mishneh Torah, Offerings for Unintentional Transgressions", Chapters: perakim(15)},
			{ID: "r_mechusarei_kapparah", Name: "מחוסרי כפרה", SefariaName: "Mishneh Torah, Offerings for Those with Incomplete Atonement", Chapters: perakim(5)},
			{ID: "r_temurah", Name: "תמורה", SefariaName: "Mishneh Torah, Substitution", Chapters: perakim(4)},
		},
	},
	{
		ID:   "r_taharah",
		Name: "טהרה",
		Masechtot: []Masechet{
			{ID: "r_tumat_met", Name: "טומאת מת", SefariaName: "Mishneh Torah, Defilement by a Corpse", Chapters: perakim(25)},
			{ID: "r_parah_adumah", Name: "פרה אדומה", SefariaName: "Mishneh Torah, Red Heifer", Chapters: perakim(15)},
			{ID: "r_tumat_tzaraat", Name: "טומאת צרעת", SefariaName: "Mishneh Torah, Defilement by Leprosy", Chapters: perakim(16)},
			{ID: "r_metamei_mishkav", Name: "מטמאי משכב ומושב", SefariaName: "Mishneh Torah, Those Who Defile Bed or Seat", Chapters: perakim(13)},
			{ID: "r_shear_avot_hatumah", Name: "שאר אבות הטומאות", SefariaName: "Mishneh Torah, Other Sources of Defilement", Chapters: perakim(20)},
			{ID: "r_tumat_okhalin", Name: "טומאת אוכלין", SefariaName: "Mishneh Torah, Defilement of Foods", Chapters: perakim(16)},
			{ID: "r_kelim", Name: "כלים", SefariaName: "Mishneh Torah, Vessels", Chapters: perakim(28)},
			{ID: "r_mikvaot", Name: "מקוואות", SefariaName: "Mishneh Torah, Immersion Pools", Chapters: perakim(11)},
		},
	},
	{
		ID:   "r_nezikin",
		Name: "נזיקין",
		Masechtot: []Masechet{
			{ID: "r_nizkei_mammon", Name: "נזקי ממון", SefariaName: "Mishneh Torah, Damages to Property", Chapters: perakim(14)},
			{ID: "r_genevah", Name: "גניבה", SefariaName: "Mishneh Torah, Theft", Chapters: perakim(9)},
			{ID: "r_gezelah", Name: "גזילה ואבידה", SefariaName: "Mishneh Torah, Robbery and Lost Property", Chapters: perakim(18)},
			{ID: "r_chovel", Name: "חובל ומזיק", SefariaName: "Mishneh Torah, One Who Injures a Person or Property", Chapters: perakim(8)},
			{ID: "r_rotzeach", Name: "רוצח ושמירת נפש", SefariaName: "Mishneh Torah, Murderer and the Preservation of Life", Chapters: perakim(13)},
		},
	},
	{
		ID:   "r_kinyan",
		Name: "קנין",
		Masechtot: []Masechet{
			{ID: "r_mechirah", Name: "מכירה", SefariaName: "Mishneh Torah, Sales", Chapters: perakim(30)},
			{ID: "r_zechiyah", Name: "זכייה ומתנה", SefariaName: "Mishneh Torah, Ownerless Property and Gifts", Chapters: perakim(12)},
			{ID: "r_shekhenim", Name: "שכנים", SefariaName: "Mishneh Torah, Neighbors", Chapters: perakim(14)},
			{ID: "r_sheluchin", Name: "שלוחין ושותפין", SefariaName: "Mishneh Torah, Agents and Partners", Chapters: perakim(10)},
			{ID: "r_avadim", Name: "עבדים", SefariaName: "Mishneh Torah, Slaves", Chapters: perakim(9)},
		},
	},
	{
		ID:   "r_mishpatim",
		Name: "משפטים",
		Masechtot: []Masechet{
			{ID: "r_sechirut", Name: "שכירות", SefariaName: "Mishneh Torah, Hiring", Chapters: perakim(13)},
			{ID: "r_sheelah", Name: "שאלה ופיקדון", SefariaName: "Mishneh Torah, Borrowing and Deposit", Chapters: perakim(8)},
			{ID: "r_malveh", Name: "מלווה ולווה", SefariaName: "Mishneh Torah, Creditor and Debtor", Chapters: perakim(27)},
			{ID: "r_toen", Name: "טוען ונטען", SefariaName: "Mishneh Torah, Plaintiff and Defendant", Chapters: perakim(16)},
			{ID: "r_nachalot", Name: "נחלות", SefariaName: "Mishneh Torah, Inheritances", Chapters: perakim(11)},
		},
	},
	{
		ID:   "r_shoftim",
		Name: "שופטים",
		Masechtot: []Masechet{
			{ID: "r_sanhedrin", Name: "סנהדרין", SefariaName: "Mishneh Torah, The Sanhedrin and the Penalties within their Jurisdiction", Chapters: perakim(26)},
			{ID: "r_edut", Name: "עדות", SefariaName: "Mishneh Torah, Testimony", Chapters: perakim(22)},
			{ID: "r_mamrim", Name: "ממרים", SefariaName: "Mishneh Torah, Rebels", Chapters: perakim(7)},
			{ID: "r_evel", Name: "אבל", SefariaName: "Mishneh Torah, Mourning", Chapters: perakim(14)},
			{ID: "r_melakhim", Name: "מלכים ומלחמות", SefariaName: "Mishneh Torah, Kings and Wars", Chapters: perakim(12)},
		},
	},
}
