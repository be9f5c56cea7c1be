package structure

var (
	gematriaOnes     = []string{"", "א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט"}
	gematriaTens     = []string{"", "י", "כ", "ל", "מ", "נ", "ס", "ע", "פ", "צ"}
	gematriaHundreds = []string{"", "ק", "ר", "ש", "ת"}
)

// Gematria renders a number in Hebrew letters with the traditional quote
// marks, e.g. 15 -> ט"ו, 2 -> ב'. Numbers 15 and 16 use the conventional
// substitutions that avoid spelling the divine name.
func Gematria(num int) string {
	if num <= 0 {
		return ""
	}
	if num == 15 {
		return "ט\"ו"
	}
	if num == 16 {
		return "ט\"ז"
	}

	result := ""
	n := num
	if n >= 100 {
		hundreds := n / 100
		if hundreds < len(gematriaHundreds) {
			result += gematriaHundreds[hundreds]
		} else {
			result += "ת"
		}
		n %= 100
	}
	result += gematriaTens[n/10] + gematriaOnes[n%10]

	runes := []rune(result)
	if len(runes) > 1 {
		return string(runes[:len(runes)-1]) + "\"" + string(runes[len(runes)-1:])
	}
	if len(runes) == 1 {
		return result + "'"
	}
	return result
}
