package translator

import "strings"

// bulgarianTranslator has no original_source grounding; its table is
// shaped like russianTranslator's minus the letters Bulgarian's alphabet
// lacks (Ё, Ы, Э) and with Щ rendered SHT (the conventional Bulgarian
// transliteration, distinct from Russian's SHH) and Ъ treated as the vowel
// it is in Bulgarian rather than a silent hard sign.
type bulgarianTranslator struct{}

func (bulgarianTranslator) ToLatin(input string) string {
	r := []rune(input)
	var out strings.Builder
	for i := 0; i < len(r); i++ {
		emit, consumed := bulgarianToLatinRune(r, i)
		out.WriteString(emit)
		i += consumed
	}
	return out.String()
}

func bulgarianToLatinRune(r []rune, i int) (string, int) {
	switch r[i] {
	case 'А':
		return "A", 0
	case 'а':
		return "a", 0
	case 'Б':
		return "B", 0
	case 'б':
		return "b", 0
	case 'В':
		return "V", 0
	case 'в':
		return "v", 0
	case 'Г':
		return "G", 0
	case 'г':
		return "g", 0
	case 'Д':
		return "D", 0
	case 'д':
		return "d", 0
	case 'Е':
		return "E", 0
	case 'е':
		return "e", 0
	case 'Ж':
		return "ZH", 0
	case 'ж':
		return "zh", 0
	case 'З':
		return "Z", 0
	case 'з':
		return "z", 0
	case 'И':
		return "I", 0
	case 'и':
		return "i", 0
	case 'Й':
		return "Y", 0
	case 'й':
		return "y", 0
	case 'К':
		return "K", 0
	case 'к':
		return "k", 0
	case 'Л':
		return "L", 0
	case 'л':
		return "l", 0
	case 'М':
		return "M", 0
	case 'м':
		return "m", 0
	case 'Н':
		return "N", 0
	case 'н':
		return "n", 0
	case 'О':
		return "O", 0
	case 'о':
		return "o", 0
	case 'П':
		return "P", 0
	case 'п':
		return "p", 0
	case 'Р':
		return "R", 0
	case 'р':
		return "r", 0
	case 'С':
		return "S", 0
	case 'с':
		return "s", 0
	case 'Т':
		return "T", 0
	case 'т':
		return "t", 0
	case 'У':
		return "U", 0
	case 'у':
		return "u", 0
	case 'Ф':
		return "F", 0
	case 'ф':
		return "f", 0
	case 'Х':
		return "H", 0
	case 'х':
		return "h", 0
	case 'Ц':
		return "TS", 0
	case 'ц':
		return "ts", 0
	case 'Ч':
		return "CH", 0
	case 'ч':
		return "ch", 0
	case 'Ш':
		return "SH", 0
	case 'ш':
		return "sh", 0
	case 'Щ':
		return "SHT", 0
	case 'щ':
		return "sht", 0
	case 'Ъ':
		return "A", 0
	case 'ъ':
		return "a", 0
	case 'Ь':
		return "Y", 0
	case 'ь':
		return "y", 0
	case 'Ю':
		return "YU", 0
	case 'ю':
		return "yu", 0
	case 'Я':
		return "YA", 0
	case 'я':
		return "ya", 0
	default:
		return string(r[i]), 0
	}
}

func (bulgarianTranslator) ToSource(input string) string {
	r := []rune(input)
	var out strings.Builder
	for i := 0; i < len(r); i++ {
		emit, consumed := bulgarianToSourceRune(r, i)
		out.WriteString(emit)
		i += consumed
	}
	return out.String()
}

func bulgarianToSourceRune(r []rune, i int) (string, int) {
	next := func() (rune, bool) {
		if i+1 < len(r) {
			return r[i+1], true
		}
		return 0, false
	}
	nextN := func(n int) (rune, bool) {
		if i+n < len(r) {
			return r[i+n], true
		}
		return 0, false
	}
	isH := func(ch rune) bool { return ch == 'h' || ch == 'H' }
	isT := func(ch rune) bool { return ch == 't' || ch == 'T' }

	switch r[i] {
	case 'A':
		return "А", 0
	case 'a':
		return "а", 0
	case 'B':
		return "Б", 0
	case 'b':
		return "б", 0
	case 'C':
		if ch, ok := next(); ok && isH(ch) {
			return "Ч", 1
		}
		return "К", 0
	case 'c':
		if ch, ok := next(); ok && isH(ch) {
			return "ч", 1
		}
		return "к", 0
	case 'D':
		return "Д", 0
	case 'd':
		return "д", 0
	case 'E':
		return "Е", 0
	case 'e':
		return "е", 0
	case 'F':
		return "Ф", 0
	case 'f':
		return "ф", 0
	case 'G':
		return "Г", 0
	case 'g':
		return "г", 0
	case 'H':
		return "Х", 0
	case 'h':
		return "х", 0
	case 'I':
		return "И", 0
	case 'i':
		return "и", 0
	case 'K':
		return "К", 0
	case 'k':
		return "к", 0
	case 'L':
		return "Л", 0
	case 'l':
		return "л", 0
	case 'M':
		return "М", 0
	case 'm':
		return "м", 0
	case 'N':
		return "Н", 0
	case 'n':
		return "н", 0
	case 'O':
		return "О", 0
	case 'o':
		return "о", 0
	case 'P':
		return "П", 0
	case 'p':
		return "п", 0
	case 'R':
		return "Р", 0
	case 'r':
		return "р", 0
	case 'S':
		if ch, ok := next(); ok && isH(ch) {
			if ch2, ok := nextN(2); ok && isT(ch2) {
				return "Щ", 2
			}
			return "Ш", 1
		}
		return "С", 0
	case 's':
		if ch, ok := next(); ok && isH(ch) {
			if ch2, ok := nextN(2); ok && isT(ch2) {
				return "щ", 2
			}
			return "ш", 1
		}
		return "с", 0
	case 'T':
		if ch, ok := next(); ok && (ch == 's' || ch == 'S') {
			return "Ц", 1
		}
		return "Т", 0
	case 't':
		if ch, ok := next(); ok && (ch == 's' || ch == 'T') {
			return "ц", 1
		}
		return "т", 0
	case 'U':
		return "У", 0
	case 'u':
		return "у", 0
	case 'V':
		return "В", 0
	case 'v':
		return "в", 0
	case 'Y':
		if ch, ok := next(); ok {
			switch ch {
			case 'u', 'U':
				return "Ю", 1
			case 'a', 'A':
				return "Я", 1
			}
		}
		return "Й", 0
	case 'y':
		if ch, ok := next(); ok {
			switch ch {
			case 'u', 'U':
				return "ю", 1
			case 'a', 'A':
				return "я", 1
			}
		}
		return "й", 0
	case 'Z':
		if ch, ok := next(); ok && isH(ch) {
			return "Ж", 1
		}
		return "З", 0
	case 'z':
		if ch, ok := next(); ok && isH(ch) {
			return "ж", 1
		}
		return "з", 0
	default:
		return string(r[i]), 0
	}
}
