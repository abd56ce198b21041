package translator

import "strings"

// belarusianTranslator has no original_source grounding; its table is
// shaped like russianTranslator's but drops the К/к ambiguity guard (which
// exists only because of Russian's particular С/К orthography) and adds
// Belarusian's own letters: І instead of И, Ў, and the apostrophe instead
// of a hard sign.
type belarusianTranslator struct{}

func (belarusianTranslator) ToLatin(input string) string {
	r := []rune(input)
	var out strings.Builder
	for i := 0; i < len(r); i++ {
		emit, consumed := belarusianToLatinRune(r, i)
		out.WriteString(emit)
		i += consumed
	}
	return out.String()
}

func belarusianToLatinRune(r []rune, i int) (string, int) {
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
		return "H", 0
	case 'г':
		return "h", 0
	case 'Д':
		return "D", 0
	case 'д':
		return "d", 0
	case 'Е':
		return "YE", 0
	case 'е':
		return "ye", 0
	case 'Ё':
		return "YO", 0
	case 'ё':
		return "yo", 0
	case 'Ж':
		return "ZH", 0
	case 'ж':
		return "zh", 0
	case 'З':
		return "Z", 0
	case 'з':
		return "z", 0
	case 'І':
		return "I", 0
	case 'і':
		return "i", 0
	case 'Й':
		return "J", 0
	case 'й':
		return "j", 0
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
	case 'Ў':
		return "W", 0
	case 'ў':
		return "w", 0
	case 'Ф':
		return "F", 0
	case 'ф':
		return "f", 0
	case 'Х':
		return "KH", 0
	case 'х':
		return "kh", 0
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
	case 'Ы':
		return "Y", 0
	case 'ы':
		return "y", 0
	case 'Ь':
		return "'", 0
	case 'ь':
		return "'", 0
	case 'Э':
		return "E", 0
	case 'э':
		return "e", 0
	case 'Ю':
		return "YU", 0
	case 'ю':
		return "yu", 0
	case 'Я':
		return "YA", 0
	case 'я':
		return "ya", 0
	case '’':
		return "'", 0
	default:
		return string(r[i]), 0
	}
}

func (belarusianTranslator) ToSource(input string) string {
	r := []rune(input)
	var out strings.Builder
	for i := 0; i < len(r); i++ {
		emit, consumed := belarusianToSourceRune(r, i)
		out.WriteString(emit)
		i += consumed
	}
	return out.String()
}

func belarusianToSourceRune(r []rune, i int) (string, int) {
	next := func() (rune, bool) {
		if i+1 < len(r) {
			return r[i+1], true
		}
		return 0, false
	}
	isH := func(ch rune) bool { return ch == 'h' || ch == 'H' }

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
		return "Э", 0
	case 'e':
		return "э", 0
	case 'F':
		return "Ф", 0
	case 'f':
		return "ф", 0
	case 'H':
		if ch, ok := next(); ok && isH(ch) {
			return "Х", 1
		}
		return "Г", 0
	case 'h':
		if ch, ok := next(); ok && isH(ch) {
			return "х", 1
		}
		return "г", 0
	case 'I':
		return "І", 0
	case 'i':
		return "і", 0
	case 'J':
		return "Й", 0
	case 'j':
		return "й", 0
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
			return "Ш", 1
		}
		return "С", 0
	case 's':
		if ch, ok := next(); ok && isH(ch) {
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
	case 'W':
		return "Ў", 0
	case 'w':
		return "ў", 0
	case 'Y':
		if ch, ok := next(); ok && (ch == 'e' || ch == 'E') {
			return "Е", 1
		}
		if ch, ok := next(); ok && (ch == 'o' || ch == 'O') {
			return "Ё", 1
		}
		if ch, ok := next(); ok && (ch == 'u' || ch == 'U') {
			return "Ю", 1
		}
		if ch, ok := next(); ok && (ch == 'a' || ch == 'A') {
			return "Я", 1
		}
		return "Ы", 0
	case 'y':
		if ch, ok := next(); ok && (ch == 'e' || ch == 'E') {
			return "е", 1
		}
		if ch, ok := next(); ok && (ch == 'o' || ch == 'O') {
			return "ё", 1
		}
		if ch, ok := next(); ok && (ch == 'u' || ch == 'U') {
			return "ю", 1
		}
		if ch, ok := next(); ok && (ch == 'a' || ch == 'A') {
			return "я", 1
		}
		return "ы", 0
	case 'Z':
		if ch, ok := next(); ok && (ch == 'h' || ch == 'H') {
			return "Ж", 1
		}
		return "З", 0
	case 'z':
		if ch, ok := next(); ok && (ch == 'h' || ch == 'H') {
			return "ж", 1
		}
		return "з", 0
	case '\'':
		return "’", 0
	default:
		return string(r[i]), 0
	}
}
