package translator

import "strings"

// russianTranslator implements GOST 7.79-2000-style transliteration,
// ported rune-for-rune from the guard tables of the original Russian
// translator (К/к's C/K/Q/X ambiguity, В/в's forced W before a soft sign,
// Ч/Ш/Ц digraphs).
type russianTranslator struct{}

func (russianTranslator) ToLatin(input string) string {
	r := []rune(input)
	var out strings.Builder
	for i := 0; i < len(r); i++ {
		emit, consumed := russianToLatinRune(r, i)
		out.WriteString(emit)
		i += consumed
	}
	return out.String()
}

// russianToLatinRune returns the Latin emission for r[i] plus how many
// extra runes (beyond r[i] itself) it consumed.
func russianToLatinRune(r []rune, i int) (string, int) {
	next := func() (rune, bool) {
		if i+1 < len(r) {
			return r[i+1], true
		}
		return 0, false
	}
	prev := func() (rune, bool) {
		if i-1 >= 0 {
			return r[i-1], true
		}
		return 0, false
	}
	isFrontVowel := func(ch rune) bool {
		switch ch {
		case 'Е', 'Э', 'И', 'Й', 'Ы', 'е', 'э', 'и', 'й', 'ы':
			return true
		}
		return false
	}
	kPrevAllowsK := func(ch rune, includeU bool) bool {
		switch ch {
		case 'К', 'А', 'И', 'О', 'к', 'а', 'и', 'о', ' ':
			return true
		case 'У', 'у':
			return includeU
		}
		return false
	}

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
		if ch, ok := next(); ok && (ch == 'ь' || ch == 'Ь') {
			return "W", 1
		}
		return "V", 0
	case 'в':
		if ch, ok := next(); ok && (ch == 'ь' || ch == 'Ь') {
			return "w", 1
		}
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
		return "YE", 0
	case 'е':
		return "ye", 0
	case 'Э':
		return "E", 0
	case 'э':
		return "e", 0
	case 'Ё':
		return "YO", 0
	case 'ё':
		return "yo", 0
	case 'Ж':
		return "J", 0
	case 'ж':
		return "j", 0
	case 'З':
		return "Z", 0
	case 'з':
		return "z", 0
	case 'И':
		return "I", 0
	case 'и':
		return "i", 0
	case 'Й':
		return "J", 0
	case 'й':
		return "j", 0
	case 'К':
		if ch, ok := next(); ok {
			switch {
			case isFrontVowel(ch):
				return "K", 0
			case ch == ' ':
				if p, ok := prev(); !ok || kPrevAllowsK(p, false) {
					return "K", 0
				}
				return "C", 0
			case ch == 'Ю' || ch == 'ю':
				return "Q", 1
			case ch == 'с' || ch == 'С':
				return "X", 1
			case ch == 'ъ' || ch == 'Ъ':
				return "K", 1
			case ch == 'ь' || ch == 'Ь':
				return "C", 1
			default:
				return "C", 0
			}
		}
		if p, ok := prev(); !ok || kPrevAllowsK(p, true) {
			return "K", 0
		}
		return "C", 0
	case 'к':
		if ch, ok := next(); ok {
			switch {
			case isFrontVowel(ch):
				return "k", 0
			case ch == ' ':
				if p, ok := prev(); !ok || kPrevAllowsK(p, false) {
					return "k", 0
				}
				return "c", 0
			case ch == 'Ю' || ch == 'ю':
				return "q", 1
			case ch == 'с' || ch == 'С':
				return "x", 1
			case ch == 'ъ' || ch == 'Ъ':
				return "k", 1
			case ch == 'ь' || ch == 'Ь':
				return "c", 1
			default:
				return "c", 0
			}
		}
		if p, ok := prev(); !ok || kPrevAllowsK(p, true) {
			return "k", 0
		}
		return "c", 0
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
	case 'Ч':
		return "CH", 0
	case 'ч':
		return "ch", 0
	case 'Ш':
		return "SH", 0
	case 'ш':
		return "sh", 0
	case 'Щ':
		return "SHH", 0
	case 'щ':
		return "shh", 0
	case 'Ъ':
		return "'", 0
	case 'ъ':
		return "'", 0
	case 'Ы':
		return "Y", 0
	case 'ы':
		return "y", 0
	case 'Ь':
		return "`", 0
	case 'ь':
		return "`", 0
	case 'Ю':
		return "YU", 0
	case 'ю':
		return "yu", 0
	case 'Я':
		return "YA", 0
	case 'я':
		return "ya", 0
	case 'Ц':
		return "Z", 0
	case 'ц':
		return "z", 0
	case '№':
		return "#", 0
	case '₽':
		return "$", 0
	default:
		return string(r[i]), 0
	}
}

func (russianTranslator) ToSource(input string) string {
	r := []rune(input)
	var out strings.Builder
	for i := 0; i < len(r); i++ {
		emit, consumed := russianToSourceRune(r, i)
		out.WriteString(emit)
		i += consumed
	}
	return out.String()
}

func russianToSourceRune(r []rune, i int) (string, int) {
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
	case 'G':
		if ch, ok := next(); ok {
			switch ch {
			case 'y', 'Y', 'e', 'E', 'i', 'I':
				return "ДЖ", 0
			}
		}
		return "Г", 0
	case 'g':
		if ch, ok := next(); ok {
			switch ch {
			case 'y', 'Y', 'e', 'E', 'i', 'I':
				return "дж", 0
			}
		}
		return "г", 0
	case 'H':
		return "Х", 0
	case 'h':
		return "х", 0
	case 'I':
		if ch, ok := next(); ok {
			switch ch {
			case 'u', 'U':
				return "Ю", 1
			case 'a', 'A':
				return "Я", 1
			case 'o', 'O':
				return "Ё", 1
			}
		}
		return "И", 0
	case 'i':
		if ch, ok := next(); ok {
			switch ch {
			case 'u', 'U':
				return "ю", 1
			case 'a', 'A':
				return "я", 1
			case 'o', 'O':
				return "ё", 1
			}
		}
		return "и", 0
	case 'J':
		return "Ж", 0
	case 'j':
		return "ж", 0
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
	case 'Q':
		return "КЮ", 0
	case 'q':
		return "кю", 0
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
		return "У", 0
	case 'w':
		return "у", 0
	case 'X':
		return "КС", 0
	case 'x':
		return "кс", 0
	case 'Y':
		if ch, ok := next(); ok && (ch == 'e' || ch == 'E') {
			return "Е", 1
		}
		return "Ы", 0
	case 'y':
		if ch, ok := next(); ok && (ch == 'e' || ch == 'E') {
			return "е", 1
		}
		return "ы", 0
	case 'Z':
		return "З", 0
	case 'z':
		return "з", 0
	default:
		return string(r[i]), 0
	}
}
