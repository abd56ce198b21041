package translator

import "strings"

// serbianTranslator ports the guard tables of the original Serbian
// translator: В/в forced to W before a repeated В, И/и forced to Y before
// a repeated И, and К/к's Х/Q digraphs before С and ИУ.
type serbianTranslator struct{}

func (serbianTranslator) ToLatin(input string) string {
	r := []rune(input)
	var out strings.Builder
	for i := 0; i < len(r); i++ {
		emit, consumed := serbianToLatinRune(r, i)
		out.WriteString(emit)
		i += consumed
	}
	return out.String()
}

func serbianToLatinRune(r []rune, i int) (string, int) {
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
		if ch, ok := next(); ok && (ch == 'в' || ch == 'В') {
			return "W", 1
		}
		return "V", 0
	case 'в':
		if ch, ok := next(); ok && (ch == 'в' || ch == 'В') {
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
	case 'Ђ':
		return "DJ", 0
	case 'ђ':
		return "dj", 0
	case 'Е':
		return "E", 0
	case 'е':
		return "e", 0
	case 'Ж', 'Ј':
		return "J", 0
	case 'ж', 'ј':
		return "j", 0
	case 'З':
		return "Z", 0
	case 'з':
		return "z", 0
	case 'И':
		if ch, ok := next(); ok && (ch == 'и' || ch == 'И') {
			return "Y", 1
		}
		return "I", 0
	case 'и':
		if ch, ok := next(); ok && (ch == 'и' || ch == 'И') {
			return "y", 1
		}
		return "i", 0
	case 'Ћ':
		return "C", 0
	case 'ћ':
		return "c", 0
	case 'К':
		if ch, ok := next(); ok {
			switch ch {
			case 'с', 'С':
				return "X", 1
			case 'и', 'И':
				if ch2, ok := nextN(2); ok && (ch2 == 'у' || ch2 == 'У') {
					return "Q", 2
				}
				return "K", 0
			}
		}
		return "K", 0
	case 'к':
		if ch, ok := next(); ok {
			switch ch {
			case 'с', 'С':
				return "x", 1
			case 'и', 'И':
				if ch2, ok := nextN(2); ok && (ch2 == 'у' || ch2 == 'У') {
					return "q", 2
				}
				return "k", 0
			}
		}
		return "k", 0
	case 'Л':
		return "L", 0
	case 'л':
		return "l", 0
	case 'Љ':
		return "LJ", 0
	case 'љ':
		return "lj", 0
	case 'М':
		return "M", 0
	case 'м':
		return "m", 0
	case 'Н':
		return "N", 0
	case 'н':
		return "n", 0
	case 'Њ':
		return "NJ", 0
	case 'њ':
		return "nj", 0
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
	case 'Ч':
		return "CH", 0
	case 'ч':
		return "ch", 0
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
	case 'Џ':
		return "DZ", 0
	case 'џ':
		return "dz", 0
	case 'Ш':
		return "SH", 0
	case 'ш':
		return "sh", 0
	default:
		return string(r[i]), 0
	}
}

func (serbianTranslator) ToSource(input string) string {
	r := []rune(input)
	var out strings.Builder
	for i := 0; i < len(r); i++ {
		emit, consumed := serbianToSourceRune(r, i)
		out.WriteString(emit)
		i += consumed
	}
	return out.String()
}

func serbianToSourceRune(r []rune, i int) (string, int) {
	next := func() (rune, bool) {
		if i+1 < len(r) {
			return r[i+1], true
		}
		return 0, false
	}
	isH := func(ch rune) bool { return ch == 'h' || ch == 'H' }
	isJ := func(ch rune) bool { return ch == 'j' || ch == 'J' }

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
		if ch, ok := next(); ok {
			switch {
			case isJ(ch):
				return "Ђ", 1
			case ch == 'Z' || ch == 'z':
				return "Џ", 1
			}
		}
		return "Д", 0
	case 'd':
		if ch, ok := next(); ok {
			switch {
			case isJ(ch):
				return "ђ", 1
			case ch == 'Z' || ch == 'z':
				return "џ", 1
			}
		}
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
		return "И", 0
	case 'i':
		return "и", 0
	case 'J':
		return "Ј", 0
	case 'j':
		return "ј", 0
	case 'K':
		return "К", 0
	case 'k':
		return "к", 0
	case 'L':
		if ch, ok := next(); ok && isJ(ch) {
			return "Љ", 1
		}
		return "Л", 0
	case 'l':
		if ch, ok := next(); ok && isJ(ch) {
			return "љ", 1
		}
		return "л", 0
	case 'M':
		return "М", 0
	case 'm':
		return "м", 0
	case 'N':
		if ch, ok := next(); ok && isJ(ch) {
			return "Њ", 1
		}
		return "Н", 0
	case 'n':
		if ch, ok := next(); ok && isJ(ch) {
			return "њ", 1
		}
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
		return "КИУ", 0
	case 'q':
		return "киу", 0
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
		return "ВВ", 0
	case 'w':
		return "вв", 0
	case 'X':
		return "КС", 0
	case 'x':
		return "кс", 0
	case 'Y':
		return "ИИ", 0
	case 'y':
		return "ии", 0
	case 'Z':
		return "З", 0
	case 'z':
		return "з", 0
	default:
		return string(r[i]), 0
	}
}
