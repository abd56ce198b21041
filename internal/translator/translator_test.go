package translator

import "testing"

func TestRussianToLatin(t *testing.T) {
	tr := New(Russian)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ls dash l", "лс -л", "ls -l"},
		{
			"ifconfig command",
			"ифконфиг этх0 аддрэсс 192.168.1.30 нэтмаскъ 255.255.255.0",
			"ifconfig eth0 address 192.168.1.30 netmask 255.255.255.0",
		},
		{"k before a maps to c", "как", "cak"},
		{"k before space maps to k", "к о", "k o"},
		{"hard and soft signs", "ъьЪЬ", "'`'`"},
		{"currency and number signs", "№ ₽", "# $"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.ToLatin(tt.input); got != tt.want {
				t.Errorf("ToLatin(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRussianToSource(t *testing.T) {
	tr := New(Russian)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"shell", "shell", "шэлл"},
		{"tsunami", "tsunami", "цунами"},
		{"gin and games", "gin and games", "джин анд гамэс"},
		{"giulia", "giulia", "джюля"},
		{"channel", "channel", "чаннэл"},
		{"yacc", "yacc", "ыакк"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.ToSource(tt.input); got != tt.want {
				t.Errorf("ToSource(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSerbianToLatin(t *testing.T) {
	tr := New(Serbian)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"full alphabet sweep",
			"АБВВВГДЂЕЖЈЗИИИЋККСКИУЛЉМНЊОПРСТЧУФХЦЏШ",
			"ABWVGDDJEJJZYICKXQLLJMNNJOPRSTCHUFHTSDZSH",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.ToLatin(tt.input); got != tt.want {
				t.Errorf("ToLatin(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSerbianRoundTrip(t *testing.T) {
	tr := New(Serbian)

	tests := []struct {
		name  string
		latin string
	}{
		{"double v to w", "wifi"},
		{"double i to y", "yes"},
		{"ks to x", "box"},
		{"ku to q", "quiz"},
		{"dj digraph", "django"},
		{"lj digraph", "ljiljan"},
		{"nj digraph", "njegov"},
		{"ch digraph", "channel"},
		{"sh digraph", "shell"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cyr := tr.ToSource(tt.latin)
			back := tr.ToLatin(cyr)
			if back != tt.latin {
				t.Errorf("round trip for %q produced %q (via %q), want %q", tt.latin, back, cyr, tt.latin)
			}
		})
	}
}

func TestBelarusianRoundTrip(t *testing.T) {
	tr := New(Belarusian)

	tests := []struct {
		name  string
		latin string
	}{
		{"basic word", "dobry"},
		{"soft sign", "pis'mo"},
		{"w letter", "ow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cyr := tr.ToSource(tt.latin)
			back := tr.ToLatin(cyr)
			if back != tt.latin {
				t.Errorf("round trip for %q produced %q (via %q), want %q", tt.latin, back, cyr, tt.latin)
			}
		})
	}
}

func TestBulgarianToLatin(t *testing.T) {
	tr := New(Bulgarian)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"yer vowel", "ъгъл", "agal"},
		{"sht digraph", "пощенски", "poshtenski"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.ToLatin(tt.input); got != tt.want {
				t.Errorf("ToLatin(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUkrainianToLatin(t *testing.T) {
	tr := New(Ukrainian)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"hard g and soft g", "Ґанна і гриб", "Ganna i hryb"},
		{"shch digraph", "щось", "shchos'"},
		{"yi letter", "їжак", "yizhak"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.ToLatin(tt.input); got != tt.want {
				t.Errorf("ToLatin(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNilTranslatorPassesThrough(t *testing.T) {
	tr := New(Nil)

	input := "привет hello 123"
	if got := tr.ToLatin(input); got != input {
		t.Errorf("ToLatin(%q) = %q, want unchanged", input, got)
	}
	if got := tr.ToSource(input); got != input {
		t.Errorf("ToSource(%q) = %q, want unchanged", input, got)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Language
		wantErr bool
	}{
		{"russian short alias", "ru", Russian, false},
		{"russian cyrillic alias", "рус", Russian, false},
		{"belarusian alias", "by", Belarusian, false},
		{"bulgarian alias", "bg", Bulgarian, false},
		{"ukrainian alias", "uk", Ukrainian, false},
		{"serbian alias", "rs", Serbian, false},
		{"empty string is nil", "", Nil, false},
		{"unrecognized language", "xx", Nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLanguage(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLanguage(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
