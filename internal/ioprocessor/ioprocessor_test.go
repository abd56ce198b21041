package ioprocessor

import (
	"testing"

	"github.com/chrisvisintin/pyc-go/internal/translator"
)

func TestExpressionToLatinPreservesQuotedRegion(t *testing.T) {
	p := New(translator.New(translator.Russian))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"quoted filename kept literal",
			`тоуч "фообар.ткст"`,
			`touch "фообар.ткст"`,
		},
		{
			"entirely unquoted",
			"лс -л",
			"ls -l",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ExpressionToLatin(tt.input); got != tt.want {
				t.Errorf("ExpressionToLatin(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpressionRoundTrip(t *testing.T) {
	p := New(translator.New(translator.Russian))

	input := `эчо "Hello, World!" анд дате`
	latin := p.ExpressionToLatin(input)
	back := p.ExpressionToSource(latin)
	if back != input {
		t.Errorf("round trip: got %q (via %q), want %q", back, latin, input)
	}
}

func TestUnbalancedTrailingQuoteClosesAtEOF(t *testing.T) {
	p := New(translator.New(translator.Russian))

	got := p.ExpressionToLatin(`эчо "нэ законченъ`)
	want := `echo "нэ законченъ`
	if got != want {
		t.Errorf("ExpressionToLatin = %q, want %q", got, want)
	}
}

func TestTextToLatinPreservesANSI(t *testing.T) {
	p := New(translator.New(translator.Russian))

	input := "\x1b[31mЭРРОР\x1b[0m"
	got := p.TextToLatin(input)
	want := "\x1b[31mERROR\x1b[0m"
	if got != want {
		t.Errorf("TextToLatin(%q) = %q, want %q", input, got, want)
	}
}

func TestTextToLatinANSIAtBoundaries(t *testing.T) {
	p := New(translator.New(translator.Russian))

	input := "\x1b[1;31mабс\x1b[0mдоп"
	got := p.TextToLatin(input)
	want := "\x1b[1;31mabs\x1b[0mdop"
	if got != want {
		t.Errorf("TextToLatin(%q) = %q, want %q", input, got, want)
	}
}

func TestExpressionEscapedQuoteDoesNotToggle(t *testing.T) {
	p := New(translator.New(translator.Russian))

	got := p.ExpressionToLatin(`эчо \"нэ`)
	want := `echo \"ne`
	if got != want {
		t.Errorf("ExpressionToLatin = %q, want %q", got, want)
	}
}
