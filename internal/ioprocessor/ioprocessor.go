// Package ioprocessor applies a translator.Translator to shell input and
// output while leaving ANSI escape sequences and, for command lines,
// double-quoted regions untouched.
package ioprocessor

import (
	"strings"

	"github.com/chrisvisintin/pyc-go/internal/translator"
)

// Processor wraps a translator.Translator with quote-aware and
// ANSI-aware scanning. All of its operations are total: there are no
// error paths, and an unbalanced trailing quote is treated as if it
// closed at end of input.
type Processor struct {
	tr translator.Translator
}

// New builds a Processor over the given translator.
func New(tr translator.Translator) *Processor {
	return &Processor{tr: tr}
}

// TextToLatin transliterates bulk text (shell output) into Latin script,
// copying ANSI CSI sequences through verbatim.
func (p *Processor) TextToLatin(input string) string {
	return p.text(input, p.tr.ToLatin)
}

// TextToSource transliterates bulk text back into the configured
// Cyrillic alphabet, copying ANSI CSI sequences through verbatim.
func (p *Processor) TextToSource(input string) string {
	return p.text(input, p.tr.ToSource)
}

func (p *Processor) text(input string, convert func(string) string) string {
	var out strings.Builder
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			out.WriteString(convert(run.String()))
			run.Reset()
		}
	}

	i := 0
	for i < len(input) {
		if n := ansiSeqLen(input[i:]); n > 0 {
			flush()
			out.WriteString(input[i : i+n])
			i += n
			continue
		}
		run.WriteByte(input[i])
		i++
	}
	flush()
	return out.String()
}

// ExpressionToLatin transliterates a command line into Latin script.
// Double-quoted regions are emitted literally so file names and strings
// the user must keep in Cyrillic survive untouched; ANSI CSI sequences
// also pass through untouched.
func (p *Processor) ExpressionToLatin(input string) string {
	return p.expression(input, p.tr.ToLatin)
}

// ExpressionToSource is the structural inverse of ExpressionToLatin: same
// quote-toggle and ANSI-passthrough scan, translator direction flipped.
func (p *Processor) ExpressionToSource(input string) string {
	return p.expression(input, p.tr.ToSource)
}

func (p *Processor) expression(input string, convert func(string) string) string {
	var out strings.Builder
	var run strings.Builder
	quoted := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if quoted {
			out.WriteString(run.String())
		} else {
			out.WriteString(convert(run.String()))
		}
		run.Reset()
	}

	r := []rune(input)
	for i := 0; i < len(r); i++ {
		if !quoted {
			if n := ansiSeqLen(string(r[i:])); n > 0 {
				flush()
				seq := string(r[i:])[:n]
				out.WriteString(seq)
				i += len([]rune(seq)) - 1
				continue
			}
		}
		if r[i] == '"' && !escaped(r, i) {
			flush()
			out.WriteByte('"')
			quoted = !quoted
			continue
		}
		run.WriteRune(r[i])
	}
	flush()
	return out.String()
}

// escaped reports whether r[i] is preceded by an odd number of
// backslashes, i.e. is itself escaped rather than a literal delimiter.
func escaped(r []rune, i int) bool {
	count := 0
	for j := i - 1; j >= 0 && r[j] == '\\'; j-- {
		count++
	}
	return count%2 == 1
}

// ansiSeqLen returns the byte length of the ANSI CSI sequence starting at
// s, or 0 if s does not start with one. A CSI sequence is ESC '[' followed
// by any number of bytes in the parameter/intermediate range, terminated
// by the first byte in '@'-'~'.
func ansiSeqLen(s string) int {
	if len(s) < 2 || s[0] != 0x1b || s[1] != '[' {
		return 0
	}
	for i := 2; i < len(s); i++ {
		if s[i] >= '@' && s[i] <= '~' {
			return i + 1
		}
	}
	return len(s)
}
