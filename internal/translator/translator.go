package translator

// Translator offers two pure, total operations over a single Cyrillic
// alphabet: ToLatin and ToSource. Both are deterministic and stateless;
// unknown characters (punctuation, digits, whitespace, other scripts) pass
// through unchanged.
type Translator interface {
	ToLatin(input string) string
	ToSource(input string) string
}

// New instantiates the Translator for the given Language, dispatched once
// at startup through a thin capability rather than open-ended runtime
// extension.
func New(lang Language) Translator {
	switch lang {
	case Russian:
		return russianTranslator{}
	case Belarusian:
		return belarusianTranslator{}
	case Bulgarian:
		return bulgarianTranslator{}
	case Ukrainian:
		return ukrainianTranslator{}
	case Serbian:
		return serbianTranslator{}
	default:
		return nilTranslator{}
	}
}

// nilTranslator performs no transliteration; it exists for oneshot/test use
// and for the "language: nil" configuration value.
type nilTranslator struct{}

func (nilTranslator) ToLatin(input string) string  { return input }
func (nilTranslator) ToSource(input string) string { return input }
