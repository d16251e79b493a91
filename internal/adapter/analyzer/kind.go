package analyzer

// Kind classifies a letter, or a run of letters, for the Porter rules.
type Kind int

const (
	KindNone Kind = iota
	Consonant
	Vowel
)

func (k Kind) String() string {
	switch k {
	case Consonant:
		return "C"
	case Vowel:
		return "V"
	default:
		return "-"
	}
}

// Classify maps a lowercase ASCII letter to Consonant or Vowel.
// The consonant set is fixed; every other letter, y included, is a vowel.
func Classify(c byte) Kind {
	switch c {
	case 'b', 'c', 'd', 'f', 'g', 'h', 'j', 'k', 'l', 'm',
		'n', 'p', 'q', 'r', 's', 't', 'v', 'w', 'x', 'z':
		return Consonant
	}
	return Vowel
}
