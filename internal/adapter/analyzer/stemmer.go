package analyzer

// PorterStemmer implements the Porter stemming algorithm.
//
// Input words must already be lowercase ASCII letters; tokenization and
// case folding belong to the caller (see Tokenizer). The stemmer holds no
// state and is safe for concurrent use.
type PorterStemmer struct{}

// NewPorterStemmer creates a new Porter stemmer.
func NewPorterStemmer() *PorterStemmer {
	return &PorterStemmer{}
}

type step struct {
	name  string
	apply func(string) (string, error)
}

// Every step takes the current word and returns a new one. Runs and
// measures are derived from the string passed in, never carried over.
var pipeline = []step{
	{"1a", step1a},
	{"1b", step1b},
	{"1c", step1c},
	{"2", step2},
	{"3", step3},
	{"4", step4},
	{"5a", step5a},
	{"5b", step5b},
}

// Stem returns the stem of a word using the Porter algorithm.
func (p *PorterStemmer) Stem(word string) (string, error) {
	var err error
	for _, s := range pipeline {
		if word, err = s.apply(word); err != nil {
			return "", err
		}
	}
	return word, nil
}

// StepResult records the word produced by one step of the pipeline.
type StepResult struct {
	Step    string `json:"step"`
	Word    string `json:"word"`
	Changed bool   `json:"changed"`
}

// Trace stems word like Stem and reports the output of every step.
func (p *PorterStemmer) Trace(word string) ([]StepResult, error) {
	results := make([]StepResult, 0, len(pipeline))
	for _, s := range pipeline {
		next, err := s.apply(word)
		if err != nil {
			return nil, err
		}
		results = append(results, StepResult{Step: s.name, Word: next, Changed: next != word})
		word = next
	}
	return results, nil
}
