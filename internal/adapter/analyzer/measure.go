package analyzer

// Measure counts the vowel-run to consonant-run transitions in runs,
// the m of [C](VC)^m[V].
func Measure(runs []Run) int {
	prev := KindNone
	m := 0

	for _, r := range runs {
		if prev == Vowel && r.Kind == Consonant {
			m++
		}
		prev = r.Kind
	}

	return m
}

// WordMeasure segments word and returns its measure.
func WordMeasure(word string) (int, error) {
	runs, err := Segment(word)
	if err != nil {
		return 0, err
	}
	return Measure(runs), nil
}
