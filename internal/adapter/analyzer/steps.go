package analyzer

import "strings"

func step1a(word string) (string, error) {
	switch {
	case EndsWithAny(word, "sses", "ies"):
		return word[:len(word)-2], nil
	case strings.HasSuffix(word, "ss"):
		return word, nil
	case strings.HasSuffix(word, "s"):
		return word[:len(word)-1], nil
	}
	return word, nil
}

func step1b(word string) (string, error) {
	if strings.HasSuffix(word, "eed") {
		stem := strings.TrimSuffix(word, "eed")
		m, err := WordMeasure(stem)
		if err != nil {
			return "", err
		}
		if m > 0 {
			// agreed -> agree, feed stays feed
			return stem + "ee", nil
		}
		return word, nil
	}

	for _, suffix := range step1bSuffixes {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, suffix)
		if !HasVowel(stem) {
			return word, nil
		}
		return restoreStem1b(stem)
	}

	return word, nil
}

// restoreStem1b tidies a stem left by removing -ed or -ing so that later
// steps see a regular ending.
func restoreStem1b(stem string) (string, error) {
	if EndsWithAny(stem, "at", "bl", "iz") {
		return stem + "e", nil
	}
	if EndsWithDoubleConsonant(stem) && !EndsWithAny(stem, "l", "s", "z") {
		return stem[:len(stem)-1], nil
	}

	m, err := WordMeasure(stem)
	if err != nil {
		return "", err
	}
	if m == 1 && EndsCVC(stem) {
		return stem + "e", nil
	}
	return stem, nil
}

func step1c(word string) (string, error) {
	if HasVowel(word) && strings.HasSuffix(word, "y") {
		return word[:len(word)-1] + "i", nil
	}
	return word, nil
}

func step2(word string) (string, error) {
	return replaceSuffix(word, step2Rules, 0)
}

func step3(word string) (string, error) {
	return replaceSuffix(word, step3Rules, 0)
}

func step4(word string) (string, error) {
	for _, rule := range step4Rules {
		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, rule.suffix)
		if rule.suffix == "ion" && !EndsWithAny(stem, "s", "t") {
			return word, nil
		}
		return applyIfMeasure(word, stem, rule.replacement, 1)
	}
	return word, nil
}

func step5a(word string) (string, error) {
	if !strings.HasSuffix(word, "e") {
		return word, nil
	}

	stem := word[:len(word)-1]
	m, err := WordMeasure(stem)
	if err != nil {
		return "", err
	}
	if m > 1 || (m == 1 && !EndsCVC(stem)) {
		return stem, nil
	}
	return word, nil
}

func step5b(word string) (string, error) {
	if !EndsWithDoubleConsonant(word) || !strings.HasSuffix(word, "l") {
		return word, nil
	}

	m, err := WordMeasure(word)
	if err != nil {
		return "", err
	}
	if m > 1 {
		return word[:len(word)-1], nil
	}
	return word, nil
}

// replaceSuffix applies the first rule whose suffix ends word, provided the
// remaining stem has a measure above minMeasure. Later rules are never tried.
func replaceSuffix(word string, rules []suffixRule, minMeasure int) (string, error) {
	for _, rule := range rules {
		if strings.HasSuffix(word, rule.suffix) {
			stem := strings.TrimSuffix(word, rule.suffix)
			return applyIfMeasure(word, stem, rule.replacement, minMeasure)
		}
	}
	return word, nil
}

func applyIfMeasure(word, stem, replacement string, minMeasure int) (string, error) {
	m, err := WordMeasure(stem)
	if err != nil {
		return "", err
	}
	if m > minMeasure {
		return stem + replacement, nil
	}
	return word, nil
}
