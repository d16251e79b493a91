package analyzer

import "strings"

// EndsWithAny reports whether word ends with one of suffixes.
func EndsWithAny(word string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}

// HasVowel reports whether any character of word is a vowel (*v*).
func HasVowel(word string) bool {
	for i := 0; i < len(word); i++ {
		if Classify(word[i]) == Vowel {
			return true
		}
	}
	return false
}

// EndsWithDoubleConsonant reports whether word ends with two identical
// consonants (*d).
func EndsWithDoubleConsonant(word string) bool {
	n := len(word)
	if n < 2 {
		return false
	}
	return word[n-1] == word[n-2] && Classify(word[n-1]) == Consonant
}

// EndsCVC reports whether word ends consonant-vowel-consonant where the final
// consonant is not w, x or y (*o).
func EndsCVC(word string) bool {
	n := len(word)
	if n < 3 {
		return false
	}
	// Both outer letters must be consonants before the middle is looked at.
	if Classify(word[n-3]) != Consonant || Classify(word[n-1]) != Consonant {
		return false
	}
	if Classify(word[n-2]) != Vowel {
		return false
	}

	switch word[n-1] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}
