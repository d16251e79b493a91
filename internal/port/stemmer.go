package port

// Stemmer reduces a single lowercase word to its stem.
type Stemmer interface {
	Stem(word string) (string, error)
}
