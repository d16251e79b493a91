package domain

import "time"

// Document is a file whose words have been stemmed into the index.
type Document struct {
	ID      string
	Path    string
	ModTime time.Time
	Forms   []Form
}

// Form is a surface word seen in a document, with its stem.
type Form struct {
	Word  string `json:"word"`
	Stem  string `json:"stem"`
	Count int    `json:"count"`
}

// StemGroup gathers every surface form that reduces to Stem.
type StemGroup struct {
	Stem  string         `json:"stem"`
	Forms map[string]int `json:"forms"`
	Total int            `json:"total"`
}

type Stats struct {
	TotalDocs   int `json:"total_docs"`
	TotalGroups int `json:"total_groups"`
	TotalTokens int `json:"total_tokens"`
}

// Comparison is the stem of one word under two algorithms.
type Comparison struct {
	Word     string `json:"word"`
	Porter   string `json:"porter"`
	Snowball string `json:"snowball"`
	Agree    bool   `json:"agree"`
}

// Term is one token of a text: the normalised surface word and its stem.
type Term struct {
	Word string
	Stem string
}
