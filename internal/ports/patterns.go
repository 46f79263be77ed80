package ports

// TermScanner finds occurrences of lexicon terms in text. The tokenizer uses
// it to discover candidate matches; it still applies the word-boundary and
// longest-match rules itself.
//
// Matching is ASCII case-insensitive. Overlapping occurrences must all be
// reported, including several terms starting at the same offset.
type TermScanner interface {
	// Build compiles the scanner for terms, replacing any previous set.
	// TermMatch.Term indexes into this slice. When two terms are equal
	// ignoring case, the lower index must be among the reported matches.
	Build(terms []string) error

	// Scan returns every occurrence of every term in text, in no particular
	// order. Returns nil when nothing matches or before Build.
	Scan(text string) []TermMatch
}

// TermMatch is a single term occurrence in scanned text.
type TermMatch struct {
	Term  int // index into the slice passed to Build
	Start int // byte offset, inclusive
	End   int // byte offset, exclusive
}
