// Package ahocorasick implements ports.TermScanner with an Aho-Corasick
// automaton. It wraps the petar-dambovaliev/aho-corasick library so a whole
// lexicon is matched against the text in one O(n + m + z) pass.
package ahocorasick

import (
	"fmt"

	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/corey/hue/internal/ports"
)

// Scanner finds all case-insensitive, overlapping term occurrences.
type Scanner struct {
	automaton aho.AhoCorasick
	// owners maps an automaton pattern index to the lowest term index whose
	// ASCII-folded spelling it represents.
	owners []int
	built  bool
}

// NewScanner returns a scanner built for terms.
func NewScanner(terms []string) (*Scanner, error) {
	s := &Scanner{}
	if err := s.Build(terms); err != nil {
		return nil, err
	}
	return s, nil
}

// Build compiles the automaton. Terms equal ignoring ASCII case share one
// pattern, owned by the first of them.
func (s *Scanner) Build(terms []string) error {
	patterns := make([]string, 0, len(terms))
	owners := make([]int, 0, len(terms))
	seen := make(map[string]bool, len(terms))
	for i, term := range terms {
		if term == "" {
			return fmt.Errorf("term %d is empty", i)
		}
		folded := foldASCII(term)
		if seen[folded] {
			continue
		}
		seen[folded] = true
		patterns = append(patterns, folded)
		owners = append(owners, i)
	}

	s.owners = owners
	s.built = true
	if len(patterns) == 0 {
		s.automaton = aho.AhoCorasick{}
		return nil
	}

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		AsciiCaseInsensitive: true,
		MatchKind:            aho.StandardMatch,
		DFA:                  true,
	})
	s.automaton = builder.Build(patterns)
	return nil
}

// Scan reports every occurrence of every term in text.
func (s *Scanner) Scan(text string) []ports.TermMatch {
	if !s.built || len(s.owners) == 0 || text == "" {
		return nil
	}
	iter := s.automaton.IterOverlappingByte([]byte(text))
	var matches []ports.TermMatch
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		matches = append(matches, ports.TermMatch{
			Term:  s.owners[m.Pattern()],
			Start: m.Start(),
			End:   m.End(),
		})
	}
	return matches
}

// PatternCount returns the number of distinct patterns in the automaton.
func (s *Scanner) PatternCount() int {
	return len(s.owners)
}

// foldASCII lowercases ASCII letters only, leaving other bytes alone so byte
// offsets and lengths are preserved.
func foldASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
