package tokenize

import "github.com/corey/hue/internal/ports"

// LinearScanner implements ports.TermScanner by comparing every term at every
// offset. It is the reference the automaton-backed scanner is tested against
// and is fast enough for small lexicons.
type LinearScanner struct {
	terms []string
}

// Build records the terms to scan for.
func (s *LinearScanner) Build(terms []string) error {
	s.terms = append([]string(nil), terms...)
	return nil
}

// Scan reports every case-insensitive occurrence of every term.
func (s *LinearScanner) Scan(text string) []ports.TermMatch {
	var matches []ports.TermMatch
	for start := 0; start < len(text); start++ {
		for i, term := range s.terms {
			end := start + len(term)
			if term == "" || end > len(text) {
				continue
			}
			if equalFoldASCII(text[start:end], term) {
				matches = append(matches, ports.TermMatch{Term: i, Start: start, End: end})
			}
		}
	}
	return matches
}

// equalFoldASCII compares a and b ignoring ASCII case only; other bytes must
// be identical.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
