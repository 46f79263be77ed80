// Package tokenize segments text into lexicon terms and fallback words.
//
// Rules:
//  1. Skip non-alphabetic bytes to find the next token start.
//  2. Among the terms that match there (ASCII case-insensitive) and are
//     followed by a non-alphabetic byte or the end of text, take the longest.
//     Equal lengths keep the term added to the lexicon first.
//  3. A match emits the term's own spelling and skips the non-alphabetic run
//     after it.
//  4. Otherwise the whitespace-delimited run at the start is emitted verbatim,
//     punctuation included, and the whitespace after it is skipped.
package tokenize

import (
	"sort"

	"github.com/corey/hue/internal/domain/lexicon"
	"github.com/corey/hue/internal/ports"
)

// Tokenizer matches text against a fixed term list.
type Tokenizer struct {
	terms   []string
	scanner ports.TermScanner
}

// New builds a tokenizer for terms. A nil scanner uses the linear scanner.
func New(terms []string, scanner ports.TermScanner) (*Tokenizer, error) {
	if scanner == nil {
		scanner = &LinearScanner{}
	}
	t := &Tokenizer{
		terms:   append([]string(nil), terms...),
		scanner: scanner,
	}
	if err := scanner.Build(t.terms); err != nil {
		return nil, err
	}
	return t, nil
}

// ForTable builds a tokenizer over the terms of table, in insertion order.
func ForTable(table *lexicon.TermTable, scanner ports.TermScanner) (*Tokenizer, error) {
	return New(table.Terms(), scanner)
}

// Tokenize returns the token sequence for text using the linear scanner.
func Tokenize(text string, table *lexicon.TermTable) ([]string, error) {
	t, err := ForTable(table, nil)
	if err != nil {
		return nil, err
	}
	return t.Tokenize(text), nil
}

// Tokenize segments text. Text without alphabetic bytes yields no tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	candidates := t.candidates(text)

	var tokens []string
	n := len(text)
	pos := skipNonAlpha(text, 0)
	for pos < n {
		best, bestLen := -1, 0
		for _, ti := range candidates[pos] {
			l := len(t.terms[ti])
			if pos+l < n && isAlpha(text[pos+l]) {
				continue
			}
			if l > bestLen {
				best, bestLen = ti, l
			}
		}

		if best >= 0 {
			tokens = append(tokens, t.terms[best])
			pos = skipNonAlpha(text, pos+bestLen)
			continue
		}

		end := pos
		for end < n && !isSpace(text[end]) {
			end++
		}
		tokens = append(tokens, text[pos:end])
		pos = skipNonAlpha(text, skipSpace(text, end))
	}
	return tokens
}

// candidates groups scanner matches by start offset, each group ordered by
// term index so ties resolve to the earliest term.
func (t *Tokenizer) candidates(text string) map[int][]int {
	matches := t.scanner.Scan(text)
	if len(matches) == 0 {
		return nil
	}
	byStart := make(map[int][]int)
	for _, m := range matches {
		if m.Term < 0 || m.Term >= len(t.terms) || m.End-m.Start != len(t.terms[m.Term]) {
			continue
		}
		byStart[m.Start] = append(byStart[m.Start], m.Term)
	}
	for _, group := range byStart {
		sort.Ints(group)
	}
	return byStart
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func skipNonAlpha(s string, i int) int {
	for i < len(s) && !isAlpha(s[i]) {
		i++
	}
	return i
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}
