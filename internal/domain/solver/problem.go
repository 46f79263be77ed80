// Package solver assigns highlight colours to a token sequence.
//
// Four strategies share the Problem/Solution types:
//
//	A  independent per-token maximum (no transitions)
//	B  greedy left to right, using only the already chosen previous colour
//	E  sequence-wide dynamic programming; reports the optimal score only
//	F  reserved; returns an unset solution
//
// SolveExhaustive enumerates every colouring and is the reference E is
// checked against.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/corey/hue/internal/domain/lexicon"
	"github.com/corey/hue/internal/domain/tokenize"
)

var (
	// ErrUnknownVariant is returned for a variant letter with no optimizer.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrMissingTransitions is returned when a variant that scores colour
	// changes is given no transition table.
	ErrMissingTransitions = errors.New("variant needs a transition table")
)

// Variant selects the optimizer.
type Variant byte

const (
	VariantA Variant = 'A'
	VariantB Variant = 'B'
	VariantE Variant = 'E'
	VariantF Variant = 'F'
)

// Variants lists the supported variants in order.
var Variants = []Variant{VariantA, VariantB, VariantE, VariantF}

// ParseVariant accepts "a", "B", "e", ... (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
	v := Variant(strings.ToUpper(s)[0])
	for _, known := range Variants {
		if v == known {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

func (v Variant) String() string {
	return string(rune(v))
}

// NeedsTransitions reports whether v scores colour changes.
func (v Variant) NeedsTransitions() bool {
	return v == VariantB || v == VariantE || v == VariantF
}

// ReportsScore reports whether v's answer is a score rather than colours.
func (v Variant) ReportsScore() bool {
	return v == VariantE
}

// Problem is a tokenized text plus the tables to score it with. It is not
// modified after construction.
type Problem struct {
	Text        string
	Tokens      []string
	Terms       *lexicon.TermTable
	Transitions *lexicon.TransitionTable // nil for variant A
	Variant     Variant
}

// NewProblem tokenizes text and assembles a problem for variant v. Variant A
// ignores transitions; the other variants require them.
func NewProblem(v Variant, text string, tok *tokenize.Tokenizer, terms *lexicon.TermTable, transitions *lexicon.TransitionTable) (*Problem, error) {
	if _, ok := optimizers[v]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v.String())
	}
	if v.NeedsTransitions() && transitions == nil {
		return nil, fmt.Errorf("variant %s: %w", v, ErrMissingTransitions)
	}
	if !v.NeedsTransitions() {
		transitions = nil
	}
	return &Problem{
		Text:        text,
		Tokens:      tok.Tokenize(text),
		Terms:       terms,
		Transitions: transitions,
		Variant:     v,
	}, nil
}

func (p *Problem) scoreFor(i int, c lexicon.Colour) lexicon.Score {
	return p.Terms.ScoreFor(p.Tokens[i], c)
}

// Solution holds one optional colour per token and an optional score.
type Solution struct {
	colours  []lexicon.Colour
	assigned []bool

	Score lexicon.Score
}

// NewSolution returns an unset solution for n tokens.
func NewSolution(n int) Solution {
	return Solution{
		colours:  make([]lexicon.Colour, n),
		assigned: make([]bool, n),
	}
}

// Len returns the number of tokens.
func (s Solution) Len() int {
	return len(s.colours)
}

// Colour returns the colour of token i and whether one was assigned.
func (s Solution) Colour(i int) (lexicon.Colour, bool) {
	if i < 0 || i >= len(s.colours) {
		return 0, false
	}
	return s.colours[i], s.assigned[i]
}

// Colours returns the assigned colours, or nil unless every token has one.
func (s Solution) Colours() []lexicon.Colour {
	for _, ok := range s.assigned {
		if !ok {
			return nil
		}
	}
	return append([]lexicon.Colour{}, s.colours...)
}

func (s *Solution) assign(i int, c lexicon.Colour) {
	s.colours[i] = c
	s.assigned[i] = true
}
