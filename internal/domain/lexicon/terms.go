package lexicon

import (
	"errors"
	"fmt"
)

// ErrEmptyTerm is returned when a term with no characters is added.
var ErrEmptyTerm = errors.New("empty term")

// Entry is one term with its per-colour scores. Scores is indexed by colour
// and may be shorter than NumColours or longer (colours outside the palette
// are stored but never asked for by the optimizers).
type Entry struct {
	Term   string
	Scores []Score
}

// Score returns the entry's score for c, or NoData.
func (e *Entry) Score(c Colour) Score {
	if c < 0 || int(c) >= len(e.Scores) {
		return NoData
	}
	return e.Scores[c]
}

func (e *Entry) set(c Colour, score int) {
	if int(c) >= len(e.Scores) {
		grown := make([]Score, int(c)+1)
		copy(grown, e.Scores)
		e.Scores = grown
	}
	e.Scores[c] = Some(score)
}

// colours returns the set of colours e has a score for.
func (e *Entry) colours() map[Colour]bool {
	set := make(map[Colour]bool, len(e.Scores))
	for c, s := range e.Scores {
		if s.Valid() {
			set[Colour(c)] = true
		}
	}
	return set
}

// TermTable maps terms to their colour scores. Entries keep insertion order,
// which the tokenizer relies on to break ties between equal-length matches.
// Term keys are case-sensitive.
type TermTable struct {
	entries []*Entry
	byTerm  map[string]*Entry

	// last is the entry of the current row group; frozen holds the colours
	// it already had when the group started, which the group cannot replace.
	last   *Entry
	frozen map[Colour]bool
}

// NewTermTable returns an empty table.
func NewTermTable() *TermTable {
	return &TermTable{byTerm: make(map[string]*Entry)}
}

// Add records score for (term, c).
//
// Rows are expected grouped by term. Within a group a later row overwrites an
// earlier score for the same colour. A group for a term seen in an earlier
// group is merged into that entry but never replaces a colour the earlier
// groups set.
func (t *TermTable) Add(term string, c Colour, score int) error {
	if term == "" {
		return ErrEmptyTerm
	}
	if c < 0 {
		return fmt.Errorf("term %q: negative colour %d", term, c)
	}
	if c > MaxColour {
		return fmt.Errorf("term %q: colour %d above %d", term, c, MaxColour)
	}

	if t.last == nil || t.last.Term != term {
		e, ok := t.byTerm[term]
		if ok {
			t.frozen = e.colours()
		} else {
			e = &Entry{Term: term}
			t.entries = append(t.entries, e)
			t.byTerm[term] = e
			t.frozen = nil
		}
		t.last = e
	}

	if t.frozen[c] {
		return nil
	}
	t.last.set(c, score)
	return nil
}

// Len returns the number of distinct terms.
func (t *TermTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Terms returns the term strings in insertion order.
func (t *TermTable) Terms() []string {
	if t == nil {
		return nil
	}
	terms := make([]string, len(t.entries))
	for i, e := range t.entries {
		terms[i] = e.Term
	}
	return terms
}

// Entries returns copies of the entries in insertion order.
func (t *TermTable) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Term: e.Term, Scores: append([]Score(nil), e.Scores...)}
	}
	return out
}

// Lookup returns the entry for term.
func (t *TermTable) Lookup(term string) (*Entry, bool) {
	if t == nil {
		return nil, false
	}
	e, ok := t.byTerm[term]
	return e, ok
}

// ScoreFor returns the score of term under colour c. Unknown terms, unset
// colours and colours outside the stored range are NoData.
func (t *TermTable) ScoreFor(term string, c Colour) Score {
	e, ok := t.Lookup(term)
	if !ok {
		return NoData
	}
	return e.Score(c)
}
