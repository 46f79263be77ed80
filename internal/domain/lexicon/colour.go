// Package lexicon holds the two lookup tables the optimizers score against:
// the term table (term -> colour -> score) and the colour transition table
// (previous colour -> colour -> score).
package lexicon

// Colour is a highlight category index. The palette is 0..NumColours-1;
// NoColour doubles as "no highlighting".
type Colour int

const (
	// NumColours is the size of the highlight palette.
	NumColours = 4

	// NoColour is assigned to tokens with no scored colour.
	NoColour Colour = 0

	// Start is the previous colour of the first token. Transition tables may
	// carry entries for it.
	Start Colour = -1

	// MaxColour is the largest colour a term table may score. Colours outside
	// the palette are kept, but one entry holds at most MaxColour+1 slots.
	MaxColour Colour = 1<<16 - 2
)

// Valid reports whether c is inside the palette.
func (c Colour) Valid() bool {
	return c >= 0 && c < NumColours
}

// Palette returns the colours 0..NumColours-1 in scan order.
func Palette() []Colour {
	p := make([]Colour, NumColours)
	for i := range p {
		p[i] = Colour(i)
	}
	return p
}

// Score is an optional integer score. The zero value is NoData, which is
// distinct from a score of 0.
type Score struct {
	value int
	ok    bool
}

// NoData is the absent score.
var NoData = Score{}

// Some returns a present score.
func Some(v int) Score {
	return Score{value: v, ok: true}
}

// Get returns the score and whether it is present.
func (s Score) Get() (int, bool) {
	return s.value, s.ok
}

// Valid reports whether the score is present.
func (s Score) Valid() bool {
	return s.ok
}

// Value returns the score, or 0 when absent. Callers must check Valid first
// when absence matters.
func (s Score) Value() int {
	return s.value
}

// Add returns s+delta, keeping absence.
func (s Score) Add(delta int) Score {
	if !s.ok {
		return s
	}
	return Some(s.value + delta)
}

// Max returns the larger of two scores. An absent score never wins; on a tie
// s is returned.
func (s Score) Max(o Score) Score {
	switch {
	case !o.ok:
		return s
	case !s.ok:
		return o
	case o.value > s.value:
		return o
	default:
		return s
	}
}
