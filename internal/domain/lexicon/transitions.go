package lexicon

// Transition is a directed, scored edge between the colour of one token and
// the colour of the next.
type Transition struct {
	Prev   Colour
	Colour Colour
	Score  int
}

type colourPair struct {
	prev, colour Colour
}

// TransitionTable scores colour changes between adjacent tokens. The first
// edge added for a pair wins; later duplicates are kept in Edges but never
// returned by lookups. A nil table is empty.
type TransitionTable struct {
	edges []Transition
	index map[colourPair]int
}

// NewTransitionTable returns an empty table.
func NewTransitionTable() *TransitionTable {
	return &TransitionTable{index: make(map[colourPair]int)}
}

// Add appends an edge.
func (t *TransitionTable) Add(prev, c Colour, score int) {
	t.edges = append(t.edges, Transition{Prev: prev, Colour: c, Score: score})
	key := colourPair{prev, c}
	if _, ok := t.index[key]; !ok {
		t.index[key] = len(t.edges) - 1
	}
}

// Lookup returns the score recorded for (prev, c).
func (t *TransitionTable) Lookup(prev, c Colour) (int, bool) {
	if t == nil {
		return 0, false
	}
	i, ok := t.index[colourPair{prev, c}]
	if !ok {
		return 0, false
	}
	return t.edges[i].Score, true
}

// Score returns the transition score for (prev, c). A missing edge is
// neutral and scores 0.
func (t *TransitionTable) Score(prev, c Colour) int {
	s, _ := t.Lookup(prev, c)
	return s
}

// Len returns the number of edges, duplicates included.
func (t *TransitionTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.edges)
}

// Edges returns a copy of the edges in insertion order.
func (t *TransitionTable) Edges() []Transition {
	if t == nil {
		return nil
	}
	return append([]Transition(nil), t.edges...)
}
