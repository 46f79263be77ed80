package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Term table: per-term colour scores, NoData distinct from zero
// =============================================================================

func TestTermTable_ScoreFor(t *testing.T) {
	tt := NewTermTable()
	require.NoError(t, tt.Add("big", 0, 5))
	require.NoError(t, tt.Add("big", 1, 9))
	require.NoError(t, tt.Add("oh", 2, 0))

	assert.Equal(t, Some(5), tt.ScoreFor("big", 0))
	assert.Equal(t, Some(9), tt.ScoreFor("big", 1))
	assert.Equal(t, NoData, tt.ScoreFor("big", 2))
	assert.Equal(t, NoData, tt.ScoreFor("big", 3))

	// Zero is a real score.
	s := tt.ScoreFor("oh", 2)
	assert.True(t, s.Valid())
	assert.Equal(t, 0, s.Value())

	// Unset colour below a set one.
	assert.False(t, tt.ScoreFor("oh", 0).Valid())
	assert.False(t, tt.ScoreFor("oh", 1).Valid())
}

func TestTermTable_CaseSensitiveLookup(t *testing.T) {
	tt := NewTermTable()
	require.NoError(t, tt.Add("Big", 1, 3))

	assert.True(t, tt.ScoreFor("Big", 1).Valid())
	assert.False(t, tt.ScoreFor("big", 1).Valid())
}

func TestTermTable_OutOfRangeColour(t *testing.T) {
	tt := NewTermTable()
	require.NoError(t, tt.Add("x", 1, 3))

	assert.Equal(t, NoData, tt.ScoreFor("x", Start))
	assert.Equal(t, NoData, tt.ScoreFor("x", 99))
	assert.Equal(t, NoData, tt.ScoreFor("missing", 1))
}

func TestTermTable_ColourBeyondPalette(t *testing.T) {
	tt := NewTermTable()
	require.NoError(t, tt.Add("x", 6, 3))

	e, ok := tt.Lookup("x")
	require.True(t, ok)
	assert.Len(t, e.Scores, 7)
	assert.Equal(t, Some(3), tt.ScoreFor("x", 6))
	for _, c := range Palette() {
		assert.False(t, tt.ScoreFor("x", c).Valid())
	}
}

func TestTermTable_ColourLimit(t *testing.T) {
	tt := NewTermTable()
	require.NoError(t, tt.Add("x", MaxColour, 3))
	assert.Error(t, tt.Add("x", MaxColour+1, 3))
	assert.Error(t, tt.Add("y", 99999999999999, 3))

	e, ok := tt.Lookup("x")
	require.True(t, ok)
	assert.Len(t, e.Scores, int(MaxColour)+1)
	_, ok = tt.Lookup("y")
	assert.False(t, ok)
}

func TestTermTable_ContiguousRowsOverwrite(t *testing.T) {
	tt := NewTermTable()
	require.NoError(t, tt.Add("a", 1, 3))
	require.NoError(t, tt.Add("a", 1, 8))

	assert.Equal(t, Some(8), tt.ScoreFor("a", 1))
	assert.Equal(t, 1, tt.Len())
}

func TestTermTable_RegroupedTermKeepsFirst(t *testing.T) {
	tt := NewTermTable()
	require.NoError(t, tt.Add("a", 1, 3))
	require.NoError(t, tt.Add("b", 0, 1))
	require.NoError(t, tt.Add("a", 1, 8))
	require.NoError(t, tt.Add("a", 2, 4))

	assert.Equal(t, 2, tt.Len())
	assert.Equal(t, []string{"a", "b"}, tt.Terms())
	assert.Equal(t, Some(3), tt.ScoreFor("a", 1), "colour already present keeps first score")
	assert.Equal(t, Some(4), tt.ScoreFor("a", 2), "new colour is merged")
}

func TestTermTable_RejectsBadRows(t *testing.T) {
	tt := NewTermTable()
	assert.ErrorIs(t, tt.Add("", 0, 1), ErrEmptyTerm)
	assert.Error(t, tt.Add("a", -2, 1))
	assert.Equal(t, 0, tt.Len())
}

func TestTermTable_EntriesAreCopies(t *testing.T) {
	tt := NewTermTable()
	require.NoError(t, tt.Add("a", 0, 1))

	entries := tt.Entries()
	entries[0].Scores[0] = Some(100)
	assert.Equal(t, Some(1), tt.ScoreFor("a", 0))
}

func TestTermTable_NilIsEmpty(t *testing.T) {
	var tt *TermTable
	assert.Equal(t, 0, tt.Len())
	assert.Nil(t, tt.Terms())
	assert.Equal(t, NoData, tt.ScoreFor("a", 0))
}

// =============================================================================
// Transition table: first match wins, absence is neutral
// =============================================================================

func TestTransitionTable_Score(t *testing.T) {
	tr := NewTransitionTable()
	tr.Add(Start, 1, 4)
	tr.Add(1, 1, -3)
	tr.Add(1, 2, 6)

	assert.Equal(t, 4, tr.Score(Start, 1))
	assert.Equal(t, -3, tr.Score(1, 1))
	assert.Equal(t, 6, tr.Score(1, 2))
	assert.Equal(t, 0, tr.Score(2, 1), "absent edge is neutral")

	_, ok := tr.Lookup(2, 1)
	assert.False(t, ok)
}

func TestTransitionTable_FirstMatchWins(t *testing.T) {
	tr := NewTransitionTable()
	tr.Add(0, 1, 2)
	tr.Add(0, 1, 50)

	assert.Equal(t, 2, tr.Score(0, 1))
	assert.Equal(t, 2, tr.Len())
	assert.Len(t, tr.Edges(), 2)
}

func TestTransitionTable_Nil(t *testing.T) {
	var tr *TransitionTable
	assert.Equal(t, 0, tr.Score(0, 1))
	assert.Equal(t, 0, tr.Len())
	assert.Nil(t, tr.Edges())
}

// =============================================================================
// Score optional
// =============================================================================

func TestScore_Max(t *testing.T) {
	assert.Equal(t, Some(3), Some(3).Max(NoData))
	assert.Equal(t, Some(3), NoData.Max(Some(3)))
	assert.Equal(t, NoData, NoData.Max(NoData))
	assert.Equal(t, Some(5), Some(3).Max(Some(5)))
	assert.Equal(t, Some(-1), Some(-1).Max(Some(-4)))
}

func TestScore_Add(t *testing.T) {
	assert.Equal(t, Some(7), Some(3).Add(4))
	assert.Equal(t, NoData, NoData.Add(4))
}

func TestColour_Valid(t *testing.T) {
	assert.True(t, NoColour.Valid())
	assert.True(t, Colour(3).Valid())
	assert.False(t, Colour(4).Valid())
	assert.False(t, Start.Valid())
	assert.Equal(t, []Colour{0, 1, 2, 3}, Palette())
}

func TestTermTable_RegroupOverwritesOnlyItsOwnColours(t *testing.T) {
	tt := NewTermTable()
	require.NoError(t, tt.Add("a", 1, 3))
	require.NoError(t, tt.Add("b", 0, 1))
	require.NoError(t, tt.Add("a", 2, 4))
	require.NoError(t, tt.Add("a", 2, 6))
	require.NoError(t, tt.Add("a", 1, 9))

	assert.Equal(t, Some(3), tt.ScoreFor("a", 1))
	assert.Equal(t, Some(6), tt.ScoreFor("a", 2))
}
