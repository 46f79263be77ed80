package tokenize

import (
	"errors"
	"testing"

	"github.com/corey/hue/internal/domain/lexicon"
	"github.com/corey/hue/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(t *testing.T, terms ...string) *lexicon.TermTable {
	t.Helper()
	tt := lexicon.NewTermTable()
	for _, term := range terms {
		require.NoError(t, tt.Add(term, 0, 1))
	}
	return tt
}

func tokens(t *testing.T, text string, terms *lexicon.TermTable) []string {
	t.Helper()
	got, err := Tokenize(text, terms)
	require.NoError(t, err)
	return got
}

func TestTokenize_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		text  string
		want  []string
	}{
		{"fallback around a term", []string{"big"}, "A big class", []string{"A", "big", "class"}},
		{"longest match wins", []string{"big", "big oh"}, "big oh notation", []string{"big oh", "notation"}},
		{"longest match regardless of table order", []string{"big oh", "big"}, "big oh notation", []string{"big oh", "notation"}},
		{"canonical spelling", []string{"big oh"}, "BIG OH!", []string{"big oh"}},
		{"word boundary blocks prefix", []string{"big"}, "bigger big", []string{"bigger", "big"}},
		{"match at end of text", []string{"class"}, "a class", []string{"a", "class"}},
		{"fallback keeps punctuation", nil, "hello, world.", []string{"hello,", "world."}},
		{"leading punctuation skipped", []string{"big"}, "...big", []string{"big"}},
		{"non-alpha runs between fallbacks", nil, "x -- y", []string{"x", "y"}},
		{"digits are not alphabetic", []string{"big"}, "42 big 7", []string{"big"}},
		{"term with symbols", []string{"c++"}, "C++ rocks", []string{"c++", "rocks"}},
		{"apostrophe is a boundary", []string{"don"}, "don't", []string{"don", "t"}},
		{"multi-line text", []string{"oh"}, "oh\n\toh\r\n", []string{"oh", "oh"}},
		{"no alphabetic bytes", []string{"big"}, "123 456 !!", nil},
		{"empty", []string{"big"}, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokens(t, tt.text, table(t, tt.terms...)))
		})
	}
}

func TestTokenize_WholeWordNeverSplit(t *testing.T) {
	terms := table(t, "red", "red green", "green")
	for _, text := range []string{
		"red green",
		"(red green)",
		"x red green y",
		"RED GREEN.",
	} {
		got := tokens(t, text, terms)
		assert.Contains(t, got, "red green", text)
		assert.NotContains(t, got, "red", text)
		assert.NotContains(t, got, "green", text)
	}
}

func TestTokenize_TiesKeepFirstTerm(t *testing.T) {
	assert.Equal(t, []string{"Big"}, tokens(t, "big", table(t, "Big", "BIG")))
	assert.Equal(t, []string{"BIG"}, tokens(t, "big", table(t, "BIG", "Big")))
}

func TestTokenize_FallbackVerbatim(t *testing.T) {
	got := tokens(t, "Hello  World!?", table(t))
	assert.Equal(t, []string{"Hello", "World!?"}, got)
}

func TestTokenize_InternalSpaceMustMatchExactly(t *testing.T) {
	// "big  oh" has two spaces; the term has one.
	assert.Equal(t, []string{"big", "oh"}, tokens(t, "big  oh", table(t, "big", "big oh", "oh")))
}

func TestNew_NilScannerDefaultsToLinear(t *testing.T) {
	tok, err := New([]string{"a b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a b", "c"}, tok.Tokenize("A B c"))
}

// stubScanner returns canned matches, including bogus ones the tokenizer must
// ignore.
type stubScanner struct {
	matches []ports.TermMatch
}

func (s *stubScanner) Build([]string) error          { return nil }
func (s *stubScanner) Scan(string) []ports.TermMatch { return s.matches }

type failingScanner struct{}

func (failingScanner) Build([]string) error          { return errors.New("build failed") }
func (failingScanner) Scan(string) []ports.TermMatch { return nil }

func TestForTable_ScannerBuildError(t *testing.T) {
	_, err := ForTable(table(t, "big"), failingScanner{})
	assert.EqualError(t, err, "build failed")
}

func TestTokenizer_IgnoresInconsistentMatches(t *testing.T) {
	sc := &stubScanner{matches: []ports.TermMatch{
		{Term: 7, Start: 0, End: 3},  // unknown term
		{Term: 0, Start: 0, End: 2},  // wrong length
		{Term: -1, Start: 0, End: 3}, // negative index
	}}
	tok, err := New([]string{"big"}, sc)
	require.NoError(t, err)
	assert.Equal(t, []string{"big"}, tok.Tokenize("big"), "falls back to the verbatim word")
}

// =============================================================================
// Linear scanner
// =============================================================================

func TestLinearScanner_ReportsOverlapping(t *testing.T) {
	s := &LinearScanner{}
	require.NoError(t, s.Build([]string{"log", "login", "in"}))

	matches := s.Scan("LOGIN")
	assert.ElementsMatch(t, []ports.TermMatch{
		{Term: 0, Start: 0, End: 3},
		{Term: 1, Start: 0, End: 5},
		{Term: 2, Start: 3, End: 5},
	}, matches)
}

func TestLinearScanner_NoMatch(t *testing.T) {
	s := &LinearScanner{}
	require.NoError(t, s.Build([]string{"auth"}))
	assert.Nil(t, s.Scan("hello world"))
	assert.Nil(t, (&LinearScanner{}).Scan("anything"))
}

func TestEqualFoldASCII(t *testing.T) {
	assert.True(t, equalFoldASCII("Big Oh", "bIG oH"))
	assert.False(t, equalFoldASCII("big", "bigs"))
	assert.False(t, equalFoldASCII("é", "É"), "only ASCII folds")
}
