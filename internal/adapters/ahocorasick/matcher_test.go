package ahocorasick

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/corey/hue/internal/domain/tokenize"
	"github.com/corey/hue/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Aho-Corasick term scanner: one pass over the text for the whole lexicon
// Expectation: same matches as the linear reference scanner, so tokenization
// does not depend on which scanner is wired in.
// =============================================================================

func TestScanner_SingleTerm(t *testing.T) {
	s, err := NewScanner([]string{"class"})
	require.NoError(t, err)

	assert.Equal(t, []ports.TermMatch{{Term: 0, Start: 2, End: 7}}, s.Scan("a class"))
}

func TestScanner_CaseInsensitive(t *testing.T) {
	s, err := NewScanner([]string{"Big Oh"})
	require.NoError(t, err)

	assert.Equal(t, []ports.TermMatch{{Term: 0, Start: 0, End: 6}}, s.Scan("BIG OH notation"))
}

func TestScanner_OverlappingTerms(t *testing.T) {
	s, err := NewScanner([]string{"log", "login", "in"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []ports.TermMatch{
		{Term: 0, Start: 0, End: 3},
		{Term: 1, Start: 0, End: 5},
		{Term: 2, Start: 3, End: 5},
	}, s.Scan("login"))
}

func TestScanner_CaseDuplicatesReportFirst(t *testing.T) {
	s, err := NewScanner([]string{"x", "Big", "BIG"})
	require.NoError(t, err)
	assert.Equal(t, 2, s.PatternCount())

	assert.Equal(t, []ports.TermMatch{{Term: 1, Start: 0, End: 3}}, s.Scan("bIg"))
}

func TestScanner_NoMatch(t *testing.T) {
	s, err := NewScanner([]string{"auth"})
	require.NoError(t, err)
	assert.Nil(t, s.Scan("hello world"))
	assert.Nil(t, s.Scan(""))
}

func TestScanner_UnbuiltAndEmpty(t *testing.T) {
	assert.Nil(t, (&Scanner{}).Scan("anything"))

	s, err := NewScanner(nil)
	require.NoError(t, err)
	assert.Nil(t, s.Scan("anything"))
}

func TestScanner_RejectsEmptyTerm(t *testing.T) {
	_, err := NewScanner([]string{"a", ""})
	assert.Error(t, err)
}

func TestScanner_Rebuild(t *testing.T) {
	s, err := NewScanner([]string{"old"})
	require.NoError(t, err)
	require.NoError(t, s.Build([]string{"new"}))

	assert.Nil(t, s.Scan("old"))
	assert.Equal(t, []ports.TermMatch{{Term: 0, Start: 0, End: 3}}, s.Scan("new"))
}

func TestFoldASCII(t *testing.T) {
	assert.Equal(t, "big oh", foldASCII("BiG Oh"))
	assert.Equal(t, "\xff\xfeab", foldASCII("\xff\xfeAB"), "non-UTF-8 bytes preserved")
}

func TestTokenizer_MatchesLinearScanner(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	words := []string{"big", "oh", "big oh", "Class", "class act", "a", "no", "note", "C++", "Tion"}
	filler := []string{" ", "  ", ", ", ".", "\n", "-", "!"}

	for round := 0; round < 200; round++ {
		var terms []string
		for _, w := range words {
			if rng.Intn(2) == 0 {
				terms = append(terms, w)
			}
		}

		var sb strings.Builder
		for i := rng.Intn(12); i >= 0; i-- {
			w := words[rng.Intn(len(words))]
			if rng.Intn(3) == 0 {
				w = strings.ToUpper(w)
			}
			sb.WriteString(w)
			sb.WriteString(filler[rng.Intn(len(filler))])
		}
		text := sb.String()

		linear, err := tokenize.New(terms, nil)
		require.NoError(t, err)
		ac, err := NewScanner(nil)
		require.NoError(t, err)
		automaton, err := tokenize.New(terms, ac)
		require.NoError(t, err)

		require.Equal(t, linear.Tokenize(text), automaton.Tokenize(text),
			"terms=%q text=%q", terms, text)
	}
}

func BenchmarkScan(b *testing.B) {
	terms := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		terms = append(terms, strings.Repeat(string(rune('a'+i%26)), 2+i%7))
	}
	s, err := NewScanner(terms)
	require.NoError(b, err)
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 25)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Scan(text)
	}
}
