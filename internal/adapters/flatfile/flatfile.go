// Package flatfile decodes the plain-text inputs: the text to highlight, the
// TERM,COLOUR,SCORE term table and the PREV,COLOUR,SCORE transition table.
package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/corey/hue/internal/domain/lexicon"
)

// ErrEmptyInput is returned for a text or term table with no content.
var ErrEmptyInput = errors.New("empty input")

// maxLine bounds a single table line.
const maxLine = 1 << 20

// ParseError reports a malformed table line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadText reads the whole text. Empty input is an error.
func ReadText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("text: %w", ErrEmptyInput)
	}
	return string(data), nil
}

// ReadTerms decodes a term table. Lines look like TERM,COLOUR,SCORE where TERM
// runs up to the first comma and may contain spaces. Blank lines are skipped.
// Any malformed line aborts decoding; a table with no rows is an error.
func ReadTerms(r io.Reader) (*lexicon.TermTable, error) {
	table := lexicon.NewTermTable()
	rows := 0
	err := eachLine(r, func(n int, line string) error {
		term, rest, ok := strings.Cut(line, ",")
		if !ok {
			return &ParseError{Line: n, Text: line, Err: errors.New("want TERM,COLOUR,SCORE")}
		}
		nums, err := ints(rest, 2)
		if err != nil {
			return &ParseError{Line: n, Text: line, Err: err}
		}
		if nums[0] < 0 {
			return &ParseError{Line: n, Text: line, Err: fmt.Errorf("negative colour %d", nums[0])}
		}
		if nums[0] > int(lexicon.MaxColour) {
			return &ParseError{Line: n, Text: line, Err: fmt.Errorf("colour %d above %d", nums[0], lexicon.MaxColour)}
		}
		if err := table.Add(term, lexicon.Colour(nums[0]), nums[1]); err != nil {
			return &ParseError{Line: n, Text: line, Err: err}
		}
		rows++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("term table: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("term table: %w", ErrEmptyInput)
	}
	return table, nil
}

// ReadTransitions decodes a transition table. Decoding stops quietly at the
// end of input or at the first line that is not three comma-separated
// integers; the edges read so far are kept.
func ReadTransitions(r io.Reader) (*lexicon.TransitionTable, error) {
	table := lexicon.NewTransitionTable()
	errStop := errors.New("stop")
	err := eachLine(r, func(_ int, line string) error {
		nums, err := ints(line, 3)
		if err != nil {
			return errStop
		}
		table.Add(lexicon.Colour(nums[0]), lexicon.Colour(nums[1]), nums[2])
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, fmt.Errorf("transition table: %w", err)
	}
	return table, nil
}

// LoadText reads the text file at path.
func LoadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	text, err := ReadText(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// LoadTerms reads the term table file at path.
func LoadTerms(path string) (*lexicon.TermTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	table, err := ReadTerms(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// LoadTransitions reads the transition table file at path.
func LoadTransitions(path string) (*lexicon.TransitionTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	table, err := ReadTransitions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// eachLine calls fn with every non-blank line, leading whitespace and line
// endings removed. Line numbers start at 1.
func eachLine(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimLeft(strings.TrimRight(sc.Text(), "\r"), " \t\v\f")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	return sc.Err()
}

// ints parses exactly want comma-separated integers. Whitespace may precede
// each integer; only the last may be followed by any.
func ints(s string, want int) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != want {
		return nil, fmt.Errorf("want %d integers, got %d fields", want, len(fields))
	}
	fields[want-1] = strings.TrimRightFunc(fields[want-1], unicode.IsSpace)
	out := make([]int, want)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimLeftFunc(f, unicode.IsSpace))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
