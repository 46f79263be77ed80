package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/corey/hue/internal/domain/lexicon"
	"github.com/corey/hue/internal/ports"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <name>",
	Short: "Show a stored lexicon",
	Long:  "Renders the term scores of a stored lexicon as a table, one column per colour, followed by its transitions.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	missStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("241"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func runInspect(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	lex, err := a.Inspect(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderLexicon(args[0], lex))
	return nil
}

// renderLexicon draws the term and transition tables. Missing scores show as
// "-"; colours beyond the palette get their own columns.
func renderLexicon(name string, lex *ports.Lexicon) string {
	width := lexicon.NumColours
	for _, e := range lex.Terms.Entries() {
		if len(e.Scores) > width {
			width = len(e.Scores)
		}
	}

	headers := []string{"term"}
	for c := 0; c < width; c++ {
		headers = append(headers, strconv.Itoa(c))
	}
	var rows [][]string
	for _, e := range lex.Terms.Entries() {
		row := []string{e.Term}
		for c := 0; c < width; c++ {
			row = append(row, scoreCell(e.Score(lexicon.Colour(c))))
		}
		rows = append(rows, row)
	}

	terms := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col > 0 && rows[row][col] == "-" {
				return missStyle
			}
			return cellStyle
		})

	out := fmt.Sprintf("%s: %d terms\n%s\n", name, lex.Terms.Len(), terms.String())
	if lex.Transitions == nil {
		return out + "no transition table\n"
	}

	var edges [][]string
	for _, e := range lex.Transitions.Edges() {
		edges = append(edges, []string{colourCell(e.Prev), colourCell(e.Colour), strconv.Itoa(e.Score)})
	}
	trans := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("prev", "colour", "score").
		Rows(edges...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return out + fmt.Sprintf("%d transitions\n%s\n", lex.Transitions.Len(), trans.String())
}

func scoreCell(s lexicon.Score) string {
	v, ok := s.Get()
	if !ok {
		return "-"
	}
	return strconv.Itoa(v)
}

func colourCell(c lexicon.Colour) string {
	if c == lexicon.Start {
		return "start"
	}
	return strconv.Itoa(int(c))
}
