package cmd

import (
	"strconv"
	"strings"

	"github.com/corey/hue/internal/app"
	"github.com/corey/hue/internal/domain/lexicon"
)

// renderer turns solver results into terminal output.
//
// Plain mode prints colour indices, or the score for variant E:
//
//	0 1 0
//
// Highlight mode wraps every token in its palette colours. Unset colours and
// colours outside the palette use the error foreground.
type renderer struct {
	palette   app.Palette
	highlight bool
}

// newRenderer picks highlight mode from --color, then config, then the TTY.
func newRenderer(s app.Settings) renderer {
	mode := colorFlag
	if mode == "" {
		mode = s.Color
	}
	return renderer{palette: s.Palette, highlight: resolveColor(mode)}
}

func (r renderer) solution(res *app.Result) string {
	if res.Problem.Variant.ReportsScore() {
		return formatScore(res.Solution.Score) + "\n"
	}

	n := res.Solution.Len()
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		c, ok := res.Solution.Colour(i)
		if r.highlight {
			parts[i] = r.paint(res.Problem.Tokens[i], c, ok)
		} else {
			parts[i] = formatColour(c, ok)
		}
	}
	return strings.Join(parts, " ") + "\n"
}

// paint wraps token in the escape codes for colour c.
func (r renderer) paint(token string, c lexicon.Colour, ok bool) string {
	if !ok || c < 0 || int(c) >= len(r.palette.FG) || int(c) >= len(r.palette.BG) {
		return r.palette.Error + token + r.palette.Reset
	}
	return r.palette.FG[c] + r.palette.BG[c] + token + r.palette.Reset
}

// formatColour prints an unset colour as -1.
func formatColour(c lexicon.Colour, ok bool) string {
	if !ok {
		return "-1"
	}
	return strconv.Itoa(int(c))
}

func formatColours(cs []lexicon.Colour) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = strconv.Itoa(int(c))
	}
	return strings.Join(parts, " ")
}

// formatScore prints an unset score as -1.
func formatScore(s lexicon.Score) string {
	v, ok := s.Get()
	if !ok {
		return "-1"
	}
	return strconv.Itoa(v)
}
