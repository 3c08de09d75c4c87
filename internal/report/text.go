package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/verte-zerg/blossom/internal/model"
)

const panagramLabel = "Panagram"

type palette struct {
	header   lipgloss.Style
	word     lipgloss.Style
	score    lipgloss.Style
	alt      lipgloss.Style
	panagram lipgloss.Style
}

func newPalette(w io.Writer, force bool) palette {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.ANSI256)
	}
	return palette{
		header:   r.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
		word:     r.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
		score:    r.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		alt:      r.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		panagram: r.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
	}
}

// TextLines renders a result as plain lines without color.
func TextLines(res model.Result) []string {
	return textLines(res, nil)
}

// WriteText renders a result as an aligned table.
func WriteText(w io.Writer, res model.Result, opts Options) error {
	var style cellStyler
	if ShouldUseColor(w, opts.Color) {
		style = paletteStyler(newPalette(w, opts.Color))
	}
	for _, line := range textLines(res, style) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func textLines(res model.Result, style cellStyler) []string {
	lines := []string{Summary(res)}
	if res.Outcome != model.OutcomeSolutions {
		return lines
	}
	return append(lines, formatTable(Headers(), Rows(res), map[int]bool{1: true}, style)...)
}

// Summary returns the one-line description of a result.
func Summary(res model.Result) string {
	switch res.Outcome {
	case model.OutcomeNoCandidates:
		return "No solutions"
	case model.OutcomeNoneDisplayed:
		return fmt.Sprintf("No solutions displayed (%d found)", res.Total)
	default:
		return fmt.Sprintf("Showing %d/%d solutions:", res.Displayed, res.Total)
	}
}

// Headers returns the column titles used by Rows.
func Headers() []string {
	return []string{"Word", "Points", "Alternate", "Panagram"}
}

// Rows formats each displayed entry as table cells.
func Rows(res model.Result) [][]string {
	rows := make([][]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		rows = append(rows, []string{e.Word, strconv.Itoa(e.Score), formatAlternate(e.Alternate), formatPanagram(e.Panagram)})
	}
	return rows
}

func formatAlternate(alt *model.Alternate) string {
	if alt == nil {
		return ""
	}
	return fmt.Sprintf("%s:%d", strings.ToUpper(alt.Letters), alt.Score)
}

func formatPanagram(ok bool) string {
	if ok {
		return panagramLabel
	}
	return ""
}

func paletteStyler(p palette) cellStyler {
	return func(row, col int, cell string) string {
		if row < 0 {
			return p.header.Render(cell)
		}
		switch col {
		case 0:
			return p.word.Render(cell)
		case 1:
			return p.score.Render(cell)
		case 2:
			return p.alt.Render(cell)
		default:
			if strings.TrimSpace(cell) == "" {
				return cell
			}
			return p.panagram.Render(cell)
		}
	}
}

// ShouldUseColor reports whether w should get ANSI colors.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
