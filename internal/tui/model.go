// Package tui provides the interactive Bubble Tea prompt for solving puzzles.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/blossom/internal/model"
	"github.com/verte-zerg/blossom/internal/report"
	"github.com/verte-zerg/blossom/internal/solve"
	"github.com/verte-zerg/blossom/internal/wordlist"
)

const (
	fieldLimit = iota
	fieldPetals
	fieldCenter
	fieldBonus
	fieldCount
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea solver prompt.
type Model struct {
	words  []string
	inputs []textinput.Model
	focus  int

	results table.Model
	result  *model.Result
	errMsg  string

	width  int
	height int
}

// NewModel constructs a prompt over an in-memory dictionary.
func NewModel(words []string, limit int) *Model {
	m := &Model{words: words}
	m.inputs = []textinput.Model{
		newInput("Display limit? ", 4),
		newInput("Outer letters? ", 0),
		newInput("Center letter? ", 1),
		newInput("Bonus letter? ", 1),
	}
	m.inputs[fieldLimit].SetValue(strconv.Itoa(limit))
	m.inputs[fieldLimit].Focus()
	m.results = newResultsTable()
	return m
}

func newInput(prompt string, limit int) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = limit
	return input
}

func newResultsTable() table.Model {
	headers := report.Headers()
	widths := []int{wordlist.MaxWordLen, 6, 10, 8}
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: widths[i]}
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Cell
	t.SetStyles(styles)
	return t
}

// Result returns the most recent search result, if any.
func (m *Model) Result() *model.Result {
	return m.result
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTable()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			return m, m.setFocus(m.focus + 1)
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.setFocus(m.focus - 1)
		case tea.KeyEnter:
			return m, m.submit()
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(index int) tea.Cmd {
	index = (index + fieldCount) % fieldCount
	m.inputs[m.focus].Blur()
	m.focus = index
	return m.inputs[m.focus].Focus()
}

func (m *Model) submit() tea.Cmd {
	m.errMsg = ""
	if m.focus != fieldBonus {
		if m.focus == fieldLimit {
			if _, err := m.limit(); err != nil {
				m.errMsg = err.Error()
				return nil
			}
		}
		return m.setFocus(m.focus + 1)
	}
	limit, err := m.limit()
	if err != nil {
		m.errMsg = err.Error()
		return m.setFocus(fieldLimit)
	}
	q, err := solve.NewQuery(
		m.inputs[fieldPetals].Value(),
		m.inputs[fieldCenter].Value(),
		m.inputs[fieldBonus].Value(),
		limit,
	)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	res := solve.SolveWords(m.words, q)
	m.result = &res
	m.results.SetRows(tableRows(res))
	m.results.GotoTop()
	m.inputs[fieldBonus].Reset()
	return nil
}

func (m *Model) limit() (int, error) {
	raw := strings.TrimSpace(m.inputs[fieldLimit].Value())
	if raw == "" {
		return solve.DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("display limit must be a number >= 0")
	}
	return n, nil
}

func tableRows(res model.Result) []table.Row {
	cells := report.Rows(res)
	rows := make([]table.Row, len(cells))
	for i, c := range cells {
		rows[i] = table.Row(c)
	}
	return rows
}

func (m *Model) resizeTable() {
	if m.height <= 0 {
		return
	}
	// title, inputs, blank, summary, footer
	reserved := 1 + fieldCount + 2 + 2
	height := m.height - reserved
	if height < 3 {
		height = 3
	}
	m.results.SetHeight(height)
	if m.width > 0 {
		m.results.SetWidth(m.width)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Blossom solver"))
	b.WriteString("\n")
	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.result != nil {
		header := fmt.Sprintf("Bonus %s · %s", strings.ToUpper(string(m.result.Query.Bonus)), report.Summary(*m.result))
		b.WriteString(summaryStyle.Render(header))
		b.WriteString("\n")
		if m.result.Outcome == model.OutcomeSolutions {
			b.WriteString(m.results.View())
			b.WriteString("\n")
		}
	}
	b.WriteString(footerStyle.Render("enter next/solve · tab switch field · esc quit"))
	return b.String()
}
