package views

import (
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tangocli/tango/internal/vocab"
)

// MatchAttemptMsg is emitted for every word/meaning pairing the user tries.
type MatchAttemptMsg struct {
	EntryID string
	Correct bool
}

// MatchDoneMsg is emitted when every pair has been solved.
type MatchDoneMsg struct{}

// Matching view styles
var (
	matchItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			Padding(0, 1)

	matchCursorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 1)

	matchPickedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#4ecdc4")).
				Padding(0, 1)

	matchSolvedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Strikethrough(true).
				Padding(0, 1)

	matchColumnStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#3d5a80")).
				Padding(1, 2)
)

// matchItem is one selectable cell in a column.
type matchItem struct {
	entryID string
	text    string
	solved  bool
}

// MatchingModel shows a word column and a shuffled meaning column. A
// round is solved by pairing every word with its meaning.
type MatchingModel struct {
	words    []matchItem
	meanings []matchItem

	column     int // 0 words, 1 meanings
	cursor     int
	pickedWord int // index into words, -1 when nothing picked
	remaining  int
	width      int
}

// NewMatchingModel creates a matching view model.
func NewMatchingModel() MatchingModel {
	return MatchingModel{pickedWord: -1}
}

// SetEntries loads a round. Meanings are shuffled so the columns never
// line up.
func (m *MatchingModel) SetEntries(entries []vocab.Entry) {
	m.words = m.words[:0]
	m.meanings = m.meanings[:0]
	for _, e := range entries {
		word := e.WordDisplay
		if word == "" {
			word = e.Word
		}
		meaning := e.Meaning
		if meaning == "" {
			meaning = "(no meaning)"
		}
		m.words = append(m.words, matchItem{entryID: e.ID, text: word})
		m.meanings = append(m.meanings, matchItem{entryID: e.ID, text: meaning})
	}

	rand.Shuffle(len(m.meanings), func(i, j int) {
		m.meanings[i], m.meanings[j] = m.meanings[j], m.meanings[i]
	})

	m.column = 0
	m.cursor = 0
	m.pickedWord = -1
	m.remaining = len(entries)
}

// SetSize updates the view dimensions.
func (m *MatchingModel) SetSize(width, _ int) {
	m.width = width
}

// Done reports whether every pair has been solved.
func (m MatchingModel) Done() bool {
	return m.remaining == 0
}

// Update handles messages.
func (m MatchingModel) Update(msg tea.Msg) (MatchingModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.remaining == 0 {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.cursor = m.prevUnsolved(m.cursor)
	case "down", "j":
		m.cursor = m.nextUnsolved(m.cursor)
	case "left", "right", "tab", "h", "l":
		m.column = 1 - m.column
		m.cursor = m.firstUnsolved()
	case " ", "enter":
		return m.pick()
	}

	return m, nil
}

func (m MatchingModel) pick() (MatchingModel, tea.Cmd) {
	items := m.currentColumn()
	if m.cursor >= len(items) || items[m.cursor].solved {
		return m, nil
	}

	if m.column == 0 {
		m.pickedWord = m.cursor
		m.column = 1
		m.cursor = m.firstUnsolved()
		return m, nil
	}

	if m.pickedWord < 0 {
		return m, nil
	}

	word := m.words[m.pickedWord]
	meaning := m.meanings[m.cursor]
	correct := word.entryID == meaning.entryID

	attempt := MatchAttemptMsg{EntryID: word.entryID, Correct: correct}
	cmds := []tea.Cmd{func() tea.Msg { return attempt }}

	if correct {
		m.words[m.pickedWord].solved = true
		m.meanings[m.cursor].solved = true
		m.remaining--
		if m.remaining == 0 {
			cmds = append(cmds, func() tea.Msg { return MatchDoneMsg{} })
		}
	}

	m.pickedWord = -1
	m.column = 0
	m.cursor = m.firstUnsolved()

	return m, tea.Batch(cmds...)
}

func (m MatchingModel) currentColumn() []matchItem {
	if m.column == 0 {
		return m.words
	}
	return m.meanings
}

func (m MatchingModel) firstUnsolved() int {
	for i, item := range m.currentColumn() {
		if !item.solved {
			return i
		}
	}
	return 0
}

func (m MatchingModel) nextUnsolved(from int) int {
	items := m.currentColumn()
	for i := from + 1; i < len(items); i++ {
		if !items[i].solved {
			return i
		}
	}
	return from
}

func (m MatchingModel) prevUnsolved(from int) int {
	items := m.currentColumn()
	for i := from - 1; i >= 0; i-- {
		if !items[i].solved {
			return i
		}
	}
	return from
}

// View renders the two columns side by side.
func (m MatchingModel) View() string {
	if m.remaining == 0 {
		return spellResultGoodStyle.Render("All pairs matched!") + "\n\n" +
			helpStyle.Render("q: quit")
	}

	wordWidth := columnWidth(m.words)
	meaningWidth := columnWidth(m.meanings)

	words := m.renderColumn(m.words, 0, wordWidth)
	meanings := m.renderColumn(m.meanings, 1, meaningWidth)

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		matchColumnStyle.Render(words),
		"  ",
		matchColumnStyle.Render(meanings),
	)

	help := "↑/↓: move • tab: switch column • enter: pick • q: quit"
	return columns + "\n\n" + helpStyle.Render(help)
}

func (m MatchingModel) renderColumn(items []matchItem, column, width int) string {
	var lines []string
	for i, item := range items {
		text := runewidth.FillRight(item.text, width)
		style := matchItemStyle
		switch {
		case item.solved:
			style = matchSolvedStyle
		case column == 0 && i == m.pickedWord:
			style = matchPickedStyle
		case column == m.column && i == m.cursor:
			style = matchCursorStyle
		}
		lines = append(lines, style.Render(text))
	}
	return strings.Join(lines, "\n")
}

// columnWidth measures display cells, not bytes, so kanji columns stay
// aligned.
func columnWidth(items []matchItem) int {
	width := 0
	for _, item := range items {
		if w := runewidth.StringWidth(item.text); w > width {
			width = w
		}
	}
	return width
}
