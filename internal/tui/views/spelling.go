package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tangocli/tango/internal/vocab"
)

// Spelling view styles
var (
	spellPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee")).
				Bold(true).
				Align(lipgloss.Center)

	spellResultGoodStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8e6cf")).
				Bold(true)

	spellResultBadStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6B6B")).
				Bold(true)

	spellAnswerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffe66d")).
				Bold(true)

	spellBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 4)
)

// SpellingModel shows the meaning and asks the user to type the word.
// Comparison ignores case and surrounding whitespace.
type SpellingModel struct {
	entry    vocab.Entry
	input    textinput.Model
	answered bool
	correct  bool
	width    int
}

// NewSpellingModel creates a spelling view model.
func NewSpellingModel() SpellingModel {
	ti := textinput.New()
	ti.Placeholder = "type the word"
	ti.CharLimit = 64
	ti.Width = 32
	return SpellingModel{input: ti}
}

// SetEntry loads the next word to spell.
func (m *SpellingModel) SetEntry(e vocab.Entry, _ string) {
	m.entry = e
	m.answered = false
	m.correct = false
	m.input.Reset()
	m.input.Focus()
}

// SetSize updates the view dimensions.
func (m *SpellingModel) SetSize(width, _ int) {
	m.width = width
}

// Update handles messages.
func (m SpellingModel) Update(msg tea.Msg) (SpellingModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if !m.answered {
			guess := strings.TrimSpace(m.input.Value())
			if guess == "" {
				return m, nil
			}
			m.answered = true
			m.correct = strings.EqualFold(guess, strings.TrimSpace(m.entry.Word))
			m.input.Blur()
			return m, nil
		}

		id, correct := m.entry.ID, m.correct
		return m, func() tea.Msg {
			return AnsweredMsg{EntryID: id, Correct: correct}
		}
	}

	if !m.answered {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the spelling prompt.
func (m SpellingModel) View() string {
	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	var lines []string

	meaning := m.entry.Meaning
	if meaning == "" && len(m.entry.Examples) > 0 {
		meaning = m.entry.Examples[0].Ja
	}
	lines = append(lines, spellPromptStyle.Render(meaning))
	if m.entry.POS != "" {
		lines = append(lines, helpStyle.Render("("+m.entry.POS+")"))
	}
	lines = append(lines, "")
	lines = append(lines, m.input.View())

	if m.answered {
		lines = append(lines, "")
		if m.correct {
			lines = append(lines, spellResultGoodStyle.Render("Correct!"))
		} else {
			lines = append(lines, spellResultBadStyle.Render("Incorrect")+
				"  "+spellAnswerStyle.Render(m.entry.Word))
		}
	}

	box := spellBoxStyle.Render(strings.Join(lines, "\n"))
	out := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center).Render(box)

	help := "enter: check • esc: quit"
	if m.answered {
		help = "enter: next • esc: quit"
	}
	return out + "\n\n" + helpStyle.Render(help)
}
