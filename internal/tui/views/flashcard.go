// Package views contains the per-mode review screens.
package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tangocli/tango/internal/clipboard"
	"github.com/tangocli/tango/internal/vocab"
)

// AnsweredMsg is emitted when the user grades the current card.
type AnsweredMsg struct {
	EntryID string
	Correct bool
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// Flashcard view styles
var (
	cardWordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(1, 6).
			Align(lipgloss.Center)

	cardReadingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4ecdc4")).
				Align(lipgloss.Center)

	cardMeaningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee")).
				Bold(true).
				Align(lipgloss.Center)

	cardDetailLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8dadc")).
				Bold(true).
				Width(10)

	cardDetailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	cardHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true).
			Align(lipgloss.Center)

	cardBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 4)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)
)

// FlashcardModel shows the headword and reveals the meaning on flip.
type FlashcardModel struct {
	entry   vocab.Entry
	reading string
	flipped bool
	copied  bool
	width   int
}

// NewFlashcardModel creates a flashcard view model.
func NewFlashcardModel() FlashcardModel {
	return FlashcardModel{}
}

// SetEntry loads the next card. The reading is the kana annotation of the
// meaning, empty when unavailable.
func (m *FlashcardModel) SetEntry(e vocab.Entry, reading string) {
	m.entry = e
	m.reading = reading
	m.flipped = false
	m.copied = false
}

// SetSize updates the view dimensions.
func (m *FlashcardModel) SetSize(width, _ int) {
	m.width = width
}

// Update handles messages.
func (m FlashcardModel) Update(msg tea.Msg) (FlashcardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case " ", "enter":
			m.flipped = !m.flipped
			return m, nil
		case "c":
			if m.flipped {
				id := m.entry.ID
				return m, func() tea.Msg {
					return AnsweredMsg{EntryID: id, Correct: true}
				}
			}
			return m, nil
		case "x":
			if m.flipped {
				id := m.entry.ID
				return m, func() tea.Msg {
					return AnsweredMsg{EntryID: id, Correct: false}
				}
			}
			return m, nil
		case "y":
			if err := clipboard.Write(m.entry.WordDisplay); err == nil {
				m.copied = true
				return m, clearCopiedAfter(2 * time.Second)
			}
			return m, nil
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	return m, nil
}

// View renders the flashcard.
func (m FlashcardModel) View() string {
	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	var b strings.Builder

	word := m.entry.WordDisplay
	if word == "" {
		word = m.entry.Word
	}
	front := cardWordStyle.Render(word)
	if m.copied {
		front += "\n" + copiedStyle.Render("Copied!")
	}
	b.WriteString(lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center).Render(front))
	b.WriteString("\n\n")

	if !m.flipped {
		b.WriteString(cardHintStyle.Width(contentWidth).Render("Press SPACE to reveal"))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("space: flip • y: copy word • q: quit"))
		return b.String()
	}

	b.WriteString(m.renderBack(contentWidth))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("c: correct • x: incorrect • y: copy word • q: quit"))

	return b.String()
}

func (m FlashcardModel) renderBack(contentWidth int) string {
	e := m.entry
	var lines []string

	meaning := e.Meaning
	if meaning == "" {
		meaning = "(no meaning recorded)"
	}
	lines = append(lines, cardMeaningStyle.Render(meaning))
	if m.reading != "" && m.reading != meaning {
		lines = append(lines, cardReadingStyle.Render(m.reading))
	}
	lines = append(lines, "")

	if e.Phonetic != "" {
		lines = append(lines, detailLine("Phonetic:", "["+e.Phonetic+"]"))
	}
	if e.POS != "" {
		lines = append(lines, detailLine("POS:", e.POS))
	}
	if len(e.Synonyms) > 0 {
		lines = append(lines, detailLine("≒", strings.Join(e.Synonyms, ", ")))
	}
	if len(e.Antonyms) > 0 {
		lines = append(lines, detailLine("⇔", strings.Join(e.Antonyms, ", ")))
	}
	for i, ex := range e.Examples {
		if i >= 2 {
			lines = append(lines, helpStyle.Render(fmt.Sprintf("(+%d more examples)", len(e.Examples)-i)))
			break
		}
		lines = append(lines, "")
		lines = append(lines, cardDetailStyle.Render(ex.En))
		if ex.Ja != "" {
			lines = append(lines, cardReadingStyle.Render(ex.Ja))
		}
	}

	box := cardBoxStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center).Render(box)
}

func detailLine(label, value string) string {
	return cardDetailLabelStyle.Render(label) + cardDetailStyle.Render(value)
}
