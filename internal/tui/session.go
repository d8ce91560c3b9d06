package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tangocli/tango/internal/review"
	"github.com/tangocli/tango/internal/tui/views"
	"github.com/tangocli/tango/internal/vocab"
)

// ReadingFunc annotates Japanese text with its kana reading. A nil func
// disables annotations.
type ReadingFunc func(string) string

// submittedMsg is the result of persisting one review outcome.
type submittedMsg struct {
	correct bool
	err     error
}

// Session runs one review session over a batch of due entries in a single
// study mode.
type Session struct {
	driver  *review.Driver
	reading ReadingFunc
	mode    vocab.Mode

	entries []vocab.Entry
	idx     int
	correct int
	wrong   int

	flash views.FlashcardModel
	spell views.SpellingModel
	match views.MatchingModel

	done   bool
	err    error
	width  int
	height int
}

// NewSession creates a session over the given entries. Entries are
// reviewed in order; matching reviews the whole batch as one round.
func NewSession(driver *review.Driver, entries []vocab.Entry, mode vocab.Mode, reading ReadingFunc) Session {
	s := Session{
		driver:  driver,
		reading: reading,
		mode:    mode,
		entries: entries,
		flash:   views.NewFlashcardModel(),
		spell:   views.NewSpellingModel(),
		match:   views.NewMatchingModel(),
	}

	if len(entries) == 0 {
		s.done = true
		return s
	}

	switch mode {
	case vocab.ModeMatching:
		s.match.SetEntries(entries)
	default:
		s.loadCurrent()
	}

	return s
}

// Run starts the session in the terminal and blocks until it ends.
func Run(s Session) error {
	_, err := tea.NewProgram(s, tea.WithAltScreen()).Run()
	return err
}

func (s *Session) loadCurrent() {
	e := s.entries[s.idx]
	reading := ""
	if s.reading != nil {
		reading = s.reading(e.Meaning)
	}
	switch s.mode {
	case vocab.ModeFlashcard:
		s.flash.SetEntry(e, reading)
	case vocab.ModeSpelling:
		s.spell.SetEntry(e, reading)
	}
}

// Init implements tea.Model.
func (s Session) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.flash.SetSize(msg.Width, msg.Height)
		s.spell.SetSize(msg.Width, msg.Height)
		s.match.SetSize(msg.Width, msg.Height)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return s, tea.Quit
		case "q":
			// The spelling input needs the letter q.
			if s.mode == vocab.ModeSpelling && !s.done {
				break
			}
			return s, tea.Quit
		case "esc":
			return s, tea.Quit
		}

	case views.AnsweredMsg:
		return s, s.submit(msg.EntryID, msg.Correct)

	case views.MatchAttemptMsg:
		return s, s.submit(msg.EntryID, msg.Correct)

	case views.MatchDoneMsg:
		s.done = true
		return s, nil

	case submittedMsg:
		if msg.err != nil {
			s.err = msg.err
			return s, tea.Quit
		}
		if msg.correct {
			s.correct++
		} else {
			s.wrong++
		}
		if s.mode == vocab.ModeMatching {
			return s, nil
		}
		s.idx++
		if s.idx >= len(s.entries) {
			s.done = true
			return s, nil
		}
		s.loadCurrent()
		return s, nil
	}

	if s.done {
		return s, nil
	}

	var cmd tea.Cmd
	switch s.mode {
	case vocab.ModeFlashcard:
		s.flash, cmd = s.flash.Update(msg)
	case vocab.ModeSpelling:
		s.spell, cmd = s.spell.Update(msg)
	case vocab.ModeMatching:
		s.match, cmd = s.match.Update(msg)
	}
	return s, cmd
}

func (s Session) submit(entryID string, correct bool) tea.Cmd {
	driver, mode := s.driver, s.mode
	return func() tea.Msg {
		_, err := driver.Submit(context.Background(), entryID, mode, correct)
		return submittedMsg{correct: correct, err: err}
	}
}

// Err returns the error that ended the session, if any.
func (s Session) Err() error {
	return s.err
}

// View implements tea.Model.
func (s Session) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("tango review"))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render(string(s.mode)))
	b.WriteString("\n\n")

	if s.err != nil {
		b.WriteString(ErrorStyle.Render("error: " + s.err.Error()))
		return b.String()
	}

	if s.done {
		b.WriteString(s.renderSummary())
		return b.String()
	}

	if s.mode != vocab.ModeMatching {
		b.WriteString(ProgressStyle.Render(
			fmt.Sprintf("Card %d of %d", s.idx+1, len(s.entries)),
		))
		b.WriteString("\n\n")
	}

	switch s.mode {
	case vocab.ModeFlashcard:
		b.WriteString(s.flash.View())
	case vocab.ModeSpelling:
		b.WriteString(s.spell.View())
	case vocab.ModeMatching:
		b.WriteString(s.match.View())
	}

	return b.String()
}

func (s Session) renderSummary() string {
	if len(s.entries) == 0 {
		return HelpStyle.Render("Nothing is due for review. Come back later!")
	}

	total := s.correct + s.wrong
	var lines []string
	lines = append(lines, SubtitleStyle.Render("Session complete"))
	lines = append(lines, "")
	lines = append(lines, SummaryLabelStyle.Render("Answered:")+fmt.Sprintf("%d", total))
	lines = append(lines, SummaryLabelStyle.Render("Correct:")+SummaryCorrectStyle.Render(fmt.Sprintf("%d", s.correct)))
	lines = append(lines, SummaryLabelStyle.Render("Wrong:")+SummaryWrongStyle.Render(fmt.Sprintf("%d", s.wrong)))
	if total > 0 {
		pct := 100 * s.correct / total
		lines = append(lines, SummaryLabelStyle.Render("Accuracy:")+fmt.Sprintf("%d%%", pct))
	}

	return BoxStyle.Render(strings.Join(lines, "\n")) + "\n\n" +
		HelpStyle.Render("q: quit")
}
