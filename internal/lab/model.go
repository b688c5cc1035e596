// Package lab is an interactive hand explorer: type a hand in compact
// notation, optionally a joker row, and see the classification, scoring
// breakdown and best plays update on each evaluation.
package lab

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmcca/balatro-sim/balatro"
)

const (
	paneCards = iota
	paneJokers
)

// Model is the Bubble Tea model for the hand explorer
type Model struct {
	engine *balatro.Engine

	cardInput  textinput.Model
	jokerInput textinput.Model
	focused    int

	result  *evaluation
	errText string

	width    int
	quitting bool
}

// evaluation holds the output of one explore step
type evaluation struct {
	cards     []balatro.Card
	breakdown balatro.Breakdown
	best      []balatro.Breakdown
}

// New creates a hand explorer around an engine
func New(engine *balatro.Engine) *Model {
	ci := textinput.New()
	ci.Placeholder = "cards, e.g. Kh Kd 2s:bonus Ah:steel:foil"
	ci.Focus()
	ci.CharLimit = 200
	ci.Width = 70
	ci.Prompt = "hand > "
	ci.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

	ji := textinput.New()
	ji.Placeholder = "jokers, e.g. The Duo, Joker"
	ji.CharLimit = 200
	ji.Width = 70
	ji.Prompt = "jokers > "
	ji.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Bold(true)

	return &Model{
		engine:     engine,
		cardInput:  ci,
		jokerInput: ji,
		focused:    paneCards,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focused == paneCards {
				m.focused = paneJokers
				m.cardInput.Blur()
				m.jokerInput.Focus()
			} else {
				m.focused = paneCards
				m.jokerInput.Blur()
				m.cardInput.Focus()
			}
			return m, nil
		case "enter":
			m.evaluate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focused == paneCards {
		m.cardInput, cmd = m.cardInput.Update(msg)
	} else {
		m.jokerInput, cmd = m.jokerInput.Update(msg)
	}
	return m, cmd
}

// evaluate runs the engine over the current inputs
func (m *Model) evaluate() {
	m.result = nil
	m.errText = ""

	cards, err := balatro.ParseCards(m.cardInput.Value())
	if err != nil {
		m.errText = err.Error()
		return
	}
	if len(cards) == 0 {
		m.errText = "no cards"
		return
	}

	jokers := parseJokers(m.jokerInput.Value())
	breakdown := m.engine.Score(cards, nil, jokers, nil)
	best := m.engine.BestHands(cards, jokers, nil, m.engine.TopN)

	m.result = &evaluation{cards: cards, breakdown: breakdown, best: best}
}

// parseJokers splits a comma separated joker list into slots
func parseJokers(s string) []balatro.Joker {
	var jokers []balatro.Joker
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		jokers = append(jokers, balatro.Joker{Name: name})
	}
	return jokers
}

// View renders the explorer
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("balatro-lab"))
	b.WriteString("\n\n")
	b.WriteString(m.cardInput.View())
	b.WriteString("\n")
	b.WriteString(m.jokerInput.View())
	b.WriteString("\n\n")

	switch {
	case m.errText != "":
		b.WriteString(ErrorStyle.Render("error: " + m.errText))
		b.WriteString("\n")
	case m.result != nil:
		b.WriteString(m.renderResult())
	default:
		b.WriteString(InfoStyle.Render("enter a hand and press enter"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("tab: switch field • enter: evaluate • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderResult() string {
	r := m.result
	var b strings.Builder

	b.WriteString(renderCards(r.cards))
	b.WriteString("\n")

	bd := r.breakdown
	b.WriteString(HandInfoStyle.Render(bd.HandType.String()))
	b.WriteString(fmt.Sprintf("  %d chips x %.4g mult = ", bd.TotalChips(), bd.FinalScore/float64(bd.TotalChips())))
	b.WriteString(ScoreStyle.Render(fmt.Sprintf("%.0f", bd.FinalScore)))
	b.WriteString("\n\n")

	if len(r.best) > 0 {
		b.WriteString(InfoStyle.Render("best plays:"))
		b.WriteString("\n")
		for i, best := range r.best {
			line := fmt.Sprintf("  %d. %-16s %8.0f  cards %v", i+1, best.HandType, best.FinalScore, best.AllCards)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderCards styles a hand red/black by suit
func renderCards(cards []balatro.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		s := c.String()
		if c.Suit == balatro.Hearts || c.Suit == balatro.Diamonds {
			parts[i] = RedCardStyle.Render(s)
		} else {
			parts[i] = BlackCardStyle.Render(s)
		}
	}
	return strings.Join(parts, "  ")
}
