// Package tui provides the terminal rendering layer for the timer using
// the Bubbletea framework. The model owns the single tick chain that
// drives the engine; every state-affecting action invalidates the
// outstanding tick before arming a new one, so two live tick sources
// can never overlap.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tbreslin/cadence/internal/config"
	"github.com/tbreslin/cadence/internal/domain"
	"github.com/tbreslin/cadence/internal/engine"
)

// tickMsg is sent once per second while the engine runs. seq identifies
// the tick chain that produced it; messages from a superseded chain are
// discarded.
type tickMsg struct {
	seq int
	at  time.Time
}

// editTarget identifies which field the staged text input edits.
type editTarget int

const (
	editNone editTarget = iota
	editPattern
	editFocusMinutes
	editShortMinutes
	editLongMinutes
)

// Model represents the TUI state.
type Model struct {
	eng   *engine.Engine
	theme config.ThemeConfig

	width  int
	height int

	// Single live tick chain. Bumping tickSeq orphans any tick message
	// already in flight.
	tickSeq int

	// Staged editor state. patternText is the last valid pattern text;
	// a failed parse reverts the input to it.
	input       textinput.Model
	editing     editTarget
	patternText string
	hint        string

	cuesEnabled bool
	cueToggle   func(bool)
}

// NewModel creates a new TUI model around a stopped engine.
func NewModel(eng *engine.Engine, theme *config.ThemeConfig) Model {
	input := textinput.New()
	input.CharLimit = 120
	input.Width = 48

	resolved := config.DefaultThemeConfig()
	if theme != nil {
		resolved = *theme
	}

	return Model{
		eng:         eng,
		theme:       resolved,
		input:       input,
		patternText: domain.PatternString(eng.Pattern()),
	}
}

// SetCueToggle wires the runtime cue on/off switch.
func (m *Model) SetCueToggle(enabled bool, toggle func(bool)) {
	m.cuesEnabled = enabled
	m.cueToggle = toggle
}

// SetSize presets the viewport, used before the first WindowSizeMsg.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init initializes the TUI. The engine starts paused, so no tick chain
// is armed yet.
func (m Model) Init() tea.Cmd {
	return nil
}

// tickCmd arms one tick of the chain identified by seq.
func tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{seq: seq, at: t}
	})
}

// rearm invalidates the outstanding tick and, if the engine is still
// running, starts a fresh chain. Every state-affecting operation funnels
// through this.
func (m *Model) rearm() tea.Cmd {
	m.tickSeq++
	if m.eng.Running() {
		return tickCmd(m.tickSeq)
	}
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if msg.seq != m.tickSeq {
			// A stale chain: state changed since this tick was armed.
			return m, nil
		}
		m.eng.Tick()
		if m.eng.Running() {
			return m, tickCmd(m.tickSeq)
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing != editNone {
			return m.updateEditor(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

// updateKeys handles keys outside of editing mode.
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.hint = ""
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "s", " ":
		m.eng.Toggle()
		return m, m.rearm()

	case "r":
		m.eng.Reset()
		return m, m.rearm()

	case "f":
		m.eng.SelectMode(domain.SessionTypeFocus)
		return m, m.rearm()

	case "b":
		m.eng.SelectMode(domain.SessionTypeShortBreak)
		return m, m.rearm()

	case "l":
		m.eng.SelectMode(domain.SessionTypeLongBreak)
		return m, m.rearm()

	case "e":
		return m.openEditor(editPattern, m.patternText)

	case "1":
		return m.openEditor(editFocusMinutes, m.minutesText(domain.SessionTypeFocus))

	case "2":
		return m.openEditor(editShortMinutes, m.minutesText(domain.SessionTypeShortBreak))

	case "3":
		return m.openEditor(editLongMinutes, m.minutesText(domain.SessionTypeLongBreak))

	case "tab":
		m.cuesEnabled = !m.cuesEnabled
		if m.cueToggle != nil {
			m.cueToggle(m.cuesEnabled)
		}
		return m, nil
	}

	return m, nil
}

// openEditor stages the text input for a field. Editing pauses nothing
// by itself; applying the edit does whatever the engine operation does.
func (m Model) openEditor(target editTarget, seed string) (tea.Model, tea.Cmd) {
	m.editing = target
	m.input.SetValue(seed)
	m.input.CursorEnd()
	m.input.Focus()
	return m, m.input.Cursor.BlinkCmd()
}

// updateEditor handles keys while the staged text input is focused.
func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = editNone
		m.hint = ""
		m.input.Blur()
		return m, nil

	case "enter":
		return m.applyEdit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.editing == editPattern {
		m.hint = patternHint(m.input.Value())
	}
	return m, cmd
}

// applyEdit commits the staged input to the engine.
func (m Model) applyEdit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	target := m.editing
	m.editing = editNone
	m.input.Blur()

	switch target {
	case editPattern:
		pattern, err := domain.ParsePattern(text)
		if err != nil {
			// Keep the previous pattern; the displayed text reverts.
			m.hint = "pattern unchanged: no recognized session types"
			return m, nil
		}
		m.eng.ReplacePattern(pattern)
		m.patternText = domain.PatternString(pattern)
		m.hint = ""
		return m, m.rearm()

	case editFocusMinutes:
		m.eng.SetDuration(domain.SessionTypeFocus, text)
	case editShortMinutes:
		m.eng.SetDuration(domain.SessionTypeShortBreak, text)
	case editLongMinutes:
		m.eng.SetDuration(domain.SessionTypeLongBreak, text)
	}

	m.hint = ""
	return m, m.rearm()
}

// patternHint suggests a correction for the last unrecognized token in
// the staged pattern text.
func patternHint(text string) string {
	tokens := strings.Split(text, ",")
	for i := len(tokens) - 1; i >= 0; i-- {
		token := strings.ToLower(strings.TrimSpace(tokens[i]))
		if token == "" {
			continue
		}
		if _, err := domain.ParsePattern(token); err == nil {
			return ""
		}
		if suggestion := domain.SuggestToken(token); suggestion != "" {
			return fmt.Sprintf("unknown token %q, did you mean %q?", token, suggestion)
		}
		return fmt.Sprintf("unknown token %q will be dropped", token)
	}
	return ""
}

// minutesText renders a mode's configured minutes for the editor seed.
func (m Model) minutesText(t domain.SessionType) string {
	return strconv.Itoa(m.eng.Durations().Minutes(t))
}

// modeColor returns the theme color for the current mode.
func (m Model) modeColor() lipgloss.Color {
	if m.eng.Mode().IsBreak() {
		return lipgloss.Color(m.theme.ColorBreak)
	}
	return lipgloss.Color(m.theme.ColorFocus)
}

// timerColor dims the countdown while paused.
func (m Model) timerColor() lipgloss.Color {
	if !m.eng.Running() {
		return lipgloss.Color(m.theme.ColorPaused)
	}
	return m.modeColor()
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	statusStyle := lipgloss.NewStyle().Foreground(m.modeColor())
	pausedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorPaused))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var sections []string
	sections = append(sections, titleStyle.Render("⏱ Cadence"))

	stateLabel := "Paused"
	if m.eng.Running() {
		stateLabel = "Running"
	}
	sections = append(sections, statusStyle.Render(fmt.Sprintf("%s · %s", m.eng.Mode().Label(), stateLabel)))

	sections = append(sections, "")
	sections = append(sections, renderCountdown(domain.FormatTime(m.eng.Remaining()), m.timerColor(), m.width))
	sections = append(sections, "")

	pbar := progress.New(progress.WithDefaultGradient())
	pbar.Width = m.width - 4
	sections = append(sections, pbar.ViewAs(m.eng.Progress()))

	sections = append(sections, "")
	sections = append(sections, m.renderPattern())

	counters := m.eng.Counters()
	sections = append(sections, helpStyle.Render(fmt.Sprintf(
		"Focus sessions: %d · Cycles: %d", counters.FocusSessionsCompleted, counters.CyclesCompleted)))

	d := m.eng.Durations()
	sections = append(sections, helpStyle.Render(fmt.Sprintf(
		"Focus %dm · Short %dm · Long %dm",
		d.Minutes(domain.SessionTypeFocus),
		d.Minutes(domain.SessionTypeShortBreak),
		d.Minutes(domain.SessionTypeLongBreak))))

	if m.editing != editNone {
		sections = append(sections, "")
		sections = append(sections, helpStyle.Render(m.editorLabel())+m.input.View())
		sections = append(sections, helpStyle.Render("enter apply · esc cancel"))
	}

	if m.hint != "" {
		sections = append(sections, pausedStyle.Render(m.hint))
	}

	cueLabel := "off"
	if m.cuesEnabled {
		cueLabel = "on"
	}
	sections = append(sections, "")
	sections = append(sections, helpStyle.Render(fmt.Sprintf(
		"[s]tart/pause  [r]eset  [f]ocus [b]reak [l]ong  [e]dit pattern  [1/2/3] durations  tab:cues %s  [q]uit", cueLabel)))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// editorLabel returns the prompt for the active editor.
func (m Model) editorLabel() string {
	switch m.editing {
	case editPattern:
		return "Pattern: "
	case editFocusMinutes:
		return "Focus minutes: "
	case editShortMinutes:
		return "Short break minutes: "
	case editLongMinutes:
		return "Long break minutes: "
	}
	return ""
}

// renderPattern draws the pattern tokens with the current step marked.
func (m Model) renderPattern() string {
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(m.modeColor())
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	pattern := m.eng.Pattern()
	step := m.eng.StepIndex()
	tokens := make([]string, len(pattern))
	for i, t := range pattern {
		label := strings.ToLower(t.Label())
		if i == step {
			tokens[i] = activeStyle.Render("[" + label + "]")
		} else {
			tokens[i] = helpStyle.Render(label)
		}
	}
	return strings.Join(tokens, helpStyle.Render(" → "))
}
