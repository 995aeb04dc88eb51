// Package ui implements the interactive keybind inspector behind the
// `ember binds` subcommand.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"

	"github.com/emberwm/ember/internal/cfg"
	"github.com/emberwm/ember/internal/comp"
	"github.com/emberwm/ember/internal/input"
)

type Model struct {
	binds  []cfg.Keybind
	entry  string
	result string
	good   bool
}

func NewModel(binds []cfg.Keybind) Model {
	return Model{binds: binds}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.result, m.good = m.resolve()
			m.entry = ""
		case "backspace":
			if len(m.entry) > 0 {
				m.entry = m.entry[:len(m.entry)-1]
			}
		default:
			str := msg.String()
			if len(str) == 1 || str == "-" {
				m.entry += str
			}
		}
	}
	return m, nil
}

// resolve runs the typed chord through the same decision function the
// compositor uses and describes the outcome.
func (m Model) resolve() (string, bool) {
	bind, err := cfg.ParseBind(strings.TrimSpace(m.entry))
	if err != nil {
		return fmt.Sprintf("invalid bind: %s", err), false
	}
	action, ok := comp.Decide(
		bind.Mods,
		[]input.Keysym{bind.Sym},
		m.binds,
		input.StatePressed,
	)
	if !ok {
		return fmt.Sprintf("%s: forwarded to the focused client", bind), true
	}
	return fmt.Sprintf("%s: intercepted -> %s", bind, action), true
}

func (m Model) View() string {
	out := headerStyle.Render("\n  Keybinds (first match wins)\n")
	for i, kb := range m.binds {
		str := "  " + pad(fmt.Sprintf("%d.", i+1), 5)
		str += pad(kb.Bind.String(), 24)
		str += kb.Action.String() + "\n"
		out += gloss.NewStyle().Render(str)
	}
	if len(m.binds) == 0 {
		out += grayStyle.Render("  (empty table: every key press is forwarded)\n")
	}

	out += headerStyle.Render("\n  Try a chord") +
		grayStyle.Render("  e.g. ctrl-alt-q, logo-return\n")
	out += "  > " + m.entry + "\n"
	if m.result != "" {
		style := okStyle
		if !m.good {
			style = errStyle
		}
		out += style.Render("  "+m.result) + "\n"
	}
	out += grayStyle.Render("\n  enter: resolve    esc: quit\n\n")
	return out
}

func pad(str string, length int) string {
	toAdd := length - len(str)
	for i := 0; i < toAdd; i++ {
		str += " "
	}
	return str
}

// Run starts the inspector over the given binding table.
func Run(binds []cfg.Keybind) error {
	return tea.NewProgram(NewModel(binds)).Start()
}

var headerStyle = gloss.NewStyle().Bold(true).Foreground(gloss.Color("14"))
var okStyle = gloss.NewStyle().Foreground(gloss.Color("10"))
var errStyle = gloss.NewStyle().Foreground(gloss.Color("9"))
var grayStyle = gloss.NewStyle().Foreground(gloss.Color("#aaaaaa"))
