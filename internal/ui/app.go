package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/dice-rooms/internal/game"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
}

type App struct {
	cfg     AppConfig
	session *Session
}

func NewApp(cfg AppConfig, session *Session) *App {
	return &App{cfg: cfg, session: session}
}

func (a *App) Run() error {
	p := tea.NewProgram(newGameModel(a.cfg, a.session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type gameModel struct {
	cfg     AppConfig
	session *Session

	input   string
	status  string
	history []string
	recall  int
}

func newGameModel(cfg AppConfig, session *Session) gameModel {
	return gameModel{cfg: cfg, session: session, status: "type help for commands"}
}

func (m gameModel) Init() tea.Cmd {
	return nil
}

func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeyUp:
		if m.recall > 0 {
			m.recall--
			m.input = m.history[m.recall]
		}
	case tea.KeyDown:
		if m.recall < len(m.history)-1 {
			m.recall++
			m.input = m.history[m.recall]
		} else {
			m.recall = len(m.history)
			m.input = ""
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(key.Runes)
	}
	return m, nil
}

func (m gameModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input)
	m.input = ""
	if line == "" {
		return m, nil
	}
	m.history = append(m.history, line)
	m.recall = len(m.history)

	res := m.session.Exec(line)
	if res.Quit {
		return m, tea.Quit
	}
	m.status = res.Message
	return m, nil
}

func (m gameModel) View() string {
	title := brightGreen.Render("DICE ROOMS") + dimGreen.Render(fmt.Sprintf("  v%s", m.cfg.Version))

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(border.Render(rule) + "\n")
	b.WriteString(green.Render(m.session.Frame()))
	switch m.session.State().Phase() {
	case game.PhaseLostByDebt:
		b.WriteString(alertStyle.Render("the debt collectors took everything. restart to play again") + "\n")
	case game.PhaseWon:
		b.WriteString(brightGreen.Render("you bought the panacea. restart to play again") + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + green.Render(m.status) + "\n")
	}
	b.WriteString("\n> " + m.input + brightGreen.Render("_") + "\n")
	b.WriteString(dimGreen.Render("enter to run, up/down for history, esc to quit") + "\n")
	return b.String()
}
