package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeLine(t *testing.T, m gameModel, line string) (gameModel, tea.Cmd) {
	t.Helper()
	var model tea.Model = m
	for _, r := range line {
		if r == ' ' {
			model, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model.(gameModel), cmd
}

func TestEnterRunsTheTypedCommand(t *testing.T) {
	m := newGameModel(AppConfig{Version: "test"}, NewSession(defaultState(t)))

	m, _ = typeLine(t, m, "roll 2")

	if m.session.State().Rolls() != 2 {
		t.Fatalf("expected two rolls, got %d", m.session.State().Rolls())
	}
	if m.input != "" {
		t.Fatalf("expected input cleared, got %q", m.input)
	}
	if !strings.Contains(m.View(), "roll 2") {
		t.Fatalf("expected the view to show the new frame")
	}
}

func TestBackspaceAndHistory(t *testing.T) {
	m := newGameModel(AppConfig{}, NewSession(defaultState(t)))
	m, _ = typeLine(t, m, "roll")

	gotModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = gotModel.(gameModel)
	if m.input != "roll" {
		t.Fatalf("expected history recall, got %q", m.input)
	}
	gotModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = gotModel.(gameModel)
	if m.input != "rol" {
		t.Fatalf("expected backspace to drop a rune, got %q", m.input)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newGameModel(AppConfig{}, NewSession(defaultState(t)))

	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("expected quit command for %v", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg for %v", key)
		}
	}

	_, cmd := typeLine(t, m, "quit")
	if cmd == nil {
		t.Fatalf("expected the quit command to stop the program")
	}
}

func TestStatusShowsMessages(t *testing.T) {
	m := newGameModel(AppConfig{}, NewSession(defaultState(t)))

	m, _ = typeLine(t, m, "sell 7")

	if !strings.Contains(m.View(), "no room #7") {
		t.Fatalf("expected the refusal in the view:\n%s", m.View())
	}
}
