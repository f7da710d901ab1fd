package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/appengine-ltd/dice-rooms/internal/game"
)

func testState(t *testing.T, config game.Config) *game.State {
	t.Helper()
	if config.Seed == 0 {
		config.Seed = 11
	}
	if len(config.Shop) == 0 {
		config.Shop = game.DefaultShop()
	}
	s, err := game.NewState(config, game.Carry{})
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	return s
}

func defaultState(t *testing.T) *game.State {
	t.Helper()
	config := game.DefaultConfig()
	config.Seed = 11
	return testState(t, config)
}

func TestTextSinkNumbersButtons(t *testing.T) {
	s := defaultState(t)
	var out bytes.Buffer
	sink := NewTextSink(&out)

	s.DrawTo(sink)

	frame := sink.Frame()
	if out.String() != frame {
		t.Fatalf("expected flushed frame to be written out")
	}
	for _, want := range []string{"gold 0", "[1 roll]", "[4 restart]", "1. herbalist", "2. seller"} {
		if !strings.Contains(frame, want) {
			t.Fatalf("expected %q in frame:\n%s", want, frame)
		}
	}
	buttons := sink.Buttons()
	if len(buttons) == 0 || buttons[0] != game.SignalRoll1 || buttons[3] != game.SignalRestart {
		t.Fatalf("unexpected buttons %v", buttons)
	}
	if strings.Count(frame, "[") != len(buttons) {
		t.Fatalf("expected one bracket per button, frame:\n%s", frame)
	}
}

func TestTextSinkStartsFreshEachFrame(t *testing.T) {
	s := defaultState(t)
	sink := NewTextSink(nil)

	s.DrawTo(sink)
	first := sink.Frame()
	s.DrawTo(sink)

	if sink.Frame() != first {
		t.Fatalf("expected identical frames for an unchanged game")
	}
}

func TestTextSinkFormatsNumbers(t *testing.T) {
	sink := NewTextSink(nil)
	sink.BeginParagraph()
	sink.Int(1234567)
	sink.Text(" ")
	sink.Decimal(1.6)
	sink.Text(" ")
	sink.Decimal(2.56789)
	sink.Symbol(game.DiceSymbol(game.NewDice(game.DiceD6, 6)))
	sink.EndParagraph()
	sink.Flush()

	frame := sink.Frame()
	for _, want := range []string{"1,234,567", "1.6", "2.57", "⚅"} {
		if !strings.Contains(frame, want) {
			t.Fatalf("expected %q in %q", want, frame)
		}
	}
}

func TestLostGameShowsOnlyRestart(t *testing.T) {
	s := testState(t, game.Config{
		StartGold:    10,
		StartRooms:   []game.RoomKind{game.RoomHerbalist},
		DebtSchedule: []game.DebtMilestone{{Roll: 1, Amount: 500}, {Roll: 2, Amount: 500}},
	})
	s.NextRolls(3)
	if s.Phase() != game.PhaseLostByDebt {
		t.Fatalf("expected lost game, got %s", s.Phase())
	}
	sink := NewTextSink(nil)

	s.DrawTo(sink)

	if got := sink.Buttons(); len(got) != 1 || got[0] != game.SignalRestart {
		t.Fatalf("expected only restart, got %v", got)
	}
}
