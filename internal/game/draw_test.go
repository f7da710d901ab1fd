package game

import (
	"fmt"
	"strings"
	"testing"
)

// recordingSink keeps every call as a short event string.
type recordingSink struct {
	events  []string
	buttons []Signal
	flushed int
}

func (r *recordingSink) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recordingSink) Int(v int64)       { r.add("int %d", v) }
func (r *recordingSink) Decimal(v float64) { r.add("dec %g", v) }
func (r *recordingSink) Text(s string)     { r.add("text %s", s) }
func (r *recordingSink) Symbol(s Symbol)   { r.add("sym %d", s) }
func (r *recordingSink) BeginRoom()        { r.add("room{") }
func (r *recordingSink) EndRoom()          { r.add("}room") }
func (r *recordingSink) BeginUpgrade()     { r.add("upgrade{") }
func (r *recordingSink) EndUpgrade()       { r.add("}upgrade") }
func (r *recordingSink) BeginButton(sig Signal) {
	r.buttons = append(r.buttons, sig)
	r.add("button{%d", sig)
}
func (r *recordingSink) EndButton()      { r.add("}button") }
func (r *recordingSink) BeginParagraph() { r.add("p{") }
func (r *recordingSink) EndParagraph()   { r.add("}p") }
func (r *recordingSink) BeginList()      { r.add("list{") }
func (r *recordingSink) EndList()        { r.add("}list") }
func (r *recordingSink) Flush()          { r.flushed++ }

func (r *recordingSink) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func (r *recordingSink) hasButton(sig Signal) bool {
	for _, b := range r.buttons {
		if b == sig {
			return true
		}
	}
	return false
}

func TestDrawEmitsSectionsInOrder(t *testing.T) {
	s := newTestState(t, Config{StartGold: 20, StartRooms: []RoomKind{RoomHerbalist, RoomSeller}})
	s.dice = poolOf(2, 2, 5)
	sink := &recordingSink{}

	s.DrawTo(sink)

	if sink.flushed != 1 {
		t.Fatalf("expected one flush, got %d", sink.flushed)
	}
	if sink.events[0] != "p{" || sink.events[1] != "text gold " || sink.events[2] != "int 20" {
		t.Fatalf("expected status first, got %v", sink.events[:3])
	}
	if got := sink.count(fmt.Sprintf("sym %d", DiceSymbol(NewDice(DiceD6, 2)))); got != 2 {
		t.Fatalf("expected two glyphs for the pair of twos, got %d", got)
	}
	if sink.count("list{") != 4 {
		t.Fatalf("expected rooms, shop and two upgrade lists, got %d", sink.count("list{"))
	}
	if sink.count("room{") != 2+len(s.shop) {
		t.Fatalf("expected owned and shop room blocks, got %d", sink.count("room{"))
	}

	joined := strings.Join(sink.events, "\n")
	status := strings.Index(joined, "text gold ")
	rooms := strings.Index(joined, "text herbalist")
	shop := strings.LastIndex(joined, "text panacea")
	if !(status < rooms && rooms < shop) {
		t.Fatalf("expected status, rooms, shop order")
	}
}

func TestDrawButtonsMatchAffordability(t *testing.T) {
	s := newTestState(t, Config{StartGold: 20, StartRooms: []RoomKind{RoomHerbalist, RoomSeller}})
	sink := &recordingSink{}

	s.DrawTo(sink)

	for _, sig := range []Signal{SignalRoll1, SignalRoll10, SignalRoll100, SignalRestart} {
		if !sink.hasButton(sig) {
			t.Fatalf("expected global button %d", sig)
		}
	}
	if !sink.hasButton(EncodeBuy(0)) || !sink.hasButton(EncodeBuy(1)) {
		t.Fatalf("expected affordable herbalist and seller buys")
	}
	if sink.hasButton(EncodeBuy(2)) {
		t.Fatalf("expected no buy button for the 60 gold market")
	}
	if !sink.hasButton(EncodeRoomUpgrade(0, 0)) {
		t.Fatalf("expected the 12 gold gatherers upgrade to be offered")
	}
	if sink.hasButton(EncodeRoomUpgrade(1, 0)) {
		t.Fatalf("expected the 25 gold multiplier upgrade to be withheld")
	}
	if !sink.hasButton(EncodeRoomAction(0, ActionMoveDown)) || sink.hasButton(EncodeRoomAction(0, ActionMoveUp)) {
		t.Fatalf("expected only a move down button on the first room")
	}
	for _, sig := range sink.buttons {
		if Decode(sig).Kind == CommandIgnored {
			t.Fatalf("drawn button %d does not decode", sig)
		}
	}
}

func TestDrawAfterLossOffersOnlyRestart(t *testing.T) {
	s := newTestState(t, Config{StartGold: 1000, StartRooms: []RoomKind{RoomHerbalist}})
	s.phase = PhaseLostByDebt
	sink := &recordingSink{}

	s.DrawTo(sink)

	if len(sink.buttons) != 1 || sink.buttons[0] != SignalRestart {
		t.Fatalf("expected only the restart button, got %v", sink.buttons)
	}
}

func TestDrawUsesCarriedSink(t *testing.T) {
	sink := &recordingSink{}
	s, err := NewState(Config{Shop: DefaultShop()}, Carry{Sink: sink})
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	s.Draw()
	if sink.flushed != 1 {
		t.Fatalf("expected the carried sink to be drawn into")
	}
}

func TestDiceSymbolRoundTrip(t *testing.T) {
	h := NewDice(DiceD6, 4)
	got, ok := DiceSymbol(h).Dice()
	if !ok || got != h {
		t.Fatalf("expected glyph to carry hash %d, got %d", h, got)
	}
	if _, ok := SymbolGold.Dice(); ok {
		t.Fatalf("expected gold glyph not to be a die")
	}
}
