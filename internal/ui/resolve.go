package ui

import (
	"fmt"

	"github.com/appengine-ltd/dice-rooms/internal/game"
	"github.com/appengine-ltd/dice-rooms/internal/parser"
)

// maxRollsPerCommand bounds "roll n" so one line cannot stall the loop.
const maxRollsPerCommand = 10000

// Resolve turns a parsed command into the signals a player would click.
// Numbers in the intent are 1-based. The message is non-empty when the
// command cannot be expressed against the current state.
func Resolve(intent parser.Intent, s *game.State, buttons []game.Signal) ([]game.Signal, string) {
	n := func(i int) int {
		if i < len(intent.Numbers) {
			return intent.Numbers[i]
		}
		return 0
	}

	switch intent.Verb {
	case "roll":
		count := 1
		if len(intent.Numbers) > 0 {
			count = n(0)
		}
		if count < 1 || count > maxRollsPerCommand {
			return nil, fmt.Sprintf("roll between 1 and %d times", maxRollsPerCommand)
		}
		return rollSignals(count), ""

	case "buy":
		shop := n(0) - 1
		if shop < 0 || shop >= len(s.Shop()) {
			return nil, fmt.Sprintf("the shop has no room #%d", n(0))
		}
		return []game.Signal{game.EncodeBuy(shop)}, ""

	case "sell":
		room := n(0) - 1
		if _, ok := s.Room(room); !ok {
			return nil, fmt.Sprintf("you have no room #%d", n(0))
		}
		return []game.Signal{game.EncodeRoomAction(room, game.ActionSell)}, ""

	case "upgrade":
		room, slot := n(0)-1, n(1)-1
		r, ok := s.Room(room)
		if !ok {
			return nil, fmt.Sprintf("you have no room #%d", n(0))
		}
		if slot < 0 || slot >= len(r.Upgrades()) {
			return nil, fmt.Sprintf("%s has no upgrade #%d", r.Name(), n(1))
		}
		return []game.Signal{game.EncodeRoomUpgrade(room, slot)}, ""

	case "move":
		room, step := n(0)-1, n(1)
		if _, ok := s.Room(room); !ok {
			return nil, fmt.Sprintf("you have no room #%d", n(0))
		}
		target := room + step
		if step == 0 || target < 0 || target >= len(s.Rooms()) {
			return nil, fmt.Sprintf("room #%d cannot move by %d", n(0), step)
		}
		return moveSignals(room, step), ""

	case "press":
		idx := n(0) - 1
		if idx < 0 || idx >= len(buttons) {
			return nil, fmt.Sprintf("there is no button [%d]", n(0))
		}
		return []game.Signal{buttons[idx]}, ""

	case "restart":
		return []game.Signal{game.SignalRestart}, ""
	}
	return nil, ""
}

func rollSignals(count int) []game.Signal {
	out := make([]game.Signal, 0, count/100+18)
	for range count / 100 {
		out = append(out, game.SignalRoll100)
	}
	for range count % 100 / 10 {
		out = append(out, game.SignalRoll10)
	}
	for range count % 10 {
		out = append(out, game.SignalRoll1)
	}
	return out
}

// moveSignals follows the room as it travels: far steps first, then singles.
func moveSignals(room, step int) []game.Signal {
	far, near := game.ActionMoveDownFar, game.ActionMoveDown
	if step < 0 {
		far, near = game.ActionMoveUpFar, game.ActionMoveUp
		step = -step
	}
	reach := game.ActionMoveDownFar.Step()
	var out []game.Signal
	for ; step >= reach; step -= reach {
		out = append(out, game.EncodeRoomAction(room, far))
		room += far.Step()
	}
	for ; step > 0; step-- {
		out = append(out, game.EncodeRoomAction(room, near))
		room += near.Step()
	}
	return out
}
