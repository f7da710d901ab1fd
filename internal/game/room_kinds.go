package game

import (
	"fmt"
	"math"
)

// Upgrade slots per kind.
const (
	slotHerbalistGatherers = 0

	slotSellerMultiplier = 0

	slotMarketBase   = 0
	slotMarketStalls = 1

	slotSplitterCap    = 0
	slotSplitterBlades = 1

	slotDebtInstalment = 0
	slotDebtBribe      = 1
)

// splitThreshold is the face a die must exceed before a splitter takes it.
const splitThreshold = 1

func (r *Room) ActivationCap() int {
	switch r.kind {
	case RoomHerbalist:
		return r.upgrades[slotHerbalistGatherers].Floor()
	case RoomSeller:
		return Unbounded
	case RoomMarket:
		return r.upgrades[slotMarketStalls].Floor()
	case RoomSplitter:
		return r.upgrades[slotSplitterBlades].Floor()
	case RoomDebtCollector, RoomPanacea:
		return 1
	default:
		panic(fmt.Sprintf("unknown room kind %q", r.kind))
	}
}

func (r *Room) activate(s *State) bool {
	switch r.kind {
	case RoomHerbalist:
		s.dice.Add(NewDice(DiceD6, s.rng.IntN(6)+1), 1)
		return true
	case RoomSeller:
		h, ok := s.dice.First(nil)
		if !ok {
			return false
		}
		s.dice.Add(h, -1)
		s.earn(int64(math.Floor(float64(h.Face()) * r.upgrades[slotSellerMultiplier].Value())))
		return true
	case RoomMarket:
		h, ok := s.dice.First(nil)
		if !ok {
			return false
		}
		s.dice.Add(h, -1)
		s.earn(int64(r.upgrades[slotMarketBase].Floor() + r.activations))
		return true
	case RoomSplitter:
		h, ok := s.dice.Highest(func(h DiceHash) bool { return h.Face() > splitThreshold })
		if !ok {
			return false
		}
		pieces := min(r.upgrades[slotSplitterCap].Floor(), h.Face())
		if pieces < 1 {
			return false
		}
		s.dice.Add(h, -1)
		s.dice.Add(NewDice(h.Type(), 1), pieces)
		return true
	case RoomDebtCollector:
		return r.collect(s)
	case RoomPanacea:
		s.phase = PhaseWon
		return true
	default:
		panic(fmt.Sprintf("unknown room kind %q", r.kind))
	}
}

// collect pays down one instalment. Two collectors owed at once end the game.
func (r *Room) collect(s *State) bool {
	if s.outstandingDebts() > 1 {
		s.phase = PhaseLostByDebt
		return true
	}
	if r.debt.due <= 0 || s.gold <= 0 {
		return false
	}
	paid := min(s.gold, r.debt.due, r.Instalment())
	if paid <= 0 {
		return false
	}
	charged := paid - int64(math.Floor(float64(paid)*r.upgrades[slotDebtBribe].Value()))
	r.debt.due -= paid
	s.gold -= charged
	return true
}

// instalmentSlack absorbs float drift from additive percentage steps so that
// 15% of 100 is 15, not 16.
const instalmentSlack = 1e-9

// Instalment is the most a debt collector takes per activation.
func (r *Room) Instalment() int64 {
	if r.kind != RoomDebtCollector {
		return 0
	}
	share := r.upgrades[slotDebtInstalment].Value() * float64(r.debt.total)
	return int64(math.Ceil(share - instalmentSlack))
}

// Info is a one-line summary of what the room currently does.
func (r *Room) Info() string {
	switch r.kind {
	case RoomHerbalist:
		return fmt.Sprintf("grows %d fresh d6 per roll", r.ActivationCap())
	case RoomSeller:
		return fmt.Sprintf("sells any die for its face x %g", r.upgrades[slotSellerMultiplier].Value())
	case RoomMarket:
		return fmt.Sprintf("sells up to %d dice for %d gold, +1 for every earlier sale this roll",
			r.ActivationCap(), r.upgrades[slotMarketBase].Floor())
	case RoomSplitter:
		return fmt.Sprintf("splits the highest die above %d into up to %d ones, %d per roll",
			splitThreshold, r.upgrades[slotSplitterCap].Floor(), r.ActivationCap())
	case RoomDebtCollector:
		if r.debt.due <= 0 {
			return fmt.Sprintf("paid off %d", r.debt.total)
		}
		return fmt.Sprintf("owes %d of %d, collects %d per roll, bribe %.0f%%",
			r.debt.due, r.debt.total, r.Instalment(), math.Round(r.upgrades[slotDebtBribe].Value()*100))
	case RoomPanacea:
		return "activating it cures everything and wins the game"
	default:
		panic(fmt.Sprintf("unknown room kind %q", r.kind))
	}
}
