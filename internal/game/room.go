package game

import "fmt"

type RoomKind string

const (
	RoomHerbalist     RoomKind = "herbalist"
	RoomSeller        RoomKind = "seller"
	RoomMarket        RoomKind = "market"
	RoomSplitter      RoomKind = "splitter"
	RoomDebtCollector RoomKind = "debt_collector"
	RoomPanacea       RoomKind = "panacea"
)

// MaxUpgradesPerRoom bounds the upgrade slots a room may carry; the signal
// codec reserves exactly this many level-up slots per room.
const MaxUpgradesPerRoom = 8

// Room is one owned economic unit, or a shop template when held in the
// catalog. Behaviour is selected by kind; see room_kinds.go.
type Room struct {
	kind        RoomKind
	name        string
	price       int64
	upgrades    []*Upgrade
	activations int
	debt        debtLedger
}

type debtLedger struct {
	due   int64
	total int64
}

func newRoom(kind RoomKind, name string, price int64, upgrades ...*Upgrade) *Room {
	if price < 0 {
		panic(fmt.Sprintf("room %q: negative price %d", name, price))
	}
	if len(upgrades) > MaxUpgradesPerRoom {
		panic(fmt.Sprintf("room %q: %d upgrades exceeds %d", name, len(upgrades), MaxUpgradesPerRoom))
	}
	return &Room{kind: kind, name: name, price: price, upgrades: upgrades}
}

func (r *Room) Kind() RoomKind { return r.kind }

func (r *Room) Name() string { return r.name }

// Upgrades lists the room's upgrades by slot. Use State.LevelUp to advance one.
func (r *Room) Upgrades() []*Upgrade { return append([]*Upgrade(nil), r.upgrades...) }

func (r *Room) Upgrade(slot int) (*Upgrade, bool) {
	if slot < 0 || slot >= len(r.upgrades) {
		return nil, false
	}
	return r.upgrades[slot], true
}

func (r *Room) Activations() int { return r.activations }

// Remaining reports how many activations are left this roll, or Unbounded.
func (r *Room) Remaining() int {
	limit := r.ActivationCap()
	if limit == Unbounded {
		return Unbounded
	}
	return max(0, limit-r.activations)
}

// Level is one plus every level bought on the room's upgrades.
func (r *Room) Level() int {
	level := 1
	for _, u := range r.upgrades {
		level += u.Level()
	}
	return level
}

// Price is the purchase price of a template and the per-level sale price of
// an owned room. A negative price means the room cannot be sold.
func (r *Room) Price() int64 {
	if r.kind == RoomDebtCollector {
		if r.debt.due > 0 {
			return -1
		}
		return 0
	}
	return r.price
}

func (r *Room) Sellable() bool { return r.Price() >= 0 }

// SaleValue is the gold credited when the room is sold.
func (r *Room) SaleValue() int64 {
	return r.Price() * int64(r.Level())
}

// Due and DueTotal describe a debt collector's outstanding debt.
func (r *Room) Due() int64 { return r.debt.due }

func (r *Room) DueTotal() int64 { return r.debt.total }

func (r *Room) Outstanding() bool {
	return r.kind == RoomDebtCollector && r.debt.due > 0
}

// tryActivate runs the room once. It returns false without touching the state
// when the cap is reached or the room has nothing to work with.
func (r *Room) tryActivate(s *State) bool {
	if s.phase != PhasePlaying {
		return false
	}
	if limit := r.ActivationCap(); limit != Unbounded && r.activations >= limit {
		return false
	}
	if !r.activate(s) {
		return false
	}
	r.activations++
	return true
}

func (r *Room) resetActivations() {
	r.activations = 0
}

// Clone copies a template into a fresh room with its own upgrades.
func (r *Room) Clone() *Room {
	c := *r
	c.activations = 0
	c.upgrades = make([]*Upgrade, len(r.upgrades))
	for i, u := range r.upgrades {
		c.upgrades[i] = u.clone()
	}
	return &c
}
