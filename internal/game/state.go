package game

import (
	"fmt"
	"math/rand/v2"
)

type Phase string

const (
	PhasePlaying    Phase = "playing"
	PhaseLostByDebt Phase = "lost_by_debt"
	PhaseWon        Phase = "won"
)

// Carry holds the collaborators that outlive a game: the random source and
// the sink the game draws into. Both survive Reset.
type Carry struct {
	RNG  *rand.Rand
	Sink Sink
}

// State is the whole game: gold, the dice pool, the owned rooms in activation
// order, the shop templates and the roll counter. Only its methods mutate it.
type State struct {
	config Config
	rng    *rand.Rand
	sink   Sink

	gold  int64
	dice  DicePool
	rooms []*Room
	shop  []*Room
	rolls int
	phase Phase

	lastRoll RollReport
}

func NewState(config Config, carry Carry) (*State, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if carry.RNG == nil {
		carry.RNG = NewRandom(config.Seed)
	}
	s := &State{config: config}
	s.rebuild(carry)
	return s, nil
}

// Reset starts a new game from the same configuration, keeping the random
// source and the sink.
func (s *State) Reset() {
	s.rebuild(Carry{RNG: s.rng, Sink: s.sink})
}

func (s *State) rebuild(carry Carry) {
	fresh := State{
		config: s.config,
		gold:   s.config.StartGold,
		dice:   DicePool{},
		rooms:  buildRooms(s.config.StartRooms),
		shop:   buildRooms(s.config.Shop),
		phase:  PhasePlaying,
	}
	fresh.rng = carry.RNG
	fresh.sink = carry.Sink
	*s = fresh
}

func buildRooms(kinds []RoomKind) []*Room {
	rooms := make([]*Room, 0, len(kinds))
	for _, kind := range kinds {
		r, err := NewRoom(kind)
		if err != nil {
			panic(fmt.Sprintf("validated config lists unbuildable room: %v", err))
		}
		rooms = append(rooms, r)
	}
	return rooms
}

func (s *State) Config() Config { return s.config }

func (s *State) Gold() int64 { return s.gold }

func (s *State) Rolls() int { return s.rolls }

func (s *State) Phase() Phase { return s.phase }

func (s *State) Playing() bool { return s.phase == PhasePlaying }

// Dice returns a copy of the pool.
func (s *State) Dice() DicePool { return s.dice.clone() }

// Rooms returns the owned rooms in activation order. Callers must not mutate
// the rooms directly.
func (s *State) Rooms() []*Room { return append([]*Room(nil), s.rooms...) }

func (s *State) Room(idx int) (*Room, bool) {
	if idx < 0 || idx >= len(s.rooms) {
		return nil, false
	}
	return s.rooms[idx], true
}

// Shop returns copies of the shop templates; the templates themselves only
// change on Reset.
func (s *State) Shop() []*Room {
	out := make([]*Room, len(s.shop))
	for i, r := range s.shop {
		out[i] = r.Clone()
	}
	return out
}

func (s *State) LastRoll() RollReport { return s.lastRoll }

func (s *State) Sink() Sink { return s.sink }

func (s *State) SetSink(sink Sink) { s.sink = sink }

func (s *State) spend(amount int64) bool {
	if amount < 0 {
		panic(fmt.Sprintf("spend: negative amount %d", amount))
	}
	if amount > s.gold {
		return false
	}
	s.gold -= amount
	return true
}

func (s *State) earn(amount int64) {
	if amount < 0 {
		panic(fmt.Sprintf("earn: negative amount %d", amount))
	}
	s.gold += amount
}

func (s *State) outstandingDebts() int {
	n := 0
	for _, r := range s.rooms {
		if r.Outstanding() {
			n++
		}
	}
	return n
}
