package game

import (
	"fmt"
	"sort"
)

// DiceHash identifies a die by type and face. The pool never tracks
// individual dice, only counts per hash.
type DiceHash int

const DiceInvalid DiceHash = 0

type DiceType int

const (
	DiceNone DiceType = iota
	DiceD6
)

type diceRange struct {
	typ   DiceType
	base  DiceHash
	faces int
	label string
}

// Hash ranges must stay contiguous and disjoint.
var diceRanges = []diceRange{
	{typ: DiceD6, base: 1, faces: 6, label: "d6"},
}

func lookupDiceType(t DiceType) (diceRange, bool) {
	for _, r := range diceRanges {
		if r.typ == t {
			return r, true
		}
	}
	return diceRange{}, false
}

func NewDice(t DiceType, face int) DiceHash {
	r, ok := lookupDiceType(t)
	if !ok {
		panic(fmt.Sprintf("unknown dice type %d", t))
	}
	if face < 1 || face > r.faces {
		panic(fmt.Sprintf("%s face %d out of range", r.label, face))
	}
	return r.base + DiceHash(face-1)
}

// Decode splits a hash into its type and face value.
func (h DiceHash) Decode() (DiceType, int, bool) {
	for _, r := range diceRanges {
		if h >= r.base && h < r.base+DiceHash(r.faces) {
			return r.typ, int(h-r.base) + 1, true
		}
	}
	return DiceNone, 0, false
}

func (h DiceHash) Valid() bool {
	_, _, ok := h.Decode()
	return ok
}

func (h DiceHash) Type() DiceType {
	t, _, _ := h.Decode()
	return t
}

func (h DiceHash) Face() int {
	_, face, _ := h.Decode()
	return face
}

func (h DiceHash) String() string {
	t, face, ok := h.Decode()
	if !ok {
		return "invalid"
	}
	r, _ := lookupDiceType(t)
	return fmt.Sprintf("%s:%d", r.label, face)
}

// DicePool counts dice per hash. Counts never drop below zero.
type DicePool map[DiceHash]int

func (p DicePool) Add(h DiceHash, delta int) {
	if delta == 0 {
		panic("dice pool: zero delta")
	}
	if !h.Valid() {
		panic(fmt.Sprintf("dice pool: invalid hash %d", h))
	}
	next := p[h] + delta
	if next < 0 {
		panic(fmt.Sprintf("dice pool: %s would drop to %d", h, next))
	}
	if next == 0 {
		delete(p, h)
		return
	}
	p[h] = next
}

func (p DicePool) Count(h DiceHash) int {
	return p[h]
}

func (p DicePool) Total() int {
	total := 0
	for _, n := range p {
		total += n
	}
	return total
}

// Hashes lists the hashes present in the pool in ascending order.
func (p DicePool) Hashes() []DiceHash {
	out := make([]DiceHash, 0, len(p))
	for h, n := range p {
		if n > 0 {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// First returns the lowest hash present that satisfies pred.
func (p DicePool) First(pred func(DiceHash) bool) (DiceHash, bool) {
	for _, h := range p.Hashes() {
		if pred == nil || pred(h) {
			return h, true
		}
	}
	return DiceInvalid, false
}

// Highest returns the present die with the highest face satisfying pred.
// Equal faces resolve to the lower hash.
func (p DicePool) Highest(pred func(DiceHash) bool) (DiceHash, bool) {
	best := DiceInvalid
	for _, h := range p.Hashes() {
		if pred != nil && !pred(h) {
			continue
		}
		if best == DiceInvalid || h.Face() > best.Face() {
			best = h
		}
	}
	return best, best != DiceInvalid
}

func (p DicePool) clone() DicePool {
	c := make(DicePool, len(p))
	for h, n := range p {
		c[h] = n
	}
	return c
}
