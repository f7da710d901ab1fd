package game

import (
	"fmt"
	"math"
)

// Unbounded marks an upgrade level cap or a room activation cap with no limit.
const Unbounded = -1

type UpgradeSpec struct {
	Name        string
	Value       float64
	ValueGrowth Growth
	Price       float64
	PriceGrowth Growth
	LevelMax    int
}

// Upgrade is one levelable parameter of a room. Its value and its price move
// along independent growth curves; State.LevelUp is the only way to advance it.
type Upgrade struct {
	name        string
	value       float64
	valueGrowth Growth
	price       float64
	priceGrowth Growth
	level       int
	levelMax    int
}

func NewUpgrade(spec UpgradeSpec) *Upgrade {
	if spec.Price < 0 {
		panic(fmt.Sprintf("upgrade %q: negative price %v", spec.Name, spec.Price))
	}
	if spec.ValueGrowth == nil || spec.PriceGrowth == nil {
		panic(fmt.Sprintf("upgrade %q: missing growth", spec.Name))
	}
	if spec.LevelMax == 0 || spec.LevelMax < Unbounded {
		panic(fmt.Sprintf("upgrade %q: invalid level cap %d", spec.Name, spec.LevelMax))
	}
	return &Upgrade{
		name:        spec.Name,
		value:       spec.Value,
		valueGrowth: spec.ValueGrowth,
		price:       spec.Price,
		priceGrowth: spec.PriceGrowth,
		levelMax:    spec.LevelMax,
	}
}

func (u *Upgrade) Name() string { return u.name }

func (u *Upgrade) Value() float64 { return u.value }

func (u *Upgrade) Floor() int { return int(math.Floor(u.value)) }

func (u *Upgrade) Ceil() int { return int(math.Ceil(u.value)) }

// NextValue is the value the upgrade would have after one more level.
func (u *Upgrade) NextValue() float64 { return u.valueGrowth.Next(u.value) }

// Price is the gold charged for the next level, always rounded up. Prices
// beyond the int64 range saturate at math.MaxInt64.
func (u *Upgrade) Price() int64 {
	p := math.Ceil(u.price)
	if p >= math.MaxInt64 || math.IsNaN(p) {
		return math.MaxInt64
	}
	return int64(p)
}

func (u *Upgrade) Level() int { return u.level }

func (u *Upgrade) ValueGrowth() Growth { return u.valueGrowth }

func (u *Upgrade) PriceGrowth() Growth { return u.priceGrowth }

func (u *Upgrade) LevelMax() int { return u.levelMax }

func (u *Upgrade) Capped() bool {
	return u.levelMax != Unbounded && u.level >= u.levelMax
}

// levelUp buys one level with the state's gold. Nothing changes when the
// upgrade is capped, the game is over, or the gold does not cover the price.
func (u *Upgrade) levelUp(s *State) bool {
	if s.phase != PhasePlaying || u.Capped() {
		return false
	}
	if !s.spend(u.Price()) {
		return false
	}
	u.level++
	u.value = u.valueGrowth.Next(u.value)
	u.price = math.Max(0, u.priceGrowth.Next(u.price))
	return true
}

func (u *Upgrade) clone() *Upgrade {
	c := *u
	return &c
}
