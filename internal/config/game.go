package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/appengine-ltd/dice-rooms/internal/game"
)

// Env is the environment surface of the binary. Unset fields keep the
// standard game's values.
type Env struct {
	Seed         int64        `env:"DICEROOMS_SEED"`
	StartGold    int64        `env:"DICEROOMS_START_GOLD"`
	StartRooms   []string     `env:"DICEROOMS_START_ROOMS" envSeparator:","`
	Shop         []string     `env:"DICEROOMS_SHOP" envSeparator:","`
	DebtSchedule DebtSchedule `env:"DICEROOMS_DEBT_SCHEDULE"`
}

// DebtSchedule parses "roll:amount,roll:amount". The literal "none" clears
// the schedule.
type DebtSchedule struct {
	Set        bool
	Milestones []game.DebtMilestone
}

func (d *DebtSchedule) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	d.Set = true
	d.Milestones = nil
	if raw == "" || raw == "none" {
		return nil
	}
	for _, part := range strings.Split(raw, ",") {
		roll, amount, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return fmt.Errorf("debt milestone %q: want roll:amount", part)
		}
		r, err := strconv.Atoi(strings.TrimSpace(roll))
		if err != nil {
			return fmt.Errorf("debt milestone %q: roll: %w", part, err)
		}
		a, err := strconv.ParseInt(strings.TrimSpace(amount), 10, 64)
		if err != nil {
			return fmt.Errorf("debt milestone %q: amount: %w", part, err)
		}
		d.Milestones = append(d.Milestones, game.DebtMilestone{Roll: r, Amount: a})
	}
	return nil
}

// Load reads the environment over the standard game and validates the result.
func Load() (game.Config, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return game.Config{}, err
	}
	return e.GameConfig()
}

func (e Env) GameConfig() (game.Config, error) {
	c := game.DefaultConfig()
	c.Seed = e.Seed
	c.StartGold = e.StartGold
	if len(e.StartRooms) > 0 {
		c.StartRooms = roomKinds(e.StartRooms)
	}
	if len(e.Shop) > 0 {
		c.Shop = roomKinds(e.Shop)
	}
	if e.DebtSchedule.Set {
		c.DebtSchedule = e.DebtSchedule.Milestones
	}
	if err := c.Validate(); err != nil {
		return game.Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

func roomKinds(names []string) []game.RoomKind {
	out := make([]game.RoomKind, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		out = append(out, game.RoomKind(strings.ReplaceAll(n, " ", "_")))
	}
	return out
}
