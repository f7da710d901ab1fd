package game

import (
	"fmt"
)

type Config struct {
	// Seed drives the random source when none is carried in. Zero picks a
	// time-based seed.
	Seed         int64
	StartGold    int64
	StartRooms   []RoomKind
	Shop         []RoomKind
	DebtSchedule []DebtMilestone
}

// DebtMilestone spawns a debt collector owing Amount once Roll rolls have
// been played.
type DebtMilestone struct {
	Roll   int
	Amount int64
}

func DefaultConfig() Config {
	return Config{
		StartRooms: []RoomKind{RoomHerbalist, RoomSeller},
		Shop:       DefaultShop(),
		DebtSchedule: []DebtMilestone{
			{Roll: 25, Amount: 100},
			{Roll: 60, Amount: 400},
			{Roll: 110, Amount: 1500},
			{Roll: 180, Amount: 5000},
		},
	}
}

func (c Config) Validate() error {
	if c.StartGold < 0 {
		return fmt.Errorf("start gold must not be negative, got %d", c.StartGold)
	}

	if len(c.StartRooms)+len(c.DebtSchedule) > MaxRooms {
		return fmt.Errorf("start rooms and debt milestones must fit in %d rooms, got %d + %d",
			MaxRooms, len(c.StartRooms), len(c.DebtSchedule))
	}
	for _, kind := range c.StartRooms {
		if _, err := NewRoom(kind); err != nil {
			return fmt.Errorf("start rooms: %w", err)
		}
	}

	if len(c.Shop) == 0 || len(c.Shop) > MaxShop {
		return fmt.Errorf("shop must list between 1 and %d rooms, got %d", MaxShop, len(c.Shop))
	}
	for _, kind := range c.Shop {
		if _, err := NewRoom(kind); err != nil {
			return fmt.Errorf("shop: %w", err)
		}
	}

	last := 0
	for _, m := range c.DebtSchedule {
		if m.Roll <= last {
			return fmt.Errorf("debt schedule rolls must be positive and ascending, got %d after %d", m.Roll, last)
		}
		if m.Amount <= 0 {
			return fmt.Errorf("debt at roll %d must be positive, got %d", m.Roll, m.Amount)
		}
		last = m.Roll
	}

	return nil
}
