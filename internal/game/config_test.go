package game

import (
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "negative gold", mutate: func(c *Config) { c.StartGold = -5 }, want: "start gold"},
		{name: "collector start room", mutate: func(c *Config) { c.StartRooms = []RoomKind{RoomDebtCollector} }, want: "start rooms"},
		{name: "unknown shop room", mutate: func(c *Config) { c.Shop = []RoomKind{"tavern"} }, want: "shop"},
		{name: "empty shop", mutate: func(c *Config) { c.Shop = nil }, want: "shop must list"},
		{name: "unordered schedule", mutate: func(c *Config) {
			c.DebtSchedule = []DebtMilestone{{Roll: 10, Amount: 1}, {Roll: 5, Amount: 1}}
		}, want: "ascending"},
		{name: "rooms and milestones overflow", mutate: func(c *Config) {
			c.StartRooms = make([]RoomKind, MaxRooms)
			for i := range c.StartRooms {
				c.StartRooms[i] = RoomHerbalist
			}
			c.DebtSchedule = []DebtMilestone{{Roll: 3, Amount: 1}}
		}, want: "must fit"},
		{name: "zero debt", mutate: func(c *Config) { c.DebtSchedule = []DebtMilestone{{Roll: 3, Amount: 0}} }, want: "positive"},
	}
	for _, tc := range tests {
		c := DefaultConfig()
		tc.mutate(&c)
		err := c.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected %q in %v", tc.name, tc.want, err)
		}
	}
}

func TestCatalogMatchesDefaultShop(t *testing.T) {
	catalog := Catalog()
	kinds := DefaultShop()
	if len(catalog) != len(kinds) {
		t.Fatalf("expected %d templates, got %d", len(kinds), len(catalog))
	}
	for i, r := range catalog {
		if r.Kind() != kinds[i] {
			t.Fatalf("template %d is %s, want %s", i, r.Kind(), kinds[i])
		}
		if len(r.Upgrades()) > MaxUpgradesPerRoom {
			t.Fatalf("%s carries too many upgrades", r.Kind())
		}
	}
}
