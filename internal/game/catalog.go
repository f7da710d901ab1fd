package game

import "fmt"

func NewHerbalist() *Room {
	return newRoom(RoomHerbalist, "herbalist", 15,
		NewUpgrade(UpgradeSpec{
			Name: "gatherers", Value: 1, ValueGrowth: Additive{Step: 1},
			Price: 12, PriceGrowth: Multiplicative{Factor: 1.6}, LevelMax: 9,
		}),
	)
}

func NewSeller() *Room {
	return newRoom(RoomSeller, "seller", 20,
		NewUpgrade(UpgradeSpec{
			Name: "multiplier", Value: 1, ValueGrowth: Additive{Step: 0.5},
			Price: 25, PriceGrowth: Multiplicative{Factor: 1.8}, LevelMax: Unbounded,
		}),
	)
}

func NewMarket() *Room {
	return newRoom(RoomMarket, "market", 60,
		NewUpgrade(UpgradeSpec{
			Name: "base price", Value: 2, ValueGrowth: Additive{Step: 1},
			Price: 30, PriceGrowth: Multiplicative{Factor: 1.7}, LevelMax: Unbounded,
		}),
		NewUpgrade(UpgradeSpec{
			Name: "stalls", Value: 2, ValueGrowth: Additive{Step: 1},
			Price: 40, PriceGrowth: Multiplicative{Factor: 1.9}, LevelMax: 8,
		}),
	)
}

func NewSplitter() *Room {
	return newRoom(RoomSplitter, "splitter", 80,
		NewUpgrade(UpgradeSpec{
			Name: "split cap", Value: 2, ValueGrowth: Additive{Step: 1},
			Price: 35, PriceGrowth: Multiplicative{Factor: 1.7}, LevelMax: 4,
		}),
		NewUpgrade(UpgradeSpec{
			Name: "blades", Value: 1, ValueGrowth: Additive{Step: 1},
			Price: 45, PriceGrowth: Multiplicative{Factor: 2}, LevelMax: 5,
		}),
	)
}

// NewDebtCollector owes amount gold. It is spawned by the debt schedule and
// cannot be sold until the debt is paid.
func NewDebtCollector(amount int64) *Room {
	if amount <= 0 {
		panic(fmt.Sprintf("debt collector: non-positive debt %d", amount))
	}
	r := newRoom(RoomDebtCollector, "debt collector", 0,
		NewUpgrade(UpgradeSpec{
			Name: "instalment", Value: 0.10, ValueGrowth: Additive{Step: 0.05},
			Price: 40, PriceGrowth: Multiplicative{Factor: 1.8}, LevelMax: 8,
		}),
		NewUpgrade(UpgradeSpec{
			Name: "bribe", Value: 0, ValueGrowth: Additive{Step: 0.05},
			Price: 60, PriceGrowth: Multiplicative{Factor: 2}, LevelMax: 6,
		}),
	)
	r.debt = debtLedger{due: amount, total: amount}
	return r
}

func NewPanacea() *Room {
	return newRoom(RoomPanacea, "panacea", 5000)
}

// NewRoom builds a fresh room of a purchasable kind.
func NewRoom(kind RoomKind) (*Room, error) {
	switch kind {
	case RoomHerbalist:
		return NewHerbalist(), nil
	case RoomSeller:
		return NewSeller(), nil
	case RoomMarket:
		return NewMarket(), nil
	case RoomSplitter:
		return NewSplitter(), nil
	case RoomPanacea:
		return NewPanacea(), nil
	default:
		return nil, fmt.Errorf("room kind %q cannot be built directly", kind)
	}
}

// DefaultShop is the standard catalog, in display order.
func DefaultShop() []RoomKind {
	return []RoomKind{RoomHerbalist, RoomSeller, RoomMarket, RoomSplitter, RoomPanacea}
}

// Catalog returns a fresh template of every default shop entry.
func Catalog() []*Room {
	kinds := DefaultShop()
	out := make([]*Room, 0, len(kinds))
	for _, kind := range kinds {
		r, err := NewRoom(kind)
		if err != nil {
			panic(err)
		}
		out = append(out, r)
	}
	return out
}
