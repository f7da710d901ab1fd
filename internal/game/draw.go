package game

// Sink is the rendering capability a front-end provides. The game only ever
// writes to it; clicks come back as Signals through State.Apply.
type Sink interface {
	Int(int64)
	Decimal(float64)
	Text(string)
	Symbol(Symbol)
	BeginRoom()
	EndRoom()
	BeginUpgrade()
	EndUpgrade()
	BeginButton(Signal)
	EndButton()
	BeginParagraph()
	EndParagraph()
	BeginList()
	EndList()
	Flush()
}

type Symbol int

const (
	SymbolGold Symbol = iota + 1
	SymbolRoll
	SymbolArrow
	SymbolActivation
	SymbolUnbounded

	symbolDiceBase Symbol = 100
)

// DiceSymbol is the glyph for one die of hash h.
func DiceSymbol(h DiceHash) Symbol {
	return symbolDiceBase + Symbol(h)
}

// Dice reports the die a glyph stands for.
func (s Symbol) Dice() (DiceHash, bool) {
	if s <= symbolDiceBase {
		return DiceInvalid, false
	}
	h := DiceHash(s - symbolDiceBase)
	return h, h.Valid()
}

// Draw renders into the sink carried by the state, if any.
func (s *State) Draw() {
	if s.sink == nil {
		return
	}
	s.DrawTo(s.sink)
}

func (s *State) DrawTo(sink Sink) {
	s.drawStatus(sink)
	s.drawDice(sink)
	s.drawRooms(sink)
	s.drawShop(sink)
	sink.Flush()
}

func (s *State) drawStatus(sink Sink) {
	sink.BeginParagraph()
	sink.Text("gold ")
	sink.Int(s.gold)
	sink.Symbol(SymbolGold)
	sink.Text(" roll ")
	sink.Int(int64(s.rolls))
	sink.Symbol(SymbolRoll)
	switch s.phase {
	case PhaseLostByDebt:
		sink.Text(" lost: two debt collectors came at once")
	case PhaseWon:
		sink.Text(" won: the panacea is yours")
	}
	sink.EndParagraph()

	sink.BeginParagraph()
	if s.phase == PhasePlaying {
		button(sink, SignalRoll1, "roll")
		button(sink, SignalRoll10, "roll x10")
		button(sink, SignalRoll100, "roll x100")
	}
	button(sink, SignalRestart, "restart")
	sink.EndParagraph()
}

func (s *State) drawDice(sink Sink) {
	sink.BeginParagraph()
	for _, h := range s.dice.Hashes() {
		for i := 0; i < s.dice.Count(h); i++ {
			sink.Symbol(DiceSymbol(h))
		}
	}
	sink.EndParagraph()
}

func (s *State) drawRooms(sink Sink) {
	sink.BeginList()
	for i, r := range s.rooms {
		sink.BeginRoom()
		sink.Text(r.Name())
		sink.Text(" ")
		sink.Text(r.Info())
		sink.Text(" ")
		if left := r.Remaining(); left == Unbounded {
			sink.Symbol(SymbolUnbounded)
		} else {
			sink.Int(int64(left))
		}
		sink.Symbol(SymbolActivation)

		if s.phase == PhasePlaying {
			if r.Sellable() {
				sink.BeginButton(EncodeRoomAction(i, ActionSell))
				sink.Text("sell ")
				sink.Int(r.SaleValue())
				sink.Symbol(SymbolGold)
				sink.EndButton()
			}
			if i > 0 {
				button(sink, EncodeRoomAction(i, ActionMoveUp), ActionMoveUp.String())
			}
			if i >= farMove {
				button(sink, EncodeRoomAction(i, ActionMoveUpFar), ActionMoveUpFar.String())
			}
			if i < len(s.rooms)-1 {
				button(sink, EncodeRoomAction(i, ActionMoveDown), ActionMoveDown.String())
			}
			if i+farMove < len(s.rooms) {
				button(sink, EncodeRoomAction(i, ActionMoveDownFar), ActionMoveDownFar.String())
			}
		}

		if len(r.upgrades) > 0 {
			sink.BeginList()
			for slot, u := range r.upgrades {
				s.drawUpgrade(sink, i, slot, u)
			}
			sink.EndList()
		}
		sink.EndRoom()
	}
	sink.EndList()
}

func (s *State) drawUpgrade(sink Sink, room, slot int, u *Upgrade) {
	sink.BeginUpgrade()
	sink.Text(u.Name())
	sink.Text(" ")
	sink.Decimal(u.Value())
	if u.Capped() {
		sink.Text(" max")
		sink.EndUpgrade()
		return
	}
	sink.Symbol(SymbolArrow)
	sink.Decimal(u.NextValue())
	sink.Text(" for ")
	sink.Int(u.Price())
	sink.Symbol(SymbolGold)
	if s.phase == PhasePlaying && u.Price() <= s.gold {
		button(sink, EncodeRoomUpgrade(room, slot), "level up")
	}
	sink.EndUpgrade()
}

func (s *State) drawShop(sink Sink) {
	sink.BeginList()
	for i, r := range s.shop {
		sink.BeginRoom()
		sink.Text(r.Name())
		sink.Text(" ")
		sink.Text(r.Info())
		sink.Text(" ")
		if s.phase == PhasePlaying && r.Price() <= s.gold {
			sink.BeginButton(EncodeBuy(i))
			sink.Text("buy ")
			sink.Int(r.Price())
			sink.Symbol(SymbolGold)
			sink.EndButton()
		} else {
			sink.Int(r.Price())
			sink.Symbol(SymbolGold)
		}
		sink.EndRoom()
	}
	sink.EndList()
}

func button(sink Sink, sig Signal, label string) {
	sink.BeginButton(sig)
	sink.Text(label)
	sink.EndButton()
}
