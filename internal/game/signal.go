package game

import "fmt"

// Signal is an integer command token. Every button a front-end shows carries
// one, and State.Apply turns it back into an operation.
//
// The integer space is split into fixed ranges:
//
//	1..4                            global actions
//	RoomSignalBase + room*SignalsPerRoom + slot
//	                                slot < MaxUpgradesPerRoom levels up an upgrade,
//	                                MaxUpgradesPerRoom + action is a room action
//	BuySignalBase + shop index      buy from the shop
//
// Anything else is ignored.
type Signal int

const (
	SignalNone    Signal = 0
	SignalRoll1   Signal = 1
	SignalRoll10  Signal = 2
	SignalRoll100 Signal = 3
	SignalRestart Signal = 4

	RoomSignalBase Signal = 1000
	SignalsPerRoom        = 16
	MaxRooms              = 256

	BuySignalBase Signal = 10000
	MaxShop              = 256
)

type RoomAction int

const (
	ActionNone RoomAction = iota
	ActionSell
	ActionMoveUp
	ActionMoveDown
	ActionMoveUpFar
	ActionMoveDownFar

	roomActionCount
)

const farMove = 5

// Step is the signed move distance of a move action.
func (a RoomAction) Step() int {
	switch a {
	case ActionMoveUp:
		return -1
	case ActionMoveDown:
		return 1
	case ActionMoveUpFar:
		return -farMove
	case ActionMoveDownFar:
		return farMove
	default:
		return 0
	}
}

func (a RoomAction) String() string {
	switch a {
	case ActionSell:
		return "sell"
	case ActionMoveUp:
		return "up"
	case ActionMoveDown:
		return "down"
	case ActionMoveUpFar:
		return "up 5"
	case ActionMoveDownFar:
		return "down 5"
	default:
		return "none"
	}
}

func EncodeRoomUpgrade(room, slot int) Signal {
	if room < 0 || room >= MaxRooms || slot < 0 || slot >= MaxUpgradesPerRoom {
		panic(fmt.Sprintf("room upgrade signal out of range: room %d slot %d", room, slot))
	}
	return RoomSignalBase + Signal(room*SignalsPerRoom+slot)
}

func EncodeRoomAction(room int, action RoomAction) Signal {
	if room < 0 || room >= MaxRooms || action <= ActionNone || action >= roomActionCount {
		panic(fmt.Sprintf("room action signal out of range: room %d action %d", room, action))
	}
	return RoomSignalBase + Signal(room*SignalsPerRoom+MaxUpgradesPerRoom+int(action))
}

func EncodeBuy(shopIdx int) Signal {
	if shopIdx < 0 || shopIdx >= MaxShop {
		panic(fmt.Sprintf("buy signal out of range: %d", shopIdx))
	}
	return BuySignalBase + Signal(shopIdx)
}

func DecodeGlobal(sig Signal) (Signal, bool) {
	switch sig {
	case SignalRoll1, SignalRoll10, SignalRoll100, SignalRestart:
		return sig, true
	default:
		return SignalNone, false
	}
}

func decodeRoom(sig Signal) (room, slot int, ok bool) {
	if sig < RoomSignalBase || sig >= RoomSignalBase+Signal(MaxRooms*SignalsPerRoom) {
		return 0, 0, false
	}
	offset := int(sig - RoomSignalBase)
	return offset / SignalsPerRoom, offset % SignalsPerRoom, true
}

func DecodeRoomUpgrade(sig Signal) (room, slot int, ok bool) {
	room, slot, ok = decodeRoom(sig)
	if !ok || slot >= MaxUpgradesPerRoom {
		return 0, 0, false
	}
	return room, slot, true
}

func DecodeRoomAction(sig Signal) (room int, action RoomAction, ok bool) {
	room, slot, ok := decodeRoom(sig)
	if !ok || slot < MaxUpgradesPerRoom {
		return 0, ActionNone, false
	}
	action = RoomAction(slot - MaxUpgradesPerRoom)
	if action <= ActionNone || action >= roomActionCount {
		return 0, ActionNone, false
	}
	return room, action, true
}

func DecodeBuy(sig Signal) (int, bool) {
	if sig < BuySignalBase || sig >= BuySignalBase+MaxShop {
		return 0, false
	}
	return int(sig - BuySignalBase), true
}

type CommandKind int

const (
	CommandIgnored CommandKind = iota
	CommandGlobal
	CommandUpgrade
	CommandRoomAction
	CommandBuy
)

// Command is a decoded signal.
type Command struct {
	Kind   CommandKind
	Global Signal
	Room   int
	Slot   int
	Action RoomAction
	Shop   int
}

func Decode(sig Signal) Command {
	if g, ok := DecodeGlobal(sig); ok {
		return Command{Kind: CommandGlobal, Global: g}
	}
	if room, slot, ok := DecodeRoomUpgrade(sig); ok {
		return Command{Kind: CommandUpgrade, Room: room, Slot: slot}
	}
	if room, action, ok := DecodeRoomAction(sig); ok {
		return Command{Kind: CommandRoomAction, Room: room, Action: action}
	}
	if idx, ok := DecodeBuy(sig); ok {
		return Command{Kind: CommandBuy, Shop: idx}
	}
	return Command{Kind: CommandIgnored}
}

type ApplyResult struct {
	Recognized bool
	Applied    bool
}

// Apply decodes sig and runs the matching operation. Unknown or stale
// signals are reported as not applied and change nothing.
func (s *State) Apply(sig Signal) ApplyResult {
	cmd := Decode(sig)
	switch cmd.Kind {
	case CommandGlobal:
		switch cmd.Global {
		case SignalRoll1:
			return s.applyRolls(1)
		case SignalRoll10:
			return s.applyRolls(10)
		case SignalRoll100:
			return s.applyRolls(100)
		case SignalRestart:
			s.Reset()
			return ApplyResult{Recognized: true, Applied: true}
		}
	case CommandUpgrade:
		return ApplyResult{Recognized: true, Applied: s.LevelUp(cmd.Room, cmd.Slot)}
	case CommandRoomAction:
		if cmd.Action == ActionSell {
			return ApplyResult{Recognized: true, Applied: s.Sell(cmd.Room)}
		}
		return ApplyResult{Recognized: true, Applied: s.Move(cmd.Room, cmd.Action.Step())}
	case CommandBuy:
		return ApplyResult{Recognized: true, Applied: s.Buy(cmd.Shop)}
	}
	return ApplyResult{}
}

func (s *State) applyRolls(n int) ApplyResult {
	if s.phase != PhasePlaying {
		return ApplyResult{Recognized: true}
	}
	s.NextRolls(n)
	return ApplyResult{Recognized: true, Applied: true}
}
