package game

// Buy clones the shop template at shopIdx into the owned rooms. The copy is
// placed right after the last owned room with the same name, or at the end.
// Room slots still owed to upcoming debt milestones are not for sale.
func (s *State) Buy(shopIdx int) bool {
	if s.phase != PhasePlaying || shopIdx < 0 || shopIdx >= len(s.shop) {
		return false
	}
	if len(s.rooms)+s.pendingCollectors() >= MaxRooms {
		return false
	}
	template := s.shop[shopIdx]
	if !s.spend(template.Price()) {
		return false
	}
	s.insertGrouped(template.Clone())
	return true
}

// pendingCollectors counts the debt milestones still ahead. Buy keeps that
// many room slots free so every milestone can spawn its collector.
func (s *State) pendingCollectors() int {
	n := 0
	for _, m := range s.config.DebtSchedule {
		if m.Roll > s.rolls {
			n++
		}
	}
	return n
}

func (s *State) insertGrouped(r *Room) {
	at := len(s.rooms)
	for i := len(s.rooms) - 1; i >= 0; i-- {
		if s.rooms[i].Name() == r.Name() {
			at = i + 1
			break
		}
	}
	s.rooms = append(s.rooms, nil)
	copy(s.rooms[at+1:], s.rooms[at:])
	s.rooms[at] = r
}

// Sell removes the room and credits its price times its level. Rooms that
// report a negative price, such as collectors still owed money, stay put.
func (s *State) Sell(roomIdx int) bool {
	if s.phase != PhasePlaying {
		return false
	}
	r, ok := s.Room(roomIdx)
	if !ok || !r.Sellable() {
		return false
	}
	s.earn(r.SaleValue())
	s.rooms = append(s.rooms[:roomIdx], s.rooms[roomIdx+1:]...)
	return true
}

// Move shifts a room by step positions, one neighbour swap at a time. A swap
// that would leave the list stops the move; the swaps before it are kept.
func (s *State) Move(roomIdx, step int) bool {
	if s.phase != PhasePlaying || step == 0 {
		return false
	}
	if _, ok := s.Room(roomIdx); !ok {
		return false
	}
	dir := 1
	if step < 0 {
		dir, step = -1, -step
	}
	for ; step > 0; step-- {
		next := roomIdx + dir
		if next < 0 || next >= len(s.rooms) {
			return false
		}
		s.rooms[roomIdx], s.rooms[next] = s.rooms[next], s.rooms[roomIdx]
		roomIdx = next
	}
	return true
}

// LevelUp buys one level of the upgrade in slot of the owned room roomIdx.
func (s *State) LevelUp(roomIdx, slot int) bool {
	r, ok := s.Room(roomIdx)
	if !ok {
		return false
	}
	u, ok := r.Upgrade(slot)
	if !ok {
		return false
	}
	return u.levelUp(s)
}
