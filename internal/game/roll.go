package game

import "fmt"

// maxRollPasses guards the activation loop. Every room has a finite cap or
// consumes dice, so a valid game never gets close.
const maxRollPasses = 1 << 16

type RollReport struct {
	Roll        int
	Passes      int
	Activations int
	Spawned     int
	Phase       Phase
}

// NextRoll resolves one turn: passes over the rooms in order, activating each
// one it can, until a pass with no activation. Counters then reset, the roll
// counter advances and the debt schedule is applied.
func (s *State) NextRoll() RollReport {
	if s.phase != PhasePlaying {
		return RollReport{Roll: s.rolls, Phase: s.phase}
	}

	report := RollReport{}
	for {
		report.Passes++
		if report.Passes > maxRollPasses {
			panic(fmt.Sprintf("roll %d did not settle after %d passes", s.rolls+1, maxRollPasses))
		}
		activated := 0
		for _, r := range s.rooms {
			if r.tryActivate(s) {
				activated++
			}
		}
		report.Activations += activated
		if activated == 0 {
			break
		}
	}

	for _, r := range s.rooms {
		r.resetActivations()
	}
	s.rolls++
	report.Spawned = s.applyDebtSchedule()

	report.Roll = s.rolls
	report.Phase = s.phase
	s.lastRoll = report
	return report
}

// NextRolls plays n rolls one after another.
func (s *State) NextRolls(n int) []RollReport {
	reports := make([]RollReport, 0, n)
	for i := 0; i < n; i++ {
		reports = append(reports, s.NextRoll())
	}
	return reports
}

func (s *State) applyDebtSchedule() int {
	if s.phase != PhasePlaying {
		return 0
	}
	spawned := 0
	for _, m := range s.config.DebtSchedule {
		if m.Roll != s.rolls {
			continue
		}
		if len(s.rooms) >= MaxRooms {
			panic(fmt.Sprintf("no room slot left for the debt collector due at roll %d", m.Roll))
		}
		s.insertGrouped(NewDebtCollector(m.Amount))
		spawned++
	}
	return spawned
}
