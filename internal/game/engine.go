package game

import (
	"strings"
)

// Apply returns the state that results from a. On error the input state is returned as is,
// so a rejected action never leaves a partial change behind. s itself is never modified.
func Apply(s State, a Action, sampler Sampler) (State, error) {
	switch a.Type {
	case ActionConfigure:
		return configure(s, a), nil
	case ActionSetName:
		return setName(s, a.Slot, a.Name)
	case ActionGenerate:
		return generate(s, sampler)
	case ActionReroll:
		return reroll(s, a.Slot, sampler)
	case ActionReset:
		return NewState(), nil
	default:
		return s, ErrUnknownAction
	}
}

func configure(s State, a Action) State {
	next := s.clone()
	if a.TeamSize != nil {
		next.Config.TeamSize = clamp(*a.TeamSize, MinTeamSize, MaxTeamSize)
	}
	if a.ChampsPerPlayer != nil {
		next.Config.ChampsPerPlayer = clamp(*a.ChampsPerPlayer, MinChampsPerPlayer, MaxChampsPerPlayer)
	}
	if a.ExcludeUnkillables != nil {
		next.Config.ExcludeUnkillables = *a.ExcludeUnkillables
	}
	if next.Config != s.Config {
		// any filter change invalidates every roll, names stay
		next.Assignments = make(map[int]*Assignment)
	}
	return next
}

func setName(s State, slot int, name string) (State, error) {
	if !s.validSlot(slot) {
		return s, ErrInvalidSlot
	}
	next := s.clone()
	team, pos := next.position(slot)
	team[pos] = name
	return next, nil
}

func generate(s State, sampler Sampler) (State, error) {
	if missing := s.MissingNames(); len(missing) > 0 {
		return s, &MissingNamesError{Slots: missing}
	}
	next := s.clone()
	next.Assignments = make(map[int]*Assignment, s.SlotCount())
	for i := 0; i < s.SlotCount(); i++ {
		next.Assignments[i] = &Assignment{
			Champions: sampler.Sample(s.Config.ChampsPerPlayer, s.Config.ExcludeUnkillables),
		}
	}
	return next, nil
}

func reroll(s State, slot int, sampler Sampler) (State, error) {
	if !s.validSlot(slot) {
		return s, ErrInvalidSlot
	}
	cur := s.Assignments[slot]
	if cur == nil || cur.RerollCount >= MaxRerolls {
		return s, ErrRerollUnavailable
	}
	next := s.clone()
	next.Assignments[slot] = &Assignment{
		Champions:   sampler.Sample(s.Config.ChampsPerPlayer, s.Config.ExcludeUnkillables),
		RerollCount: cur.RerollCount + 1,
	}
	return next, nil
}

// SlotCount is the number of players across both teams.
func (s State) SlotCount() int {
	return 2 * s.Config.TeamSize
}

// Name returns the name typed into a slot, or "" for slots outside the current teams.
func (s State) Name(slot int) string {
	if !s.validSlot(slot) {
		return ""
	}
	if slot < s.Config.TeamSize {
		return s.Team1[slot]
	}
	return s.Team2[slot-s.Config.TeamSize]
}

// MissingNames lists the slots whose name is empty after trimming.
func (s State) MissingNames() []int {
	var missing []int
	for i := 0; i < s.SlotCount(); i++ {
		if strings.TrimSpace(s.Name(i)) == "" {
			missing = append(missing, i)
		}
	}
	return missing
}

func (s State) validSlot(slot int) bool {
	return slot >= 0 && slot < s.SlotCount()
}

func (s *State) position(slot int) (*[MaxTeamSize]string, int) {
	if slot < s.Config.TeamSize {
		return &s.Team1, slot
	}
	return &s.Team2, slot - s.Config.TeamSize
}

func (s State) clone() State {
	next := s
	next.Assignments = make(map[int]*Assignment, len(s.Assignments))
	for slot, a := range s.Assignments {
		champs := make([]string, len(a.Champions))
		copy(champs, a.Champions)
		next.Assignments[slot] = &Assignment{Champions: champs, RerollCount: a.RerollCount}
	}
	return next
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
