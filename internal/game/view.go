package game

import (
	"fmt"
	"strings"

	"github.com/kiliankoe/champroll/internal/champions"
)

type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type SlotView struct {
	Index        int      `json:"index"`
	Name         string   `json:"name"`
	Champions    []string `json:"champions,omitempty"`
	ChampionList string   `json:"championList,omitempty"`
	RerollCount  int      `json:"rerollCount"`
	CanReroll    bool     `json:"canReroll"`
}

type TeamView struct {
	Label string     `json:"label"`
	Slots []SlotView `json:"slots"`
}

// View is what a client needs to draw the form for one session.
type View struct {
	Config             Config     `json:"config"`
	TeamSizeOptions    []Option   `json:"teamSizeOptions"`
	ChampsPerPlayerMin int        `json:"champsPerPlayerMin"`
	ChampsPerPlayerMax int        `json:"champsPerPlayerMax"`
	Unkillables        []string   `json:"unkillables"`
	UnkillablesInfo    string     `json:"unkillablesInfo"`
	Teams              []TeamView `json:"teams"`
}

func (s State) View() View {
	v := View{
		Config:             s.Config,
		ChampsPerPlayerMin: MinChampsPerPlayer,
		ChampsPerPlayerMax: MaxChampsPerPlayer,
		Unkillables:        champions.Unkillables(),
	}
	v.UnkillablesInfo = strings.Join(v.Unkillables, ", ")
	for n := MinTeamSize; n <= MaxTeamSize; n++ {
		v.TeamSizeOptions = append(v.TeamSizeOptions, Option{Value: n, Label: fmt.Sprintf("%dv%d", n, n)})
	}

	team1 := TeamView{Label: "Team 1"}
	team2 := TeamView{Label: "Team 2"}
	for i := 0; i < s.SlotCount(); i++ {
		sv := SlotView{Index: i, Name: s.Name(i)}
		if a := s.Assignments[i]; a != nil && sv.Name != "" {
			sv.Champions = append([]string(nil), a.Champions...)
			sv.ChampionList = RenderList(a.Champions)
			sv.RerollCount = a.RerollCount
			sv.CanReroll = a.RerollCount < MaxRerolls
		}
		if i < s.Config.TeamSize {
			team1.Slots = append(team1.Slots, sv)
		} else {
			team2.Slots = append(team2.Slots, sv)
		}
	}
	v.Teams = []TeamView{team1, team2}
	return v
}

// RenderList formats champions as a markdown bullet list.
func RenderList(names []string) string {
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = "- " + name
	}
	return strings.Join(lines, "\n")
}
