package game

const (
	MinTeamSize        = 1
	MaxTeamSize        = 5
	MinChampsPerPlayer = 1
	MaxChampsPerPlayer = 10
	MaxRerolls         = 1

	DefaultTeamSize        = 1
	DefaultChampsPerPlayer = 3
)

type Config struct {
	TeamSize           int  `json:"teamSize"`
	ChampsPerPlayer    int  `json:"champsPerPlayer"`
	ExcludeUnkillables bool `json:"excludeUnkillables"`
}

func DefaultConfig() Config {
	return Config{TeamSize: DefaultTeamSize, ChampsPerPlayer: DefaultChampsPerPlayer}
}

type Assignment struct {
	Champions   []string `json:"champions"`
	RerollCount int      `json:"rerollCount"`
}

// State is everything one session remembers. Names are kept per team position so that
// resizing the teams does not shuffle them between teams.
type State struct {
	Config      Config              `json:"config"`
	Team1       [MaxTeamSize]string `json:"team1"`
	Team2       [MaxTeamSize]string `json:"team2"`
	Assignments map[int]*Assignment `json:"assignments"`
}

func NewState() State {
	return State{Config: DefaultConfig(), Assignments: make(map[int]*Assignment)}
}

type ActionType string

const (
	ActionConfigure ActionType = "configure"
	ActionSetName   ActionType = "setName"
	ActionGenerate  ActionType = "generate"
	ActionReroll    ActionType = "reroll"
	ActionReset     ActionType = "reset"
)

// Action is one user interaction. Configure only touches the fields that are set.
type Action struct {
	Type ActionType

	Slot int
	Name string

	TeamSize           *int
	ChampsPerPlayer    *int
	ExcludeUnkillables *bool
}

// Sampler draws distinct champions; see champions.Sampler.
type Sampler interface {
	Sample(count int, excludeUnkillables bool) []string
}
