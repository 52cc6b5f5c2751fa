package bingo

// Game modes.
const (
	ModeNormal   = "normal"
	ModeBlitz    = "blitz"
	ModeHardcore = "hardcore"
)

// Game status lifecycle.
const (
	StatusIdle    = "idle"
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusLost    = "lost"
)

// Tile fact kinds.
const (
	KindClub        = "club"
	KindTeammate    = "teammate"
	KindTrophy      = "trophy"
	KindManager     = "manager"
	KindNationality = "nationality"
)

// Grid shape: every generated grid holds exactly TrueTiles facts and
// DecoyTiles traps.
const (
	GridSize   = 16
	TrueTiles  = 9
	DecoyTiles = 7
)

// Subject is an immutable career-facts record: the true pools describe the
// player, the decoy pools hold plausible-but-false values of the same shape.
type Subject struct {
	ID          string
	Name        string
	Nationality string
	Position    string
	YearsActive string

	Clubs     []string
	Teammates []string
	Trophies  []string
	Managers  []string

	DecoyClubs         []string
	DecoyTeammates     []string
	DecoyTrophies      []string
	DecoyManagers      []string
	DecoyNationalities []string
}

// Tile is one cell of a generated grid. The truth flag is fixed at
// generation time; selection toggles during play; Revealed marks a trap
// neutralized by the wildcard.
type Tile struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	Kind       string `json:"kind"`
	IsCorrect  bool   `json:"is_correct"`
	IsSelected bool   `json:"is_selected"`
	IsRevealed bool   `json:"is_revealed,omitempty"`
}

// Snapshot is the client-facing view of a bingo game.
type Snapshot struct {
	SubjectName string `json:"subject_name,omitempty"`
	SubjectInfo string `json:"subject_info,omitempty"`
	Grid        []Tile `json:"grid"`
	Status      string `json:"status"`
	Score       int    `json:"score"`
	Timer       int    `json:"timer"`
	Mistakes    int    `json:"mistakes"`
	Wildcards   int    `json:"wildcards"`
}
