package grid

// Game status lifecycle.
const (
	StatusIdle    = "idle"
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusLost    = "lost"
)

// Category display tags.
const (
	TypeClub    = "club"
	TypeLeague  = "league"
	TypeCountry = "country"
	TypeAward   = "award"
	TypeStat    = "stat"
)

// Rule kinds. Categories carry their membership test as data (kind plus
// comparison value) so the catalog stays serializable; RuleMatches is the
// single dispatch point.
const (
	RuleClub    = "club"
	RuleLeague  = "league"
	RuleCountry = "country"
	RuleTrophy  = "trophy"
	RuleAward   = "award"
	RuleManager = "manager"
)

// GridSize is the number of tiles (and categories) in a daily puzzle.
const GridSize = 16

// Rule is a serializable membership predicate over a Subject.
type Rule struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// Category binds a display label to a membership rule.
type Category struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
	Rule  Rule   `json:"rule"`
}

// Subject is an immutable career record used for placement checks.
type Subject struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Nationality string   `json:"nationality"`
	Clubs       []string `json:"clubs"`
	Leagues     []string `json:"leagues"`
	Trophies    []string `json:"trophies"`
	Awards      []string `json:"awards"`
	Teammates   []string `json:"teammates"`
	Managers    []string `json:"managers"`
	Retired     bool     `json:"retired"`
}

// RuleMatches evaluates a rule against a subject.
func RuleMatches(rule Rule, subject Subject) bool {
	switch rule.Kind {
	case RuleClub:
		return contains(subject.Clubs, rule.Value)
	case RuleLeague:
		return contains(subject.Leagues, rule.Value)
	case RuleCountry:
		return subject.Nationality == rule.Value
	case RuleTrophy:
		return contains(subject.Trophies, rule.Value)
	case RuleAward:
		return contains(subject.Awards, rule.Value)
	case RuleManager:
		return contains(subject.Managers, rule.Value)
	default:
		return false
	}
}

func contains(values []string, v string) bool {
	for _, val := range values {
		if val == v {
			return true
		}
	}
	return false
}

// Tile is one cell of the daily puzzle. A locked tile was correctly filled
// and can never be reassigned; Correct is stamped alongside the lock so the
// flag survives serialization on its own.
type Tile struct {
	ID                string `json:"id"`
	CategoryID        string `json:"category_id"`
	AssignedSubjectID string `json:"assigned_subject_id,omitempty"`
	Locked            bool   `json:"locked"`
	Correct           bool   `json:"correct"`
}

// State is the full persisted game state for one calendar day. It
// round-trips losslessly through JSON; tiles and deck reference catalog
// entries by id.
type State struct {
	DayID        string   `json:"day_id"`
	Grid         []Tile   `json:"grid"`
	Deck         []string `json:"deck"`
	CurrentIndex int      `json:"current_index"`
	Score        int      `json:"score"`
	Mistakes     int      `json:"mistakes"`
	Status       string   `json:"status"`
	Timer        int      `json:"timer"`
}

// TileView is a tile joined with its category for clients.
type TileView struct {
	Tile
	Category Category `json:"category"`
}

// Snapshot is the client-facing view of the daily puzzle.
type Snapshot struct {
	DayID          string     `json:"day_id"`
	Grid           []TileView `json:"grid"`
	CurrentSubject *Subject   `json:"current_subject,omitempty"`
	DeckRemaining  int        `json:"deck_remaining"`
	Score          int        `json:"score"`
	Mistakes       int        `json:"mistakes"`
	Status         string     `json:"status"`
	Timer          int        `json:"timer"`
}
