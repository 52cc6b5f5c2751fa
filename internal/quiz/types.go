package quiz

// Question type constants.
const (
	TypeMCQ       = "mcq"
	TypeTrueFalse = "tf"
	TypeWhoAmI    = "whoami"
)

// Session status lifecycle: idle -> playing -> answered -> playing|finished.
const (
	StatusIdle     = "idle"
	StatusPlaying  = "playing"
	StatusAnswered = "answered"
	StatusFinished = "finished"
)

// AnswerTimeout is the reserved selection submitted when the per-question
// budget elapses. It never matches a real choice, so it always scores
// incorrect.
const AnswerTimeout = "__timeout__"

// Question is an immutable quiz question record.
type Question struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	Answer      string   `json:"answer,omitempty"` // server-side only
	Explanation string   `json:"explanation,omitempty"`
	Difficulty  int      `json:"difficulty"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`
	Season      string   `json:"season,omitempty"`
	Competition string   `json:"competition,omitempty"`
}

// AnswerRecord stores one submitted answer with timing. Immutable once
// appended to the session log.
type AnswerRecord struct {
	QuestionID     string `json:"question_id"`
	SelectedAnswer string `json:"selected_answer"`
	IsCorrect      bool   `json:"is_correct"`
	TimeMs         int64  `json:"time_ms"`
}

// Snapshot is the client-facing view of a session.
type Snapshot struct {
	Status       string         `json:"status"`
	CurrentIndex int            `json:"current_index"`
	Total        int            `json:"total"`
	Score        int            `json:"score"`
	Streak       int            `json:"streak"`
	Answers      []AnswerRecord `json:"answers"`
	BudgetMs     int64          `json:"budget_ms"`
}
