package question

import "github.com/quizzfoot/platform/internal/quiz"

// Pack sizes for the two quiz formats.
const (
	QuizSize  = 10
	DailySize = 5
)

// PackRequest guides question selection for one quiz session.
type PackRequest struct {
	Category string
	Count    int
	// DayID selects the deterministic daily pack when set; random
	// sampling otherwise.
	DayID string
}

// PackResponse holds the selected questions.
type PackResponse struct {
	Questions []quiz.Question `json:"questions"`
	DayID     string          `json:"day_id,omitempty"`
}

// Sanitize strips server-side fields before a pack leaves the process.
func Sanitize(qs []quiz.Question) []quiz.Question {
	out := make([]quiz.Question, len(qs))
	for i, q := range qs {
		q.Answer = ""
		q.Explanation = ""
		out[i] = q
	}
	return out
}
