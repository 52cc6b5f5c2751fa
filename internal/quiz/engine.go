// Package quiz implements the timed multiple-choice quiz state machine.
//
// The engine is an owned, per-session instance driven synchronously by its
// host: every public operation is an atomic state transition, and calls that
// are invalid for the current status are swallowed as no-ops (the returned
// bool reports whether the call applied). Timeouts are the host's job: when
// the per-question budget elapses the host submits AnswerTimeout.
package quiz

import (
	"time"

	"github.com/quizzfoot/platform/internal/scoring"
)

// Engine drives one quiz session. Not safe for concurrent use; hosts
// serialize calls through a single goroutine or lock.
type Engine struct {
	status    string
	questions []Question

	current       int
	answers       []AnswerRecord
	score         int
	streak        int
	startedAt     time.Time
	questionStart time.Time

	budget time.Duration
	now    func() time.Time
}

// Options tune a quiz session.
type Options struct {
	// PerQuestionBudget is the time allowed per question. Zero keeps the
	// 20 second default.
	PerQuestionBudget time.Duration
	// Clock overrides the time source, for tests.
	Clock func() time.Time
}

const defaultBudget = 20 * time.Second

// New creates an idle engine over a fixed question list. The list is not
// copied; callers must not mutate it afterwards.
func New(questions []Question, opts Options) *Engine {
	budget := opts.PerQuestionBudget
	if budget <= 0 {
		budget = defaultBudget
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		status:    StatusIdle,
		questions: questions,
		budget:    budget,
		now:       clock,
	}
}

// Start begins play from the first question. Applies only when idle.
func (e *Engine) Start() bool {
	if e.status != StatusIdle {
		return false
	}
	if len(e.questions) == 0 {
		return false
	}
	e.current = 0
	e.answers = e.answers[:0]
	e.score = 0
	e.streak = 0
	e.startedAt = e.now()
	e.questionStart = e.startedAt
	e.status = StatusPlaying
	return true
}

// Answer records a selection for the current question. Applies only while
// playing; late or duplicate submissions from the host are swallowed.
func (e *Engine) Answer(selection string) bool {
	if e.status != StatusPlaying {
		return false
	}

	q := e.questions[e.current]
	isCorrect := selection == q.Answer
	elapsed := e.now().Sub(e.questionStart).Milliseconds()

	e.answers = append(e.answers, AnswerRecord{
		QuestionID:     q.ID,
		SelectedAnswer: selection,
		IsCorrect:      isCorrect,
		TimeMs:         elapsed,
	})

	if isCorrect {
		e.score++
		e.streak++
	} else {
		e.streak = 0
	}
	e.status = StatusAnswered
	return true
}

// Next advances to the following question, or finishes the session after the
// last one. Applies only in the answered state.
func (e *Engine) Next() bool {
	if e.status != StatusAnswered {
		return false
	}
	if e.current+1 >= len(e.questions) {
		e.status = StatusFinished
		return true
	}
	e.current++
	e.questionStart = e.now()
	e.status = StatusPlaying
	return true
}

// Reset returns to idle, keeping the question list so the same set can be
// replayed without re-fetching.
func (e *Engine) Reset() bool {
	e.status = StatusIdle
	e.current = 0
	e.answers = e.answers[:0]
	e.score = 0
	e.streak = 0
	return true
}

// Status returns the current lifecycle state.
func (e *Engine) Status() string { return e.status }

// Score returns the count of correct answers so far.
func (e *Engine) Score() int { return e.score }

// Streak returns the current run of consecutive correct answers.
func (e *Engine) Streak() int { return e.streak }

// Budget returns the per-question time budget.
func (e *Engine) Budget() time.Duration { return e.budget }

// QuestionDeadlineExceeded reports whether the current question's budget has
// elapsed. Only meaningful while playing; the host reacts by submitting
// AnswerTimeout.
func (e *Engine) QuestionDeadlineExceeded() bool {
	return e.status == StatusPlaying && e.now().Sub(e.questionStart) >= e.budget
}

// CurrentQuestion returns the active question while one is in play.
func (e *Engine) CurrentQuestion() (Question, bool) {
	if e.status != StatusPlaying && e.status != StatusAnswered {
		return Question{}, false
	}
	return e.questions[e.current], true
}

// Answers returns a copy of the answer log.
func (e *Engine) Answers() []AnswerRecord {
	out := make([]AnswerRecord, len(e.answers))
	copy(out, e.answers)
	return out
}

// Snapshot returns the client-facing session view.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Status:       e.status,
		CurrentIndex: e.current,
		Total:        len(e.questions),
		Score:        e.score,
		Streak:       e.streak,
		Answers:      e.Answers(),
		BudgetMs:     e.budget.Milliseconds(),
	}
}

// Result recomputes the session outcome through the scoring module.
// Usually called once the session is finished.
func (e *Engine) Result() scoring.QuizResult {
	questions := make([]scoring.Question, len(e.questions))
	for i, q := range e.questions {
		questions[i] = scoring.Question{ID: q.ID, Answer: q.Answer, Difficulty: q.Difficulty}
	}
	answers := make([]scoring.AnswerRecord, len(e.answers))
	for i, a := range e.answers {
		answers[i] = scoring.AnswerRecord{
			QuestionID:     a.QuestionID,
			SelectedAnswer: a.SelectedAnswer,
			IsCorrect:      a.IsCorrect,
			TimeMs:         a.TimeMs,
		}
	}
	return scoring.ComputeQuizResult(questions, answers)
}
