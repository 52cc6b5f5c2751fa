package quiz

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func testQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:         fmt.Sprintf("q%d", i),
			Type:       TypeMCQ,
			Prompt:     fmt.Sprintf("Question %d", i),
			Choices:    []string{"right", "wrong-1", "wrong-2", "wrong-3"},
			Answer:     "right",
			Difficulty: 2,
			Category:   "ligue-1",
		}
	}
	return qs
}

func newTestEngine(n int) (*Engine, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	return New(testQuestions(n), Options{Clock: clock.Now}), clock
}

func TestFullRunFinishes(t *testing.T) {
	const n = 5
	engine, clock := newTestEngine(n)

	require.True(t, engine.Start())
	for i := 0; i < n; i++ {
		clock.Advance(2 * time.Second)
		require.True(t, engine.Answer("right"))
		require.True(t, engine.Next())
	}

	assert.Equal(t, StatusFinished, engine.Status())
	assert.Len(t, engine.Answers(), n)
	assert.Equal(t, n, engine.Score())
}

func TestScoreCountsExactMatches(t *testing.T) {
	engine, _ := newTestEngine(4)
	require.True(t, engine.Start())

	selections := []string{"right", "wrong-1", "right", "wrong-2"}
	for _, sel := range selections {
		require.True(t, engine.Answer(sel))
		require.True(t, engine.Next())
	}

	assert.Equal(t, 2, engine.Score())
	answers := engine.Answers()
	assert.True(t, answers[0].IsCorrect)
	assert.False(t, answers[1].IsCorrect)
}

func TestStreakResetsOnIncorrect(t *testing.T) {
	engine, _ := newTestEngine(4)
	require.True(t, engine.Start())

	engine.Answer("right")
	assert.Equal(t, 1, engine.Streak())
	engine.Next()

	engine.Answer("right")
	assert.Equal(t, 2, engine.Streak())
	engine.Next()

	engine.Answer("wrong-1")
	assert.Equal(t, 0, engine.Streak())
	engine.Next()

	engine.Answer("right")
	assert.Equal(t, 1, engine.Streak())
}

func TestTimeoutSentinelScoresIncorrect(t *testing.T) {
	engine, clock := newTestEngine(2)
	require.True(t, engine.Start())

	clock.Advance(engine.Budget())
	assert.True(t, engine.QuestionDeadlineExceeded())
	require.True(t, engine.Answer(AnswerTimeout))

	answers := engine.Answers()
	assert.False(t, answers[0].IsCorrect)
	assert.Equal(t, AnswerTimeout, answers[0].SelectedAnswer)
	assert.Equal(t, 0, engine.Streak())
}

func TestAnswerElapsedTime(t *testing.T) {
	engine, clock := newTestEngine(2)
	require.True(t, engine.Start())

	clock.Advance(3500 * time.Millisecond)
	engine.Answer("right")
	engine.Next()

	clock.Advance(1200 * time.Millisecond)
	engine.Answer("right")

	answers := engine.Answers()
	assert.Equal(t, int64(3500), answers[0].TimeMs)
	assert.Equal(t, int64(1200), answers[1].TimeMs)
}

func TestOutOfOrderCallsAreNoOps(t *testing.T) {
	engine, _ := newTestEngine(2)

	// Nothing valid before Start.
	assert.False(t, engine.Answer("right"))
	assert.False(t, engine.Next())

	require.True(t, engine.Start())
	assert.False(t, engine.Start()) // double start swallowed
	assert.False(t, engine.Next())  // next before answering

	require.True(t, engine.Answer("right"))
	assert.False(t, engine.Answer("right")) // duplicate answer swallowed
	assert.Len(t, engine.Answers(), 1)

	require.True(t, engine.Next())
	require.True(t, engine.Answer("right"))
	require.True(t, engine.Next())

	// Terminal: no further mutation except Reset.
	assert.Equal(t, StatusFinished, engine.Status())
	assert.False(t, engine.Answer("right"))
	assert.False(t, engine.Next())
}

func TestResetKeepsQuestions(t *testing.T) {
	engine, _ := newTestEngine(2)
	require.True(t, engine.Start())
	engine.Answer("right")
	engine.Next()

	require.True(t, engine.Reset())
	assert.Equal(t, StatusIdle, engine.Status())
	assert.Equal(t, 0, engine.Score())
	assert.Empty(t, engine.Answers())

	// Play again on the same set.
	require.True(t, engine.Start())
	q, ok := engine.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "q0", q.ID)
}

func TestStartWithoutQuestions(t *testing.T) {
	engine := New(nil, Options{})
	assert.False(t, engine.Start())
	assert.Equal(t, StatusIdle, engine.Status())
}

func TestResultRecomputesThroughScoring(t *testing.T) {
	engine, clock := newTestEngine(3)
	require.True(t, engine.Start())

	for i := 0; i < 3; i++ {
		clock.Advance(2 * time.Second)
		engine.Answer("right")
		engine.Next()
	}

	result := engine.Result()
	assert.Equal(t, 3, result.Score)
	assert.True(t, result.IsPerfect)
	assert.Equal(t, 3, result.BestStreak)
	assert.Positive(t, result.TotalXP)
}
