package game

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizzfoot/platform/internal/bingo"
	"github.com/quizzfoot/platform/internal/grid"
	"github.com/quizzfoot/platform/internal/profile"
	"github.com/quizzfoot/platform/internal/question"
	"github.com/quizzfoot/platform/internal/quiz"
	"github.com/quizzfoot/platform/internal/scoring"
	ws "github.com/quizzfoot/platform/pkg/http/ws"
)

type captureSender struct {
	msgs []ws.Message
}

func (c *captureSender) Send(_ string, msg ws.Message) error {
	c.msgs = append(c.msgs, msg)
	return nil
}

func (c *captureSender) types() []string {
	out := make([]string, len(c.msgs))
	for i, m := range c.msgs {
		out[i] = m.Type
	}
	return out
}

func (c *captureSender) last() ws.Message {
	return c.msgs[len(c.msgs)-1]
}

func (c *captureSender) reset() { c.msgs = nil }

type stubPacks struct {
	lastReq question.PackRequest
	err     error
}

func (s *stubPacks) FetchPack(_ context.Context, req question.PackRequest) (question.PackResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return question.PackResponse{}, s.err
	}
	count := req.Count
	if count <= 0 {
		count = question.QuizSize
		if req.DayID != "" {
			count = question.DailySize
		}
	}
	qs := make([]quiz.Question, count)
	for i := range qs {
		qs[i] = quiz.Question{
			ID:      fmt.Sprintf("q-%d", i),
			Type:    quiz.TypeMCQ,
			Prompt:  fmt.Sprintf("Question %d", i),
			Choices: []string{"A", "B", "C", "D"},
			Answer:  "A",
		}
	}
	return question.PackResponse{Questions: qs, DayID: req.DayID}, nil
}

type stubResults struct {
	calls int
	mode  string
}

func (s *stubResults) ApplyQuizResult(_ context.Context, userID, username, mode string, result scoring.QuizResult) (profile.Outcome, error) {
	s.calls++
	s.mode = mode
	return profile.Outcome{
		Profile:  profile.Profile{UserID: userID, Username: username, XP: result.TotalXP},
		XPGained: result.TotalXP,
	}, nil
}

func newTestHandler(t *testing.T) (*Handler, *captureSender, *stubPacks, *stubResults, *Manager) {
	t.Helper()

	cats := make([]grid.Category, grid.GridSize)
	subs := make([]grid.Subject, grid.GridSize)
	for i := range cats {
		cats[i] = grid.Category{
			ID:   fmt.Sprintf("cat-%d", i),
			Type: grid.TypeClub,
			Rule: grid.Rule{Kind: grid.RuleClub, Value: "Alpha FC"},
		}
		subs[i] = grid.Subject{ID: fmt.Sprintf("sub-%d", i), Clubs: []string{"Alpha FC"}}
	}

	mgr := NewManager(grid.NewMemoryStore(), cats, subs, bingo.Catalog, ManagerOptions{}, zerolog.Nop())
	sender := &captureSender{}
	packs := &stubPacks{}
	results := &stubResults{}

	h := &Handler{
		sessions: mgr,
		sender:   sender,
		packs:    packs,
		results:  results,
		logger:   zerolog.Nop(),
	}
	mgr.onTick = h.pushTickEvents
	return h, sender, packs, results, mgr
}

func message(t *testing.T, msgType string, payload interface{}) ws.Message {
	t.Helper()
	msg, err := ws.NewMessage(msgType, payload)
	require.NoError(t, err)
	return msg
}

func TestQuizFullFlow(t *testing.T) {
	h, sender, _, results, _ := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizStart, ws.QuizStartPayload{Count: 2})))
	assert.Equal(t, []string{ws.TypeQuizState, ws.TypeQuizQuestion}, sender.types())

	var qp QuizQuestionPayload
	require.NoError(t, json.Unmarshal(sender.last().Payload, &qp))
	assert.Empty(t, qp.Question.Answer, "answers never leave the server")
	assert.Equal(t, 2, qp.Total)

	sender.reset()
	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizAnswer, ws.QuizAnswerPayload{Answer: "A"})))
	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizNext, nil)))
	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizAnswer, ws.QuizAnswerPayload{Answer: "B"})))

	sender.reset()
	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizNext, nil)))
	assert.Equal(t, []string{ws.TypeQuizResult, ws.TypeProfileUpdate}, sender.types())
	assert.Equal(t, 1, results.calls)
	assert.Equal(t, profile.ModeQuiz, results.mode)

	var rp QuizResultPayload
	require.NoError(t, json.Unmarshal(sender.msgs[0].Payload, &rp))
	assert.Equal(t, 1, rp.Result.Score)
	assert.Equal(t, 2, rp.Result.Total)
}

func TestQuizResultAppliedOnce(t *testing.T) {
	h, sender, _, results, _ := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizStart, ws.QuizStartPayload{Count: 1})))
	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizAnswer, ws.QuizAnswerPayload{Answer: "A"})))
	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizNext, nil)))
	require.Equal(t, 1, results.calls)

	// A second next on the finished quiz is a no-op action.
	sender.reset()
	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizNext, nil)))
	assert.Equal(t, []string{ws.TypeError}, sender.types())
	assert.Equal(t, 1, results.calls)
}

func TestDailyQuizRequestsDayPack(t *testing.T) {
	h, _, packs, results, _ := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizStart, ws.QuizStartPayload{Daily: true})))
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), packs.lastReq.DayID)

	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizAnswer, ws.QuizAnswerPayload{Answer: "A"})))
	for i := 1; i < question.DailySize; i++ {
		require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizNext, nil)))
		require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizAnswer, ws.QuizAnswerPayload{Answer: "A"})))
	}
	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizNext, nil)))

	assert.Equal(t, profile.ModeDaily, results.mode)
}

func TestQuizActionsWithoutQuizError(t *testing.T) {
	h, sender, _, _, _ := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeQuizAnswer, ws.QuizAnswerPayload{Answer: "A"})))
	assert.Equal(t, []string{ws.TypeError}, sender.types())
}

func TestBingoFlow(t *testing.T) {
	h, sender, _, _, _ := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeBingoInit, ws.BingoInitPayload{Mode: bingo.ModeNormal})))
	require.Equal(t, []string{ws.TypeBingoState}, sender.types())

	var snap bingo.Snapshot
	require.NoError(t, json.Unmarshal(sender.last().Payload, &snap))
	require.Len(t, snap.Grid, bingo.GridSize)

	sender.reset()
	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeBingoToggle, ws.BingoTogglePayload{TileID: snap.Grid[0].ID})))
	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeBingoValidate, nil)))
	assert.Equal(t, []string{ws.TypeBingoState, ws.TypeBingoState}, sender.types())

	// Validating twice is rejected.
	sender.reset()
	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeBingoValidate, nil)))
	assert.Equal(t, []string{ws.TypeError}, sender.types())
}

func TestGridFlow(t *testing.T) {
	h, sender, _, _, _ := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeGridInit, nil)))
	require.Equal(t, []string{ws.TypeGridState}, sender.types())

	var snap grid.Snapshot
	require.NoError(t, json.Unmarshal(sender.last().Payload, &snap))
	require.NotNil(t, snap.CurrentSubject)

	sender.reset()
	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeGridAssign, ws.GridAssignPayload{TileID: "tile-0"})))
	require.Equal(t, []string{ws.TypeGridState}, sender.types())

	require.NoError(t, json.Unmarshal(sender.last().Payload, &snap))
	assert.Equal(t, 1, snap.Score)

	sender.reset()
	require.NoError(t, h.handleMessage(ctx, "u1", "leo", message(t, ws.TypeGridSkip, nil)))
	assert.Equal(t, []string{ws.TypeGridState}, sender.types())
}

func TestUnknownMessageType(t *testing.T) {
	h, sender, _, _, _ := newTestHandler(t)

	require.NoError(t, h.handleMessage(context.Background(), "u1", "leo", ws.Message{Type: "teleport"}))
	require.Equal(t, []string{ws.TypeError}, sender.types())

	var ep ws.ErrorPayload
	require.NoError(t, json.Unmarshal(sender.last().Payload, &ep))
	assert.Equal(t, "unknown_message_type", ep.Code)
}

func TestTickTimesOutQuizQuestion(t *testing.T) {
	h, sender, _, _, mgr := newTestHandler(t)

	now := time.Now()
	clock := func() time.Time { return now }

	s := mgr.Attach("u1", "leo")
	s.Quiz = quiz.New([]quiz.Question{{ID: "q-0", Answer: "A", Choices: []string{"A", "B"}}},
		quiz.Options{PerQuestionBudget: 5 * time.Second, Clock: clock})
	require.True(t, s.Quiz.Start())

	// Within budget: no event.
	assert.Empty(t, mgr.tickSession(s))

	now = now.Add(6 * time.Second)
	events := mgr.tickSession(s)
	require.Equal(t, []string{EventQuizTimeout}, events)
	assert.Equal(t, quiz.StatusAnswered, s.Quiz.Status())

	answers := s.Quiz.Answers()
	require.Len(t, answers, 1)
	assert.Equal(t, quiz.AnswerTimeout, answers[0].SelectedAnswer)
	assert.False(t, answers[0].IsCorrect)

	h.pushTickEvents(s, events)
	assert.Equal(t, []string{ws.TypeQuizState}, sender.types())
}

func TestTickCountsDownBingo(t *testing.T) {
	_, _, _, _, mgr := newTestHandler(t)

	s := mgr.Attach("u1", "leo")
	s.Bingo = bingo.New(bingo.Catalog)
	require.True(t, s.Bingo.InitGame("", bingo.ModeBlitz))

	var last []string
	for i := 0; i < 15; i++ {
		last = mgr.tickSession(s)
	}
	assert.Equal(t, []string{EventBingoFinished}, last)
	assert.NotEqual(t, bingo.StatusPlaying, s.Bingo.Status())
}

func TestAttachDetach(t *testing.T) {
	_, _, _, _, mgr := newTestHandler(t)

	a := mgr.Attach("u1", "leo")
	b := mgr.Attach("u1", "leo10")
	assert.Same(t, a, b, "one session per user")
	assert.Equal(t, "leo10", b.Username)

	mgr.Detach("u1")
	c := mgr.Attach("u1", "leo")
	assert.NotSame(t, a, c)
}
