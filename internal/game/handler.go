package game

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/quizzfoot/platform/internal/auth"
	"github.com/quizzfoot/platform/internal/grid"
	"github.com/quizzfoot/platform/internal/profile"
	"github.com/quizzfoot/platform/internal/question"
	"github.com/quizzfoot/platform/internal/quiz"
	"github.com/quizzfoot/platform/internal/scoring"
	httperrors "github.com/quizzfoot/platform/pkg/http/errors"
	ws "github.com/quizzfoot/platform/pkg/http/ws"
)

// Upgrader handles WebSocket upgrades for the play endpoint.
var Upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to the web client's origin once it is fixed
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// PackFetcher supplies question packs (implemented by question.Service).
type PackFetcher interface {
	FetchPack(ctx context.Context, req question.PackRequest) (question.PackResponse, error)
}

// ResultSink folds finished quizzes into player progression (implemented by
// profile.Service).
type ResultSink interface {
	ApplyQuizResult(ctx context.Context, userID, username, mode string, result scoring.QuizResult) (profile.Outcome, error)
}

// Sender delivers messages to a connected user (implemented by
// ws.Registry).
type Sender interface {
	Send(userID string, msg ws.Message) error
}

// Handler routes play-protocol messages to the caller's session engines.
type Handler struct {
	sessions *Manager
	registry *ws.Registry
	sender   Sender
	verifier *auth.Verifier
	packs    PackFetcher
	results  ResultSink
	logger   zerolog.Logger
}

func NewHandler(sessions *Manager, registry *ws.Registry, verifier *auth.Verifier, packs PackFetcher, results ResultSink, logger zerolog.Logger) *Handler {
	h := &Handler{
		sessions: sessions,
		registry: registry,
		sender:   registry,
		verifier: verifier,
		packs:    packs,
		results:  results,
		logger:   logger.With().Str("component", "game_ws").Logger(),
	}
	sessions.onTick = h.pushTickEvents
	return h
}

// HandleWebSocket upgrades /ws/play connections after verifying the token
// query parameter.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Missing token")
		return
	}

	claims, err := h.verifier.Verify(token)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket token validation failed")
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Invalid token")
		return
	}

	conn, err := Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.HandleConnection(conn, claims.UserID(), claims.Username)
}

// HandleConnection runs the pumps for one authenticated socket.
func (h *Handler) HandleConnection(conn *websocket.Conn, userID, username string) {
	wsConn := ws.NewConnection(conn, h.logger)
	h.registry.Register(userID, wsConn)
	h.sessions.Attach(userID, username)

	go wsConn.WritePump()

	wsConn.ReadPump(func(msg ws.Message) error {
		return h.handleMessage(context.Background(), userID, username, msg)
	})

	h.registry.Unregister(userID, wsConn)
	h.sessions.Detach(userID)
}

func (h *Handler) handleMessage(ctx context.Context, userID, username string, msg ws.Message) error {
	wsMessages.WithLabelValues(msg.Type).Inc()

	s := h.sessions.Attach(userID, username)
	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg.Type {
	case ws.TypeQuizStart:
		return h.handleQuizStart(ctx, s, msg.Payload)
	case ws.TypeQuizAnswer:
		return h.handleQuizAnswer(ctx, s, msg.Payload)
	case ws.TypeQuizNext:
		return h.handleQuizNext(ctx, s)
	case ws.TypeQuizReset:
		return h.handleQuizReset(s)
	case ws.TypeBingoInit:
		return h.handleBingoInit(s, msg.Payload)
	case ws.TypeBingoToggle:
		return h.handleBingoToggle(s, msg.Payload)
	case ws.TypeBingoValidate:
		return h.handleBingoValidate(s)
	case ws.TypeBingoWildcard:
		return h.handleBingoWildcard(s)
	case ws.TypeBingoReset:
		return h.handleBingoReset(s)
	case ws.TypeGridInit:
		return h.handleGridInit(ctx, s)
	case ws.TypeGridAssign:
		return h.handleGridAssign(ctx, s, msg.Payload)
	case ws.TypeGridSkip:
		return h.handleGridSkip(ctx, s)
	case ws.TypeGridReset:
		return h.handleGridReset(ctx, s)
	case ws.TypePing:
		return h.send(s.UserID, ws.TypePong, nil)
	default:
		return h.sendError(s.UserID, httperrors.ErrCodeUnknownMessageType, fmt.Sprintf("Unknown message type: %s", msg.Type))
	}
}

// QuizQuestionPayload delivers the current question without its answer.
type QuizQuestionPayload struct {
	Index    int           `json:"index"`
	Total    int           `json:"total"`
	Question quiz.Question `json:"question"`
	BudgetMs int64         `json:"budget_ms"`
}

// QuizResultPayload closes a finished quiz.
type QuizResultPayload struct {
	Result  scoring.QuizResult `json:"result"`
	Outcome profile.Outcome    `json:"outcome"`
}

func (h *Handler) handleQuizStart(ctx context.Context, s *Session, payload json.RawMessage) error {
	var req ws.QuizStartPayload
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			return h.sendError(s.UserID, httperrors.ErrCodeInvalidPayload, "Invalid quiz_start payload")
		}
	}

	packReq := question.PackRequest{Category: req.Category, Count: req.Count}
	mode := profile.ModeQuiz
	if req.Daily {
		packReq.DayID = time.Now().UTC().Format("2006-01-02")
		mode = profile.ModeDaily
	}

	pack, err := h.packs.FetchPack(ctx, packReq)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", s.UserID).Msg("fetch question pack")
		return h.sendError(s.UserID, httperrors.ErrCodePackFetchFailed, "Could not build a question pack")
	}

	s.Quiz = quiz.New(pack.Questions, quiz.Options{PerQuestionBudget: h.sessions.QuizBudget(req.Daily)})
	s.QuizMode = mode
	s.quizApplied = false

	if !s.Quiz.Start() {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidGameAction, "Quiz could not start")
	}
	gamesStarted.WithLabelValues(mode).Inc()

	if err := h.sendQuizState(s); err != nil {
		return err
	}
	return h.sendCurrentQuestion(s)
}

func (h *Handler) handleQuizAnswer(ctx context.Context, s *Session, payload json.RawMessage) error {
	var req ws.QuizAnswerPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidPayload, "Invalid quiz_answer payload")
	}
	if s.Quiz == nil || !s.Quiz.Answer(req.Answer) {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidGameAction, "No question awaiting an answer")
	}
	return h.sendQuizState(s)
}

func (h *Handler) handleQuizNext(ctx context.Context, s *Session) error {
	if s.Quiz == nil || !s.Quiz.Next() {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidGameAction, "No answered question to advance from")
	}

	if s.Quiz.Status() == quiz.StatusFinished {
		return h.finalizeQuiz(ctx, s)
	}

	if err := h.sendQuizState(s); err != nil {
		return err
	}
	return h.sendCurrentQuestion(s)
}

func (h *Handler) handleQuizReset(s *Session) error {
	if s.Quiz == nil || !s.Quiz.Reset() {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidGameAction, "No quiz to reset")
	}
	s.quizApplied = false
	return h.sendQuizState(s)
}

func (h *Handler) finalizeQuiz(ctx context.Context, s *Session) error {
	if s.quizApplied {
		return h.sendQuizState(s)
	}

	result := s.Quiz.Result()
	outcome, err := h.results.ApplyQuizResult(ctx, s.UserID, s.Username, s.QuizMode, result)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", s.UserID).Msg("apply quiz result")
		return h.sendError(s.UserID, httperrors.ErrCodeResultApplyFailed, "Could not record your result")
	}
	s.quizApplied = true

	outcomeLabel := "lost"
	if result.Score > 0 {
		outcomeLabel = "won"
	}
	gamesFinished.WithLabelValues(s.QuizMode, outcomeLabel).Inc()

	if err := h.send(s.UserID, ws.TypeQuizResult, QuizResultPayload{Result: result, Outcome: outcome}); err != nil {
		return err
	}
	return h.send(s.UserID, ws.TypeProfileUpdate, outcome.Profile)
}

func (h *Handler) handleBingoInit(s *Session, payload json.RawMessage) error {
	var req ws.BingoInitPayload
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			return h.sendError(s.UserID, httperrors.ErrCodeInvalidPayload, "Invalid bingo_init payload")
		}
	}

	e := h.sessions.BingoEngine(s)
	if !e.InitGame(req.SubjectID, req.Mode) {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidGameAction, "Bingo round could not start")
	}
	gamesStarted.WithLabelValues(profile.ModeBingo).Inc()
	return h.sendBingoState(s)
}

func (h *Handler) handleBingoToggle(s *Session, payload json.RawMessage) error {
	var req ws.BingoTogglePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidPayload, "Invalid bingo_toggle payload")
	}
	if s.Bingo == nil || !s.Bingo.ToggleTile(req.TileID) {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidGameAction, "Tile cannot be toggled")
	}
	return h.sendBingoState(s)
}

func (h *Handler) handleBingoValidate(s *Session) error {
	if s.Bingo == nil || !s.Bingo.ValidateGrid() {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidGameAction, "No bingo round to validate")
	}
	gamesFinished.WithLabelValues(profile.ModeBingo, s.Bingo.Status()).Inc()
	return h.sendBingoState(s)
}

func (h *Handler) handleBingoWildcard(s *Session) error {
	if s.Bingo == nil || !s.Bingo.UseWildcard() {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidGameAction, "Wildcard unavailable")
	}
	return h.sendBingoState(s)
}

func (h *Handler) handleBingoReset(s *Session) error {
	if s.Bingo == nil || !s.Bingo.Reset() {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidGameAction, "No bingo round to reset")
	}
	return h.sendBingoState(s)
}

func (h *Handler) handleGridInit(ctx context.Context, s *Session) error {
	e := h.sessions.GridEngine(s)
	if !e.InitDaily(ctx) {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidGameAction, "Daily grid unavailable")
	}
	gamesStarted.WithLabelValues(profile.ModeGrid).Inc()
	return h.sendGridState(s)
}

func (h *Handler) handleGridAssign(ctx context.Context, s *Session, payload json.RawMessage) error {
	var req ws.GridAssignPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidPayload, "Invalid grid_assign payload")
	}
	if s.Grid == nil || !s.Grid.AssignPlayer(ctx, req.TileID) {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidGameAction, "Placement rejected")
	}
	if status := s.Grid.Status(); status == grid.StatusWon || status == grid.StatusLost {
		gamesFinished.WithLabelValues(profile.ModeGrid, status).Inc()
	}
	return h.sendGridState(s)
}

func (h *Handler) handleGridSkip(ctx context.Context, s *Session) error {
	if s.Grid == nil || !s.Grid.SkipPlayer(ctx) {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidGameAction, "Nothing to skip")
	}
	return h.sendGridState(s)
}

func (h *Handler) handleGridReset(ctx context.Context, s *Session) error {
	if s.Grid == nil || !s.Grid.ResetGame(ctx) {
		return h.sendError(s.UserID, httperrors.ErrCodeInvalidGameAction, "Daily grid unavailable")
	}
	return h.sendGridState(s)
}

// pushTickEvents flushes clock-driven state changes to the client. Called
// from the manager's tick loop; takes the session lock itself.
func (h *Handler) pushTickEvents(s *Session, events []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sent := map[string]bool{}
	for _, ev := range events {
		switch ev {
		case EventQuizTimeout:
			if !sent[ws.TypeQuizState] {
				_ = h.sendQuizState(s)
				sent[ws.TypeQuizState] = true
			}
		case EventBingoTick, EventBingoFinished:
			if !sent[ws.TypeBingoState] {
				_ = h.sendBingoState(s)
				sent[ws.TypeBingoState] = true
			}
		case EventGridTick:
			if !sent[ws.TypeGridState] {
				_ = h.sendGridState(s)
				sent[ws.TypeGridState] = true
			}
		}
	}
}

func (h *Handler) sendQuizState(s *Session) error {
	return h.send(s.UserID, ws.TypeQuizState, s.Quiz.Snapshot())
}

func (h *Handler) sendCurrentQuestion(s *Session) error {
	q, ok := s.Quiz.CurrentQuestion()
	if !ok {
		return nil
	}
	q.Answer = ""
	q.Explanation = ""
	snap := s.Quiz.Snapshot()
	return h.send(s.UserID, ws.TypeQuizQuestion, QuizQuestionPayload{
		Index:    snap.CurrentIndex,
		Total:    snap.Total,
		Question: q,
		BudgetMs: snap.BudgetMs,
	})
}

func (h *Handler) sendBingoState(s *Session) error {
	return h.send(s.UserID, ws.TypeBingoState, s.Bingo.Snapshot())
}

func (h *Handler) sendGridState(s *Session) error {
	return h.send(s.UserID, ws.TypeGridState, s.Grid.Snapshot())
}

func (h *Handler) send(userID, msgType string, payload interface{}) error {
	msg, err := ws.NewMessage(msgType, payload)
	if err != nil {
		return err
	}
	return h.sender.Send(userID, msg)
}

func (h *Handler) sendError(userID, code, message string) error {
	return h.send(userID, ws.TypeError, ws.ErrorPayload{Code: code, Message: message})
}
