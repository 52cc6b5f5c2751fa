// Package game hosts per-player sessions over WebSocket: it owns the quiz,
// bingo and grid engines for each connected player and drives their clocks.
package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/quizzfoot/platform/internal/bingo"
	"github.com/quizzfoot/platform/internal/grid"
	"github.com/quizzfoot/platform/internal/quiz"
)

// Session bundles one player's engines. All access goes through the
// session mutex; engines themselves are not safe for concurrent use.
type Session struct {
	mu sync.Mutex

	// ID distinguishes session incarnations of the same user in logs.
	ID       string
	UserID   string
	Username string

	Quiz     *quiz.Engine
	QuizMode string
	// quizApplied guards against folding one quiz result into the profile
	// twice.
	quizApplied bool

	Bingo *bingo.Engine
	Grid  *grid.Engine
}

// ManagerOptions configures session hosting.
type ManagerOptions struct {
	QuizBudget  time.Duration
	DailyBudget time.Duration
	GridTimer   int
	TickEvery   time.Duration
}

// Manager tracks live sessions and runs the shared one-second clock.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	gridStore      grid.Store
	gridCategories []grid.Category
	gridSubjects   []grid.Subject
	bingoCatalog   []bingo.Subject

	opts   ManagerOptions
	logger zerolog.Logger

	// onTick lets the handler push updated state after clock-driven
	// transitions.
	onTick func(s *Session, events []string)
}

// NewManager creates a session manager over the given catalogs.
func NewManager(store grid.Store, categories []grid.Category, subjects []grid.Subject, catalog []bingo.Subject, opts ManagerOptions, logger zerolog.Logger) *Manager {
	if opts.QuizBudget <= 0 {
		opts.QuizBudget = 20 * time.Second
	}
	if opts.DailyBudget <= 0 {
		opts.DailyBudget = 15 * time.Second
	}
	if opts.TickEvery <= 0 {
		opts.TickEvery = time.Second
	}
	return &Manager{
		sessions:       make(map[string]*Session),
		gridStore:      store,
		gridCategories: categories,
		gridSubjects:   subjects,
		bingoCatalog:   catalog,
		opts:           opts,
		logger:         logger.With().Str("component", "game_sessions").Logger(),
	}
}

// Attach returns the session for a user, creating it on first contact.
func (m *Manager) Attach(userID, username string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		s.Username = username
		return s
	}
	s := &Session{ID: uuid.NewString(), UserID: userID, Username: username}
	m.sessions[userID] = s
	activeSessions.Set(float64(len(m.sessions)))
	m.logger.Debug().Str("session_id", s.ID).Str("user_id", userID).Msg("session created")
	return s
}

// Detach drops a user's session. Engine state not persisted elsewhere is
// gone; the daily grid survives through its store.
func (m *Manager) Detach(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	activeSessions.Set(float64(len(m.sessions)))
}

// GridEngine returns the session's grid engine, creating it lazily.
func (m *Manager) GridEngine(s *Session) *grid.Engine {
	if s.Grid == nil {
		s.Grid = grid.New(m.gridCategories, m.gridSubjects, m.gridStore, s.UserID, grid.Options{
			TimerSeconds: m.opts.GridTimer,
		})
	}
	return s.Grid
}

// BingoEngine returns the session's bingo engine, creating it lazily.
func (m *Manager) BingoEngine(s *Session) *bingo.Engine {
	if s.Bingo == nil {
		s.Bingo = bingo.New(m.bingoCatalog)
	}
	return s.Bingo
}

// QuizBudget returns the per-question budget for a quiz mode.
func (m *Manager) QuizBudget(daily bool) time.Duration {
	if daily {
		return m.opts.DailyBudget
	}
	return m.opts.QuizBudget
}

// Tick event names delivered to the onTick callback.
const (
	EventQuizTimeout   = "quiz_timeout"
	EventBingoTick     = "bingo_tick"
	EventBingoFinished = "bingo_finished"
	EventGridTick      = "grid_tick"
)

// Run drives every session's clock until the context ends. One ticker for
// the whole process keeps the cost independent of connection churn.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.opts.TickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.tickAll()
		}
	}
}

func (m *Manager) tickAll() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		events := m.tickSession(s)
		if len(events) > 0 && m.onTick != nil {
			m.onTick(s, events)
		}
	}
}

func (m *Manager) tickSession(s *Session) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []string

	if s.Quiz != nil && s.Quiz.Status() == quiz.StatusPlaying && s.Quiz.QuestionDeadlineExceeded() {
		if s.Quiz.Answer(quiz.AnswerTimeout) {
			questionTimeouts.Inc()
			events = append(events, EventQuizTimeout)
		}
	}

	if s.Bingo != nil && s.Bingo.Status() == bingo.StatusPlaying {
		if s.Bingo.TickTimer() {
			if s.Bingo.Status() != bingo.StatusPlaying {
				events = append(events, EventBingoFinished)
			} else {
				events = append(events, EventBingoTick)
			}
		}
	}

	if s.Grid != nil && s.Grid.Status() == grid.StatusPlaying {
		if s.Grid.TickTimer() {
			events = append(events, EventGridTick)
		}
	}

	return events
}
