package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizzfoot/platform/internal/scoring"
)

type stubStore struct {
	profiles map[string]Profile
	attempts []Attempt
	saveErr  error
}

func newStubStore() *stubStore {
	return &stubStore{profiles: map[string]Profile{}}
}

func (s *stubStore) Get(_ context.Context, userID string) (Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (s *stubStore) GetOrCreate(_ context.Context, userID, username string) (Profile, error) {
	if p, ok := s.profiles[userID]; ok {
		return p, nil
	}
	p := Profile{UserID: userID, Username: username, Level: 1}
	s.profiles[userID] = p
	return p, nil
}

func (s *stubStore) Save(_ context.Context, p Profile) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.profiles[p.UserID] = p
	return nil
}

func (s *stubStore) InsertAttempt(_ context.Context, a Attempt) (int64, error) {
	s.attempts = append(s.attempts, a)
	return int64(len(s.attempts)), nil
}

func (s *stubStore) RecentAttempts(_ context.Context, userID string, limit int32) ([]Attempt, error) {
	var out []Attempt
	for i := len(s.attempts) - 1; i >= 0 && int32(len(out)) < limit; i-- {
		if s.attempts[i].UserID == userID {
			out = append(out, s.attempts[i])
		}
	}
	return out, nil
}

type stubRanks struct {
	updates map[string]int
	err     error
}

func (s *stubRanks) UpdateScore(_ context.Context, userID, _ string, totalXP, _ int) error {
	if s.err != nil {
		return s.err
	}
	if s.updates == nil {
		s.updates = map[string]int{}
	}
	s.updates[userID] = totalXP
	return nil
}

func decentResult() scoring.QuizResult {
	return scoring.QuizResult{
		Score:      8,
		Total:      10,
		Accuracy:   80,
		TotalXP:    120,
		BestStreak: 5,
		Answers: []scoring.AnswerRecord{
			{QuestionID: "q1", IsCorrect: true, TimeMs: 2100},
		},
	}
}

func TestApplyQuizResultUpdatesProfile(t *testing.T) {
	store := newStubStore()
	ranks := &stubRanks{}
	svc := NewService(store, ranks, zerolog.Nop())

	out, err := svc.ApplyQuizResult(context.Background(), "u1", "leo", ModeQuiz, decentResult())
	require.NoError(t, err)

	assert.Equal(t, 120, out.Profile.XP)
	assert.Equal(t, 2, out.Profile.Level)
	assert.True(t, out.LeveledUp)
	assert.Equal(t, 120, out.XPGained)
	assert.Equal(t, 1, out.Profile.GamesPlayed)
	assert.Equal(t, 8, out.Profile.CorrectAnswers)
	assert.Equal(t, 10, out.Profile.TotalAnswers)
	assert.Equal(t, 1, out.Profile.Streak)

	assert.Contains(t, out.NewBadges, scoring.BadgeFirstQuiz)
	assert.Contains(t, out.NewBadges, scoring.BadgeStreak5)
	assert.Contains(t, out.NewBadges, scoring.BadgeSpeedDemon)

	require.Len(t, store.attempts, 1)
	assert.Equal(t, ModeQuiz, store.attempts[0].Mode)
	assert.Equal(t, 120, store.attempts[0].XP)

	assert.Equal(t, 120, ranks.updates["u1"])
}

func TestApplyQuizResultBadgesUnlockOnce(t *testing.T) {
	store := newStubStore()
	svc := NewService(store, nil, zerolog.Nop())

	first, err := svc.ApplyQuizResult(context.Background(), "u1", "leo", ModeQuiz, decentResult())
	require.NoError(t, err)
	require.Contains(t, first.NewBadges, scoring.BadgeFirstQuiz)

	second, err := svc.ApplyQuizResult(context.Background(), "u1", "leo", ModeQuiz, decentResult())
	require.NoError(t, err)
	assert.NotContains(t, second.NewBadges, scoring.BadgeFirstQuiz)
	assert.NotContains(t, second.NewBadges, scoring.BadgeStreak5)

	// The owned set still carries everything earned so far.
	assert.True(t, second.Profile.HasBadge(scoring.BadgeFirstQuiz))
}

func TestApplyQuizResultZeroScoreResetsStreak(t *testing.T) {
	store := newStubStore()
	svc := NewService(store, nil, zerolog.Nop())

	_, err := svc.ApplyQuizResult(context.Background(), "u1", "leo", ModeQuiz, decentResult())
	require.NoError(t, err)

	blank := scoring.QuizResult{Total: 10}
	out, err := svc.ApplyQuizResult(context.Background(), "u1", "leo", ModeQuiz, blank)
	require.NoError(t, err)

	assert.Equal(t, 0, out.Profile.Streak)
	assert.Equal(t, 120, out.Profile.XP, "no XP gained on a blank run")
	assert.False(t, out.LeveledUp)
	assert.Equal(t, 2, out.Profile.GamesPlayed)
}

func TestApplyQuizResultDailyModeTracksDailyStreak(t *testing.T) {
	store := newStubStore()
	svc := NewService(store, nil, zerolog.Nop())

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return day }

	out, err := svc.ApplyQuizResult(context.Background(), "u1", "leo", ModeDaily, decentResult())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Profile.DailyStreak)
	assert.Equal(t, day, out.Profile.LastDailyAt)
	assert.Equal(t, day, out.Profile.LastPlayedAt)

	// six more consecutive days unlock the ever-present badge
	for i := 1; i <= 6; i++ {
		offset := i
		svc.clock = func() time.Time { return day.AddDate(0, 0, offset) }
		out, err = svc.ApplyQuizResult(context.Background(), "u1", "leo", ModeDaily, decentResult())
		require.NoError(t, err)
	}
	assert.Equal(t, 7, out.Profile.DailyStreak)
	assert.Contains(t, out.NewBadges, scoring.BadgeDaily7)
}

func TestApplyQuizResultNonDailyLeavesDailyStreak(t *testing.T) {
	store := newStubStore()
	svc := NewService(store, nil, zerolog.Nop())

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return day }

	out, err := svc.ApplyQuizResult(context.Background(), "u1", "leo", ModeQuiz, decentResult())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Profile.DailyStreak)
	assert.True(t, out.Profile.LastDailyAt.IsZero())
	assert.Equal(t, day, out.Profile.LastPlayedAt)
}

func TestApplyQuizResultRankFailureIsNotFatal(t *testing.T) {
	store := newStubStore()
	ranks := &stubRanks{err: errors.New("redis down")}
	svc := NewService(store, ranks, zerolog.Nop())

	_, err := svc.ApplyQuizResult(context.Background(), "u1", "leo", ModeQuiz, decentResult())
	assert.NoError(t, err)
}

func TestApplyQuizResultSaveFailure(t *testing.T) {
	store := newStubStore()
	store.saveErr = errors.New("db down")
	svc := NewService(store, nil, zerolog.Nop())

	_, err := svc.ApplyQuizResult(context.Background(), "u1", "leo", ModeQuiz, decentResult())
	require.Error(t, err)
	assert.Empty(t, store.attempts, "no attempt row when the profile save fails")
}

func TestHistoryDefaultsLimit(t *testing.T) {
	store := newStubStore()
	svc := NewService(store, nil, zerolog.Nop())

	for i := 0; i < 3; i++ {
		_, err := svc.ApplyQuizResult(context.Background(), "u1", "leo", ModeQuiz, decentResult())
		require.NoError(t, err)
	}

	history, err := svc.History(context.Background(), "u1", 0)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}
