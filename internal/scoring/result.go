package scoring

import "time"

// Question carries the fields the scorer needs from a quiz question.
// Duplicated from the quiz engine types to keep this package dependency-free.
type Question struct {
	ID         string
	Answer     string
	Difficulty int
}

// AnswerRecord is one submitted answer with timing.
type AnswerRecord struct {
	QuestionID     string `json:"question_id"`
	SelectedAnswer string `json:"selected_answer"`
	IsCorrect      bool   `json:"is_correct"`
	TimeMs         int64  `json:"time_ms"`
}

// QuizResult bundles everything derived from a finished quiz run.
type QuizResult struct {
	Score      int
	Total      int
	Accuracy   int
	TotalXP    int
	BestStreak int
	IsPerfect  bool
	Answers    []AnswerRecord
}

// ComputeQuizResult re-derives correctness for every answer against the
// question list rather than trusting caller-supplied flags, then accumulates
// score, streaks and XP. Answers are matched to questions positionally, in
// quiz order.
func ComputeQuizResult(questions []Question, answers []AnswerRecord) QuizResult {
	result := QuizResult{
		Total:   len(questions),
		Answers: make([]AnswerRecord, 0, len(answers)),
	}

	streak := 0
	for i, ans := range answers {
		if i >= len(questions) {
			break
		}
		q := questions[i]
		isCorrect := ans.SelectedAnswer == q.Answer

		if isCorrect {
			result.Score++
			streak++
			if streak > result.BestStreak {
				result.BestStreak = streak
			}
			result.TotalXP += CalculateXP(true, q.Difficulty, streak, ans.TimeMs)
		} else {
			streak = 0
		}

		ans.IsCorrect = isCorrect
		ans.QuestionID = q.ID
		result.Answers = append(result.Answers, ans)
	}

	result.Accuracy = Accuracy(result.Score, result.Total)
	result.IsPerfect = result.Total > 0 && result.Score == result.Total
	return result
}

// ProfileSnapshot is the subset of a player profile the scorer folds quiz
// results into.
type ProfileSnapshot struct {
	XP             int
	Level          int
	Streak         int
	BestStreak     int
	GamesPlayed    int
	CorrectAnswers int
	TotalAnswers   int
	DailyStreak    int
	LastDailyAt    time.Time
}

// UpdateProfile folds a quiz result into a profile snapshot and returns the
// updated snapshot. The per-game streak advances when at least one answer
// was correct, and resets otherwise.
func UpdateProfile(profile ProfileSnapshot, result QuizResult) ProfileSnapshot {
	profile.XP += result.TotalXP
	profile.Level = LevelFromXP(profile.XP)
	if result.Score > 0 {
		profile.Streak++
	} else {
		profile.Streak = 0
	}
	if profile.Streak > profile.BestStreak {
		profile.BestStreak = profile.Streak
	}
	profile.GamesPlayed++
	profile.CorrectAnswers += result.Score
	profile.TotalAnswers += result.Total
	return profile
}

// RecordDailyPlay folds one daily-challenge play at now into the
// consecutive-calendar-day streak: a repeat play on the same UTC day keeps
// the streak, the next day extends it, any gap restarts it at 1.
func RecordDailyPlay(profile ProfileSnapshot, now time.Time) ProfileSnapshot {
	today := now.UTC().Truncate(24 * time.Hour)
	last := profile.LastDailyAt.UTC().Truncate(24 * time.Hour)

	switch {
	case profile.DailyStreak > 0 && last.Equal(today):
		// already counted today
	case profile.DailyStreak > 0 && last.Equal(today.AddDate(0, 0, -1)):
		profile.DailyStreak++
	default:
		profile.DailyStreak = 1
	}
	profile.LastDailyAt = now.UTC()
	return profile
}
