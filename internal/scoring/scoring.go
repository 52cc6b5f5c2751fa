// Package scoring holds the pure experience, leveling and rating math shared
// by the quiz engine and the profile service. Nothing in here touches I/O or
// clocks; every function is a plain computation over its inputs.
package scoring

import (
	"math"
)

// XP bonus thresholds. Answers under FastAnswerMs earn the full speed bonus,
// answers under QuickAnswerMs a reduced one.
const (
	FastAnswerMs  = 5000
	QuickAnswerMs = 10000

	streakCap    = 10
	defaultEloK  = 32
	xpLevelScale = 100
)

// CalculateXP returns the experience earned by a single answer.
// Incorrect answers always earn zero. Correct answers earn
// difficulty*10 base, plus 2 per streak step (capped at 10 steps),
// plus a speed bonus of 5 (<5s) or 3 (<10s).
func CalculateXP(isCorrect bool, difficulty, streak int, timeMs int64) int {
	if !isCorrect {
		return 0
	}

	base := difficulty * 10

	capped := streak
	if capped > streakCap {
		capped = streakCap
	}
	streakBonus := capped * 2

	speedBonus := 0
	switch {
	case timeMs < FastAnswerMs:
		speedBonus = 5
	case timeMs < QuickAnswerMs:
		speedBonus = 3
	}

	return base + streakBonus + speedBonus
}

// LevelFromXP maps total experience to a level on a quadratic curve.
func LevelFromXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Floor(math.Sqrt(float64(xp)/xpLevelScale))) + 1
}

// XPForNextLevel returns the total XP threshold to reach the given level.
func XPForNextLevel(level int) int {
	return level * level * xpLevelScale
}

// LevelProgress returns the percentage of progress between the current and
// next level thresholds for the given XP total.
func LevelProgress(xp int) float64 {
	level := LevelFromXP(xp)
	current := XPForNextLevel(level - 1)
	next := XPForNextLevel(level)
	return float64(xp-current) / float64(next-current) * 100
}

// Accuracy returns the rounded percentage of correct answers, 0 when no
// answers were given.
func Accuracy(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// EloChange computes a standard logistic Elo update for a head-to-head
// result. k <= 0 falls back to the default K factor of 32.
func EloChange(ratingA, ratingB int, won bool, k int) int {
	if k <= 0 {
		k = defaultEloK
	}
	expected := 1 / (1 + math.Pow(10, float64(ratingB-ratingA)/400))
	actual := 0.0
	if won {
		actual = 1.0
	}
	return int(math.Round(float64(k) * (actual - expected)))
}
