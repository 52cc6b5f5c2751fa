package scoring

// Badge describes an unlockable achievement.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Badge identifiers.
const (
	BadgeFirstQuiz  = "first-quiz"
	BadgePerfect    = "perfect"
	BadgeStreak5    = "streak-5"
	BadgeStreak10   = "streak-10"
	BadgeGames10    = "games-10"
	BadgeGames50    = "games-50"
	BadgeAccuracy90 = "accuracy-90"
	BadgeSpeedDemon = "speed-demon"
	BadgeLegend     = "legend"
	BadgeDaily7     = "daily-7"
)

// Badges is the display catalog, in unlock-check order.
var Badges = []Badge{
	{ID: BadgeFirstQuiz, Name: "First Steps", Description: "Complete your first quiz", Icon: "🎯"},
	{ID: BadgePerfect, Name: "Flawless", Description: "Finish a quiz with a perfect score", Icon: "💯"},
	{ID: BadgeStreak5, Name: "On Fire", Description: "Answer 5 questions correctly in a row", Icon: "🔥"},
	{ID: BadgeStreak10, Name: "Unstoppable", Description: "Answer 10 questions correctly in a row", Icon: "⚡"},
	{ID: BadgeGames10, Name: "Regular", Description: "Play 10 quizzes", Icon: "⭐"},
	{ID: BadgeGames50, Name: "Devoted", Description: "Play 50 quizzes", Icon: "🏆"},
	{ID: BadgeAccuracy90, Name: "Sharpshooter", Description: "Keep 90% accuracy over 20+ quizzes", Icon: "🎯"},
	{ID: BadgeSpeedDemon, Name: "Lightning", Description: "Answer correctly in under 3 seconds", Icon: "⚡"},
	{ID: BadgeLegend, Name: "Legend", Description: "Reach level 20", Icon: "👑"},
	{ID: BadgeDaily7, Name: "Ever Present", Description: "Play the daily challenge 7 days in a row", Icon: "📅"},
}

const speedBadgeMs = 3000

// CheckBadgeUnlocks evaluates which badges a quiz result unlocks given the
// player's pre-quiz profile. Thresholds are checked against the profile as it
// stands after the result is folded in.
func CheckBadgeUnlocks(profile ProfileSnapshot, result QuizResult) []string {
	updated := UpdateProfile(profile, result)

	var unlocked []string
	if updated.GamesPlayed >= 1 {
		unlocked = append(unlocked, BadgeFirstQuiz)
	}
	if result.IsPerfect {
		unlocked = append(unlocked, BadgePerfect)
	}
	if result.BestStreak >= 5 {
		unlocked = append(unlocked, BadgeStreak5)
	}
	if result.BestStreak >= 10 {
		unlocked = append(unlocked, BadgeStreak10)
	}
	if updated.GamesPlayed >= 10 {
		unlocked = append(unlocked, BadgeGames10)
	}
	if updated.GamesPlayed >= 50 {
		unlocked = append(unlocked, BadgeGames50)
	}
	if Accuracy(updated.CorrectAnswers, updated.TotalAnswers) >= 90 && updated.GamesPlayed >= 20 {
		unlocked = append(unlocked, BadgeAccuracy90)
	}
	if updated.Level >= 20 {
		unlocked = append(unlocked, BadgeLegend)
	}
	if updated.DailyStreak >= 7 {
		unlocked = append(unlocked, BadgeDaily7)
	}
	for _, ans := range result.Answers {
		if ans.IsCorrect && ans.TimeMs < speedBadgeMs {
			unlocked = append(unlocked, BadgeSpeedDemon)
			break
		}
	}
	return unlocked
}
