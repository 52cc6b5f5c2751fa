package leaderboard

import "context"

// UpdateScore adapts the service to the profile package's RankSink.
func (s *Service) UpdateScore(ctx context.Context, userID, username string, totalXP, gainedXP int) error {
	return s.Push(ctx, Record{
		UserID:   userID,
		Username: username,
		TotalXP:  totalXP,
		GainedXP: gainedXP,
	})
}
