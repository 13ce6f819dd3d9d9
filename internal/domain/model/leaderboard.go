package model

type LeaderboardEntry struct {
	Position int    `json:"position"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
	Rating   int    `json:"rating"`
	Tier     string `json:"tier"`
}

// BattleStats summarizes a user's battle record.
type BattleStats struct {
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Rating       int    `json:"rating"`
	Tier         string `json:"tier"`
	TotalBattles int    `json:"totalBattles"`
}

// TierForRating buckets a battle rating into a display tier.
func TierForRating(rating int) string {
	switch {
	case rating >= 2000:
		return "Diamond"
	case rating >= 1800:
		return "Platinum"
	case rating >= 1600:
		return "Gold"
	case rating >= 1400:
		return "Silver"
	default:
		return "Bronze"
	}
}
