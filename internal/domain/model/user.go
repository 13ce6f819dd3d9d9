package model

import (
	"time"
)

const (
	InitialLevel        = 1
	InitialBattleRating = 1200

	// XPPerLevel drives the level derivation: level = xp/XPPerLevel + 1.
	XPPerLevel = 100
)

type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	HashedPassword string     `json:"-"` // Not exposed
	Level          int        `json:"level"`
	XP             int        `json:"xp"`
	StreakDays     int        `json:"streak_days"`
	LastActive     *time.Time `json:"last_active,omitempty"`
	College        string     `json:"college"`
	BattleRating   int        `json:"battle_rating"`
	BattleWins     int        `json:"battle_wins"`
	BattleLosses   int        `json:"battle_losses"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// UserStats is the post-update level/xp pair returned by XP grants.
type UserStats struct {
	Level int `json:"level"`
	XP    int `json:"xp"`
}

// LevelForXP derives the level for a cumulative XP total.
func LevelForXP(xp int) int {
	return xp/XPPerLevel + 1
}
