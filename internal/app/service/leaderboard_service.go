package service

import (
	"context"
	"encoding/json"
	"time"

	"codecade/internal/common"
	"codecade/internal/domain/model"
	"codecade/internal/domain/repository"
	"codecade/internal/platform/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// LeaderboardService ranks users by XP. The ranking is cached in Redis for a
// short TTL; a cache failure degrades to uncached store reads.
type LeaderboardService struct {
	userRepo repository.UserRepository
	rdb      *redis.Client
}

func NewLeaderboardService(userRepo repository.UserRepository, rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{userRepo: userRepo, rdb: rdb}
}

func (s *LeaderboardService) GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	cacheKey := config.AppConfig.LeaderboardCacheKey

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var entries []model.LeaderboardEntry
			unmarshalErr := json.Unmarshal([]byte(cached), &entries)
			if unmarshalErr == nil {
				return entries, nil
			}
			log.Warn().Err(unmarshalErr).Msg("discarding malformed leaderboard cache entry")
		} else if err != redis.Nil {
			log.Warn().Err(err).Msg("leaderboard cache read failed, falling back to store")
		}
	}

	users, err := s.userRepo.ListTopByXP(ctx, config.AppConfig.LeaderboardLimit)
	if err != nil {
		return nil, common.Errorf("failed to load leaderboard: %w", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(users))
	for i, user := range users {
		entries = append(entries, model.LeaderboardEntry{
			Position: i + 1,
			UserID:   user.ID,
			Username: user.Username,
			Level:    user.Level,
			XP:       user.XP,
			Rating:   user.BattleRating,
			Tier:     model.TierForRating(user.BattleRating),
		})
	}

	if s.rdb != nil {
		payload, err := json.Marshal(entries)
		if err == nil {
			ttl := time.Duration(config.AppConfig.LeaderboardCacheTTLSeconds) * time.Second
			if err := s.rdb.Set(ctx, cacheKey, payload, ttl).Err(); err != nil {
				log.Warn().Err(err).Msg("leaderboard cache write failed")
			}
		}
	}

	return entries, nil
}
