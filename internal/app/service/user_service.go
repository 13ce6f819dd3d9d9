package service

import (
	"context"

	"codecade/internal/common"
	"codecade/internal/domain/model"
	"codecade/internal/domain/repository"
)

// UserService serves the authenticated user's own views: stats, progress,
// battle record, and account deletion.
type UserService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	progress     *ProgressService
}

func NewUserService(userRepo repository.UserRepository, progressRepo repository.ProgressRepository, progress *ProgressService) *UserService {
	return &UserService{userRepo: userRepo, progressRepo: progressRepo, progress: progress}
}

type UserStatsResponse struct {
	Level      int    `json:"level"`
	XP         int    `json:"xp"`
	StreakDays int    `json:"streak_days"`
	Username   string `json:"username"`
	College    string `json:"college"`
}

// GetStats advances the streak for today's activity before reading, so the
// stats view always reflects the current day.
func (s *UserService) GetStats(ctx context.Context, userID string) (*UserStatsResponse, error) {
	streakDays, err := s.progress.UpdateStreak(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, common.Errorf("failed to load user stats: %w", err)
	}

	return &UserStatsResponse{
		Level:      user.Level,
		XP:         user.XP,
		StreakDays: streakDays,
		Username:   user.Username,
		College:    user.College,
	}, nil
}

type UserProgressResponse struct {
	SolvedProblems   []model.SolvedProblem   `json:"solvedProblems"`
	CompletedLessons []model.CompletedLesson `json:"completedLessons"`
	TotalSolved      int                     `json:"totalSolved"`
	TotalLessons     int                     `json:"totalLessons"`
}

func (s *UserService) GetProgress(ctx context.Context, userID string) (*UserProgressResponse, error) {
	solved, err := s.progressRepo.ListSolvedProblems(ctx, userID)
	if err != nil {
		return nil, common.Errorf("failed to list solved problems: %w", err)
	}
	lessons, err := s.progressRepo.ListCompletedLessons(ctx, userID)
	if err != nil {
		return nil, common.Errorf("failed to list completed lessons: %w", err)
	}

	if solved == nil {
		solved = []model.SolvedProblem{}
	}
	if lessons == nil {
		lessons = []model.CompletedLesson{}
	}
	return &UserProgressResponse{
		SolvedProblems:   solved,
		CompletedLessons: lessons,
		TotalSolved:      len(solved),
		TotalLessons:     len(lessons),
	}, nil
}

func (s *UserService) GetBattleStats(ctx context.Context, userID string) (*model.BattleStats, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, common.Errorf("failed to load user for battle stats: %w", err)
	}
	return &model.BattleStats{
		Wins:         user.BattleWins,
		Losses:       user.BattleLosses,
		Rating:       user.BattleRating,
		Tier:         model.TierForRating(user.BattleRating),
		TotalBattles: user.BattleWins + user.BattleLosses,
	}, nil
}

func (s *UserService) DeleteProfile(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return common.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
