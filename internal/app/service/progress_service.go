package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"codecade/internal/common"
	"codecade/internal/domain/model"
	"codecade/internal/domain/repository"

	"github.com/google/uuid"
)

const (
	DefaultLessonXPReward  = 5
	DefaultProblemXPReward = 10
	SubmissionXPReward     = 10

	minSolutionLength = 20
)

// ProgressService implements the progression engine: XP grants, idempotent
// lesson completions, repeatable problem solves, streak updates, and the
// placeholder solution judge.
type ProgressService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository

	now     func() time.Time // injectable for streak tests
	randInt func(n int) int
}

func NewProgressService(userRepo repository.UserRepository, progressRepo repository.ProgressRepository) *ProgressService {
	return &ProgressService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		now:          time.Now,
		randInt:      rand.Intn,
	}
}

// GrantXP adds amount to the user's XP and recomputes the level. The
// increment and level derivation happen in one store operation, so concurrent
// grants to the same user cannot be lost.
func (s *ProgressService) GrantXP(ctx context.Context, userID string, amount int) (*model.UserStats, error) {
	if amount < 0 {
		return nil, common.Errorf("xp amount must not be negative: %w", common.ErrBadRequest)
	}
	stats, err := s.userRepo.AddXP(ctx, userID, amount)
	if err != nil {
		return nil, common.Errorf("failed to grant xp: %w", err)
	}
	return stats, nil
}

type LessonCompletionResult struct {
	Completed bool `json:"completed"`
	Level     int  `json:"level"`
	XP        int  `json:"xp"`
	XPGained  int  `json:"xpGained"`
}

// MarkLessonCompleted records the completion and grants XP exactly once per
// (user, lesson) pair. A repeat completion is not an error: it reports
// completed=false with the user's current stats and no XP.
func (s *ProgressService) MarkLessonCompleted(ctx context.Context, userID, lessonID string, xpReward int) (*LessonCompletionResult, error) {
	if lessonID == "" {
		return nil, common.Errorf("lesson ID required: %w", common.ErrValidation)
	}
	if xpReward <= 0 {
		xpReward = DefaultLessonXPReward
	}

	lesson := &model.CompletedLesson{
		ID:          uuid.NewString(),
		UserID:      userID,
		LessonID:    lessonID,
		CompletedAt: s.now().UTC(),
	}

	if err := s.progressRepo.CreateCompletedLesson(ctx, lesson); err != nil {
		if errors.Is(err, common.ErrConflict) {
			user, err := s.userRepo.FindByID(ctx, userID)
			if err != nil {
				return nil, common.Errorf("failed to load user after duplicate completion: %w", err)
			}
			return &LessonCompletionResult{Completed: false, Level: user.Level, XP: user.XP}, nil
		}
		return nil, common.Errorf("failed to record lesson completion: %w", err)
	}

	stats, err := s.GrantXP(ctx, userID, xpReward)
	if err != nil {
		return nil, err
	}
	return &LessonCompletionResult{Completed: true, Level: stats.Level, XP: stats.XP, XPGained: xpReward}, nil
}

type ProblemSolveResult struct {
	Solved   bool `json:"solved"`
	Level    int  `json:"level"`
	XP       int  `json:"xp"`
	XPGained int  `json:"xpGained"`
}

// MarkProblemSolved always inserts a new solve record and always grants XP;
// re-solving the same problem is rewarded again by design.
func (s *ProgressService) MarkProblemSolved(ctx context.Context, userID, problemID string, attempts, timeTaken, xpReward int) (*ProblemSolveResult, error) {
	if problemID == "" {
		return nil, common.Errorf("problem ID required: %w", common.ErrValidation)
	}
	if attempts <= 0 {
		attempts = 1
	}
	if timeTaken < 0 {
		timeTaken = 0
	}
	if xpReward <= 0 {
		xpReward = DefaultProblemXPReward
	}

	solved := &model.SolvedProblem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProblemID: problemID,
		Attempts:  attempts,
		TimeTaken: timeTaken,
		SolvedAt:  s.now().UTC(),
	}
	if err := s.progressRepo.CreateSolvedProblem(ctx, solved); err != nil {
		return nil, common.Errorf("failed to record solved problem: %w", err)
	}

	stats, err := s.GrantXP(ctx, userID, xpReward)
	if err != nil {
		return nil, err
	}
	return &ProblemSolveResult{Solved: true, Level: stats.Level, XP: stats.XP, XPGained: xpReward}, nil
}

// UpdateStreak applies the calendar rules to the consecutive-day counter:
// first activity starts at 1, activity on consecutive days increments, a gap
// of two or more days resets to 1, and repeat calls on the same day leave the
// counter untouched. last_active is refreshed on every call.
func (s *ProgressService) UpdateStreak(ctx context.Context, userID string) (int, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, common.Errorf("failed to load user for streak update: %w", err)
	}

	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)
	streakDays := user.StreakDays

	if user.LastActive == nil {
		streakDays = 1
	} else {
		lastDate := user.LastActive.UTC().Truncate(24 * time.Hour)
		switch {
		case lastDate.Equal(today):
			// same day: counter unchanged, last_active still refreshed
		case lastDate.Equal(today.AddDate(0, 0, -1)):
			streakDays++
		default:
			streakDays = 1
		}
	}

	if err := s.userRepo.UpdateStreak(ctx, userID, streakDays, now); err != nil {
		return 0, common.Errorf("failed to persist streak: %w", err)
	}
	return streakDays, nil
}

// SubmitSolution applies the placeholder acceptance policy: trivially short
// code or code still carrying a TODO marker is rejected before anything is
// written; everything else is accepted, recorded as a solve, and rewarded
// with a fixed XP amount. Runtime and memory figures are synthetic.
func (s *ProgressService) SubmitSolution(ctx context.Context, userID, problemID, code string, timeSpent int) (*model.SubmissionVerdict, error) {
	if problemID == "" || code == "" {
		return nil, common.Errorf("problem ID and code required: %w", common.ErrValidation)
	}

	if len(strings.TrimSpace(code)) < minSolutionLength || strings.Contains(code, "TODO") {
		return &model.SubmissionVerdict{
			Verdict: model.VerdictRejected,
			Message: "Please implement a valid solution",
		}, nil
	}

	if timeSpent < 0 {
		timeSpent = 0
	}
	solved := &model.SolvedProblem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProblemID: problemID,
		Attempts:  1,
		TimeTaken: timeSpent,
		SolvedAt:  s.now().UTC(),
	}
	if err := s.progressRepo.CreateSolvedProblem(ctx, solved); err != nil {
		return nil, common.Errorf("failed to record submission solve: %w", err)
	}
	if _, err := s.GrantXP(ctx, userID, SubmissionXPReward); err != nil {
		return nil, err
	}

	return &model.SubmissionVerdict{
		Verdict:   model.VerdictAccepted,
		Message:   "Solution accepted",
		RuntimeMs: s.randInt(100) + 50,
		MemoryKb:  s.randInt(5000) + 2000,
		XPGained:  SubmissionXPReward,
	}, nil
}
