package service

import (
	"context"
	"testing"
	"time"

	"codecade/internal/common"
	"codecade/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (*UserService, *ProgressService, *fakeUserRepo, *fakeProgressRepo) {
	userRepo := newFakeUserRepo()
	progressRepo := newFakeProgressRepo()
	progress := NewProgressService(userRepo, progressRepo)
	return NewUserService(userRepo, progressRepo, progress), progress, userRepo, progressRepo
}

func TestGetStatsAdvancesStreak(t *testing.T) {
	svc, progress, userRepo, _ := newUserFixture()
	user := seedUser(userRepo, "u1", 230)
	user.College = "NIT Trichy"
	yesterday := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	user.LastActive = &yesterday
	user.StreakDays = 6
	progress.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	stats, err := svc.GetStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Level)
	assert.Equal(t, 230, stats.XP)
	assert.Equal(t, 7, stats.StreakDays)
	assert.Equal(t, "user-u1", stats.Username)
	assert.Equal(t, "NIT Trichy", stats.College)
}

func TestGetStatsUnknownUser(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	_, err := svc.GetStats(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetProgress(t *testing.T) {
	svc, progress, userRepo, _ := newUserFixture()
	seedUser(userRepo, "u1", 0)

	_, err := progress.MarkLessonCompleted(context.Background(), "u1", "lesson-1", 0)
	require.NoError(t, err)
	_, err = progress.MarkLessonCompleted(context.Background(), "u1", "lesson-2", 0)
	require.NoError(t, err)
	_, err = progress.MarkProblemSolved(context.Background(), "u1", "two-sum", 1, 45, 0)
	require.NoError(t, err)

	resp, err := svc.GetProgress(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalSolved)
	assert.Equal(t, 2, resp.TotalLessons)
	require.Len(t, resp.SolvedProblems, 1)
	assert.Equal(t, "two-sum", resp.SolvedProblems[0].ProblemID)
}

func TestGetProgressEmptyIsNotNil(t *testing.T) {
	svc, _, userRepo, _ := newUserFixture()
	seedUser(userRepo, "u1", 0)

	resp, err := svc.GetProgress(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, resp.SolvedProblems)
	assert.NotNil(t, resp.CompletedLessons)
	assert.Zero(t, resp.TotalSolved)
	assert.Zero(t, resp.TotalLessons)
}

func TestGetBattleStats(t *testing.T) {
	svc, _, userRepo, _ := newUserFixture()
	user := seedUser(userRepo, "u1", 0)
	user.BattleWins = 12
	user.BattleLosses = 8
	user.BattleRating = 1650

	stats, err := svc.GetBattleStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Wins)
	assert.Equal(t, 8, stats.Losses)
	assert.Equal(t, 1650, stats.Rating)
	assert.Equal(t, "Gold", stats.Tier)
	assert.Equal(t, 20, stats.TotalBattles)
}

func TestBattleTiers(t *testing.T) {
	cases := []struct {
		rating int
		tier   string
	}{
		{2100, "Diamond"},
		{2000, "Diamond"},
		{1900, "Platinum"},
		{1700, "Gold"},
		{1450, "Silver"},
		{model.InitialBattleRating, "Bronze"},
		{900, "Bronze"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, model.TierForRating(tc.rating), "rating %d", tc.rating)
	}
}

func TestDeleteProfile(t *testing.T) {
	svc, _, userRepo, _ := newUserFixture()
	seedUser(userRepo, "u1", 0)

	require.NoError(t, svc.DeleteProfile(context.Background(), "u1"))

	_, err := userRepo.FindByID(context.Background(), "u1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = svc.DeleteProfile(context.Background(), "u1")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
