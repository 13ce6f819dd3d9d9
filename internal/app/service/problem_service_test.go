package service

import (
	"context"
	"testing"

	"codecade/internal/common"
	"codecade/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProblems(t *testing.T, svc *ProblemService) {
	t.Helper()
	seeds := []CreateProblemRequest{
		{Title: "Two Sum", Description: "Find two numbers adding to target", Difficulty: model.DifficultyEasy, Tags: []string{"arrays", "hash-table"}},
		{Title: "Valid Parentheses", Description: "Check bracket balance", Difficulty: model.DifficultyEasy, Tags: []string{"stack"}},
		{Title: "3Sum", Description: "Find unique triplets summing to zero", Difficulty: model.DifficultyMedium, Tags: []string{"arrays", "two-pointers"}},
	}
	for _, seed := range seeds {
		_, err := svc.CreateProblem(context.Background(), seed)
		require.NoError(t, err)
	}
}

func TestCreateProblemSlugsTitle(t *testing.T) {
	svc := NewProblemService(newFakeProblemRepo())

	problem, err := svc.CreateProblem(context.Background(), CreateProblemRequest{
		Title:       "Longest Substring Without Repeating Characters",
		Description: "Sliding window classic",
		Difficulty:  model.DifficultyMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, "longest-substring-without-repeating-characters", problem.Slug)
	assert.NotEmpty(t, problem.ID)
}

func TestCreateProblemValidation(t *testing.T) {
	svc := NewProblemService(newFakeProblemRepo())

	_, err := svc.CreateProblem(context.Background(), CreateProblemRequest{Title: "No Description", Difficulty: model.DifficultyEasy})
	assert.ErrorIs(t, err, common.ErrBadRequest)

	_, err = svc.CreateProblem(context.Background(), CreateProblemRequest{Title: "Bad Difficulty", Description: "x", Difficulty: "impossible"})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestCreateProblemDuplicateSlug(t *testing.T) {
	svc := NewProblemService(newFakeProblemRepo())
	seedProblems(t, svc)

	_, err := svc.CreateProblem(context.Background(), CreateProblemRequest{
		Title: "Two Sum", Description: "duplicate", Difficulty: model.DifficultyEasy,
	})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestGetProblemBySlug(t *testing.T) {
	svc := NewProblemService(newFakeProblemRepo())
	seedProblems(t, svc)

	problem, err := svc.GetProblemBySlug(context.Background(), "two-sum")
	require.NoError(t, err)
	assert.Equal(t, "Two Sum", problem.Title)

	_, err = svc.GetProblemBySlug(context.Background(), "no-such-problem")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListProblems(t *testing.T) {
	svc := NewProblemService(newFakeProblemRepo())
	seedProblems(t, svc)

	t.Run("all", func(t *testing.T) {
		resp, err := svc.ListProblems(context.Background(), 0, 0, "", "")
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 20, resp.PageSize)
		assert.Len(t, resp.Problems, 3)
	})

	t.Run("by difficulty", func(t *testing.T) {
		resp, err := svc.ListProblems(context.Background(), 1, 20, model.DifficultyEasy, "")
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("by tag", func(t *testing.T) {
		resp, err := svc.ListProblems(context.Background(), 1, 20, "", "stack")
		require.NoError(t, err)
		require.Len(t, resp.Problems, 1)
		assert.Equal(t, "valid-parentheses", resp.Problems[0].Slug)
	})

	t.Run("pagination", func(t *testing.T) {
		resp, err := svc.ListProblems(context.Background(), 2, 2, "", "")
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Total)
		assert.Len(t, resp.Problems, 1)
		assert.Equal(t, 2, resp.Page)
	})

	t.Run("page past the end", func(t *testing.T) {
		resp, err := svc.ListProblems(context.Background(), 5, 20, "", "")
		require.NoError(t, err)
		assert.NotNil(t, resp.Problems)
		assert.Empty(t, resp.Problems)
		assert.Equal(t, 3, resp.Total)
	})
}
