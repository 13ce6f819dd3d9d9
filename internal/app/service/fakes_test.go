package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"codecade/internal/common"
	"codecade/internal/domain/model"
	"codecade/internal/domain/repository"
)

var (
	_ repository.UserRepository     = (*fakeUserRepo)(nil)
	_ repository.ProgressRepository = (*fakeProgressRepo)(nil)
	_ repository.ProblemRepository  = (*fakeProblemRepo)(nil)
)

// In-memory repositories mirroring the pg implementations' contracts,
// including the atomic AddXP and the unique (user, lesson) constraint.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return fmt.Errorf("user with given username or email already exists: %w", common.ErrConflict)
		}
	}
	clone := *user
	clone.CreatedAt = time.Now().UTC()
	clone.UpdatedAt = clone.CreatedAt
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) AddXP(ctx context.Context, id string, amount int) (*model.UserStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	user.XP += amount
	user.Level = model.LevelForXP(user.XP)
	return &model.UserStats{Level: user.Level, XP: user.XP}, nil
}

func (r *fakeUserRepo) UpdateStreak(ctx context.Context, id string, streakDays int, lastActive time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return common.ErrNotFound
	}
	user.StreakDays = streakDays
	la := lastActive
	user.LastActive = &la
	return nil
}

func (r *fakeUserRepo) ListTopByXP(ctx context.Context, limit int) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	for i := 0; i < len(users); i++ {
		for j := i + 1; j < len(users); j++ {
			if users[j].XP > users[i].XP {
				users[i], users[j] = users[j], users[i]
			}
		}
	}
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

type fakeProgressRepo struct {
	mu               sync.Mutex
	completedLessons []model.CompletedLesson
	solvedProblems   []model.SolvedProblem
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{}
}

func (r *fakeProgressRepo) CreateCompletedLesson(ctx context.Context, lesson *model.CompletedLesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.completedLessons {
		if existing.UserID == lesson.UserID && existing.LessonID == lesson.LessonID {
			return fmt.Errorf("lesson already completed: %w", common.ErrConflict)
		}
	}
	r.completedLessons = append(r.completedLessons, *lesson)
	return nil
}

func (r *fakeProgressRepo) ListCompletedLessons(ctx context.Context, userID string) ([]model.CompletedLesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lessons []model.CompletedLesson
	for _, lesson := range r.completedLessons {
		if lesson.UserID == userID {
			lessons = append(lessons, lesson)
		}
	}
	return lessons, nil
}

func (r *fakeProgressRepo) CreateSolvedProblem(ctx context.Context, solved *model.SolvedProblem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solvedProblems = append(r.solvedProblems, *solved)
	return nil
}

func (r *fakeProgressRepo) ListSolvedProblems(ctx context.Context, userID string) ([]model.SolvedProblem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var solved []model.SolvedProblem
	for _, s := range r.solvedProblems {
		if s.UserID == userID {
			solved = append(solved, s)
		}
	}
	return solved, nil
}

type fakeProblemRepo struct {
	mu       sync.Mutex
	problems []model.Problem
}

func newFakeProblemRepo() *fakeProblemRepo {
	return &fakeProblemRepo{}
}

func (r *fakeProblemRepo) CreateProblem(ctx context.Context, problem *model.Problem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.problems {
		if existing.Slug == problem.Slug {
			return fmt.Errorf("problem with slug %q already exists: %w", problem.Slug, common.ErrConflict)
		}
	}
	r.problems = append(r.problems, *problem)
	return nil
}

func (r *fakeProblemRepo) FindProblemBySlug(ctx context.Context, problemSlug string) (*model.Problem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, problem := range r.problems {
		if problem.Slug == problemSlug {
			clone := problem
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeProblemRepo) ListProblems(ctx context.Context, limit, offset int, difficulty model.ProblemDifficulty, tag string) ([]model.Problem, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []model.Problem
	for _, problem := range r.problems {
		if difficulty != "" && problem.Difficulty != difficulty {
			continue
		}
		if tag != "" && !containsTag(problem.Tags, tag) {
			continue
		}
		matched = append(matched, problem)
	}
	total := len(matched)
	if offset >= len(matched) {
		return []model.Problem{}, total, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func seedUser(repo *fakeUserRepo, id string, xp int) *model.User {
	user := &model.User{
		ID:           id,
		Username:     "user-" + id,
		Email:        "user-" + id + "@example.com",
		Level:        model.LevelForXP(xp),
		XP:           xp,
		BattleRating: model.InitialBattleRating,
	}
	repo.users[id] = user
	return user
}
