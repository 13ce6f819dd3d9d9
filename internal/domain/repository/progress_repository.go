package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"codecade/internal/common"
	"codecade/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// ProgressRepository persists completion and solve records. Lesson
// completions are unique per (user, lesson); problem solves are not.
type ProgressRepository interface {
	CreateCompletedLesson(ctx context.Context, lesson *model.CompletedLesson) error
	ListCompletedLessons(ctx context.Context, userID string) ([]model.CompletedLesson, error)

	CreateSolvedProblem(ctx context.Context, solved *model.SolvedProblem) error
	ListSolvedProblems(ctx context.Context, userID string) ([]model.SolvedProblem, error)
}

type pgProgressRepository struct {
	db *sql.DB
}

func NewPgProgressRepository(db *sql.DB) ProgressRepository {
	return &pgProgressRepository{db: db}
}

func (r *pgProgressRepository) CreateCompletedLesson(ctx context.Context, lesson *model.CompletedLesson) error {
	query := `INSERT INTO completed_lessons (id, user_id, lesson_id, completed_at)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, lesson.ID, lesson.UserID, lesson.LessonID, lesson.CompletedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // (user_id, lesson_id) unique
			return fmt.Errorf("lesson already completed: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgProgressRepository.CreateCompletedLesson: %w", err)
	}
	return nil
}

func (r *pgProgressRepository) ListCompletedLessons(ctx context.Context, userID string) ([]model.CompletedLesson, error) {
	query := `SELECT id, user_id, lesson_id, completed_at
	          FROM completed_lessons WHERE user_id = $1 ORDER BY completed_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgProgressRepository.ListCompletedLessons: %w", err)
	}
	defer rows.Close()

	var lessons []model.CompletedLesson
	for rows.Next() {
		var lesson model.CompletedLesson
		if err := rows.Scan(&lesson.ID, &lesson.UserID, &lesson.LessonID, &lesson.CompletedAt); err != nil {
			return nil, fmt.Errorf("pgProgressRepository.ListCompletedLessons scan: %w", err)
		}
		lessons = append(lessons, lesson)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgProgressRepository.ListCompletedLessons rows: %w", err)
	}
	return lessons, nil
}

func (r *pgProgressRepository) CreateSolvedProblem(ctx context.Context, solved *model.SolvedProblem) error {
	query := `INSERT INTO solved_problems (id, user_id, problem_id, attempts, time_taken, solved_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, solved.ID, solved.UserID, solved.ProblemID,
		solved.Attempts, solved.TimeTaken, solved.SolvedAt)
	if err != nil {
		return fmt.Errorf("pgProgressRepository.CreateSolvedProblem: %w", err)
	}
	return nil
}

func (r *pgProgressRepository) ListSolvedProblems(ctx context.Context, userID string) ([]model.SolvedProblem, error) {
	query := `SELECT id, user_id, problem_id, attempts, time_taken, solved_at
	          FROM solved_problems WHERE user_id = $1 ORDER BY solved_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgProgressRepository.ListSolvedProblems: %w", err)
	}
	defer rows.Close()

	var solved []model.SolvedProblem
	for rows.Next() {
		var s model.SolvedProblem
		if err := rows.Scan(&s.ID, &s.UserID, &s.ProblemID, &s.Attempts, &s.TimeTaken, &s.SolvedAt); err != nil {
			return nil, fmt.Errorf("pgProgressRepository.ListSolvedProblems scan: %w", err)
		}
		solved = append(solved, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgProgressRepository.ListSolvedProblems rows: %w", err)
	}
	return solved, nil
}
