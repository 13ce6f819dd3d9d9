package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"codecade/internal/common"
	"codecade/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type ProblemRepository interface {
	CreateProblem(ctx context.Context, problem *model.Problem) error
	FindProblemBySlug(ctx context.Context, slug string) (*model.Problem, error)
	ListProblems(ctx context.Context, limit, offset int, difficulty model.ProblemDifficulty, tag string) ([]model.Problem, int, error)
}

type pgProblemRepository struct {
	db *sql.DB
}

func NewPgProblemRepository(db *sql.DB) ProblemRepository {
	return &pgProblemRepository{db: db}
}

// Tags are stored as a comma-separated text column; the catalog is small and
// tag filtering is a substring match.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}

func (r *pgProblemRepository) CreateProblem(ctx context.Context, p *model.Problem) error {
	query := `INSERT INTO problems (id, title, slug, description, difficulty, tags, avg_time_minutes, success_rate)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Title, p.Slug, p.Description, p.Difficulty,
		joinTags(p.Tags), p.AvgTimeMinutes, p.SuccessRate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint for slug
			return fmt.Errorf("problem with this slug already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgProblemRepository.CreateProblem: %w", err)
	}
	return nil
}

func (r *pgProblemRepository) FindProblemBySlug(ctx context.Context, slug string) (*model.Problem, error) {
	query := `SELECT id, title, slug, description, difficulty, tags, avg_time_minutes, success_rate, created_at
	          FROM problems WHERE slug = $1`
	problem := &model.Problem{}
	var tags string
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&problem.ID, &problem.Title, &problem.Slug, &problem.Description, &problem.Difficulty,
		&tags, &problem.AvgTimeMinutes, &problem.SuccessRate, &problem.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgProblemRepository.FindProblemBySlug: %w", err)
	}
	problem.Tags = splitTags(tags)
	return problem, nil
}

func (r *pgProblemRepository) ListProblems(ctx context.Context, limit, offset int, difficulty model.ProblemDifficulty, tag string) ([]model.Problem, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argID := 1

	if difficulty != "" {
		conditions = append(conditions, fmt.Sprintf("difficulty = $%d", argID))
		args = append(args, difficulty)
		argID++
	}
	if tag != "" {
		conditions = append(conditions, fmt.Sprintf("tags ILIKE $%d", argID))
		args = append(args, "%"+tag+"%")
		argID++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM problems` + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("pgProblemRepository.ListProblems count: %w", err)
	}

	query := `SELECT id, title, slug, description, difficulty, tags, avg_time_minutes, success_rate, created_at
	          FROM problems` + whereClause +
		fmt.Sprintf(" ORDER BY title ASC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("pgProblemRepository.ListProblems: %w", err)
	}
	defer rows.Close()

	var problems []model.Problem
	for rows.Next() {
		var problem model.Problem
		var tags string
		if err := rows.Scan(
			&problem.ID, &problem.Title, &problem.Slug, &problem.Description, &problem.Difficulty,
			&tags, &problem.AvgTimeMinutes, &problem.SuccessRate, &problem.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("pgProblemRepository.ListProblems scan: %w", err)
		}
		problem.Tags = splitTags(tags)
		problems = append(problems, problem)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("pgProblemRepository.ListProblems rows: %w", err)
	}
	return problems, total, nil
}
