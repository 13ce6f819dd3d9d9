package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"codecade/internal/common"
	"codecade/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Delete(ctx context.Context, id string) error

	// AddXP adds the amount and recomputes the level in one statement, so
	// concurrent grants to the same user are never lost.
	AddXP(ctx context.Context, id string, amount int) (*model.UserStats, error)
	UpdateStreak(ctx context.Context, id string, streakDays int, lastActive time.Time) error

	ListTopByXP(ctx context.Context, limit int) ([]model.User, error)
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

const userColumns = `id, username, email, hashed_password, level, xp, streak_days,
	last_active, college, battle_rating, battle_wins, battle_losses, created_at, updated_at`

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, username, email, hashed_password, level, xp, streak_days,
	          college, battle_rating, battle_wins, battle_losses)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.Email, user.HashedPassword,
		user.Level, user.XP, user.StreakDays, user.College, user.BattleRating, user.BattleWins, user.BattleLosses)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return fmt.Errorf("user with given username or email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(ctx, query, email, "FindByEmail")
}

func (r *pgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanOne(ctx, query, username, "FindByUsername")
}

func (r *pgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(ctx, query, id, "FindByID")
}

func (r *pgUserRepository) scanOne(ctx context.Context, query, arg, method string) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.HashedPassword, &user.Level, &user.XP,
		&user.StreakDays, &user.LastActive, &user.College, &user.BattleRating,
		&user.BattleWins, &user.BattleLosses, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.%s: %w", method, err)
	}
	return user, nil
}

func (r *pgUserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgUserRepository.Delete: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgUserRepository) AddXP(ctx context.Context, id string, amount int) (*model.UserStats, error) {
	// level = xp/100 + 1 must hold after every update; done in the same
	// statement as the increment.
	query := `UPDATE users
	          SET xp = xp + $2, level = (xp + $2) / 100 + 1, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $1
	          RETURNING level, xp`
	stats := &model.UserStats{}
	err := r.db.QueryRowContext(ctx, query, id, amount).Scan(&stats.Level, &stats.XP)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.AddXP: %w", err)
	}
	return stats, nil
}

func (r *pgUserRepository) UpdateStreak(ctx context.Context, id string, streakDays int, lastActive time.Time) error {
	query := `UPDATE users
	          SET streak_days = $2, last_active = $3, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, streakDays, lastActive)
	if err != nil {
		return fmt.Errorf("pgUserRepository.UpdateStreak: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgUserRepository) ListTopByXP(ctx context.Context, limit int) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY xp DESC, username ASC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.ListTopByXP: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.HashedPassword, &user.Level, &user.XP,
			&user.StreakDays, &user.LastActive, &user.College, &user.BattleRating,
			&user.BattleWins, &user.BattleLosses, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgUserRepository.ListTopByXP scan: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgUserRepository.ListTopByXP rows: %w", err)
	}
	return users, nil
}
