package repository

import (
	"context"
	"errors"
	"fmt"

	"train-booking/internal/data/entity"
	"train-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

type userRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewUserRepository(db database.Querier, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, username, email, password, phone, role, is_active, created_at, updated_at, deleted_at`

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password, phone, role,
		                  is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Role,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`

	user, err := ur.findOne(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to find user by ID", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}
	return user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL`

	user, err := ur.findOne(ctx, query, email)
	if err != nil {
		ur.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}
	return user, nil
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND deleted_at IS NULL`

	user, err := ur.findOne(ctx, query, username)
	if err != nil {
		ur.log.Error("Failed to find user by username", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}
	return user, nil
}

// findOne returns (nil, nil) when no row matches
func (ur *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var user entity.User
	err := ur.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
