package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/database"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

// UserRepositoryInterface is the account store. (id, role) pairs are
// unique.
type UserRepositoryInterface interface {
	Find(id string, role models.Role) (*models.User, error)
	Create(user *models.User) error
}

// UserRepository is the PostgreSQL-backed account store.
type UserRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewUserRepository(logger *logger.Logger, db *database.DB) *UserRepository {
	return &UserRepository{
		logger: logger.WithComponent("user_repository"),
		db:     db,
	}
}

func (r *UserRepository) Find(id string, role models.Role) (*models.User, error) {
	r.logger.Debug("Looking up user", "user_id", id, "role", role)

	user := &models.User{}
	err := r.db.QueryRow(
		`SELECT id, name, role, pin FROM users WHERE id = $1 AND role = $2`,
		id, string(role),
	).Scan(&user.ID, &user.Name, &user.Role, &user.PIN)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s (%s): %w", id, role, apperrors.ErrNotFound)
		}
		r.logger.Error("Failed to look up user", "error", err, "user_id", id)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Create(user *models.User) error {
	r.logger.Debug("Creating user", "user_id", user.ID, "role", user.Role)

	_, err := r.db.Exec(
		`INSERT INTO users (id, name, role, pin) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Name, string(user.Role), user.PIN,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "violates unique constraint") {
			r.logger.Warn("Attempted to register duplicate user", "user_id", user.ID, "role", user.Role)
			return fmt.Errorf("user %s (%s): %w", user.ID, user.Role, apperrors.ErrDuplicateID)
		}
		r.logger.Error("Failed to create user", "error", err, "user_id", user.ID)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("Created user", "user_id", user.ID, "role", user.Role)
	return nil
}
