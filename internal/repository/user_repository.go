package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"kyc-service/internal/models"

	"github.com/jmoiron/sqlx"
)

type IUserRepository interface {
	CreateUser(req *models.CreateUserRequest) (int64, error)
	GetUserByID(id int64) (*models.User, error)
	UpdateUser(id int64, req *models.UpdateUserRequest) error
	DeleteUser(id int64) error
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) IUserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) CreateUser(req *models.CreateUserRequest) (int64, error) {
	var id int64
	query := `
		INSERT INTO users (name, phone, aadhaar, email, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.Get(&id, query, req.Name, req.Phone, req.Aadhaar, req.Email, req.Address)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateAadhaar
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) GetUserByID(id int64) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// UpdateUser overwrites only the fields present in the request and refreshes
// updated_at. Absent fields keep their prior values.
func (r *UserRepository) UpdateUser(id int64, req *models.UpdateUserRequest) error {
	setClauses := []string{}
	args := []any{}
	argPos := 1

	addSet := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Aadhaar != nil {
		addSet("aadhaar", *req.Aadhaar)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Address != nil {
		addSet("address", *req.Address)
	}

	setClauses = append(setClauses, "updated_at = now()")

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), argPos)
	args = append(args, id)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateAadhaar
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(id int64) error {
	result, err := r.db.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
