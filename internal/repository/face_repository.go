package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"kyc-service/internal/models"

	"github.com/jmoiron/sqlx"
)

type IFaceRepository interface {
	CreateFace(userID int64, faceURL string) (int64, error)
	GetFaceByID(id int64) (*models.Face, error)
	ListFacesByUserID(userID int64) ([]models.Face, error)
	DeleteFace(id int64) error
	UpdateFaceVerification(id int64, status string, livenessScore, matchScore *float64) error
}

type FaceRepository struct {
	db *sqlx.DB
}

func NewFaceRepository(db *sqlx.DB) IFaceRepository {
	return &FaceRepository{
		db: db,
	}
}

func (r *FaceRepository) CreateFace(userID int64, faceURL string) (int64, error) {
	var id int64
	query := `
		INSERT INTO faces (user_id, face_url)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.Get(&id, query, userID, faceURL)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to create face record: %w", err)
	}
	return id, nil
}

func (r *FaceRepository) GetFaceByID(id int64) (*models.Face, error) {
	var face models.Face
	err := r.db.Get(&face, "SELECT * FROM faces WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFaceNotFound
		}
		return nil, fmt.Errorf("failed to get face by id: %w", err)
	}
	return &face, nil
}

func (r *FaceRepository) ListFacesByUserID(userID int64) ([]models.Face, error) {
	faces := []models.Face{}
	err := r.db.Select(&faces, "SELECT * FROM faces WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list faces for user %d: %w", userID, err)
	}
	return faces, nil
}

func (r *FaceRepository) DeleteFace(id int64) error {
	result, err := r.db.Exec("DELETE FROM faces WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete face record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrFaceNotFound
	}
	return nil
}

// UpdateFaceVerification writes the status and any scores the external
// verification worker produced. Nil scores leave existing values in place.
func (r *FaceRepository) UpdateFaceVerification(id int64, status string, livenessScore, matchScore *float64) error {
	query := `
		UPDATE faces
		SET status = $1,
		    liveness_score = COALESCE($2, liveness_score),
		    match_score = COALESCE($3, match_score)
		WHERE id = $4
	`
	result, err := r.db.Exec(query, status, livenessScore, matchScore, id)
	if err != nil {
		return fmt.Errorf("failed to update face verification: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrFaceNotFound
	}
	return nil
}
