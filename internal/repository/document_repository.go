package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"kyc-service/internal/models"

	"github.com/jmoiron/sqlx"
)

type IDocumentRepository interface {
	CreateDocument(userID int64, docType, docURL string) (int64, error)
	GetDocumentByID(id int64) (*models.Document, error)
	ListDocumentsByUserID(userID int64) ([]models.Document, error)
	DeleteDocument(id int64) error
	UpdateDocumentStatus(id int64, status string) error
}

type DocumentRepository struct {
	db *sqlx.DB
}

func NewDocumentRepository(db *sqlx.DB) IDocumentRepository {
	return &DocumentRepository{
		db: db,
	}
}

func (r *DocumentRepository) CreateDocument(userID int64, docType, docURL string) (int64, error) {
	var id int64
	query := `
		INSERT INTO documents (user_id, doc_type, doc_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.Get(&id, query, userID, docType, docURL)
	if err != nil {
		// The owning user can vanish between the existence check and this
		// insert; the FK constraint closes that race.
		if isForeignKeyViolation(err) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to create document: %w", err)
	}
	return id, nil
}

func (r *DocumentRepository) GetDocumentByID(id int64) (*models.Document, error) {
	var doc models.Document
	err := r.db.Get(&doc, "SELECT * FROM documents WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document by id: %w", err)
	}
	return &doc, nil
}

func (r *DocumentRepository) ListDocumentsByUserID(userID int64) ([]models.Document, error) {
	docs := []models.Document{}
	err := r.db.Select(&docs, "SELECT * FROM documents WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents for user %d: %w", userID, err)
	}
	return docs, nil
}

func (r *DocumentRepository) DeleteDocument(id int64) error {
	result, err := r.db.Exec("DELETE FROM documents WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (r *DocumentRepository) UpdateDocumentStatus(id int64, status string) error {
	result, err := r.db.Exec("UPDATE documents SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("failed to update document status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
