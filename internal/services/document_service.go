package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"

	"kyc-service/internal/event"
	"kyc-service/internal/models"
	"kyc-service/internal/repository"
	"kyc-service/utils"

	"github.com/google/uuid"
)

type IDocumentService interface {
	UploadDocument(ctx context.Context, userID int64, docType string, file io.Reader, header *multipart.FileHeader) (*models.UploadDocumentResponse, error)
	ListDocuments(userID int64) ([]models.Document, error)
	DeleteDocument(id int64) error
}

type DocumentService struct {
	userRepo       repository.IUserRepository
	documentRepo   repository.IDocumentRepository
	storage        ObjectStorage
	eventPublisher EventPublisher
}

func NewDocumentService(userRepo repository.IUserRepository, documentRepo repository.IDocumentRepository, storage ObjectStorage, eventPublisher EventPublisher) IDocumentService {
	return &DocumentService{
		userRepo:       userRepo,
		documentRepo:   documentRepo,
		storage:        storage,
		eventPublisher: eventPublisher,
	}
}

// UploadDocument resolves the owning user before anything touches the object
// store, then uploads and records the document with status pending.
func (s *DocumentService) UploadDocument(ctx context.Context, userID int64, docType string, file io.Reader, header *multipart.FileHeader) (*models.UploadDocumentResponse, error) {
	if _, err := s.userRepo.GetUserByID(userID); err != nil {
		return nil, err
	}

	filename := utils.SanitizeFilename(header.Filename)
	objectName := fmt.Sprintf("documents/%d/%s/%s", userID, docType, filename)
	contentType := header.Header.Get("Content-Type")

	docURL, err := s.storage.Upload(ctx, objectName, file, header.Size, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	docID, err := s.documentRepo.CreateDocument(userID, docType, docURL)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.KYCEvent{
		ID:        uuid.NewString(),
		EventType: event.DocumentUploaded,
		UserID:    userID,
		RecordID:  docID,
		URL:       docURL,
	})

	return &models.UploadDocumentResponse{
		DocID:  docID,
		DocURL: docURL,
	}, nil
}

func (s *DocumentService) ListDocuments(userID int64) ([]models.Document, error) {
	if _, err := s.userRepo.GetUserByID(userID); err != nil {
		return nil, err
	}
	return s.documentRepo.ListDocumentsByUserID(userID)
}

func (s *DocumentService) DeleteDocument(id int64) error {
	return s.documentRepo.DeleteDocument(id)
}

func (s *DocumentService) publish(ctx context.Context, ev event.KYCEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.PublishEvent(ctx, ev); err != nil {
		log.Printf("failed to publish %s event for record %d: %v", ev.EventType, ev.RecordID, err)
	}
}
