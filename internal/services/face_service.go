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

type IFaceService interface {
	UploadFace(ctx context.Context, userID int64, file io.Reader, header *multipart.FileHeader) (*models.UploadFaceResponse, error)
	ListFaces(userID int64) ([]models.Face, error)
	DeleteFace(id int64) error
}

type FaceService struct {
	userRepo       repository.IUserRepository
	faceRepo       repository.IFaceRepository
	storage        ObjectStorage
	eventPublisher EventPublisher
}

func NewFaceService(userRepo repository.IUserRepository, faceRepo repository.IFaceRepository, storage ObjectStorage, eventPublisher EventPublisher) IFaceService {
	return &FaceService{
		userRepo:       userRepo,
		faceRepo:       faceRepo,
		storage:        storage,
		eventPublisher: eventPublisher,
	}
}

func (s *FaceService) UploadFace(ctx context.Context, userID int64, file io.Reader, header *multipart.FileHeader) (*models.UploadFaceResponse, error) {
	if _, err := s.userRepo.GetUserByID(userID); err != nil {
		return nil, err
	}

	filename := utils.SanitizeFilename(header.Filename)
	objectName := fmt.Sprintf("faces/%d/%s", userID, filename)
	contentType := header.Header.Get("Content-Type")

	faceURL, err := s.storage.Upload(ctx, objectName, file, header.Size, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload face image: %w", err)
	}

	faceID, err := s.faceRepo.CreateFace(userID, faceURL)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.KYCEvent{
		ID:        uuid.NewString(),
		EventType: event.FaceUploaded,
		UserID:    userID,
		RecordID:  faceID,
		URL:       faceURL,
	})

	return &models.UploadFaceResponse{
		FaceID:  faceID,
		FaceURL: faceURL,
	}, nil
}

func (s *FaceService) ListFaces(userID int64) ([]models.Face, error) {
	if _, err := s.userRepo.GetUserByID(userID); err != nil {
		return nil, err
	}
	return s.faceRepo.ListFacesByUserID(userID)
}

func (s *FaceService) DeleteFace(id int64) error {
	return s.faceRepo.DeleteFace(id)
}

func (s *FaceService) publish(ctx context.Context, ev event.KYCEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.PublishEvent(ctx, ev); err != nil {
		log.Printf("failed to publish %s event for record %d: %v", ev.EventType, ev.RecordID, err)
	}
}
