package services

import (
	"context"
	"log"

	"kyc-service/internal/event"
	"kyc-service/internal/models"
	"kyc-service/internal/repository"

	"github.com/google/uuid"
)

type IUserService interface {
	CreateUser(req *models.CreateUserRequest) (int64, error)
	GetUserByID(id int64) (*models.User, error)
	UpdateUser(id int64, req *models.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id int64) error
}

type UserService struct {
	userRepo       repository.IUserRepository
	eventPublisher EventPublisher
}

func NewUserService(userRepo repository.IUserRepository, eventPublisher EventPublisher) IUserService {
	return &UserService{
		userRepo:       userRepo,
		eventPublisher: eventPublisher,
	}
}

func (s *UserService) CreateUser(req *models.CreateUserRequest) (int64, error) {
	return s.userRepo.CreateUser(req)
}

func (s *UserService) GetUserByID(id int64) (*models.User, error) {
	return s.userRepo.GetUserByID(id)
}

func (s *UserService) UpdateUser(id int64, req *models.UpdateUserRequest) error {
	return s.userRepo.UpdateUser(id, req)
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepo.DeleteUser(id); err != nil {
		return err
	}

	s.publish(ctx, event.KYCEvent{
		ID:        uuid.NewString(),
		EventType: event.UserDeleted,
		UserID:    id,
	})
	return nil
}

func (s *UserService) publish(ctx context.Context, ev event.KYCEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.PublishEvent(ctx, ev); err != nil {
		log.Printf("failed to publish %s event for user %d: %v", ev.EventType, ev.UserID, err)
	}
}
