package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tripvista/travel-api/internal/dto"
	"github.com/tripvista/travel-api/internal/models"
	"github.com/tripvista/travel-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound    = errors.New("contact message not found")
	ErrInvalidContactData = errors.New("invalid contact data")
)

type ContactService interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (*models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*models.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Create(ctx context.Context, req dto.CreateContactRequest) (*models.ContactMessage, error) {
	if req.Name == "" || req.Message == "" {
		return nil, fmt.Errorf("%w: name and message are required", ErrInvalidContactData)
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return nil, ErrInvalidEmail
	}

	msg := &models.ContactMessage{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactUnread,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return msg, nil
}

func (s *contactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repo.FindAll(ctx)
}

func (s *contactService) MarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	if msg.Status != models.ContactRead {
		if err := s.repo.UpdateStatus(ctx, id, models.ContactRead); err != nil {
			return nil, fmt.Errorf("mark contact read: %w", err)
		}
		msg.Status = models.ContactRead
	}
	return msg, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
