package contact

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	pkgerrors "github.com/aurumjoias/aurum-backend/pkg/errors"
	"github.com/aurumjoias/aurum-backend/pkg/logger"
)

// Service accepts contact form submissions from the public storefront.
type Service interface {
	CreateMessage(ctx context.Context, input CreateMessageInput) (ContactMessageDTO, error)
}

type service struct {
	repo   Repository
	logger *logger.Logger
}

func NewService(repo Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contact repository is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{repo: repo, logger: logg}, nil
}

func (s *service) CreateMessage(ctx context.Context, input CreateMessageInput) (ContactMessageDTO, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	subject := strings.TrimSpace(input.Subject)
	message := strings.TrimSpace(input.Message)

	if name == "" {
		return ContactMessageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ContactMessageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "a valid email address is required")
	}
	if subject == "" {
		return ContactMessageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "subject is required")
	}
	if message == "" {
		return ContactMessageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "message is required")
	}

	stored, err := s.repo.Create(ctx, &models.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		return ContactMessageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store contact message")
	}

	ctx = s.logger.WithField(ctx, "contact_message_id", stored.ID.String())
	s.logger.Info(ctx, "contact message received")

	return toContactMessageDTO(stored), nil
}
