package contact

import (
	"time"

	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	"github.com/google/uuid"
)

// CreateMessageInput carries a contact form submission into the service.
type CreateMessageInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactMessageDTO is returned after a submission has been stored.
type ContactMessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func toContactMessageDTO(model *models.ContactMessage) ContactMessageDTO {
	return ContactMessageDTO{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Subject:   model.Subject,
		Message:   model.Message,
		CreatedAt: model.CreatedAt,
	}
}
