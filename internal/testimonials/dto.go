package testimonials

import (
	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	"github.com/google/uuid"
)

// TestimonialDTO is the public shape of a customer testimonial.
type TestimonialDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Initials      *string   `json:"initials,omitempty"`
	CustomerSince *string   `json:"customer_since,omitempty"`
	Content       string    `json:"content"`
	Rating        int       `json:"rating"`
}

func toTestimonialDTO(model models.Testimonial) TestimonialDTO {
	return TestimonialDTO{
		ID:            model.ID,
		Name:          model.Name,
		Initials:      model.Initials,
		CustomerSince: model.CustomerSince,
		Content:       model.Content,
		Rating:        model.Rating,
	}
}

func toTestimonialDTOs(rows []models.Testimonial) []TestimonialDTO {
	dtos := make([]TestimonialDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, toTestimonialDTO(row))
	}
	return dtos
}
