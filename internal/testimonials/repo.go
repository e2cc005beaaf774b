package testimonials

import (
	"context"

	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository provides read access to stored testimonials.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context) ([]models.Testimonial, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) List(ctx context.Context) ([]models.Testimonial, error) {
	var rows []models.Testimonial
	err := r.db.WithContext(ctx).
		Order("rating DESC, name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
