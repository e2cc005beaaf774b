package testimonials

import (
	"context"
	"fmt"

	pkgerrors "github.com/aurumjoias/aurum-backend/pkg/errors"
	"github.com/aurumjoias/aurum-backend/pkg/logger"
)

// Service lists customer testimonials for the storefront.
type Service interface {
	ListTestimonials(ctx context.Context) ([]TestimonialDTO, error)
}

type service struct {
	repo   Repository
	logger *logger.Logger
}

func NewService(repo Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("testimonials repository is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{repo: repo, logger: logg}, nil
}

func (s *service) ListTestimonials(ctx context.Context) ([]TestimonialDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list testimonials")
	}
	return toTestimonialDTOs(rows), nil
}
