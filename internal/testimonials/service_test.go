package testimonials

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	pkgerrors "github.com/aurumjoias/aurum-backend/pkg/errors"
	"github.com/aurumjoias/aurum-backend/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubTestimonialsRepo struct {
	rows []models.Testimonial
	err  error
}

func (s *stubTestimonialsRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubTestimonialsRepo) List(ctx context.Context) ([]models.Testimonial, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{Output: io.Discard})
}

func TestListTestimonials(t *testing.T) {
	initials := "MS"
	repo := &stubTestimonialsRepo{rows: []models.Testimonial{
		{ID: uuid.New(), Name: "Maria Silva", Initials: &initials, Content: "Peças lindíssimas.", Rating: 5},
		{ID: uuid.New(), Name: "Rui Costa", Content: "Entrega rápida.", Rating: 4},
	}}

	svc, err := NewService(repo, testLogger())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dtos, err := svc.ListTestimonials(context.Background())
	if err != nil {
		t.Fatalf("list testimonials: %v", err)
	}
	if len(dtos) != 2 {
		t.Fatalf("expected 2 testimonials, got %d", len(dtos))
	}
	if dtos[0].Name != "Maria Silva" || dtos[0].Rating != 5 {
		t.Fatalf("unexpected first testimonial %+v", dtos[0])
	}
	if dtos[0].Initials == nil || *dtos[0].Initials != "MS" {
		t.Fatal("initials not carried through")
	}
}

func TestListTestimonialsEmpty(t *testing.T) {
	svc, err := NewService(&stubTestimonialsRepo{}, testLogger())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dtos, err := svc.ListTestimonials(context.Background())
	if err != nil {
		t.Fatalf("list testimonials: %v", err)
	}
	if dtos == nil || len(dtos) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", dtos)
	}
}

func TestListTestimonialsRepoFailure(t *testing.T) {
	svc, err := NewService(&stubTestimonialsRepo{err: errors.New("connection reset")}, testLogger())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.ListTestimonials(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
