package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aurumjoias/aurum-backend/api/middleware"
	billingsvc "github.com/aurumjoias/aurum-backend/internal/billing"
	"github.com/aurumjoias/aurum-backend/pkg/logger"
)

type stubBillingService struct {
	status  billingsvc.StatusDTO
	invoice billingsvc.InvoiceDTO
	err     error
}

func (s stubBillingService) Status(ctx context.Context) billingsvc.StatusDTO {
	return s.status
}

func (s stubBillingService) CreateInvoice(ctx context.Context, userID, orderID uuid.UUID) (billingsvc.InvoiceDTO, error) {
	if s.err != nil {
		return billingsvc.InvoiceDTO{}, s.err
	}
	return s.invoice, nil
}

func TestBillingStatusNotConfigured(t *testing.T) {
	handler := BillingStatus(stubBillingService{
		status: billingsvc.StatusDTO{Message: "billing service is not configured"},
	}, logger.New(logger.Options{Output: io.Discard}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/status", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when unconfigured, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"configured":false`) {
		t.Fatalf("expected configured=false in body, got %s", rec.Body.String())
	}
}

func TestBillingStatusUnreachable(t *testing.T) {
	handler := BillingStatus(stubBillingService{
		status: billingsvc.StatusDTO{Configured: true, Message: "billing service is unreachable"},
	}, logger.New(logger.Options{Output: io.Discard}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/status", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when unreachable, got %d", rec.Code)
	}
}

func TestBillingStatusAvailable(t *testing.T) {
	handler := BillingStatus(stubBillingService{
		status: billingsvc.StatusDTO{Configured: true, Reachable: true, Message: "billing service is available"},
	}, logger.New(logger.Options{Output: io.Discard}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/status", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when available, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"reachable":true`) {
		t.Fatalf("expected reachable=true in body, got %s", rec.Body.String())
	}
}

func TestBillingCreateInvoiceReturnsOK(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/billing/invoice/{orderId}", BillingCreateInvoice(stubBillingService{
		invoice: billingsvc.InvoiceDTO{InvoiceNumber: "FT 2025/7"},
	}, logger.New(logger.Options{Output: io.Discard})))

	req := httptest.NewRequest(http.MethodPost, "/billing/invoice/"+uuid.NewString(), nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on invoice creation, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "FT 2025/7") {
		t.Fatalf("expected invoice number in body, got %s", rec.Body.String())
	}
}
