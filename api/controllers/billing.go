package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aurumjoias/aurum-backend/api/responses"
	billingsvc "github.com/aurumjoias/aurum-backend/internal/billing"
	pkgerrors "github.com/aurumjoias/aurum-backend/pkg/errors"
	"github.com/aurumjoias/aurum-backend/pkg/logger"
)

// BillingStatus reports whether the invoicing integration is configured and
// reachable. Public: it never leaks credentials, only availability. Answers
// 503 whenever the integration cannot take invoices so monitors can key off
// the status code alone.
func BillingStatus(svc billingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "billing service unavailable"))
			return
		}

		status := svc.Status(r.Context())
		code := http.StatusOK
		if !status.Configured || !status.Reachable {
			code = http.StatusServiceUnavailable
		}
		responses.WriteSuccessStatus(w, code, status)
	}
}

// BillingCreateInvoice issues an invoice for one of the caller's orders.
func BillingCreateInvoice(svc billingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "billing service unavailable"))
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := parsePathUUID(chi.URLParam(r, "orderId"), "order id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		invoice, err := svc.CreateInvoice(r.Context(), userID, orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, invoice)
	}
}
