package controllers

import (
	"net/http"

	"github.com/aurumjoias/aurum-backend/api/responses"
	"github.com/aurumjoias/aurum-backend/api/validators"
	contactsvc "github.com/aurumjoias/aurum-backend/internal/contact"
	pkgerrors "github.com/aurumjoias/aurum-backend/pkg/errors"
	"github.com/aurumjoias/aurum-backend/pkg/logger"
)

type contactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ContactCreate stores a contact form submission.
func ContactCreate(svc contactsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}

		var payload contactMessageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message, err := svc.CreateMessage(r.Context(), contactsvc.CreateMessageInput{
			Name:    payload.Name,
			Email:   payload.Email,
			Subject: payload.Subject,
			Message: payload.Message,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, message)
	}
}
