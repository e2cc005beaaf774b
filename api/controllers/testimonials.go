package controllers

import (
	"net/http"

	"github.com/aurumjoias/aurum-backend/api/responses"
	testimonialsvc "github.com/aurumjoias/aurum-backend/internal/testimonials"
	pkgerrors "github.com/aurumjoias/aurum-backend/pkg/errors"
	"github.com/aurumjoias/aurum-backend/pkg/logger"
)

// TestimonialsList returns the customer testimonials shown on the storefront.
func TestimonialsList(svc testimonialsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "testimonials service unavailable"))
			return
		}

		testimonials, err := svc.ListTestimonials(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, testimonials)
	}
}
