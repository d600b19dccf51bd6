package handlers

import (
	"errors"
	"net/http"

	"taller_moto/internal/infrastructure/workshopapi"
	"taller_moto/pkg"
)

// mapUpstreamError classifies failures coming back from the workshop
// backend. A rejection keeps the backend's own message so the UI banner can
// show it; transport failures get a generic one.
func mapUpstreamError(err error) *pkg.AppError {
	var backendErr *workshopapi.BackendError
	if errors.As(err, &backendErr) {
		msg := backendErr.BackendMessage()
		if msg == "" {
			msg = "The workshop service rejected the request"
		}
		return pkg.NewDomainError("UPSTREAM_REJECTED", msg, err, http.StatusBadGateway)
	}

	var netErr *workshopapi.NetworkError
	if errors.As(err, &netErr) {
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "The workshop service is unreachable", err, http.StatusBadGateway)
	}

	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
