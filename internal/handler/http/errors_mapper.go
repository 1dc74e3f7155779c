package http

import (
	"net/http"

	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/service"
	"github.com/MKhiriev/go-invoice/internal/utils"
	"github.com/MKhiriev/go-invoice/models"
)

var errorStatusMap = map[service.ErrorKind]int{
	service.KindValidation: http.StatusBadRequest,
	service.KindConflict:   http.StatusConflict,
	service.KindAuth:       http.StatusUnauthorized,
	service.KindNotFound:   http.StatusNotFound,
	service.KindForbidden:  http.StatusForbidden,
	service.KindStorage:    http.StatusInternalServerError,
}

// statusFromError returns the HTTP status for a service error. Anything that
// is not a service error is an internal failure.
func statusFromError(err error) int {
	if status, ok := errorStatusMap[service.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeServiceError renders err as an [models.ErrorResponse]. Only the
// caller-safe reason is exposed; the cause is logged.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	kind := service.KindOf(err)
	if kind == "" {
		kind = service.KindStorage
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeError(w, status, kind, service.ReasonOf(err))
}

func writeError(w http.ResponseWriter, status int, kind service.ErrorKind, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Kind: string(kind), Message: message}, status)
}
