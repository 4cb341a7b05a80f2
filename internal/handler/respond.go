package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

// actorRoleHeader names the header carrying the caller's role. There is
// no real authentication in the reference system; this is a declared
// role, nothing more.
const actorRoleHeader = "X-Actor-Role"

func actorRole(r *http.Request) models.Role {
	return models.Role(r.Header.Get(actorRoleHeader))
}

// statusForError maps the sentinel taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidFormat),
		errors.Is(err, apperrors.ErrInvalidPin),
		errors.Is(err, apperrors.ErrPaymentProofRequired):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicateID),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrWrongPin):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func writeJSONResponse(w http.ResponseWriter, log *logger.Logger, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Failed to encode JSON response", "error", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, log *logger.Logger, err error) {
	statusCode := statusForError(err)
	message := err.Error()
	if statusCode == http.StatusInternalServerError {
		// Internal detail stays in the log, not on the wire.
		message = "internal server error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encodeErr := json.NewEncoder(w).Encode(map[string]string{"error": message}); encodeErr != nil {
		log.Error("Failed to encode error response", "error", encodeErr)
	}
}

func parseRequestBody(r *http.Request, target interface{}) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	return nil
}
