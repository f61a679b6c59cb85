package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"superheroes/database"
	"superheroes/middleware"
	"superheroes/models"
)

const (
	msgValidation     = "validation errors"
	msgConflict       = "This hero already has this power."
	msgInternal       = "internal server error"
	maxRequestBodyLen = 1 << 20
)

var validate = validator.New()

// writeJSON encodes v with two-space indentation.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"errors":["` + msgInternal + `"]}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// writeError answers with {"error": message}, used for lookups by URL id.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeErrors answers with {"errors": [...]}, used for rejected writes.
func writeErrors(w http.ResponseWriter, status int, messages ...string) {
	writeJSON(w, status, map[string][]string{"errors": messages})
}

// writeFailure converts an error from the model or the store into a response.
// Storage failures are logged and reported without detail.
func writeFailure(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeErrors(w, http.StatusBadRequest, msgValidation)
	case errors.Is(err, database.ErrConflict):
		writeErrors(w, http.StatusBadRequest, msgConflict)
	default:
		logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
		writeErrors(w, http.StatusInternalServerError, msgInternal)
	}
}

// parseID reads the {id} URL parameter. Values that do not fit a row id are
// reported as not ok.
func parseID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// decodeJSON reads the request body into v and runs its validate tags.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyLen)).Decode(v); err != nil {
		return err
	}
	return validate.Struct(v)
}
