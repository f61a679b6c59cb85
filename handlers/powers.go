package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"superheroes/database"
	"superheroes/serializer"
)

type PowerHandler struct {
	store  Store
	logger *slog.Logger
}

func NewPowerHandler(store Store, logger *slog.Logger) *PowerHandler {
	return &PowerHandler{
		store:  store,
		logger: logger,
	}
}

type updatePowerRequest struct {
	Description *string `json:"description" validate:"required"`
}

func (h *PowerHandler) List(w http.ResponseWriter, r *http.Request) {
	powers, err := h.store.ListPowers(r.Context())
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, serializer.Powers(powers))
}

func (h *PowerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Power not found")
		return
	}

	power, err := h.store.GetPower(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Power not found")
		return
	}
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, serializer.Power(power))
}

// Update applies a partial update. Only the description can change, and it
// must satisfy the model's length rule.
func (h *PowerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Power not found")
		return
	}

	power, err := h.store.GetPower(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Power not found")
		return
	}
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}

	var req updatePowerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, msgValidation)
		return
	}

	if err := power.SetDescription(*req.Description); err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	if err := h.store.UpdatePower(r.Context(), power); err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, serializer.Power(power))
}
