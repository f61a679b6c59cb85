package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"superheroes/database"
	"superheroes/models"
	"superheroes/serializer"
)

type HeroPowerHandler struct {
	store  Store
	logger *slog.Logger
}

func NewHeroPowerHandler(store Store, logger *slog.Logger) *HeroPowerHandler {
	return &HeroPowerHandler{
		store:  store,
		logger: logger,
	}
}

type createHeroPowerRequest struct {
	Strength string `json:"strength"`
	HeroID   uint   `json:"hero_id" validate:"required"`
	PowerID  uint   `json:"power_id" validate:"required"`
}

func (h *HeroPowerHandler) List(w http.ResponseWriter, r *http.Request) {
	hps, err := h.store.ListHeroPowers(r.Context())
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, serializer.HeroPowers(hps))
}

// Create assigns a power to a hero. The hero and power must exist, the
// strength must be valid and the pair must not be assigned yet; each failure
// is answered with 400 and an errors list.
func (h *HeroPowerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createHeroPowerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, msgValidation)
		return
	}

	ctx := r.Context()

	hero, err := h.store.GetHero(ctx, req.HeroID)
	if errors.Is(err, database.ErrNotFound) {
		writeErrors(w, http.StatusBadRequest, "Hero not found")
		return
	}
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}

	power, err := h.store.GetPower(ctx, req.PowerID)
	if errors.Is(err, database.ErrNotFound) {
		writeErrors(w, http.StatusBadRequest, "Power not found")
		return
	}
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}

	hp := &models.HeroPower{HeroID: hero.ID, PowerID: power.ID}
	if err := hp.SetStrength(req.Strength); err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}

	_, err = h.store.FindHeroPower(ctx, hero.ID, power.ID)
	if err == nil {
		writeErrors(w, http.StatusBadRequest, msgConflict)
		return
	}
	if !errors.Is(err, database.ErrNotFound) {
		writeFailure(w, r, h.logger, err)
		return
	}

	if err := h.store.CreateHeroPower(ctx, hp); err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "power assigned",
		"hero_power_id", hp.ID,
		"hero_id", hp.HeroID,
		"power_id", hp.PowerID,
		"strength", hp.Strength,
	)
	writeJSON(w, http.StatusCreated, serializer.HeroPower(hp))
}
