package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"superheroes/database"
	"superheroes/serializer"
)

type HeroHandler struct {
	store  Store
	logger *slog.Logger
}

func NewHeroHandler(store Store, logger *slog.Logger) *HeroHandler {
	return &HeroHandler{
		store:  store,
		logger: logger,
	}
}

// List returns every hero without its associations.
func (h *HeroHandler) List(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.store.ListHeroes(r.Context())
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, serializer.Heroes(heroes, "id", "name", "super_name"))
}

func (h *HeroHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Hero not found")
		return
	}

	hero, err := h.store.GetHero(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Hero not found")
		return
	}
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, serializer.Hero(hero))
}
