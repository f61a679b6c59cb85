package handlers

import (
	"context"

	"superheroes/models"
)

// Store is the persistence gateway the handlers depend on. *database.Store
// implements it.
type Store interface {
	Ping(ctx context.Context) error

	ListHeroes(ctx context.Context) ([]models.Hero, error)
	GetHero(ctx context.Context, id uint) (*models.Hero, error)

	ListPowers(ctx context.Context) ([]models.Power, error)
	GetPower(ctx context.Context, id uint) (*models.Power, error)
	UpdatePower(ctx context.Context, power *models.Power) error

	ListHeroPowers(ctx context.Context) ([]models.HeroPower, error)
	FindHeroPower(ctx context.Context, heroID, powerID uint) (*models.HeroPower, error)
	CreateHeroPower(ctx context.Context, hp *models.HeroPower) error
}
