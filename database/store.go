package database

import (
	"context"

	"gorm.io/gorm"

	"superheroes/models"
)

// Store is the persistence gateway for heroes, powers and their associations.
// Every method runs as its own unit of work.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for maintenance tasks such as seeding.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return translate("ping", err)
	}
	return translate("ping", sqlDB.PingContext(ctx))
}

func orderByID(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".id")
	}
}

func (s *Store) ListHeroes(ctx context.Context) ([]models.Hero, error) {
	var heroes []models.Hero
	err := s.db.WithContext(ctx).Order("id").Find(&heroes).Error
	return heroes, translate("list heroes", err)
}

// GetHero loads a hero together with its associations in insertion order.
func (s *Store) GetHero(ctx context.Context, id uint) (*models.Hero, error) {
	var hero models.Hero
	err := s.db.WithContext(ctx).
		Preload("HeroPowers", orderByID("hero_powers")).
		First(&hero, id).Error
	if err != nil {
		return nil, translate("get hero", err)
	}
	return &hero, nil
}

func (s *Store) CreateHero(ctx context.Context, hero *models.Hero) error {
	return translate("create hero", s.db.WithContext(ctx).Omit("HeroPowers").Create(hero).Error)
}

func (s *Store) ListPowers(ctx context.Context) ([]models.Power, error) {
	var powers []models.Power
	err := s.db.WithContext(ctx).Order("id").Find(&powers).Error
	return powers, translate("list powers", err)
}

func (s *Store) GetPower(ctx context.Context, id uint) (*models.Power, error) {
	var power models.Power
	if err := s.db.WithContext(ctx).First(&power, id).Error; err != nil {
		return nil, translate("get power", err)
	}
	return &power, nil
}

func (s *Store) CreatePower(ctx context.Context, power *models.Power) error {
	return translate("create power", s.db.WithContext(ctx).Omit("HeroPowers").Create(power).Error)
}

// UpdatePower persists the power's name and description. The model's save
// hook rejects an invalid description before anything is written.
func (s *Store) UpdatePower(ctx context.Context, power *models.Power) error {
	err := s.db.WithContext(ctx).
		Model(power).
		Select("Name", "Description").
		Updates(power).Error
	return translate("update power", err)
}

// ListHeroPowers loads every association with its hero (including the hero's
// own associations) and power.
func (s *Store) ListHeroPowers(ctx context.Context) ([]models.HeroPower, error) {
	var hps []models.HeroPower
	err := s.db.WithContext(ctx).
		Preload("Hero").
		Preload("Hero.HeroPowers", orderByID("hero_powers")).
		Preload("Power").
		Order("id").
		Find(&hps).Error
	return hps, translate("list hero powers", err)
}

// FindHeroPower returns the association between the given hero and power.
func (s *Store) FindHeroPower(ctx context.Context, heroID, powerID uint) (*models.HeroPower, error) {
	var hp models.HeroPower
	err := s.db.WithContext(ctx).
		Where("hero_id = ? AND power_id = ?", heroID, powerID).
		First(&hp).Error
	if err != nil {
		return nil, translate("find hero power", err)
	}
	return &hp, nil
}

// CreateHeroPower inserts hp unless the pair is already assigned, then loads
// its hero and power. The existence check and the insert share a transaction;
// concurrent duplicates are caught by the unique index and reported as
// ErrConflict as well.
func (s *Store) CreateHeroPower(ctx context.Context, hp *models.HeroPower) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.HeroPower{}).
			Where("hero_id = ? AND power_id = ?", hp.HeroID, hp.PowerID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}
		return tx.Omit("Hero", "Power").Create(hp).Error
	})
	if err != nil {
		return translate("create hero power", err)
	}

	var hero models.Hero
	if err := s.db.WithContext(ctx).
		Preload("HeroPowers", orderByID("hero_powers")).
		First(&hero, hp.HeroID).Error; err != nil {
		return translate("load hero", err)
	}
	var power models.Power
	if err := s.db.WithContext(ctx).First(&power, hp.PowerID).Error; err != nil {
		return translate("load power", err)
	}
	hp.Hero = &hero
	hp.Power = &power
	return nil
}
