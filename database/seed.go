package database

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"superheroes/models"
)

var seedHeroes = []models.Hero{
	{Name: "Kamala Khan", SuperName: "Ms. Marvel"},
	{Name: "Doreen Green", SuperName: "Squirrel Girl"},
	{Name: "Gwen Stacy", SuperName: "Spider-Gwen"},
	{Name: "Janet Van Dyne", SuperName: "The Wasp"},
	{Name: "Wanda Maximoff", SuperName: "Scarlet Witch"},
	{Name: "Carol Danvers", SuperName: "Captain Marvel"},
	{Name: "Jean Grey", SuperName: "Dark Phoenix"},
	{Name: "Ororo Munroe", SuperName: "Storm"},
	{Name: "Kitty Pryde", SuperName: "Shadowcat"},
	{Name: "Elektra Natchios", SuperName: "Elektra"},
}

var seedPowers = []models.Power{
	{Name: "super strength", Description: "gives the wielder super-human strengths"},
	{Name: "flight", Description: "gives the wielder the ability to fly through the skies at supersonic speed"},
	{Name: "super human senses", Description: "allows the wielder to use her senses at a super-human level"},
	{Name: "elasticity", Description: "can stretch the human body to extreme lengths"},
}

// SeedResult counts the rows written by Seed.
type SeedResult struct {
	Heroes     int
	Powers     int
	HeroPowers int
}

// Seed fills an empty database with demo heroes, powers and associations.
// When reset is true existing rows are removed first; otherwise a database
// that already holds heroes is left alone.
func Seed(ctx context.Context, store *Store, reset bool) (SeedResult, error) {
	var result SeedResult
	db := store.DB().WithContext(ctx)

	if reset {
		if err := clearTables(db); err != nil {
			return result, err
		}
		slog.Info("cleared existing data")
	} else {
		var count int64
		if err := db.Model(&models.Hero{}).Count(&count).Error; err != nil {
			return result, translate("count heroes", err)
		}
		if count > 0 {
			slog.Info("database already seeded", "heroes", count)
			return result, nil
		}
	}

	heroes := make([]models.Hero, len(seedHeroes))
	copy(heroes, seedHeroes)
	for i := range heroes {
		if err := store.CreateHero(ctx, &heroes[i]); err != nil {
			return result, fmt.Errorf("create hero %q: %w", heroes[i].Name, err)
		}
		result.Heroes++
	}

	powers := make([]models.Power, len(seedPowers))
	copy(powers, seedPowers)
	for i := range powers {
		if err := store.CreatePower(ctx, &powers[i]); err != nil {
			return result, fmt.Errorf("create power %q: %w", powers[i].Name, err)
		}
		result.Powers++
	}

	// Each hero gets one or two powers, cycling through the strengths.
	for i, hero := range heroes {
		picks := []int{i % len(powers)}
		if i%3 == 0 {
			picks = append(picks, (i+1)%len(powers))
		}
		for j, p := range picks {
			hp := models.HeroPower{HeroID: hero.ID, PowerID: powers[p].ID}
			if err := hp.SetStrength(string(models.Strengths[(i+j)%len(models.Strengths)])); err != nil {
				return result, err
			}
			if err := store.CreateHeroPower(ctx, &hp); err != nil {
				return result, fmt.Errorf("assign power %q to %q: %w", powers[p].Name, hero.Name, err)
			}
			result.HeroPowers++
		}
	}

	slog.Info("seeded database", "heroes", result.Heroes, "powers", result.Powers, "hero_powers", result.HeroPowers)
	return result, nil
}

func clearTables(db *gorm.DB) error {
	for _, model := range []any{&models.HeroPower{}, &models.Hero{}, &models.Power{}} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return translate("clear", err)
		}
	}
	return nil
}
