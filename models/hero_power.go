package models

import (
	"gorm.io/gorm"
)

type Strength string

const (
	StrengthStrong  Strength = "Strong"
	StrengthWeak    Strength = "Weak"
	StrengthAverage Strength = "Average"
)

// Strengths lists the accepted strength values in display order.
var Strengths = []Strength{StrengthStrong, StrengthWeak, StrengthAverage}

func (s Strength) IsValid() bool {
	switch s {
	case StrengthStrong, StrengthWeak, StrengthAverage:
		return true
	}
	return false
}

// HeroPower associates a hero with a power. A hero can hold a given power
// at most once.
type HeroPower struct {
	ID       uint     `gorm:"primaryKey"`
	Strength Strength `gorm:"not null;size:20"`
	HeroID   uint     `gorm:"not null;uniqueIndex:idx_hero_powers_hero_power"`
	PowerID  uint     `gorm:"not null;uniqueIndex:idx_hero_powers_hero_power;index"`
	Hero     *Hero
	Power    *Power
}

func (HeroPower) TableName() string {
	return "hero_powers"
}

// SetStrength assigns the strength, leaving the association untouched when
// the value is not one of Strengths.
func (hp *HeroPower) SetStrength(strength string) error {
	s := Strength(strength)
	if err := validateStrength(s); err != nil {
		return err
	}
	hp.Strength = s
	return nil
}

func (hp *HeroPower) Validate() error {
	return validateStrength(hp.Strength)
}

func (hp *HeroPower) BeforeSave(tx *gorm.DB) error {
	return hp.Validate()
}

func validateStrength(s Strength) error {
	if !s.IsValid() {
		return &ValidationError{
			Field:   "strength",
			Message: "must be one of: 'Strong', 'Weak', 'Average'",
		}
	}
	return nil
}
