package models

import (
	"fmt"
	"unicode/utf8"

	"gorm.io/gorm"
)

// MinDescriptionLength is the minimum number of characters in a power description.
const MinDescriptionLength = 20

type Power struct {
	ID          uint        `gorm:"primaryKey"`
	Name        string      `gorm:"size:100"`
	Description string      `gorm:"not null"`
	HeroPowers  []HeroPower `gorm:"foreignKey:PowerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Power) TableName() string {
	return "powers"
}

// SetDescription replaces the description, leaving the power untouched when
// the new value is too short.
func (p *Power) SetDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	p.Description = description
	return nil
}

func (p *Power) Validate() error {
	return validateDescription(p.Description)
}

// BeforeSave runs on every create and update issued through gorm.
func (p *Power) BeforeSave(tx *gorm.DB) error {
	return p.Validate()
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) < MinDescriptionLength {
		return &ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("must be at least %d characters long", MinDescriptionLength),
		}
	}
	return nil
}
