package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"superheroes/models"
)

var (
	// ErrNotFound is returned when no row matches the requested key.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a hero already holds the power being assigned.
	ErrConflict = errors.New("hero already has this power")
)

// StorageError wraps a failure of the underlying database.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

const pgUniqueViolation = "23505"

// translate maps driver and ORM errors onto the package's error values.
// Validation errors raised by model hooks pass through untouched.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}

	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrConflict
	}

	return &StorageError{Op: op, Err: err}
}
