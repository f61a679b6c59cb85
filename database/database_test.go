package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"superheroes/models"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "app.db", want: "file:app.db?_pragma=foreign_keys(1)"},
		{in: "sqlite:///app.db", want: "file:app.db?_pragma=foreign_keys(1)"},
		{in: "sqlite:///tmp/app.db", want: "file:tmp/app.db?_pragma=foreign_keys(1)"},
		{in: "file:app.db?cache=shared", want: "file:app.db?cache=shared&_pragma=foreign_keys(1)"},
		{in: "file:app.db?_pragma=foreign_keys(0)", want: "file:app.db?_pragma=foreign_keys(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.in))
		})
	}
}

func TestDialectorFor(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "postgres://postgres@localhost:5432/superheroes", want: "postgres"},
		{dsn: "postgresql://postgres@localhost/superheroes", want: "postgres"},
		{dsn: "host=localhost user=postgres dbname=superheroes", want: "postgres"},
		{dsn: "app.db", want: "sqlite"},
		{dsn: "sqlite:///app.db", want: "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			d, err := dialectorFor(tt.dsn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name())
		})
	}

	_, err := dialectorFor("")
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseLogLevel("silent"))
	assert.Equal(t, logger.Error, parseLogLevel("ERROR"))
	assert.Equal(t, logger.Info, parseLogLevel("info"))
	assert.Equal(t, logger.Warn, parseLogLevel("warn"))
	assert.Equal(t, logger.Warn, parseLogLevel(""))
}

func TestForeignKeyNames(t *testing.T) {
	cache := &sync.Map{}

	tests := []struct {
		model    any
		relation string
		want     string
	}{
		{model: &models.Hero{}, relation: "HeroPowers", want: "fk_hero_powers_hero_id_heroes"},
		{model: &models.Power{}, relation: "HeroPowers", want: "fk_hero_powers_power_id_powers"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s, err := schema.Parse(tt.model, cache, NamingStrategy())
			require.NoError(t, err)
			rel, ok := s.Relationships.Relations[tt.relation]
			require.True(t, ok)
			constraint := rel.ParseConstraint()
			require.NotNil(t, constraint)
			assert.Equal(t, tt.want, constraint.Name)
			assert.Equal(t, "CASCADE", constraint.OnDelete)
		})
	}
}

func TestTranslate(t *testing.T) {
	verr := &models.ValidationError{Field: "strength", Message: "bad"}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "record not found", err: gorm.ErrRecordNotFound, want: ErrNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), want: ErrNotFound},
		{name: "duplicated key", err: gorm.ErrDuplicatedKey, want: ErrConflict},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: "23505"}, want: ErrConflict},
		{name: "conflict passes through", err: ErrConflict, want: ErrConflict},
		{name: "validation passes through", err: verr, want: verr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate("op", tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTranslateWrapsStorageErrors(t *testing.T) {
	cause := errors.New("disk full")

	err := translate("commit", cause)
	var serr *StorageError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "commit", serr.Op)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "storage error during commit: disk full", err.Error())
}

func TestSeed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	result, err := Seed(ctx, s, false)
	require.NoError(t, err)
	assert.Equal(t, len(seedHeroes), result.Heroes)
	assert.Equal(t, len(seedPowers), result.Powers)
	assert.Equal(t, 14, result.HeroPowers)

	// A populated database is left alone.
	again, err := Seed(ctx, s, false)
	require.NoError(t, err)
	assert.Zero(t, again.Heroes)

	heroes, err := s.ListHeroes(ctx)
	require.NoError(t, err)
	assert.Len(t, heroes, len(seedHeroes))

	reset, err := Seed(ctx, s, true)
	require.NoError(t, err)
	assert.Equal(t, len(seedHeroes), reset.Heroes)

	heroes, err = s.ListHeroes(ctx)
	require.NoError(t, err)
	assert.Len(t, heroes, len(seedHeroes))

	hps, err := s.ListHeroPowers(ctx)
	require.NoError(t, err)
	assert.Len(t, hps, 14)
	for _, hp := range hps {
		assert.True(t, hp.Strength.IsValid())
	}
}
