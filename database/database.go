package database

import (
	"fmt"
	"strings"

	"superheroes/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Options controls how Open connects to the database.
type Options struct {
	// DSN is either a Postgres URL / keyword string or a SQLite path,
	// optionally prefixed with sqlite:// or file:.
	DSN string
	// LogLevel is one of silent, error, warn or info.
	LogLevel string
}

// Open connects to the database named by opts.DSN and migrates the schema.
func Open(opts Options) (*gorm.DB, error) {
	dialector, err := dialectorFor(opts.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(parseLogLevel(opts.LogLevel)),
		NamingStrategy: NamingStrategy(),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the heroes, powers and hero_powers tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Hero{}, &models.Power{}, &models.HeroPower{})
}

func dialectorFor(dsn string) (gorm.Dialector, error) {
	switch {
	case dsn == "":
		return nil, fmt.Errorf("database url is empty")
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"), strings.Contains(dsn, "host="):
		return postgres.Open(dsn), nil
	default:
		return sqlite.Open(sqliteDSN(dsn)), nil
	}
}

// sqliteDSN normalizes a SQLite location into a file: URI with foreign keys
// enabled. Cascading deletes depend on the pragma.
func sqliteDSN(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "sqlite:///")
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

type namingStrategy struct {
	schema.NamingStrategy
}

// NamingStrategy names foreign keys fk_<table>_<column>_<referenced_table>.
func NamingStrategy() schema.Namer {
	return namingStrategy{}
}

func (ns namingStrategy) RelationshipFKName(rel schema.Relationship) string {
	if len(rel.References) == 0 {
		return ns.NamingStrategy.RelationshipFKName(rel)
	}
	ref := rel.References[0]
	if ref.ForeignKey == nil || ref.PrimaryKey == nil || ref.ForeignKey.Schema == nil || ref.PrimaryKey.Schema == nil {
		return ns.NamingStrategy.RelationshipFKName(rel)
	}
	return fmt.Sprintf("fk_%s_%s_%s", ref.ForeignKey.Schema.Table, ref.ForeignKey.DBName, ref.PrimaryKey.Schema.Table)
}
