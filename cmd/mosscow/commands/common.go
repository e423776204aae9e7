// Package commands provides CLI command handlers for mosscow.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/erraggy/mosscow/internal/config"
	"github.com/erraggy/mosscow/internal/logging"
	"github.com/erraggy/mosscow/internal/store"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// Writef writes formatted output to the writer, reporting write failures
// on stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// environment is what every database-backed command starts from.
type environment struct {
	cfg *config.Config
	log *logrus.Logger
	db  *gorm.DB
	dbc config.Database
}

// openEnvironment loads the configuration, opens the database selected
// by MOSSCOW_ENV and migrates it.
func openEnvironment() (*environment, error) {
	cfg := config.Load()
	log := logging.New(cfg.Env, cfg.LogLevel, cfg.LogFormat)

	dbc, err := cfg.Database()
	if err != nil {
		return nil, err
	}
	db, err := store.Open(dbc, log)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(db); err != nil {
		closeDB(db)
		return nil, err
	}
	return &environment{cfg: cfg, log: log, db: db, dbc: dbc}, nil
}

func (e *environment) close() { closeDB(e.db) }

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
