package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/mosscow/todoerrors"
)

// Supported database adapters.
const (
	AdapterSQLite = "sqlite"
	AdapterMySQL  = "mysql"
)

// Database is one environment section of the database file.
type Database struct {
	Adapter  string `yaml:"adapter"`
	Database string `yaml:"database"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Encoding string `yaml:"encoding"`
	Pool     int    `yaml:"pool"`
}

// DefaultDatabase is used when no database file exists: an sqlite file
// named after the environment.
func DefaultDatabase(env string) Database {
	return Database{
		Adapter:  AdapterSQLite,
		Database: fmt.Sprintf("db/%s.sqlite3", env),
		Pool:     5,
	}
}

// LoadDatabase reads the section for env from the YAML file at path.
// A missing file yields DefaultDatabase(env). A file without a section
// for env is a *todoerrors.ConfigError.
func LoadDatabase(path, env string) (Database, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultDatabase(env), nil
	}
	if err != nil {
		return Database{}, &todoerrors.ConfigError{Option: "database_file", Value: path, Message: "cannot read file", Cause: err}
	}
	return ParseDatabase(data, env)
}

// ParseDatabase decodes a database file and returns the section for env.
func ParseDatabase(data []byte, env string) (Database, error) {
	var sections map[string]Database
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return Database{}, &todoerrors.ConfigError{Option: "database_file", Message: "invalid YAML", Cause: err}
	}
	db, ok := sections[env]
	if !ok {
		return Database{}, &todoerrors.ConfigError{Option: "env", Value: env, Message: "no database section for environment"}
	}
	if db.Adapter == "" {
		db.Adapter = AdapterSQLite
	}
	if err := db.Validate(); err != nil {
		return Database{}, err
	}
	return db, nil
}

// Validate checks that the adapter is supported and names a database.
func (d Database) Validate() error {
	switch d.Adapter {
	case AdapterSQLite, AdapterMySQL:
	default:
		return &todoerrors.ConfigError{Option: "adapter", Value: d.Adapter, Message: "unsupported adapter (want sqlite or mysql)"}
	}
	if d.Database == "" {
		return &todoerrors.ConfigError{Option: "database", Message: "must not be empty"}
	}
	return nil
}
