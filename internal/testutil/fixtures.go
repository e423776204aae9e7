// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
	"gorm.io/gorm"

	"github.com/erraggy/mosscow/internal/config"
	"github.com/erraggy/mosscow/internal/logging"
	"github.com/erraggy/mosscow/internal/store"
	"github.com/erraggy/mosscow/jsonvalue"
)

// NewDB opens a migrated in-memory sqlite database that is closed when
// the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := store.Open(config.Database{Adapter: config.AdapterSQLite, Database: ":memory:"}, logging.Discard())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewTodos returns a repository over a fresh test database.
func NewTodos(t *testing.T) *store.Todos {
	t.Helper()
	return store.NewTodos(NewDB(t))
}

// CreateTodo inserts a todo from snake_case JSON attributes.
func CreateTodo(t *testing.T, todos *store.Todos, attrs string) *store.Todo {
	t.Helper()

	m, err := jsonvalue.DecodeMapping([]byte(attrs))
	if err != nil {
		t.Fatalf("Failed to decode todo attributes: %v", err)
	}
	todo, err := todos.Create(context.Background(), m)
	if err != nil {
		t.Fatalf("Failed to create todo: %v", err)
	}
	return todo
}

// WriteTempYAML marshals doc to YAML in a temporary file and returns its path.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "test.yaml", string(data))
}

// WriteTempFile writes content to name inside a temporary directory and
// returns its path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}
