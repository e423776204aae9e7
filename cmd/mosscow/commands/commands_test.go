package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/mosscow/internal/config"
	"github.com/erraggy/mosscow/internal/logging"
	"github.com/erraggy/mosscow/internal/store"
	"github.com/erraggy/mosscow/internal/testutil"
)

// useTestDatabase points the commands at an sqlite file in a temporary
// directory and returns its path.
func useTestDatabase(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "test.sqlite3")
	file := testutil.WriteTempYAML(t, map[string]any{
		"test": map[string]any{"adapter": "sqlite", "database": dbPath},
	})
	t.Setenv("MOSSCOW_ENV", "test")
	t.Setenv("MOSSCOW_DATABASE_FILE", file)
	return dbPath
}

func countTodos(t *testing.T, dbPath string) int64 {
	t.Helper()
	db, err := store.Open(config.Database{Adapter: config.AdapterSQLite, Database: dbPath}, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { closeDB(db) })

	var n int64
	require.NoError(t, db.Table("todos").Count(&n).Error)
	return n
}

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat(FormatJSON))
	assert.NoError(t, ValidateOutputFormat(FormatYAML))
	assert.Error(t, ValidateOutputFormat("text"))
}

func TestSetupOpenAPIFlags(t *testing.T) {
	fs, flags := SetupOpenAPIFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, FormatJSON, flags.Format)
		assert.Empty(t, flags.Output)
	})

	t.Run("parse flags", func(t *testing.T) {
		require.NoError(t, fs.Parse([]string{"-format", "yaml", "-o", "out.yaml"}))
		assert.Equal(t, FormatYAML, flags.Format)
		assert.Equal(t, "out.yaml", flags.Output)
	})
}

func TestHandleOpenAPI(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "openapi.json")
	require.NoError(t, HandleOpenAPI([]string{"-o", jsonPath}))
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"createTodo"`)

	yamlPath := filepath.Join(dir, "openapi.yaml")
	require.NoError(t, HandleOpenAPI([]string{"-format", "yaml", "-o", yamlPath}))
	data, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "openapi: 3.1.0")
}

func TestHandleOpenAPI_Errors(t *testing.T) {
	assert.Error(t, HandleOpenAPI([]string{"-format", "xml"}))
	assert.Error(t, HandleOpenAPI([]string{"extra"}))
	assert.NoError(t, HandleOpenAPI([]string{"--help"}))
}

func TestSetupServeFlags(t *testing.T) {
	fs, flags := SetupServeFlags()
	assert.Empty(t, flags.Addr)
	require.NoError(t, fs.Parse([]string{"-addr", ":8080"}))
	assert.Equal(t, ":8080", flags.Addr)
}

func TestHandleServe_Args(t *testing.T) {
	assert.Error(t, HandleServe([]string{"extra"}))
	assert.NoError(t, HandleServe([]string{"--help"}))
}

func TestHandleMigrate(t *testing.T) {
	dbPath := useTestDatabase(t)

	require.NoError(t, HandleMigrate(nil))
	assert.FileExists(t, dbPath)
	assert.Zero(t, countTodos(t, dbPath))

	assert.Error(t, HandleMigrate([]string{"extra"}))
}

func TestHandleMigrate_MissingSection(t *testing.T) {
	file := testutil.WriteTempYAML(t, map[string]any{
		"development": map[string]any{"adapter": "sqlite", "database": ":memory:"},
	})
	t.Setenv("MOSSCOW_ENV", "test")
	t.Setenv("MOSSCOW_DATABASE_FILE", file)

	assert.Error(t, HandleMigrate(nil))
}

func TestHandleSeed(t *testing.T) {
	dbPath := useTestDatabase(t)
	seedFile := testutil.WriteTempFile(t, "seeds.yml", `
todos:
  - taskTitle: Buy milk
    isDone: false
  - task_title: Walk dog
    is_done: true
    order: 2
`)

	require.NoError(t, HandleSeed([]string{seedFile}))
	assert.EqualValues(t, 2, countTodos(t, dbPath))
}

func TestHandleSeed_Errors(t *testing.T) {
	dbPath := useTestDatabase(t)

	assert.Error(t, HandleSeed(nil), "file argument is required")
	assert.Error(t, HandleSeed([]string{filepath.Join(t.TempDir(), "missing.yml")}))

	invalid := testutil.WriteTempFile(t, "seeds.yml", "- {taskTitle: ok, isDone: true}\n- {taskTitle: '', isDone: true}\n")
	err := HandleSeed([]string{invalid})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seeded 1 of 2 todos")
	assert.EqualValues(t, 1, countTodos(t, dbPath))
}

func TestHandleMCP_Args(t *testing.T) {
	assert.Error(t, HandleMCP([]string{"extra"}))
	assert.NoError(t, HandleMCP([]string{"--help"}))
}
