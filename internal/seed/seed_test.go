package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/mosscow/internal/logging"
	"github.com/erraggy/mosscow/internal/testutil"
	"github.com/erraggy/mosscow/jsonvalue"
	"github.com/erraggy/mosscow/todoerrors"
)

func TestParse_Shapes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "list",
			doc: `
- taskTitle: Buy milk
  isDone: false
- task_title: Walk dog
  is_done: true
  order: 3
`,
		},
		{
			name: "todos key",
			doc: `
todos:
  - taskTitle: Buy milk
    isDone: false
  - taskTitle: Walk dog
    isDone: true
    order: 3
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Parse([]byte(tt.doc), "test")
			require.NoError(t, err)
			require.Len(t, records, 2)

			assert.True(t, records[0].Has("task_title"))
			assert.True(t, records[0].Has("is_done"))
			assert.False(t, records[0].Has("taskTitle"))

			order, ok := records[1].Lookup("order")
			require.True(t, ok)
			assert.True(t, jsonvalue.Equal(jsonvalue.Int(3), order))
		})
	}
}

func TestParse_Empty(t *testing.T) {
	records, err := Parse([]byte(""), "empty")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{name: "invalid yaml", doc: "todos: [", msg: "invalid YAML"},
		{name: "missing key", doc: "items: []", msg: "missing todos key"},
		{name: "todos not a list", doc: "todos: 3", msg: "todos must be a list"},
		{name: "scalar document", doc: "hello", msg: "expected a list of todos"},
		{name: "record not a mapping", doc: "- a\n- b", msg: "record 0 is not a mapping"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), "test.yaml")
			var derr *todoerrors.DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, tt.msg, derr.Message)
			assert.Equal(t, "test.yaml", derr.Source)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := testutil.WriteTempYAML(t, map[string]any{
		"todos": []map[string]any{{"taskTitle": "from file", "isDone": true}},
	})
	records, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	title, _ := records[0].Lookup("task_title")
	assert.True(t, jsonvalue.Equal(jsonvalue.String("from file"), title))

	_, err = LoadFile(path + ".missing")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	todos := testutil.NewTodos(t)
	records, err := Parse([]byte("- {taskTitle: a, isDone: false}\n- {taskTitle: b, isDone: true}"), "test")
	require.NoError(t, err)

	n, err := Run(context.Background(), todos, records, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := todos.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].TaskTitle)
	assert.True(t, all[1].IsDone)
}

func TestRun_StopsAtInvalidRecord(t *testing.T) {
	todos := testutil.NewTodos(t)
	records, err := Parse([]byte("- {taskTitle: a, isDone: false}\n- {taskTitle: '', isDone: true}\n- {taskTitle: c, isDone: true}"), "test")
	require.NoError(t, err)

	n, err := Run(context.Background(), todos, records, logging.Discard())
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, todoerrors.ErrValidation)
	assert.Contains(t, err.Error(), "record 1")

	count, err := todos.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
