package keycase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/mosscow/jsonvalue"
)

func mustDecode(t *testing.T, s string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Decode([]byte(s))
	require.NoError(t, err)
	return v
}

func encode(t *testing.T, v jsonvalue.Value) string {
	t.Helper()
	out, err := jsonvalue.Encode(v)
	require.NoError(t, err)
	return string(out)
}

func TestFormat_SequenceOfRecords(t *testing.T) {
	in := mustDecode(t, `[{"task_title":"a","is_done":false},{"task_title":"b","is_done":true}]`)

	got := Format(in, Camel)

	want := mustDecode(t, `[{"taskTitle":"a","isDone":false},{"taskTitle":"b","isDone":true}]`)
	assert.True(t, jsonvalue.Equal(want, got), "got %s", encode(t, got))

	seq, ok := got.(jsonvalue.Sequence)
	require.True(t, ok)
	require.Len(t, seq, 2)
	title, _ := seq[1].(jsonvalue.Mapping).Lookup("taskTitle")
	assert.True(t, jsonvalue.Equal(jsonvalue.String("b"), title), "order preserved")
}

func TestFormat_Nested(t *testing.T) {
	in := mustDecode(t, `{"todoList":{"items":[{"taskTitle":"x","subTasks":[{"isDone":true}]}]},"HTTPStatus":200}`)

	got := Format(in, Snake)

	want := mustDecode(t, `{"todo_list":{"items":[{"task_title":"x","sub_tasks":[{"is_done":true}]}]},"http_status":200}`)
	assert.True(t, jsonvalue.Equal(want, got), "got %s", encode(t, got))
}

func TestFormat_ScalarsUnchanged(t *testing.T) {
	scalars := []jsonvalue.Scalar{
		jsonvalue.Int(42),
		jsonvalue.Number(1.5),
		jsonvalue.String("hello"),
		jsonvalue.String("task_title"),
		jsonvalue.Null(),
		jsonvalue.Bool(true),
	}
	for _, target := range []Convention{Snake, Camel} {
		for _, s := range scalars {
			got := Format(s, target)
			assert.Equal(t, jsonvalue.Value(s), got, "Format(%v, %v)", s, target)
		}
	}
}

func TestFormat_ValuesAreNotKeys(t *testing.T) {
	in := jsonvalue.NewMapping(jsonvalue.Entry{
		Key:   jsonvalue.Text("task_title"),
		Value: jsonvalue.String("is_done"),
	})
	got := FormatMapping(in, Camel)

	v, ok := got.Lookup("taskTitle")
	require.True(t, ok)
	assert.True(t, jsonvalue.Equal(jsonvalue.String("is_done"), v))
}

func TestFormat_Idempotent(t *testing.T) {
	in := mustDecode(t, `{"task_title":"a","nested_list":[{"is_done":true,"sort_order":1}]}`)

	for _, target := range []Convention{Snake, Camel} {
		once := Format(in, target)
		twice := Format(once, target)
		assert.True(t, jsonvalue.Equal(once, twice), "target %v: %s vs %s", target, encode(t, once), encode(t, twice))
	}
}

func TestFormat_OtherKeysPassThrough(t *testing.T) {
	in := jsonvalue.NewMapping(
		jsonvalue.Entry{Key: jsonvalue.Other(1), Value: jsonvalue.String("one")},
		jsonvalue.Entry{Key: jsonvalue.Text("task_title"), Value: jsonvalue.String("a")},
		jsonvalue.Entry{Key: jsonvalue.Other(true), Value: jsonvalue.NewMapping(
			jsonvalue.Entry{Key: jsonvalue.Text("is_done"), Value: jsonvalue.Bool(false)},
		)},
	)

	got := FormatMapping(in, Camel)

	entries := got.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, jsonvalue.Other(1), entries[0].Key)
	assert.Equal(t, jsonvalue.Text("taskTitle"), entries[1].Key)
	assert.Equal(t, jsonvalue.Other(true), entries[2].Key)

	nested, ok := entries[2].Value.(jsonvalue.Mapping)
	require.True(t, ok)
	assert.True(t, nested.Has("isDone"), "values under other keys are still formatted")
}

func TestFormat_DoesNotMutateInput(t *testing.T) {
	inner := jsonvalue.Sequence{
		jsonvalue.NewMapping(jsonvalue.Entry{Key: jsonvalue.Text("task_title"), Value: jsonvalue.String("a")}),
	}
	in := jsonvalue.NewMapping(jsonvalue.Entry{Key: jsonvalue.Text("todo_items"), Value: inner})
	before := encode(t, in)

	_ = Format(in, Camel)

	assert.Equal(t, before, encode(t, in))
	assert.True(t, inner[0].(jsonvalue.Mapping).Has("task_title"))
}

func TestFormat_KeyCollisionLaterWins(t *testing.T) {
	in := jsonvalue.NewMapping(
		jsonvalue.Entry{Key: jsonvalue.Text("taskTitle"), Value: jsonvalue.String("first")},
		jsonvalue.Entry{Key: jsonvalue.Text("is_done"), Value: jsonvalue.Bool(true)},
		jsonvalue.Entry{Key: jsonvalue.Text("task_title"), Value: jsonvalue.String("second")},
	)

	got := FormatMapping(in, Snake)

	assert.Equal(t, `{"task_title":"second","is_done":true}`, encode(t, got))
}

func TestFormat_EmptyContainers(t *testing.T) {
	assert.Equal(t, `{}`, encode(t, Format(jsonvalue.NewMapping(), Camel)))
	assert.Equal(t, `[]`, encode(t, Format(jsonvalue.Sequence{}, Camel)))
	assert.Nil(t, Format(nil, Camel))
}

func TestFormatAny(t *testing.T) {
	in := map[string]any{
		"taskTitle": "a",
		"tags":      []any{map[string]any{"tagName": "x"}},
	}
	got := FormatAny(in, Snake)

	assert.Equal(t, map[string]any{
		"task_title": "a",
		"tags":       []any{map[string]any{"tag_name": "x"}},
	}, got)

	yamlish := map[any]any{"isDone": true, 7: "seven"}
	assert.Equal(t, map[any]any{"is_done": true, 7: "seven"}, FormatAny(yamlish, Snake))

	assert.Equal(t, 42, FormatAny(42, Camel))
}
