package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/erraggy/mosscow/internal/store"
	"github.com/erraggy/mosscow/jsonvalue"
	"github.com/erraggy/mosscow/keycase"
)

type tools struct {
	todos *store.Todos
	log   *logrus.Logger
}

type listInput struct {
	Limit  int `json:"limit,omitempty"  jsonschema:"Maximum number of todos to return (default 100)"`
	Offset int `json:"offset,omitempty" jsonschema:"Skip the first N todos (for pagination)"`
}

type listOutput struct {
	Total    int              `json:"total"`
	Returned int              `json:"returned"`
	Todos    []map[string]any `json:"todos,omitempty"`
}

type createInput struct {
	Todo map[string]any `json:"todo" jsonschema:"Todo attributes with camelCase keys: taskTitle, isDone, order"`
}

type updateInput struct {
	ID   uint           `json:"id"   jsonschema:"Identifier of the todo to update"`
	Todo map[string]any `json:"todo" jsonschema:"Todo attributes with camelCase keys: taskTitle, isDone, order"`
}

type deleteInput struct {
	ID uint `json:"id" jsonschema:"Identifier of the todo to delete"`
}

type todoOutput struct {
	Todo map[string]any `json:"todo,omitempty"`
}

type deleteOutput struct {
	ID      uint `json:"id"`
	Deleted bool `json:"deleted"`
}

func (t *tools) handleList(ctx context.Context, _ *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, listOutput, error) {
	all, err := t.todos.All(ctx)
	if err != nil {
		t.logFailure("mcpserver.handleList", err)
		return errResult(err), listOutput{}, nil
	}

	page := paginate(all, input.Offset, input.Limit)
	output := listOutput{Total: len(all), Returned: len(page), Todos: make([]map[string]any, 0, len(page))}
	for i := range page {
		output.Todos = append(output.Todos, wireTodo(&page[i]))
	}
	return nil, output, nil
}

func (t *tools) handleCreate(ctx context.Context, _ *mcp.CallToolRequest, input createInput) (*mcp.CallToolResult, todoOutput, error) {
	todo, err := t.todos.Create(ctx, storeAttributes(input.Todo))
	if err != nil {
		t.logFailure("mcpserver.handleCreate", err)
		return errResult(err), todoOutput{}, nil
	}
	return nil, todoOutput{Todo: wireTodo(todo)}, nil
}

func (t *tools) handleUpdate(ctx context.Context, _ *mcp.CallToolRequest, input updateInput) (*mcp.CallToolResult, todoOutput, error) {
	todo, err := t.todos.Update(ctx, input.ID, storeAttributes(input.Todo))
	if err != nil {
		t.logFailure("mcpserver.handleUpdate", err)
		return errResult(err), todoOutput{}, nil
	}
	return nil, todoOutput{Todo: wireTodo(todo)}, nil
}

func (t *tools) handleDelete(ctx context.Context, _ *mcp.CallToolRequest, input deleteInput) (*mcp.CallToolResult, deleteOutput, error) {
	if err := t.todos.Destroy(ctx, input.ID); err != nil {
		t.logFailure("mcpserver.handleDelete", err)
		return errResult(err), deleteOutput{}, nil
	}
	return nil, deleteOutput{ID: input.ID, Deleted: true}, nil
}

func (t *tools) logFailure(op string, err error) {
	t.log.WithField("operation", op).WithError(err).Debug("tool call failed")
}

// storeAttributes converts camelCase tool arguments to the snake_case
// attributes the store expects.
func storeAttributes(attrs map[string]any) jsonvalue.Mapping {
	m, ok := jsonvalue.FromAny(attrs).(jsonvalue.Mapping)
	if !ok {
		return jsonvalue.NewMapping()
	}
	return keycase.FormatMapping(m, keycase.Snake)
}

// wireTodo renders a todo with camelCase keys.
func wireTodo(todo *store.Todo) map[string]any {
	out, _ := jsonvalue.ToAny(keycase.FormatMapping(todo.AsJSON(), keycase.Camel)).(map[string]any)
	return out
}
