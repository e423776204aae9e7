// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the todo list as MCP tools over stdio.
//
// Tool arguments use the same camelCase keys as the HTTP API and go
// through the same key conversion and validation.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/erraggy/mosscow"
	"github.com/erraggy/mosscow/internal/store"
)

const serverInstructions = `mosscow MCP server: lists, creates, updates and deletes todos.

Todo attributes use camelCase keys: taskTitle (required, not blank), isDone (required boolean), order (optional integer or null).

Validation failures are returned as tool errors naming the failing attributes in snake_case, e.g. task_title can't be blank.`

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context, todos *store.Todos, log *logrus.Logger) error {
	log.WithField("operation", "mcpserver.Run").Info("serving MCP over stdio")
	return NewServer(todos, log).Run(ctx, &mcp.StdioTransport{})
}

// NewServer returns an MCP server with every todo tool registered.
func NewServer(todos *store.Todos, log *logrus.Logger) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "mosscow", Version: mosscow.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, &tools{todos: todos, log: log})
	return server
}

func registerAllTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_todos",
		Description: "List todos ordered by id. Use offset/limit to paginate (default limit 100, max 1000). Returns the total count and the requested page with camelCase keys.",
	}, t.handleList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_todo",
		Description: "Create a todo. Pass attributes in todo with camelCase keys: taskTitle and isDone are required, order is optional. Returns the created todo.",
	}, t.handleCreate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_todo",
		Description: "Replace the title and done flag of the todo with the given id. order is changed only when present in todo. Returns the updated todo.",
	}, t.handleUpdate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_todo",
		Description: "Delete the todo with the given id.",
	}, t.handleDelete)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to defaultListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
