package apidoc

import "github.com/erraggy/oastools/parser"

// TodoInputSchema is the body accepted by create and update.
func TodoInputSchema() *parser.Schema {
	return &parser.Schema{
		Type: "object",
		Properties: map[string]*parser.Schema{
			"taskTitle": {Type: "string", Description: "What to do; must not be blank", MinLength: intPtr(1)},
			"isDone":    {Type: "boolean", Description: "Whether the todo is finished"},
			"order":     {Type: []string{"integer", "null"}, Description: "Optional position in the list"},
		},
		Required: []string{"taskTitle", "isDone"},
	}
}

// TodoSchema is one todo as returned by the API.
func TodoSchema() *parser.Schema {
	return &parser.Schema{
		Type: "object",
		Properties: map[string]*parser.Schema{
			"id":        {Type: "integer", Format: "int64"},
			"taskTitle": {Type: "string"},
			"isDone":    {Type: "boolean"},
			"order":     {Type: []string{"integer", "null"}},
			"createdAt": {Type: []string{"string", "null"}, Format: "date-time"},
			"updatedAt": {Type: []string{"string", "null"}, Format: "date-time"},
		},
		Required: []string{"id", "taskTitle", "isDone", "order", "createdAt", "updatedAt"},
	}
}

// TodoListSchema is the list response.
func TodoListSchema() *parser.Schema {
	return &parser.Schema{Type: "array", Items: TodoSchema()}
}

// ErrorSchema is the error body. Message is a string, a map of field
// names to messages, or a list of request validation issues.
func ErrorSchema() *parser.Schema {
	return &parser.Schema{
		Type: "object",
		Properties: map[string]*parser.Schema{
			"message": {Description: "Error text, field messages or validation issues"},
		},
		Required: []string{"message"},
	}
}

func intPtr(n int) *int { return &n }
