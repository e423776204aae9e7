// Package apidoc describes the todo API as an OpenAPI 3.1 document.
//
// The document is built with the oastools builder from hand-written
// inline schemas so that httpvalidator can check request and response
// bodies field by field.
package apidoc

import (
	"fmt"
	"net/http"

	"github.com/erraggy/oastools/builder"
	"github.com/erraggy/oastools/httpvalidator"
	"github.com/erraggy/oastools/parser"

	"github.com/erraggy/mosscow"
)

// Paths served by the API.
const (
	TodosPath = "/api/todos"
	TodoPath  = "/api/todos/{id}"
)

// Document is the built API description in every served form.
type Document struct {
	JSON   []byte
	YAML   []byte
	Parsed *parser.ParseResult
}

// NewBuilder returns a builder describing every API operation.
func NewBuilder() *builder.Builder {
	b := builder.New(parser.OASVersion310).
		SetTitle("mosscow").
		SetVersion(mosscow.Version()).
		SetDescription("Todo list API. Request and response bodies use camelCase keys.")

	idParam := builder.WithPathParam("id", int64(0), builder.WithParamDescription("Todo identifier"))
	jsonBody := builder.WithRequestBodyRawSchema("application/json", TodoInputSchema(), builder.WithRequired(true))

	b.AddOperation(http.MethodGet, TodosPath,
		builder.WithOperationID("listTodos"),
		builder.WithSummary("List todos ordered by id"),
		builder.WithTags("todos"),
		builder.WithResponseRawSchema(http.StatusOK, "application/json", TodoListSchema(),
			builder.WithResponseDescription("All todos")),
	)
	b.AddOperation(http.MethodPost, TodosPath,
		builder.WithOperationID("createTodo"),
		builder.WithSummary("Create a todo"),
		builder.WithTags("todos"),
		jsonBody,
		builder.WithResponseRawSchema(http.StatusCreated, "application/json", TodoSchema(),
			builder.WithResponseDescription("The created todo")),
		errorResponse(http.StatusBadRequest, "Malformed body or failed validation"),
	)
	b.AddOperation(http.MethodPut, TodoPath,
		builder.WithOperationID("updateTodo"),
		builder.WithSummary("Update a todo"),
		builder.WithTags("todos"),
		idParam,
		jsonBody,
		builder.WithResponseRawSchema(http.StatusOK, "application/json", TodoSchema(),
			builder.WithResponseDescription("The updated todo")),
		errorResponse(http.StatusBadRequest, "Malformed body or failed validation"),
		errorResponse(http.StatusNotFound, "No todo with this id"),
	)
	b.AddOperation(http.MethodDelete, TodoPath,
		builder.WithOperationID("deleteTodo"),
		builder.WithSummary("Delete a todo"),
		builder.WithTags("todos"),
		idParam,
		builder.WithResponse(http.StatusNoContent, nil,
			builder.WithResponseDescription("Deleted")),
		errorResponse(http.StatusNotFound, "No todo with this id"),
		errorResponse(http.StatusInternalServerError, "Unexpected error"),
	)
	return b
}

func errorResponse(status int, desc string) builder.OperationOption {
	return builder.WithResponseRawSchema(status, "application/json", ErrorSchema(),
		builder.WithResponseDescription(desc))
}

// Build renders the document as JSON and YAML and keeps the parsed form
// for request validation.
func Build() (*Document, error) {
	b := NewBuilder()

	jsonDoc, err := b.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("apidoc: marshal json: %w", err)
	}
	yamlDoc, err := b.MarshalYAML()
	if err != nil {
		return nil, fmt.Errorf("apidoc: marshal yaml: %w", err)
	}
	parsed, err := b.BuildResult()
	if err != nil {
		return nil, fmt.Errorf("apidoc: build: %w", err)
	}
	return &Document{JSON: jsonDoc, YAML: yamlDoc, Parsed: parsed}, nil
}

// NewValidator returns an httpvalidator for the document. Warnings are
// disabled so a result's Errors are exactly the rejected parts.
func (d *Document) NewValidator() (*httpvalidator.Validator, error) {
	v, err := httpvalidator.New(d.Parsed)
	if err != nil {
		return nil, fmt.Errorf("apidoc: validator: %w", err)
	}
	v.IncludeWarnings = false
	return v, nil
}
