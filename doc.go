// Package mosscow is a small todo REST API whose wire format is camelCase
// JSON and whose storage format is snake_case columns.
//
// # Overview
//
// The interesting part of the repository is the key-casing core:
//
//   - jsonvalue: a closed JSON value type (Mapping, Sequence, Scalar) with
//     a JSON codec and conversion from decoded Go values
//   - keycase: ToSnake/ToCamel string conversion and the recursive Format
//     that rewrites every mapping key of a value
//   - todoerrors: structured errors shared by every layer
//
// Everything else is glue around that core: a gin HTTP server
// (internal/server), a gorm-backed store (internal/store), an OpenAPI
// description of the API (internal/apidoc), YAML fixtures (internal/seed)
// and an MCP server exposing the same operations (internal/mcpserver).
//
// # Quick Start
//
// Convert a decoded request body to storage keys:
//
//	v, err := jsonvalue.Decode([]byte(`{"taskTitle":"buy milk","isDone":false}`))
//	if err != nil {
//		log.Fatal(err)
//	}
//	snake := keycase.Format(v, keycase.Snake)
//	// {"task_title":"buy milk","is_done":false}
//
// Run the server:
//
//	mosscow migrate
//	mosscow serve -addr :4567
package mosscow
