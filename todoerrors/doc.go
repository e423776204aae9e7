// Package todoerrors provides structured error types for mosscow.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), so that the HTTP layer, the seed loader and the MCP tools
// can map failures to the right response without string matching.
//
// # Error Categories
//
//   - DecodeError: a request body or fixture is not valid JSON/YAML, or
//     does not have the expected shape
//   - ValidationError: an entity failed validation; carries field-keyed
//     messages
//   - NotFoundError: an entity with the given identity does not exist
//   - ConfigError: invalid configuration or database settings
//   - StorageError: the database driver failed
//
// # Usage with errors.As
//
//	todo, err := todos.Create(ctx, attrs)
//	if err != nil {
//	    var verr *todoerrors.ValidationError
//	    if errors.As(err, &verr) {
//	        // verr.Fields is {"task_title": ["can't be blank"]}
//	    }
//	}
//
// # Usage with errors.Is
//
//	if errors.Is(err, todoerrors.ErrNotFound) {
//	    // respond 404
//	}
package todoerrors
