// Package seed loads todo fixtures from YAML files.
//
// A seed file is either a list of todos or a mapping with a todos key.
// Keys may be written in camelCase or snake_case; they are converted to
// snake_case before reaching the store.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/mosscow/internal/store"
	"github.com/erraggy/mosscow/jsonvalue"
	"github.com/erraggy/mosscow/keycase"
	"github.com/erraggy/mosscow/todoerrors"
)

// LoadFile reads the records of the seed file at path.
func LoadFile(path string) ([]jsonvalue.Mapping, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is an operator-supplied seed file
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes seed records from YAML. source names the input in errors.
func Parse(data []byte, source string) ([]jsonvalue.Mapping, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &todoerrors.DecodeError{Source: source, Message: "invalid YAML", Cause: err}
	}

	doc := keycase.Format(jsonvalue.FromAny(raw), keycase.Snake)
	var list jsonvalue.Sequence
	switch v := doc.(type) {
	case jsonvalue.Sequence:
		list = v
	case jsonvalue.Mapping:
		todos, ok := v.Lookup("todos")
		if !ok {
			return nil, &todoerrors.DecodeError{Source: source, Message: "missing todos key"}
		}
		if list, ok = todos.(jsonvalue.Sequence); !ok {
			return nil, &todoerrors.DecodeError{Source: source, Message: "todos must be a list"}
		}
	case jsonvalue.Scalar:
		if v.IsNull() {
			return nil, nil
		}
		return nil, &todoerrors.DecodeError{Source: source, Message: "expected a list of todos"}
	}

	records := make([]jsonvalue.Mapping, 0, len(list))
	for i, el := range list {
		m, ok := el.(jsonvalue.Mapping)
		if !ok {
			return nil, &todoerrors.DecodeError{Source: source, Message: fmt.Sprintf("record %d is not a mapping", i)}
		}
		records = append(records, m)
	}
	return records, nil
}

// Run creates every record in order and returns how many were inserted.
// It stops at the first failure.
func Run(ctx context.Context, todos *store.Todos, records []jsonvalue.Mapping, log *logrus.Logger) (int, error) {
	const op = "seed.Run"
	entry := log.WithField("operation", op)

	for i, rec := range records {
		todo, err := todos.Create(ctx, rec)
		if err != nil {
			return i, fmt.Errorf("seed: record %d: %w", i, err)
		}
		entry.WithFields(logrus.Fields{"index": i, "id": todo.ID}).Debug("todo seeded")
	}
	entry.WithField("count", len(records)).Info("seed complete")
	return len(records), nil
}
