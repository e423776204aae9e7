package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/erraggy/mosscow/jsonvalue"
	"github.com/erraggy/mosscow/todoerrors"
)

// Todos is the todo repository.
type Todos struct {
	db *gorm.DB
}

// NewTodos returns a repository backed by db.
func NewTodos(db *gorm.DB) *Todos {
	return &Todos{db: db}
}

// All returns every todo ordered by id.
func (r *Todos) All(ctx context.Context) ([]Todo, error) {
	var todos []Todo
	if err := r.db.WithContext(ctx).Order("id").Find(&todos).Error; err != nil {
		return nil, &todoerrors.StorageError{Op: "list", Cause: err}
	}
	return todos, nil
}

// Find returns the todo with id.
func (r *Todos) Find(ctx context.Context, id uint) (*Todo, error) {
	var t Todo
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &todoerrors.NotFoundError{Entity: "todo", ID: id}
	}
	if err != nil {
		return nil, &todoerrors.StorageError{Op: "find", Cause: err}
	}
	return &t, nil
}

// Create validates attrs (task_title, is_done, order) and inserts a todo.
func (r *Todos) Create(ctx context.Context, attrs jsonvalue.Mapping) (*Todo, error) {
	a := castAttributes(attrs)
	if err := validateAttributes(a); err != nil {
		return nil, err
	}
	var t Todo
	a.apply(&t)
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, &todoerrors.StorageError{Op: "create", Cause: err}
	}
	return &t, nil
}

// Update replaces is_done and task_title of the todo with id. Order is
// changed only when attrs has an order key. A missing title or flag fails
// validation rather than keeping the stored value.
func (r *Todos) Update(ctx context.Context, id uint, attrs jsonvalue.Mapping) (*Todo, error) {
	t, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	a := castAttributes(attrs)
	if err := validateAttributes(a); err != nil {
		return nil, err
	}
	a.apply(t)
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return nil, &todoerrors.StorageError{Op: "update", Cause: err}
	}
	return t, nil
}

// Destroy deletes the todo with id.
func (r *Todos) Destroy(ctx context.Context, id uint) error {
	t, err := r.Find(ctx, id)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(t).Error; err != nil {
		return &todoerrors.StorageError{Op: "destroy", Cause: err}
	}
	return nil
}

// Count returns the number of stored todos.
func (r *Todos) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Todo{}).Count(&n).Error; err != nil {
		return 0, &todoerrors.StorageError{Op: "count", Cause: err}
	}
	return n, nil
}
