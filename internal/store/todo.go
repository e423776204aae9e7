package store

import (
	"time"

	"github.com/erraggy/mosscow/jsonvalue"
)

// TimeLayout is the wire format of created_at and updated_at.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Todo is one row of the todos table.
type Todo struct {
	ID        uint      `gorm:"primaryKey"`
	TaskTitle string    `gorm:"column:task_title;not null"`
	IsDone    bool      `gorm:"column:is_done;not null"`
	Order     *int64    `gorm:"column:order"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName implements gorm's tabler interface.
func (Todo) TableName() string { return "todos" }

// AsJSON returns the record as a snake_case mapping in column order.
// Timestamps are UTC with millisecond precision.
func (t *Todo) AsJSON() jsonvalue.Mapping {
	order := jsonvalue.Value(jsonvalue.Null())
	if t.Order != nil {
		order = jsonvalue.Int(*t.Order)
	}
	return jsonvalue.NewMapping(
		jsonvalue.Entry{Key: jsonvalue.Text("id"), Value: jsonvalue.Int(int64(t.ID))},
		jsonvalue.Entry{Key: jsonvalue.Text("task_title"), Value: jsonvalue.String(t.TaskTitle)},
		jsonvalue.Entry{Key: jsonvalue.Text("is_done"), Value: jsonvalue.Bool(t.IsDone)},
		jsonvalue.Entry{Key: jsonvalue.Text("order"), Value: order},
		jsonvalue.Entry{Key: jsonvalue.Text("created_at"), Value: timestamp(t.CreatedAt)},
		jsonvalue.Entry{Key: jsonvalue.Text("updated_at"), Value: timestamp(t.UpdatedAt)},
	)
}

func timestamp(ts time.Time) jsonvalue.Value {
	if ts.IsZero() {
		return jsonvalue.Null()
	}
	return jsonvalue.String(ts.UTC().Format(TimeLayout))
}

// AsJSONList returns AsJSON for each todo, in order.
func AsJSONList(todos []Todo) jsonvalue.Sequence {
	out := make(jsonvalue.Sequence, len(todos))
	for i := range todos {
		out[i] = todos[i].AsJSON()
	}
	return out
}
