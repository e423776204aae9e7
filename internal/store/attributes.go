package store

import "github.com/erraggy/mosscow/jsonvalue"

// Attribute names accepted from callers.
const (
	AttrTaskTitle = "task_title"
	AttrIsDone    = "is_done"
	AttrOrder     = "order"
)

// attributes are the cast values of one create or update.
type attributes struct {
	taskTitle  *string
	isDone     *bool
	order      *int64
	orderSet   bool
	orderValid bool
	orderText  string
}

func castAttributes(attrs jsonvalue.Mapping) attributes {
	title, _ := attrs.Lookup(AttrTaskTitle)
	done, _ := attrs.Lookup(AttrIsDone)
	a := attributes{
		taskTitle:  castText(title),
		isDone:     castBool(done),
		orderValid: true,
	}
	if raw, ok := attrs.Lookup(AttrOrder); ok {
		a.orderSet = true
		a.order, a.orderValid = castInteger(raw)
		if !a.orderValid {
			if text := castText(raw); text != nil {
				a.orderText = *text
			}
		}
	}
	return a
}

// apply copies the cast values onto t. Order is only touched when the
// attribute was given.
func (a attributes) apply(t *Todo) {
	t.TaskTitle = ""
	if a.taskTitle != nil {
		t.TaskTitle = *a.taskTitle
	}
	t.IsDone = false
	if a.isDone != nil {
		t.IsDone = *a.isDone
	}
	if a.orderSet {
		t.Order = a.order
	}
}
