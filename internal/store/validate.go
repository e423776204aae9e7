package store

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/erraggy/mosscow/todoerrors"
)

// Messages reported for each failed rule.
const (
	MsgBlank       = "can't be blank"
	MsgNotIncluded = "is not included in the list"
	MsgNotANumber  = "is not a number"
)

var ruleMessages = map[string]string{
	"present": MsgBlank,
	"oneof":   MsgNotIncluded,
	"numeric": MsgNotANumber,
}

// todoRules is the validated form of a todo's attributes, one string per
// attribute as it was cast.
type todoRules struct {
	TaskTitle string `json:"task_title" validate:"present"`
	IsDone    string `json:"is_done" validate:"oneof=true false"`
	Order     string `json:"order" validate:"omitempty,numeric"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("present", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return v
}

func rulesFor(a attributes) todoRules {
	var r todoRules
	if a.taskTitle != nil {
		r.TaskTitle = *a.taskTitle
	}
	if a.isDone != nil {
		r.IsDone = strconv.FormatBool(*a.isDone)
	}
	switch {
	case !a.orderValid:
		r.Order = a.orderText
	case a.order != nil:
		r.Order = strconv.FormatInt(*a.order, 10)
	}
	return r
}

// validateAttributes returns a *todoerrors.ValidationError listing every
// failed rule, or nil.
func validateAttributes(a attributes) error {
	err := validate.Struct(rulesFor(a))
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	verr := &todoerrors.ValidationError{Entity: "todo"}
	for _, fe := range fieldErrs {
		msg, ok := ruleMessages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		verr.Add(fe.Field(), msg)
	}
	return verr
}
