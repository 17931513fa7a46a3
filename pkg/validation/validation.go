package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"farmdesk/entities"
)

// Validate is shared by the dialogs and the server services so both sides
// enforce the same entity tags.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		return entities.TaskStatus(fl.Field().String()).Valid()
	})
	return v
}

// Fields runs the struct tags and returns field -> failed rule. A nil map
// means the value is valid.
func Fields(v any) (map[string]string, error) {
	err := Validate.Struct(v)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = describe(fe)
	}
	return out, nil
}

// Summary renders field errors as one stable, sorted line.
func Summary(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+fields[k])
	}
	return strings.Join(parts, "; ")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be an email address"
	case "datetime":
		return "must be a date (YYYY-MM-DD)"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "task_status":
		return fmt.Sprintf("must be one of %q, %q, %q", entities.StatusPending, entities.StatusInProgress, entities.StatusCompleted)
	}
	return "failed " + fe.Tag()
}

// Error carries per-field failures; servers map it to 400.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string { return "invalid: " + Summary(e.Fields) }

// Check returns a *Error when v fails its tags.
func Check(v any) error {
	fields, err := Fields(v)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}
