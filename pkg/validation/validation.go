// Package validation holds the shared struct validator and turns rule failures into
// VALIDATION_ERROR responses with per-field details.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/slug"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.Valid(fl.Field().String())
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return IsClock(fl.Field().String())
	})
	return v
}

// FieldError is a rule failure attached to one input field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Fieldf builds a FieldError with a formatted message.
func Fieldf(field, format string, args ...any) error {
	return FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Struct runs the tag rules of v and returns nil or a validation *pkgerrors.Error.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return Wrap(err)
	}
	return nil
}

// Collect merges tag and rule failures. nil inputs are ignored.
func Collect(errs ...error) error {
	return multierr.Combine(errs...)
}

// Wrap converts collected failures into a validation error. It returns nil for nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	details := Details(err)
	if len(details) == 0 {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
}

// Details flattens validator and FieldError failures into field -> message. The first
// message per field wins.
func Details(err error) map[string]string {
	details := map[string]string{}
	for _, single := range multierr.Errors(err) {
		var verrs validator.ValidationErrors
		var ferr FieldError
		var typed *pkgerrors.Error
		switch {
		case errors.As(single, &typed):
			if wrapped, ok := typed.Details().(map[string]string); ok {
				for field, msg := range wrapped {
					addDetail(details, field, msg)
				}
			}
		case errors.As(single, &verrs):
			for _, fe := range verrs {
				addDetail(details, fieldPath(fe), message(fe))
			}
		case errors.As(single, &ferr):
			addDetail(details, ferr.Field, ferr.Message)
		}
	}
	return details
}

// Fields lists the failing field names in sorted order. It accepts raw failures as well
// as errors produced by Wrap.
func Fields(err error) []string {
	details := Details(err)
	out := make([]string, 0, len(details))
	for field := range details {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

func addDetail(details map[string]string, field, msg string) {
	if _, exists := details[field]; !exists {
		details[field] = msg
	}
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "dive":
		return "contains an invalid value"
	case "datetime":
		return fmt.Sprintf("must match %s", fe.Param())
	case "slug":
		return "must contain only lowercase letters, digits and single hyphens"
	case "clock":
		return "must be a time in HH:MM format"
	case "hexcolor":
		return "must be a hex color"
	case "unique":
		return "must not contain duplicates"
	}
	return "is invalid"
}

// IsClock reports whether value is a 24h "HH:MM" clock reading.
func IsClock(value string) bool {
	if len(value) != 5 || value[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	h := int(value[0]-'0')*10 + int(value[1]-'0')
	m := int(value[3]-'0')*10 + int(value[4]-'0')
	return h < 24 && m < 60
}
