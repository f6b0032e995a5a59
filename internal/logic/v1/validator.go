package v1

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// RegisterValidations adds the console's own tags to v.
// It must run on gin's binding engine and on the wizard validator alike.
func RegisterValidations(v *validator.Validate) error {
	for tag, fn := range map[string]validator.Func{
		"clock":      isClock,
		"clockafter": isClockAfter,
		"sections":   linesOK(func(s string) error { _, err := domain.ParseSections(s); return err }),
		"entries":    linesOK(func(s string) error { _, err := domain.ParseExperiences(s); return err }),
		"addons":     linesOK(func(s string) error { _, err := domain.ParseAddOns(s); return err }),
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validation: %w", tag, err)
		}
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

func isClock(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

// isClockAfter compares two HH:MM fields; the parameter names the earlier one.
func isClockAfter(fl validator.FieldLevel) bool {
	other := fl.Parent().FieldByName(fl.Param())
	if !other.IsValid() || other.Kind() != reflect.String {
		return false
	}
	end, err := time.Parse("15:04", fl.Field().String())
	if err != nil {
		return false
	}
	start, err := time.Parse("15:04", other.String())
	if err != nil {
		// The start field reports its own error.
		return true
	}
	return end.After(start)
}

func linesOK(parse func(string) error) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return parse(fl.Field().String()) == nil
	}
}

// FieldErrors maps a form field name to the message shown next to it.
// The empty key holds a message for the whole form.
type FieldErrors map[string]string

// ValidationError is returned when submitted values fail their schema.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	return "invalid fields: " + strings.Join(names, ", ")
}

// FieldErrorsOf converts a binding or validation error on form into per-field messages.
func FieldErrorsOf(err error, form any) FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": "Some values could not be read. Check the highlighted form and try again."}
	}
	out := FieldErrors{}
	t := indirectType(reflect.TypeOf(form))
	for _, fe := range verrs {
		_, path, _ := strings.Cut(fe.StructNamespace(), ".")
		name := formNameOf(t, path)
		if _, seen := out[name]; !seen {
			out[name] = messageFor(fe)
		}
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	p := fe.Param()
	switch fe.Tag() {
	case "required", "required_if":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "numeric":
		return "Use digits only."
	case "eqfield":
		return "Does not match."
	case "oneof":
		return "Choose one of the listed options."
	case "datetime":
		return "Enter a valid date."
	case "clock":
		return "Enter a time as HH:MM."
	case "clockafter":
		return "Must be later than the start time."
	case "credit_card":
		return "Enter a valid card number."
	case "sections", "entries", "addons":
		return "Check the line format shown in the label."
	case "len":
		return fmt.Sprintf("Must be exactly %s characters.", p)
	case "min":
		return sized(fe.Kind(), "at least", p)
	case "max":
		return sized(fe.Kind(), "at most", p)
	case "gt":
		return fmt.Sprintf("Must be greater than %s.", p)
	case "gte":
		return fmt.Sprintf("Must be %s or more.", p)
	case "lte":
		return fmt.Sprintf("Must be %s or less.", p)
	}
	return "Invalid value."
}

func sized(kind reflect.Kind, bound, p string) string {
	switch kind {
	case reflect.String:
		return fmt.Sprintf("Must be %s %s characters.", bound, p)
	case reflect.Slice:
		return fmt.Sprintf("Select %s %s.", bound, p)
	}
	return fmt.Sprintf("Must be %s %s.", bound, p)
}
