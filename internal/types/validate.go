package types

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance returns the shared validator with the enum rules registered.
// validator.Validate caches struct metadata and is safe for concurrent use.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("causearea", func(fl validator.FieldLevel) bool {
			return CauseArea(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("channel", func(fl validator.FieldLevel) bool {
			return CommunicationChannel(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
			return Language(fl.Field().String()).Valid()
		})
		validate = v
	})
	return validate
}

// ValidationError reports an incomplete or inconsistent profile submission.
// Fields maps the JSON field path (e.g. "donationCapacity.max") to a message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid donor profile"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid donor profile: " + strings.Join(parts, "; ")
}

// Has reports whether the given field failed validation.
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// Validate checks every DonorProfile invariant. It returns nil or a *ValidationError.
func (p DonorProfile) Validate() error {
	err := validatorInstance().Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate donor profile: %w", err)
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		path := fieldPath(fe.Namespace())
		if _, seen := out.Fields[path]; seen {
			continue
		}
		out.Fields[path] = describe(fe)
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace and collapses
// slice indices to the parent field so one message is reported per list.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if i := strings.Index(ns, "["); i >= 0 {
		ns = ns[:i]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Field() == "consent" {
			return "consent must be given before submitting"
		}
		if fe.Kind() == reflect.Slice {
			return "select at least one"
		}
		return "is required"
	case "min":
		return "select at least one"
	case "unique":
		return "contains duplicates"
	case "causearea":
		return fmt.Sprintf("%q is not a known cause area", fe.Value())
	case "channel":
		return fmt.Sprintf("%q is not a known communication channel", fe.Value())
	case "language":
		return fmt.Sprintf("%q is not a supported language", fe.Value())
	case "gt":
		return "must be greater than zero"
	case "gtefield":
		return "must not be less than the minimum"
	}
	return fmt.Sprintf("failed %q check", fe.Tag())
}
