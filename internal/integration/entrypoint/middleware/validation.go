package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

var registerOnce sync.Once

// RegisterValidators adds the domain tags (department, objective_type,
// number_format) to gin's binding engine and reports fields by their JSON
// names. It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)

		validators := map[string]validator.Func{
			"department": func(fl validator.FieldLevel) bool {
				return valueobject.Department(fl.Field().String()).IsValid()
			},
			"objective_type": func(fl validator.FieldLevel) bool {
				return valueobject.ObjectiveType(fl.Field().String()).IsValid()
			},
			"number_format": func(fl validator.FieldLevel) bool {
				return valueobject.NumberFormat(fl.Field().String()).IsValid()
			},
		}
		for tag, fn := range validators {
			if err = v.RegisterValidation(tag, fn); err != nil {
				return
			}
		}
	})
	return err
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// ValidationDetails maps each failing field to the rule it broke. It returns
// nil when err is not a validation error (malformed JSON, wrong types).
func ValidationDetails(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		details[fieldPath(e)] = e.Tag()
	}
	return details
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(e validator.FieldError) string {
	namespace := e.Namespace()
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return e.Field()
}
