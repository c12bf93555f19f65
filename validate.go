package hostedpay

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	validate        = newValidator()
)

// Validate checks the order snapshot before it is persisted or handed to the
// gateway by callers that want early feedback. [Gateway.Fields] itself never
// rejects a non-nil order.
func (o Order) Validate() error {
	if err := validate.Struct(o); err != nil {
		return normalizeValidationError(err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"mapstructure", "json"} {
			name := strings.Split(field.Tag.Get(tag), ",")[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})

	if err := v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return currencyPattern.MatchString(value)
	}); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation("pmt_version", func(fl validator.FieldLevel) bool {
		_, ok := signedFieldOrders[fl.Field().String()]
		return ok
	}); err != nil {
		panic(err)
	}

	return v
}

func normalizeValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	first := validationErrs[0]
	return fmt.Errorf("%s %s", fieldPath(first), validationMessage(first))
}

func fieldPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}
	if path == "" {
		return fe.Field()
	}
	return path
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be an absolute URL"
	case "numeric":
		return "must contain digits only"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "eq":
		return fmt.Sprintf("must equal %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "currency":
		return "must be an uppercase 3-letter ISO-4217 code"
	case "pmt_version":
		return "is not a supported protocol version"
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
