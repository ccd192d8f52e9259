package checkout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Payment methods the form offers.
const (
	PayCard   = "card"
	PayOnline = "online"
	PayCOD    = "cod"
)

// BuyerForm carries the contact and shipping fields the buyer fills in.
// The apt label says optional but the form has always required it.
type BuyerForm struct {
	FirstName     string `json:"firstName"     validate:"required"`
	LastName      string `json:"lastName"      validate:"required"`
	Email         string `json:"email"         validate:"required,email"`
	Phone         string `json:"phone"         validate:"required,len=10,numeric"`
	Address       string `json:"address"       validate:"required"`
	Apt           string `json:"apt"           validate:"required"`
	City          string `json:"city"          validate:"required"`
	State         string `json:"state"         validate:"required,indianstate"`
	PostalCode    string `json:"postalCode"    validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=card online cod"`
}

// ValidationError aggregates every failing field; submission is blocked on
// any entry, and all violations surface together rather than fail-fast.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("indianstate", func(fl validator.FieldLevel) bool {
		return indianStates[fl.Field().String()]
	})
	return v
}

// Validate checks the whole form client-side and reports all violations.
func (f BuyerForm) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[jsonName(fe.Field())] = reasonFor(fe)
	}
	return &ValidationError{Fields: fields}
}

func jsonName(structField string) string {
	return strings.ToLower(structField[:1]) + structField[1:]
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", jsonName(fe.Field()))
	case "email":
		return "Invalid email format"
	case "len", "numeric":
		return "Phone number must be 10 digits"
	case "indianstate":
		return "Please select a valid state"
	case "oneof":
		return "Invalid payment method"
	default:
		return fmt.Sprintf("%s is invalid", jsonName(fe.Field()))
	}
}
