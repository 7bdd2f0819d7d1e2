package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oarslan/cinema-backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	seatIDRgx = regexp.MustCompile(`^[A-Z]{1,2}[1-9][0-9]{0,2}$`)
	phoneRgx  = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{5,19}$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("isodate", validateISODate)
	validator.RegisterValidation("hhmm", validateTimeOfDay)
	validator.RegisterValidation("seatid", validateSeatID)
	validator.RegisterValidation("phone", validatePhone)
	validator.RegisterValidation("price", validatePrice)

	return validator
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.DateLayout, fl.Field().String())
	return err == nil
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.TimeLayout, fl.Field().String())
	return err == nil
}

func validateSeatID(fl validator.FieldLevel) bool {
	return seatIDRgx.MatchString(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRgx.MatchString(fl.Field().String())
}

func validatePrice(fl validator.FieldLevel) bool {
	price, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return !price.IsNegative()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must have at least %s entries", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "uri":
		return "must be a valid URI"
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "hhmm":
		return "must be a 24-hour time in HH:mm format"
	case "seatid":
		return "must be a seat id like A5"
	case "phone":
		return "must be a valid phone number"
	case "price":
		return "must not be negative"
	default:
		return "is invalid"
	}
}
