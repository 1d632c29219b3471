// AngelaMos | 2026
// validate.go

package auth

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/courtside/auth-api/internal/core"
)

var phonePattern = regexp.MustCompile(
	`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,9}$`,
)

// NewValidator builds the validator shared by all auth DTOs. Field names in
// reported errors are the JSON names, matching what the client sent.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	//nolint:errcheck // registration only fails for nil functions
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseBirthdate(fl.Field().String())
		return err == nil
	})

	//nolint:errcheck
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	//nolint:errcheck
	_ = v.RegisterValidation("has_upper", func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), unicode.IsUpper)
	})

	//nolint:errcheck
	_ = v.RegisterValidation("has_lower", func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), unicode.IsLower)
	})

	//nolint:errcheck
	_ = v.RegisterValidation("has_digit", func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), unicode.IsDigit)
	})

	return v
}

// ParseBirthdate accepts an ISO calendar date, with or without a time part.
func ParseBirthdate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

var fieldMessages = map[string]map[string]string{
	"firstName": {
		"required": "First name is required",
		"min":      "First name must be at least 2 characters",
	},
	"lastName": {
		"required": "Last name is required",
		"min":      "Last name must be at least 2 characters",
	},
	"email": {
		"required": "Email is required",
		"email":    "Invalid email address",
	},
	"birthdate": {
		"required": "Birthdate is required",
		"isodate":  "Invalid date format",
	},
	"phoneNumber": {
		"required": "Phone number is required",
		"phone":    "Invalid phone number format",
	},
	"password": {
		"required":  "Password is required",
		"min":       "Password must be at least 8 characters",
		"has_upper": "Password must contain at least one uppercase letter",
		"has_lower": "Password must contain at least one lowercase letter",
		"has_digit": "Password must contain at least one number",
	},
}

// FieldErrors flattens a validator error into the aggregated field/message
// list the error envelope carries. All failing fields are reported, not just
// the first.
func FieldErrors(err error) []core.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []core.FieldError{{Field: "general", Message: err.Error()}}
	}

	details := make([]core.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, core.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	if byTag, ok := fieldMessages[fe.Field()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}

	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " is too long"
	default:
		return fe.Field() + " is invalid"
	}
}
