package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationErrors carries one message per failing field so handlers can
// return them all at once.
type ValidationErrors struct {
	Details []string
}

func (e *ValidationErrors) Error() string {
	return strings.Join(e.Details, ", ")
}

// ValidateStruct validates a request struct against its validate tags.
// Returns *ValidationErrors enumerating every failing field, or nil.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []string
	for _, err := range err.(validator.ValidationErrors) {
		field := strings.ToLower(err.Field())
		tag := err.Tag()
		param := err.Param()

		switch tag {
		case "required":
			details = append(details, field+" is required")
		case "min":
			details = append(details, field+" must be at least "+param)
		case "max":
			details = append(details, field+" must be at most "+param)
		case "email":
			details = append(details, field+" must be a valid email")
		case "gt":
			details = append(details, field+" must be greater than "+param)
		case "oneof":
			details = append(details, field+" must be one of: "+param)
		default:
			details = append(details, field+" is invalid")
		}
	}

	return &ValidationErrors{Details: details}
}
