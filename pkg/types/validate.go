package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks struct tags on v and flattens any failures into one
// readable error.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var messages []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Namespace()))
		case "gte":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", e.Namespace(), e.Param()))
		case "unique":
			messages = append(messages, fmt.Sprintf("%s entries must have unique %s", e.Namespace(), e.Param()))
		case "excludesall":
			messages = append(messages, fmt.Sprintf("%s must not contain any of %q", e.Namespace(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed validation: %s", e.Namespace(), e.Tag()))
		}
	}
	return fmt.Errorf("validation errors: %s", strings.Join(messages, "; "))
}
