package httpx

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("isbn", validateISBN)
}

func validateISBN(fl validator.FieldLevel) bool {
	isbn := fl.Field().String()
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")

	if len(isbn) == 10 {
		matched, _ := regexp.MatchString(`^\d{9}[\dX]$`, isbn)
		return matched
	}
	if len(isbn) == 13 {
		matched, _ := regexp.MatchString(`^\d{13}$`, isbn)
		return matched
	}
	return false
}

// ValidateStruct runs the struct's validate tags and returns one message per
// failing field, empty when the input is well-formed.
func ValidateStruct(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var messages []string
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		fieldName := strings.ToLower(field[:1]) + field[1:]

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", fieldName)
		case "max":
			message = fmt.Sprintf("%s cannot exceed %s characters", fieldName, param)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", fieldName, param)
		case "isbn":
			message = fmt.Sprintf("%s must be a valid ISBN (10 or 13 digits)", fieldName)
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", fieldName, strings.Join(strings.Fields(param), ", "))
		case "gte":
			message = fmt.Sprintf("%s must be %s or greater", fieldName, param)
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", fieldName, param)
		default:
			message = fmt.Sprintf("%s is invalid", fieldName)
		}

		messages = append(messages, message)
	}

	return messages
}
