package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorMap turns binding/validation errors into a field ->
// message map for structured 400 responses.
func ValidationErrorMap(err error) map[string]string {
	fieldErrors := map[string]string{}
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			fieldErrors[lowerFirst(e.Field())] = validationMessage(e)
		}
		return fieldErrors
	}
	fieldErrors["body"] = err.Error()
	return fieldErrors
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + e.Param() + " characters"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "uuid":
		return "must be a valid UUID"
	case "datetime":
		return "must match the format " + e.Param()
	default:
		return "failed validation on tag '" + e.Tag() + "'"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// BindAndValidate binds the request body to a struct. If binding or
// validation fails, it sends a structured 400 response and returns
// false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		ValidationFailed(c, ValidationErrorMap(err))
		return false
	}
	return true
}
