package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// bangladeshi mobile numbers, with or without the country prefix
var bdPhoneRe = regexp.MustCompile(`^(?:\+88|88)?(?:01[3-9]\d{8})$`)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags and the custom bdphone rule.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("bdphone", func(fl validator.FieldLevel) bool {
			return bdPhoneRe.MatchString(fl.Field().String())
		})
		// password bounds from the account schema
		v.RegisterAlias("pwd", "min=5,max=20")
		v.RegisterAlias("personname", "min=3,max=20")
	}
}

// ToDetails converts validation/binding errors into a map[field]message
// suitable for the envelope's error field.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min", "personname", "pwd":
		if fe.Tag() == "pwd" {
			return "must be between 5 and 20 characters"
		}
		return "is too short"
	case "max":
		return "is too long"
	case "bdphone":
		return "must be a valid bangladeshi phone number"
	case "oneof":
		return "must be one of " + fe.Param()
	case "uuid":
		return "must be a valid uuid"
	case "url":
		return "must be a valid URL"
	case "gt", "gte":
		return "is too small"
	case "lt", "lte":
		return "is too large"
	default:
		return "is invalid"
	}
}
