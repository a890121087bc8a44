package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/devconnect/devconnect-api/pkg/response"
)

// Init configures the global validator used by Gin's binding.
// Errors are reported against the JSON tag name so the wire-level field
// labels match the request payload.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// labels maps json field names to the human labels used in error messages.
// Fields not listed here fall back to a capitalized form of the tag.
var labels = map[string]string{
	"fieldofstudy": "Field of study",
}

func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// ToErrorList converts binding/validation errors into the API's
// {"errors":[{"msg":"..."}]} list.
func ToErrorList(err error) []response.ErrorItem {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return []response.ErrorItem{{Msg: "Invalid JSON payload"}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]response.ErrorItem, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, response.ErrorItem{Msg: formatFieldError(fe)})
		}
		return out
	}

	return []response.ErrorItem{{Msg: "Invalid payload"}}
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label(fe.Field()) + " is required"
	case "email":
		return "Please include a valid email"
	case "min":
		return "Please enter a minimum of " + fe.Param() + " characters"
	case "max":
		return label(fe.Field()) + " must be at most " + fe.Param() + " characters"
	case "url":
		return label(fe.Field()) + " must be a valid URL"
	default:
		return label(fe.Field()) + " is invalid"
	}
}
