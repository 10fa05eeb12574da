package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/pkg/logger"
)

func init() {
	// Report request field names (json or form tag) instead of Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(requestFieldName)
	}
}

func requestFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must contain at least " + e.Param() + " item(s)"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

// BindingErrorMessage turns a gin binding error into a client-facing message.
// Errors that are not validator errors, such as malformed JSON, yield fallback.
func BindingErrorMessage(err error, fallback string) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fallback
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatValidationError(fe))
	}
	return strings.Join(msgs, "; ")
}

// jsonTypeName describes the JSON shape expected for t
func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}

// HandleBindingError answers a failed ShouldBind with 400. Missing fields yield
// requiredMsg with the failing fields as details; a JSON value of the wrong type
// names the field and the expected type.
func HandleBindingError(c *gin.Context, err error, requiredMsg string) {
	logger.Warn().Err(err).
		Str("path", c.FullPath()).
		Str("requestID", c.GetString(RequestIDKey)).
		Msg("Invalid request payload")

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &verrs):
		c.AbortWithStatusJSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, requiredMsg).
				WithDetails(BindingErrorMessage(err, requiredMsg)))
	case errors.As(err, &typeErr) && typeErr.Field != "":
		RespondWithError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed,
			typeErr.Field+" must be "+jsonTypeName(typeErr.Type))
	default:
		RespondWithError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, requiredMsg)
	}
}
