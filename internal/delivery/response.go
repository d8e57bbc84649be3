package delivery

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

// APIError is the error body for every non-2xx response. Violations is only
// present for structural request validation failures.
type APIError struct {
	Timestamp  time.Time        `json:"timestamp"`
	Status     int              `json:"status"`
	Error      string           `json:"error"`
	Message    string           `json:"message"`
	Path       string           `json:"path"`
	Violations []FieldViolation `json:"violations,omitempty"`
}

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func init() {
	// Report violations under the JSON field name, not the Go field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, status int, message string, violations []FieldViolation) {
	c.JSON(status, APIError{
		Timestamp:  time.Now().UTC(),
		Status:     status,
		Error:      http.StatusText(status),
		Message:    message,
		Path:       c.Request.URL.Path,
		Violations: violations,
	})
}

// writeDomainError translates a tagged business error into its HTTP status.
// Untagged errors surface as a generic 500 without leaking their cause.
func writeDomainError(c *gin.Context, err error) {
	status := statusForKind(domain.KindOf(err))
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Unexpected error"
	}
	writeError(c, status, message, nil)
}

// writeBindingError handles ShouldBindJSON failures: validator violations
// get a field-by-field breakdown, everything else is a plain 400.
func writeBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		violations := make([]FieldViolation, 0, len(validationErrs))
		for _, fe := range validationErrs {
			violations = append(violations, FieldViolation{Field: fe.Field(), Message: violationMessage(fe)})
		}
		writeError(c, http.StatusBadRequest, "Validation failed", violations)
		return
	}
	writeError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must have at least %s items or characters", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s items or characters", fe.Param())
	default:
		return "is invalid"
	}
}
