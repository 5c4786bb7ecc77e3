package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/domain/validation"
	"e-commerce.backend/pkg/logger"
)

// FieldError is one rejected request field
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// fieldMessage renders a validator failure. Credential tags carry the
// wording of the rule that failed.
func fieldMessage(fe validator.FieldError) string {
	value := fmt.Sprint(fe.Value())
	switch fe.Tag() {
	case "required":
		return "field required"
	case "shop_email":
		if err := validation.CheckEmail(value); err != nil {
			return err.Error()
		}
	case "shop_password":
		if err := validation.CheckPassword(value); err != nil {
			return err.Error()
		}
	case "oneof":
		return "value is not a valid enumeration member; permitted: " + fe.Param()
	case "gte":
		return "ensure this value is greater than or equal to " + fe.Param()
	case "gt":
		return "ensure this value is greater than " + fe.Param()
	}
	return fe.Error()
}

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Message sends a bare JSON string
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, msg)
}

// Error sends an error response. Anything that is not an AppError, and any
// AppError in the 5xx range, is logged and reported with a generic detail.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	if appErr.Status >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "Request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", appErr.Status),
			zap.Error(err),
		)
	}

	c.AbortWithStatusJSON(appErr.Status, gin.H{
		"detail": appErr.Message,
		"code":   appErr.Code,
	})
}

// ValidationError sends 422 with one entry per rejected field
func ValidationError(c *gin.Context, err error) {
	var details []FieldError
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Msg: fieldMessage(fe)})
		}
	} else {
		details = []FieldError{{Field: "body", Msg: err.Error()}}
	}

	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": details})
}

// InvalidField sends 422 for a single rejected parameter
func InvalidField(c *gin.Context, field, msg string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": []FieldError{{Field: field, Msg: msg}}})
}
