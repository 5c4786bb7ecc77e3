package handlers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"

	"e-commerce.backend/internal/domain/entities"
	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/interfaces/http/middleware"
	"e-commerce.backend/internal/interfaces/http/response"
)

const (
	msgRequired   = "field required"
	msgNotInteger = "value is not a valid integer"
	msgNotFloat   = "value is not a valid float"
)

func parseInt64(c *gin.Context, field, raw string) (int64, bool) {
	if raw == "" {
		response.InvalidField(c, field, msgRequired)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.InvalidField(c, field, msgNotInteger)
		return 0, false
	}
	return id, true
}

func queryInt64(c *gin.Context, field string) (int64, bool) {
	return parseInt64(c, field, c.Query(field))
}

func paramInt64(c *gin.Context, field string) (int64, bool) {
	return parseInt64(c, field, c.Param(field))
}

// queryFloat reads an optional finite float; absent yields an invalid null.Float64
func queryFloat(c *gin.Context, field string) (null.Float64, bool) {
	raw, present := c.GetQuery(field)
	if !present || raw == "" {
		return null.Float64{}, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		response.InvalidField(c, field, msgNotFloat)
		return null.Float64{}, false
	}
	return null.Float64From(f), true
}

// requireUser returns the session user or answers 401
func requireUser(c *gin.Context) (*entities.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return nil, false
	}
	return user, true
}
