package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

var validate = validator.New()

// ValidateUUIDParam rejects requests whose path parameter is not a UUID and
// stores the parsed value in the context under the parameter's name.
func ValidateUUIDParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(param)
		if err := validate.Var(raw, "required,uuid"); err != nil {
			HandleAPIError(c, apperrors.NewBadRequestError(param+" must be a valid UUID"))
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			HandleAPIError(c, apperrors.NewBadRequestError(param+" must be a valid UUID"))
			return
		}

		c.Set(param, id)
		c.Next()
	}
}

// UUIDParam returns the value stored by ValidateUUIDParam
func UUIDParam(c *gin.Context, param string) (uuid.UUID, bool) {
	v, ok := c.Get(param)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
