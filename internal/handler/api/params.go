package api

import (
	"strconv"

	"cellar-shop/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pathUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errs.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// queryInt returns def when the parameter is absent.
func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

func bindError(err error) error {
	return errs.Mark(errs.Wrap(err, "invalid request body"), errs.ErrValidation)
}
