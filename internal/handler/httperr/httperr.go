package httperr

import (
	"errors"
	"net/http"

	"cellar-shop/internal/domain/stock"
	"cellar-shop/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// StockDetail is attached to insufficient stock responses.
type StockDetail struct {
	Available int    `json:"available"`
	Requested int    `json:"requested"`
	Size      string `json:"size,omitempty"`
}

// FieldDetail names the offending request field.
type FieldDetail struct {
	Field string `json:"field"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort classifies err and writes the matching response.
func Abort(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	AbortWithError(c, status, err, msg, detail)
}

// Classify maps a usecase error onto status, public message and detail.
// Insufficient stock is checked before conflict so the detail survives.
func Classify(err error) (int, string, any) {
	var (
		insufficient *stock.InsufficientStockError
		validation   *errs.ValidationError
		collaborator *errs.CollaboratorError
	)
	switch {
	case errors.As(err, &insufficient):
		return http.StatusConflict, insufficient.Error(), StockDetail{
			Available: insufficient.Available,
			Requested: insufficient.Requested,
			Size:      insufficient.Size.String(),
		}
	case errors.As(err, &validation):
		var detail any
		if validation.Field != "" {
			detail = FieldDetail{Field: validation.Field}
		}
		return http.StatusBadRequest, validation.Error(), detail
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, err.Error(), nil
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, err.Error(), nil
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, err.Error(), nil
	case errs.Is(err, errs.ErrInsufficientStock):
		return http.StatusConflict, err.Error(), nil
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, err.Error(), nil
	case errors.As(err, &collaborator):
		if collaborator.Retryable {
			return http.StatusServiceUnavailable, collaborator.Collaborator + " is temporarily unavailable", nil
		}
		return http.StatusBadGateway, collaborator.Collaborator + " request failed", nil
	}
	return http.StatusInternalServerError, "Internal server error", nil
}
