//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"cellar-shop/internal/domain/stock"
	"cellar-shop/internal/handler/httperr"
	"cellar-shop/internal/infra"
	"cellar-shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	notFound := errs.Mark(errs.New("order not found"), errs.ErrNotFound)

	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantDetail any
	}{
		{
			name:       "validation names the field",
			err:        errs.NewValidationError("items[2].quantity", "must be positive"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "items[2].quantity: must be positive",
			wantDetail: httperr.FieldDetail{Field: "items[2].quantity"},
		},
		{
			name:       "wrapped validation",
			err:        errs.Wrap(errs.NewValidationError("size", "size required"), "add item"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "size: size required",
			wantDetail: httperr.FieldDetail{Field: "size"},
		},
		{
			name:       "forbidden",
			err:        errs.Mark(errs.New("cart item belongs to another session"), errs.ErrForbidden),
			wantStatus: http.StatusForbidden,
			wantMsg:    "cart item belongs to another session",
		},
		{
			name:       "not found",
			err:        notFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "order not found",
		},
		{
			name:       "conflict",
			err:        errs.Mark(errors.New("cannot cancel at this stage"), errs.ErrConflict),
			wantStatus: http.StatusConflict,
			wantMsg:    "cannot cancel at this stage",
		},
		{
			name:       "insufficient stock carries detail",
			err:        errs.Wrap(&stock.InsufficientStockError{Size: stock.Size75cl, Available: 1, Requested: 3}, "place order"),
			wantStatus: http.StatusConflict,
			wantMsg:    "insufficient stock for 75CL: available 1, requested 3",
			wantDetail: httperr.StockDetail{Available: 1, Requested: 3, Size: "75CL"},
		},
		{
			name:       "retryable collaborator",
			err:        &errs.CollaboratorError{Collaborator: "carrier", Op: "create_shipment", StatusCode: 503, Retryable: true},
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "carrier is temporarily unavailable",
		},
		{
			name:       "business collaborator failure",
			err:        &errs.CollaboratorError{Collaborator: "carrier", Op: "create_shipment", StatusCode: 400},
			wantStatus: http.StatusBadGateway,
			wantMsg:    "carrier request failed",
		},
		{
			name:       "database failure is hidden",
			err:        infra.RepositoryError{Kind: infra.KindDBFailure},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg, detail := httperr.Classify(tc.err)

			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMsg, msg)
			assert.Equal(t, tc.wantDetail, detail)
		})
	}
}
