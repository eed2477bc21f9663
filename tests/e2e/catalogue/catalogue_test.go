//go:build e2e

package catalogue_test

import (
	"fmt"
	"net/http"
	"testing"

	resdto "cellar-shop/internal/handler/dto/response"
	"cellar-shop/tests/common/builder"
	"cellar-shop/tests/common/dbtest"
	"cellar-shop/tests/common/httptest"
	"cellar-shop/tests/common/testutil"
	"cellar-shop/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	productsURL      = "/api/products"
	productURL       = "/api/products/%s"
	adminProductsURL = "/api/admin/products"
	adminStockURL    = "/api/admin/products/%s/stock"
	adminSizesURL    = "/api/admin/products/%s/sizes"
)

type CatalogueSuite struct {
	e2e.SharedSuite
}

func TestCatalogueSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CatalogueSuite))
}

func (s *CatalogueSuite) TestCreateProduct() {
	s.Run("admin creates a sized product and it shows in the catalogue", func() {
		t := s.T()
		token := s.JWT.Admin(t)

		body := builder.NewProductBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminProductsURL, body, token)

		var created resdto.CreateProductResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, 6, created.TotalStock)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(productURL, created.ID), nil, "")
		var got resdto.ProductResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		s.Equal("Tawny Port", got.Name)
		s.Equal(resdto.Money(2450), got.PriceCents)
		s.True(got.HasSizes)
		s.Equal(5, got.Sizes["75CL"])
		s.Equal(1, got.Sizes["1_5L"])
		s.Equal(0, got.Sizes["5CL"])
	})

	s.Run("unknown size label is rejected", func() {
		t := s.T()
		token := s.JWT.Admin(t)

		body := testutil.DtoMap(t, builder.NewProductBuilder().BuildCreateRequestDTO(),
			testutil.Field("sizes", map[string]int{"magnum": 3}))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminProductsURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("customers cannot create products", func() {
		t := s.T()
		_, token := s.JWT.Customer(t)

		body := builder.NewProductBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminProductsURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *CatalogueSuite) TestListProducts() {
	s.Run("lists products ordered by name with paging", func() {
		t := s.T()
		dbtest.CreateTestProduct(t, s.DB, "Vermouth", 1599, nil, 12)
		dbtest.CreateTestProduct(t, s.DB, "Amontillado", 1899, map[string]int{"75CL": 4}, 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+"?limit=1", nil, "")
		var page resdto.ProductListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		s.Equal(int64(2), page.Total)
		s.Equal(1, page.Limit)
		require.Len(t, page.Items, 1)
		s.Equal("Amontillado", page.Items[0].Name)
	})

	s.Run("unknown product is 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(productURL, "0b7f7d7e-58c4-4f7e-9d4c-3c5a0f1b2a99"), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("request ids are echoed or minted", func() {
		t := s.T()
		w := httptest.PerformRawRequest(t, s.Router, http.MethodGet, productsURL, nil,
			map[string]string{"X-Request-ID": "req-e2e-1"})
		s.Equal(http.StatusOK, w.Code, w.Body.String())
		httptest.AssertHeaders(t, w, map[string]string{"X-Request-ID": "req-e2e-1"})

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL, nil, "")
		httptest.AssertHeaders(t, w, map[string]string{"X-Request-ID": ""})
	})
}

func (s *CatalogueSuite) TestStockMaintenance() {
	s.Run("replacing stock overwrites the ledger", func() {
		t := s.T()
		token := s.JWT.Admin(t)
		id := dbtest.CreateTestProduct(t, s.DB, "Fino", 1299, map[string]int{"75CL": 2}, 0)

		body := map[string]any{"sizes": map[string]int{"75cl": 9, "35cl": 4}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(adminStockURL, id), body, token)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())

		s.Equal(9, dbtest.StockQuantity(t, s.DB, id, "75CL"))
		s.Equal(4, dbtest.StockQuantity(t, s.DB, id, "35CL"))
	})

	s.Run("adjusting sizes touches only the given sizes", func() {
		t := s.T()
		token := s.JWT.Admin(t)
		id := dbtest.CreateTestProduct(t, s.DB, "Oloroso", 2199, map[string]int{"75CL": 2, "35CL": 1}, 0)

		body := map[string]any{"sizes": map[string]int{"75CL": 7}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(adminSizesURL, id), body, token)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())

		s.Equal(7, dbtest.StockQuantity(t, s.DB, id, "75CL"))
		s.Equal(1, dbtest.StockQuantity(t, s.DB, id, "35CL"))
	})
}
