//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"cellar-shop/internal/handler/api"
	resdto "cellar-shop/internal/handler/dto/response"
	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/commands"
	"cellar-shop/internal/usecase/queries"
	"cellar-shop/tests/common/builder"
	"cellar-shop/tests/common/httptest"
	commandsmock "cellar-shop/tests/mock/commands"
	queriesmock "cellar-shop/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProductCommands
	mockQueries  *queriesmock.MockProductQueries
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProductCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	h := api.NewProductHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/products", h.List)
	s.router.GET("/products/:id", h.Get)
	s.router.POST("/admin/products", h.Create)
	s.router.PUT("/admin/products/:id/stock", h.ReplaceStock)
	s.router.PATCH("/admin/products/:id/sizes", h.AdjustSizes)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) TestList() {
	view := builder.NewProductBuilder().BuildView()

	s.Run("success: renders decimal price and derived total stock", func() {
		s.mockQueries.EXPECT().ListProducts(gomock.Any(), 5, 10).
			Return(&queries.ProductPage{Items: []*queries.ProductView{view}, Total: 11, Limit: 5, Offset: 10}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?limit=5&offset=10", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"price":24.50`)
		var res resdto.ProductListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Items, 1)
		s.Equal(6, res.Items[0].TotalStock)
		s.Equal(5, res.Items[0].Sizes["75CL"])
		s.Equal(0, res.Items[0].Sizes["5CL"])
		s.Equal(int64(11), res.Total)
	})

	s.Run("error: non-numeric limit is a 400 naming the parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?limit=ten", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "limit")
		s.Contains(rec.Body.String(), `"field":"limit"`)
	})
}

func (s *ProductHandlerTestSuite) TestGet() {
	view := builder.NewProductBuilder().Sizeless(12).BuildView()

	s.Run("success: sizeless product has no sizes object", func() {
		s.mockQueries.EXPECT().GetProduct(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+view.ID.String(), nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.NotContains(rec.Body.String(), `"sizes"`)
		s.Contains(rec.Body.String(), `"totalStock":12`)
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "id")
	})

	s.Run("error: unknown product", func() {
		s.mockQueries.EXPECT().GetProduct(gomock.Any(), view.ID).Return(nil, commands.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "product not found")
	})
}

func (s *ProductHandlerTestSuite) TestCreate() {
	b := builder.NewProductBuilder()

	s.Run("success: price converted to cents and sizes passed through", func() {
		s.mockCommands.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateProductRequest) (*commands.CreateProductResult, error) {
				s.Equal(int64(2450), req.PriceCents)
				s.Nil(req.Stock)
				var sizes map[string]int
				s.Require().NoError(json.Unmarshal(req.Sizes, &sizes))
				s.Equal(b.Sizes, sizes)
				return &commands.CreateProductResult{ProductID: b.ID, TotalStock: 6}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/products", b.BuildCreateRequestDTO(), "")

		var res resdto.CreateProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(b.ID, res.ID)
		s.Equal(6, res.TotalStock)
	})

	s.Run("success: explicit null sizes is treated as absent", func() {
		s.mockCommands.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateProductRequest) (*commands.CreateProductResult, error) {
				s.Nil(req.Sizes)
				s.Require().NotNil(req.Stock)
				s.Equal(3, *req.Stock)
				return &commands.CreateProductResult{ProductID: uuid.New(), TotalStock: 3}, nil
			})

		body := map[string]any{"name": "Corkscrew", "price": 9.99, "sizes": nil, "stock": 3}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/products", body, "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: validation failure names the field", func() {
		s.mockCommands.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
			Return(nil, errs.NewValidationError("sizes", `unknown size "9L"`))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/products", b.BuildCreateRequestDTO(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "sizes")
		s.Contains(rec.Body.String(), `"field":"sizes"`)
	})

	s.Run("error: malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/products", []int{1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request body")
	})
}

func (s *ProductHandlerTestSuite) TestReplaceStock() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().ReplaceStock(gomock.Any(), id, gomock.Any()).Return(nil)

		body := map[string]any{"sizes": map[string]int{"75cl": 2}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/products/"+id.String()+"/stock", body, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: scalar stock on a sized product", func() {
		s.mockCommands.EXPECT().ReplaceStock(gomock.Any(), id, gomock.Any()).
			Return(errs.NewValidationError("stock", "sized products take sizes"))

		body := map[string]any{"stock": 4}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/products/"+id.String()+"/stock", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "stock")
	})
}

func (s *ProductHandlerTestSuite) TestAdjustSizes() {
	id := uuid.New()

	s.Run("success: raw sizes forwarded", func() {
		s.mockCommands.EXPECT().AdjustSizes(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, sizes []byte) error {
				s.JSONEq(`{"magnum":2}`, string(sizes))
				return nil
			})

		body := map[string]any{"sizes": map[string]int{"magnum": 2}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/products/"+id.String()+"/sizes", body, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown product", func() {
		s.mockCommands.EXPECT().AdjustSizes(gomock.Any(), id, gomock.Any()).Return(commands.ErrProductNotFound)

		body := map[string]any{"sizes": map[string]int{"75CL": 1}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/products/"+id.String()+"/sizes", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
