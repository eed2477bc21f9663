//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"cellar-shop/internal/domain/cart"
	"cellar-shop/internal/domain/stock"
	"cellar-shop/internal/domain/user"
	"cellar-shop/internal/handler/api"
	resdto "cellar-shop/internal/handler/dto/response"
	"cellar-shop/internal/usecase/commands"
	"cellar-shop/tests/common/httptest"
	commandsmock "cellar-shop/tests/mock/commands"
	queriesmock "cellar-shop/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	userID       uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.userID = uuid.New()
	h := api.NewCartHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	g := s.router.Group("/cart", authMiddleware)
	g.GET("", h.Get)
	g.DELETE("", h.Clear)
	g.POST("/items", h.AddItem)
	g.PATCH("/items/:id", h.UpdateItem)
	g.DELETE("/items/:id", h.RemoveItem)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: lines with totals and null size for sizeless items", func() {
		c := cart.Cart{
			Lines: []cart.Line{
				{ItemID: uuid.New(), ProductID: uuid.New(), ProductName: "Tawny Port", Size: stock.Size75cl, Quantity: 2, UnitPriceCents: 2450, Available: 5},
				{ItemID: uuid.New(), ProductID: uuid.New(), ProductName: "Corkscrew", Quantity: 1, UnitPriceCents: 999, Available: 30},
			},
			TotalCents: 5899,
		}
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.userID).Return(c, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "token")

		var res resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Items, 2)
		s.Require().NotNil(res.Items[0].Size)
		s.Equal("75CL", *res.Items[0].Size)
		s.Nil(res.Items[1].Size)
		s.Contains(rec.Body.String(), `"lineTotal":49.00`)
		s.Contains(rec.Body.String(), `"total":58.99`)
	})

	s.Run("success: no session renders an empty list", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), s.userID).Return(cart.Empty(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[],"total":0.00}`, rec.Body.String())
	})

	s.Run("error: unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	productID := uuid.New()
	itemID := uuid.New()

	s.Run("success: 201 with new total", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req commands.AddItemRequest) (*commands.CartMutationResult, error) {
				s.Equal(productID, req.ProductID)
				s.Require().NotNil(req.Size)
				s.Equal("75cl", *req.Size)
				s.Equal(2, req.Quantity)
				return &commands.CartMutationResult{ItemID: itemID, TotalCents: 4900}, nil
			})

		body := map[string]any{"productId": productID, "size": "75cl", "quantity": 2}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", body, "token")

		var res resdto.CartMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(itemID, res.ItemID)
	})

	s.Run("error: insufficient stock carries available and requested", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, &stock.InsufficientStockError{Size: stock.Size1_5L, Available: 1, Requested: 3})

		body := map[string]any{"productId": productID, "size": "magnum", "quantity": 3}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", body, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "insufficient stock")
		s.Contains(rec.Body.String(), `"detail":{"available":1,"requested":3,"size":"1_5L"}`)
	})

	s.Run("error: missing productId", func() {
		body := map[string]any{"quantity": 1}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/items", body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request body")
	})
}

func (s *CartHandlerTestSuite) TestUpdateItem() {
	itemID := uuid.New()

	s.Run("success: absolute quantity", func() {
		s.mockCommands.EXPECT().SetItemQuantity(gomock.Any(), s.userID, itemID, 4).
			Return(&commands.CartMutationResult{ItemID: itemID, TotalCents: 9800}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items/"+itemID.String(), map[string]any{"quantity": 4}, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"total":98.00`)
	})

	s.Run("success: zero is forwarded so the item is removed", func() {
		s.mockCommands.EXPECT().SetItemQuantity(gomock.Any(), s.userID, itemID, 0).
			Return(&commands.CartMutationResult{ItemID: itemID}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items/"+itemID.String(), map[string]any{"quantity": 0}, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: item of another session", func() {
		s.mockCommands.EXPECT().SetItemQuantity(gomock.Any(), s.userID, itemID, 1).
			Return(nil, commands.ErrCartItemForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items/"+itemID.String(), map[string]any{"quantity": 1}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: quantity missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/cart/items/"+itemID.String(), map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *CartHandlerTestSuite) TestRemoveAndClear() {
	itemID := uuid.New()

	s.Run("remove: unknown item", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.userID, itemID).Return(nil, commands.ErrCartItemNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/"+itemID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "cart item not found")
	})

	s.Run("clear: 204", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any(), s.userID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
