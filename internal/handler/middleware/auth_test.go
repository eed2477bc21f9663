//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"cellar-shop/internal/domain/user"
	"cellar-shop/internal/handler/middleware"
	"cellar-shop/internal/usecase/shared"
	"cellar-shop/tests/common/httptest"
	usecasemock "cellar-shop/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	validator *usecasemock.MockTokenValidator
	userID    uuid.UUID
	seen      shared.Actor
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.validator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.userID = uuid.New()
	s.seen = shared.Actor{}

	m := middleware.NewAuthMiddleware(s.validator)
	capture := func(c *gin.Context) {
		s.seen = middleware.GetActor(c)
		c.Status(http.StatusOK)
	}

	s.router.GET("/private", m.RequireAuth(), capture)
	s.router.GET("/admin", m.RequireAuth(), m.RequireAdmin(), capture)
	s.router.GET("/optional", m.OptionalAuth(), capture)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("valid bearer token sets the actor", func() {
		s.validator.EXPECT().ValidateToken("good").Return(s.userID, user.RoleCustomer, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "good")

		s.Equal(http.StatusOK, rec.Code)
		s.Require().NotNil(s.seen.UserID)
		s.Equal(s.userID, *s.seen.UserID)
		s.Equal(user.RoleCustomer, s.seen.Role)
	})

	s.Run("missing token is 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("invalid token is 401", func() {
		s.validator.EXPECT().ValidateToken("bad").Return(uuid.Nil, user.Role(""), errors.New("expired"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "bad")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireAdmin() {
	s.Run("customer is forbidden", func() {
		s.validator.EXPECT().ValidateToken("customer").Return(s.userID, user.RoleCustomer, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "customer")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("admin passes", func() {
		s.validator.EXPECT().ValidateToken("admin").Return(s.userID, user.RoleAdmin, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "admin")
		s.Equal(http.StatusOK, rec.Code)
		s.True(s.seen.IsAdmin())
	})
}

func (s *AuthMiddlewareTestSuite) TestOptionalAuth() {
	s.Run("no token continues as guest", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/optional", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Nil(s.seen.UserID)
	})

	s.Run("invalid token continues as guest", func() {
		s.validator.EXPECT().ValidateToken("stale").Return(uuid.Nil, user.Role(""), errors.New("expired"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/optional", nil, "stale")

		s.Equal(http.StatusOK, rec.Code)
		s.Nil(s.seen.UserID)
	})
}
