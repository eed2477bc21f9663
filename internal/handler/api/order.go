package api

import (
	"net/http"

	reqdto "cellar-shop/internal/handler/dto/request"
	resdto "cellar-shop/internal/handler/dto/response"
	"cellar-shop/internal/handler/httperr"
	"cellar-shop/internal/handler/middleware"
	"cellar-shop/internal/usecase/commands"
	"cellar-shop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Checkout
// @Description Create an order. A repeated paymentReference returns the first order.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout"
// @Success 201 {object} resdto.CheckoutResponse
// @Success 200 {object} resdto.CheckoutResponse "Replayed payment reference"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, bindError(err))
		return
	}

	result, err := h.cmds.PlaceOrder(c.Request.Context(), req.ToPlacement(), middleware.GetActor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromPlaceOrderResult(result))
}

// @Summary Get order
// @Description Owner or admin only
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{orderId} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	view, err := h.q.GetOrder(c.Request.Context(), c.Param("orderId"), middleware.GetActor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Track order
// @Description Full detail for the owner, status summary for everyone else
// @Tags orders
// @Produce json
// @Param code path string true "Tracking code"
// @Success 200 {object} resdto.TrackingSummaryResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/track/{code} [get]
func (h *OrderHandler) Track(c *gin.Context) {
	result, err := h.q.TrackByCode(c.Request.Context(), c.Param("code"), middleware.GetActor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromTrackingResult(result)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel order
// @Description Owner only; other callers get 404
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param code path string true "Tracking code"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/track/{code}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	result, err := h.cmds.CancelByTrackingCode(c.Request.Context(), c.Param("code"), middleware.GetActor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusChange(result))
}
