package api

import (
	"net/http"

	"cellar-shop/internal/domain/order"
	reqdto "cellar-shop/internal/handler/dto/request"
	resdto "cellar-shop/internal/handler/dto/response"
	"cellar-shop/internal/handler/httperr"
	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/commands"
	"cellar-shop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminOrderHandler struct {
	orders    commands.OrderCommands
	shipments commands.ShipmentCommands
	q         queries.OrderQueries
}

func NewAdminOrderHandler(orders commands.OrderCommands, shipments commands.ShipmentCommands, q queries.OrderQueries) *AdminOrderHandler {
	return &AdminOrderHandler{orders: orders, shipments: shipments, q: q}
}

// @Summary List orders
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Max items (default 20, max 100)"
// @Param offset query int false "Items to skip"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/orders [get]
func (h *AdminOrderHandler) List(c *gin.Context) {
	var filter queries.OrderFilter
	if raw := c.Query("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			httperr.Abort(c, errs.NewValidationError("status", "unknown status"))
			return
		}
		filter.Status = &status
	}
	var err error
	if filter.Limit, err = queryInt(c, "limit", 0); err != nil {
		httperr.Abort(c, err)
		return
	}
	if filter.Offset, err = queryInt(c, "offset", 0); err != nil {
		httperr.Abort(c, err)
		return
	}

	page, err := h.q.ListOrders(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromOrderPage(page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update order status
// @Description Moves outside the forward table are recorded as overrides
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Status"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/orders/{orderId}/status [patch]
func (h *AdminOrderHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, bindError(err))
		return
	}

	result, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), req.Status, req.Note)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusChange(result))
}

// @Summary Create shipment
// @Description Book the order with the carrier
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 201 {object} resdto.ShipmentCreatedResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/orders/{orderId}/shipment [post]
func (h *AdminOrderHandler) CreateShipment(c *gin.Context) {
	result, err := h.shipments.CreateShipment(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromShipment(result))
}
