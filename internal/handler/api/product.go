package api

import (
	"net/http"

	"cellar-shop/internal/domain/pricing"
	reqdto "cellar-shop/internal/handler/dto/request"
	resdto "cellar-shop/internal/handler/dto/response"
	"cellar-shop/internal/handler/httperr"
	"cellar-shop/internal/usecase/commands"
	"cellar-shop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	cmds commands.ProductCommands
	q    queries.ProductQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary List products
// @Description List the catalogue with per-size stock and total stock
// @Tags products
// @Produce json
// @Param limit query int false "Max items (default 20, max 100)"
// @Param offset query int false "Items to skip"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} httperr.Response
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	page, err := h.q.ListProducts(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromProductPage(page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.q.GetProduct(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromProductView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create product
// @Description Sized when sizes is present, otherwise sizeless with stock
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} resdto.CreateProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, bindError(err))
		return
	}

	priceCents := pricing.ToCents(decimal.NewFromFloat(req.Price))
	result, err := h.cmds.CreateProduct(c.Request.Context(), req.ToCommand(priceCents))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateProductResponse{
		ID:         result.ProductID,
		TotalStock: result.TotalStock,
	})
}

// @Summary Replace product stock
// @Description Sized products take a full size map; sizeless products a scalar stock
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.ReplaceStockRequest true "Stock"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/products/{id}/stock [put]
func (h *ProductHandler) ReplaceStock(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.ReplaceStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, bindError(err))
		return
	}

	if err := h.cmds.ReplaceStock(c.Request.Context(), id, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Adjust product sizes
// @Description Merge a partial size map over the current stock
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.AdjustSizesRequest true "Sizes"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/products/{id}/sizes [patch]
func (h *ProductHandler) AdjustSizes(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.AdjustSizesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, bindError(err))
		return
	}

	if err := h.cmds.AdjustSizes(c.Request.Context(), id, req.Sizes); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
