package handler

import (
	"net/http"
	"strconv"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/service"
	"github.com/aakshay001/MOOFUs-Billing-APP/pkg/pagination"
	"github.com/aakshay001/MOOFUs-Billing-APP/pkg/response"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	stockService service.StockService
}

func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

func (h *StockHandler) RegisterRoutes(router *gin.RouterGroup) {
	stock := router.Group("/api/stock")
	{
		stock.POST("/batches", h.AddBatch)
		stock.GET("/batches", h.ListBatches)
		stock.POST("/adjust", h.AdjustStock)
		stock.GET("/movements", h.ListMovements)
		stock.GET("/low", h.LowStock)
	}
}

// AddBatch records incoming stock for a product batch
// @Summary      Add batch
// @Description  Creates or merges a product batch, raises product stock and journals an IN movement
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        payload  body      service.AddBatchRequest  true  "Add Batch Payload"
// @Success      201      {object}  response.Response{data=model.Batch}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/stock/batches [post]
func (h *StockHandler) AddBatch(c *gin.Context) {
	var req service.AddBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	batch, err := h.stockService.AddBatch(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, batch))
}

// ListBatches lists batches, optionally for a single product
// @Summary      List batches
// @Description  Retrieves batches, filtered to one product when product_id is given
// @Tags         stock
// @Produce      json
// @Param        product_id  query     int  false  "Product ID"
// @Param        page        query     int  false  "Page number (default 1)"
// @Param        limit       query     int  false  "Number of items per page (default 20)"
// @Success      200         {object}  response.Response{data=object}
// @Failure      500         {object}  response.Response
// @Router       /api/stock/batches [get]
func (h *StockHandler) ListBatches(c *gin.Context) {
	params := pagination.Parse(c)
	productID, _ := strconv.Atoi(c.Query("product_id"))

	batches, total, err := h.stockService.ListBatches(c.Request.Context(), uint(productID), params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"batches": batches,
		"total":   total,
		"page":    params.Page,
		"limit":   params.Limit,
	}))
}

// AdjustStock applies a manual stock correction
// @Summary      Adjust stock
// @Description  Applies an ADD, REMOVE or SET correction to a product's stock and journals the movement
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        payload  body      service.AdjustStockRequest  true  "Adjust Stock Payload"
// @Success      200      {object}  response.Response{data=model.Product}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/stock/adjust [post]
func (h *StockHandler) AdjustStock(c *gin.Context) {
	var req service.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	product, err := h.stockService.AdjustStock(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, product))
}

// ListMovements returns the stock movement history
// @Summary      List stock movements
// @Description  Retrieves the append-only movement ledger, newest first
// @Tags         stock
// @Produce      json
// @Param        product_id  query     int     false  "Product ID"
// @Param        type        query     string  false  "Movement type (IN, OUT, ADJUST_IN, ADJUST_OUT, ADJUST_SET)"
// @Param        page        query     int     false  "Page number (default 1)"
// @Param        limit       query     int     false  "Number of items per page (default 20)"
// @Success      200         {object}  response.Response{data=object}
// @Failure      500         {object}  response.Response
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *gin.Context) {
	params := pagination.Parse(c)
	productID, _ := strconv.Atoi(c.Query("product_id"))

	movements, total, err := h.stockService.ListMovements(c.Request.Context(), service.MovementFilter{
		ProductID:    uint(productID),
		MovementType: c.Query("type"),
		Page:         params.Page,
		Limit:        params.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"movements": movements,
		"total":     total,
		"page":      params.Page,
		"limit":     params.Limit,
	}))
}

// LowStock lists products below the low-stock threshold
// @Summary      Low stock products
// @Description  Retrieves products whose stock is below the alert threshold
// @Tags         stock
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Product}
// @Failure      500  {object}  response.Response
// @Router       /api/stock/low [get]
func (h *StockHandler) LowStock(c *gin.Context) {
	products, err := h.stockService.LowStockProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, products))
}
