package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/service"
	"github.com/aakshay001/MOOFUs-Billing-APP/pkg/pagination"
	"github.com/aakshay001/MOOFUs-Billing-APP/pkg/response"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingService service.BillingService
}

func NewBillingHandler(billingService service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Bill numbers contain slashes (INV/2024-2025/1), so the bill-scoped routes
// use a wildcard segment instead of a plain path param.
func (h *BillingHandler) RegisterRoutes(router *gin.RouterGroup) {
	bills := router.Group("/api/bills")
	{
		bills.POST("", h.CreateBill)
		bills.GET("", h.ListBills)
		bills.GET("/view/*bill_no", h.GetBill)
		bills.PUT("/edit/*bill_no", h.EditBill)
		bills.GET("/document/*bill_no", h.GetBillDocument)
	}
}

func billNoParam(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("bill_no"), "/")
}

// CreateBill finalizes a cart into a tax invoice
// @Summary      Create bill
// @Description  Finalizes a cart into a numbered tax invoice, decrements stock and renders the PDF
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateBillRequest  true  "Create Bill Payload"
// @Success      201      {object}  response.Response{data=service.BillResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/bills [post]
func (h *BillingHandler) CreateBill(c *gin.Context) {
	var req service.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, bill))
}

// ListBills returns a paginated, filterable list of bills
// @Summary      List bills
// @Description  Retrieves bills filtered by financial year, payment status and customer
// @Tags         bills
// @Produce      json
// @Param        fy           query     string  false  "Financial year (e.g. 2024-2025)"
// @Param        status       query     string  false  "Payment status (Pending, Paid, Partially Paid)"
// @Param        customer_id  query     int     false  "Customer ID"
// @Param        page         query     int     false  "Page number (default 1)"
// @Param        limit        query     int     false  "Number of items per page (default 20)"
// @Success      200          {object}  response.Response{data=object}
// @Failure      500          {object}  response.Response
// @Router       /api/bills [get]
func (h *BillingHandler) ListBills(c *gin.Context) {
	params := pagination.Parse(c)
	customerID, _ := strconv.Atoi(c.Query("customer_id"))

	bills, total, err := h.billingService.ListBills(c.Request.Context(), service.BillFilter{
		FY:            c.Query("fy"),
		PaymentStatus: c.Query("status"),
		CustomerID:    uint(customerID),
		Page:          params.Page,
		Limit:         params.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"bills": bills,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	}))
}

// GetBill returns one bill with its items
// @Summary      Get bill
// @Description  Retrieves a bill with items and customer by bill number
// @Tags         bills
// @Produce      json
// @Param        bill_no  path      string  true  "Bill number (INV/fy/seq)"
// @Success      200      {object}  response.Response{data=service.BillResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/bills/view/{bill_no} [get]
func (h *BillingHandler) GetBill(c *gin.Context) {
	bill, err := h.billingService.GetBill(c.Request.Context(), billNoParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, bill))
}

// EditBill replaces a bill's items and recomputes its totals
// @Summary      Edit bill
// @Description  Replaces the item set wholesale, recomputes totals under the stored tax mode and re-renders the PDF. Stock is reconciled only when reconcile_stock is set.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        bill_no  path      string                   true  "Bill number (INV/fy/seq)"
// @Param        payload  body      service.EditBillRequest  true  "Edit Bill Payload"
// @Success      200      {object}  response.Response{data=service.BillResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/bills/edit/{bill_no} [put]
func (h *BillingHandler) EditBill(c *gin.Context) {
	var req service.EditBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	bill, err := h.billingService.EditBill(c.Request.Context(), billNoParam(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, bill))
}

// GetBillDocument serves the stored invoice PDF
// @Summary      Download bill PDF
// @Description  Serves the rendered invoice document for a bill
// @Tags         bills
// @Produce      application/pdf
// @Param        bill_no  path      string  true  "Bill number (INV/fy/seq)"
// @Success      200      {file}    file
// @Failure      404      {object}  response.Response
// @Router       /api/bills/document/{bill_no} [get]
func (h *BillingHandler) GetBillDocument(c *gin.Context) {
	path, err := h.billingService.BillDocumentPath(c.Request.Context(), billNoParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.FileAttachment(path, strings.ReplaceAll(billNoParam(c), "/", "_")+".pdf")
}
