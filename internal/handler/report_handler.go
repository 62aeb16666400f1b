package handler

import (
	"net/http"
	"strconv"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/service"
	"github.com/aakshay001/MOOFUs-Billing-APP/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/api/reports")
	{
		reports.GET("/sales", h.SalesSummary)
		reports.GET("/customers/:id", h.CustomerLedger)
	}
}

// SalesSummary aggregates sales over the filtered bill set
// @Summary      Sales summary
// @Description  Returns bill count, total sales, paid and pending amounts for the filtered bills
// @Tags         reports
// @Produce      json
// @Param        fy           query     string  false  "Financial year (e.g. 2024-2025)"
// @Param        status       query     string  false  "Payment status (Pending, Paid, Partially Paid)"
// @Param        customer_id  query     int     false  "Customer ID"
// @Success      200          {object}  response.Response{data=service.SalesSummary}
// @Failure      500          {object}  response.Response
// @Router       /api/reports/sales [get]
func (h *ReportHandler) SalesSummary(c *gin.Context) {
	customerID, _ := strconv.Atoi(c.Query("customer_id"))

	summary, err := h.reportService.SalesSummary(c.Request.Context(), service.SalesSummaryFilter{
		FY:            c.Query("fy"),
		PaymentStatus: c.Query("status"),
		CustomerID:    uint(customerID),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// CustomerLedger returns one customer's billing history and balances
// @Summary      Customer ledger
// @Description  Returns a customer's invoice count, totals, outstanding amount and bill list
// @Tags         reports
// @Produce      json
// @Param        id   path      int  true  "Customer ID"
// @Success      200  {object}  response.Response{data=service.CustomerLedger}
// @Failure      404  {object}  response.Response
// @Router       /api/reports/customers/{id} [get]
func (h *ReportHandler) CustomerLedger(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid customer ID"))
		return
	}

	ledger, err := h.reportService.CustomerLedger(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, ledger))
}
