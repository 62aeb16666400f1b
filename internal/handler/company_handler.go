package handler

import (
	"net/http"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/service"
	"github.com/aakshay001/MOOFUs-Billing-APP/pkg/response"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyService service.CompanyService
}

func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) RegisterRoutes(router *gin.RouterGroup) {
	company := router.Group("/api/company")
	{
		company.GET("", h.GetCompany)
		company.PUT("", h.SaveCompany)
		company.GET("/settings", h.GetSettings)
		company.PUT("/settings", h.SaveSettings)
	}
}

// GetCompany returns the seller profile
// @Summary      Get company profile
// @Description  Retrieves the singleton seller profile, creating it empty on first access
// @Tags         company
// @Produce      json
// @Success      200  {object}  response.Response{data=model.Company}
// @Failure      500  {object}  response.Response
// @Router       /api/company [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companyService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, company))
}

// SaveCompany updates the seller profile
// @Summary      Save company profile
// @Description  Updates the singleton seller profile printed on every invoice
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SaveCompanyRequest  true  "Company Payload"
// @Success      200      {object}  response.Response{data=model.Company}
// @Failure      400      {object}  response.Response
// @Router       /api/company [put]
func (h *CompanyHandler) SaveCompany(c *gin.Context) {
	var req service.SaveCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	company, err := h.companyService.Save(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, company))
}

// GetSettings returns the renderer settings
// @Summary      Get settings
// @Description  Retrieves the logo path and UPI id used by the invoice renderer
// @Tags         company
// @Produce      json
// @Success      200  {object}  response.Response{data=model.Settings}
// @Failure      500  {object}  response.Response
// @Router       /api/company/settings [get]
func (h *CompanyHandler) GetSettings(c *gin.Context) {
	settings, err := h.companyService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, settings))
}

// SaveSettings updates the renderer settings
// @Summary      Save settings
// @Description  Updates the logo path and UPI id used by the invoice renderer
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SaveSettingsRequest  true  "Settings Payload"
// @Success      200      {object}  response.Response{data=model.Settings}
// @Failure      400      {object}  response.Response
// @Router       /api/company/settings [put]
func (h *CompanyHandler) SaveSettings(c *gin.Context) {
	var req service.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	settings, err := h.companyService.SaveSettings(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, settings))
}
