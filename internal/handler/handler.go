package handler

import (
	"errors"
	"net/http"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/service"
	"github.com/aakshay001/MOOFUs-Billing-APP/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps the service sentinels to HTTP statuses: ErrNotFound to
// 404, validation and configuration problems to 400, everything else 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrCompanyNotConfigured):
		status = http.StatusBadRequest
	}
	c.JSON(status, response.Error(status, err.Error()))
}
