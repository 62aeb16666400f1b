package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/database"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/model"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/repository"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func setupStockRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := setupHandlerDB(t)

	svc := service.NewStockService(
		repository.NewProductRepository(db),
		repository.NewBatchRepository(db),
		repository.NewStockMovementRepository(db),
		repository.NewTransactionManager(db),
		nil,
	)

	router := gin.New()
	NewStockHandler(svc).RegisterRoutes(&router.RouterGroup)
	return router, db
}

func TestAdjustStockEndpoint(t *testing.T) {
	t.Run("SET accepts an absolute level of zero", func(t *testing.T) {
		router, db := setupStockRouter(t)
		product := &model.Product{Name: "Paneer 200g", Price: decimal.NewFromInt(80), Stock: 15}
		require.NoError(t, db.Create(product).Error)

		rec := postJSON(t, router, "/api/stock/adjust", gin.H{
			"product_id": product.ID,
			"action":     "SET",
			"quantity":   0,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got model.Product
		require.NoError(t, db.First(&got, product.ID).Error)
		assert.Equal(t, 0, got.Stock)

		var movement model.StockMovement
		require.NoError(t, db.First(&movement).Error)
		assert.Equal(t, model.MovementAdjustSet, movement.MovementType)
		assert.Equal(t, -15, movement.Quantity)
	})

	t.Run("ADD with quantity zero is still rejected", func(t *testing.T) {
		router, db := setupStockRouter(t)
		product := &model.Product{Name: "Paneer 200g", Price: decimal.NewFromInt(80), Stock: 15}
		require.NoError(t, db.Create(product).Error)

		rec := postJSON(t, router, "/api/stock/adjust", gin.H{
			"product_id": product.ID,
			"action":     "ADD",
			"quantity":   0,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative quantity fails binding", func(t *testing.T) {
		router, db := setupStockRouter(t)
		product := &model.Product{Name: "Paneer 200g", Price: decimal.NewFromInt(80), Stock: 15}
		require.NoError(t, db.Create(product).Error)

		rec := postJSON(t, router, "/api/stock/adjust", gin.H{
			"product_id": product.ID,
			"action":     "REMOVE",
			"quantity":   -3,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
