package handler

import (
	"net/http"
	"testing"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/model"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/repository"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubDocRenderer struct{}

func (stubDocRenderer) RenderInvoice(doc service.InvoiceDocument) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

type billingRouterFixture struct {
	router   *gin.Engine
	db       *gorm.DB
	customer *model.Customer
	ghee     *model.Product
	paneer   *model.Product
}

func setupBillingRouter(t *testing.T) *billingRouterFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := setupHandlerDB(t)

	require.NoError(t, db.Create(&model.Company{Name: "Moo Foods", GSTIN: "29ABCDE1234F1Z5", Address: "12 Market Road"}).Error)

	customer := &model.Customer{Name: "Ravi Stores", Phone: "9000000001"}
	require.NoError(t, db.Create(customer).Error)

	ghee := &model.Product{Name: "Ghee 500ml", Price: decimal.NewFromInt(100), GSTRate: decimal.NewFromInt(18), Stock: 20}
	require.NoError(t, db.Create(ghee).Error)
	paneer := &model.Product{Name: "Paneer 200g", Price: decimal.NewFromInt(80), GSTRate: decimal.NewFromInt(5), Stock: 10}
	require.NoError(t, db.Create(paneer).Error)

	svc := service.NewBillingService(
		repository.NewBillRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewProductRepository(db),
		repository.NewBatchRepository(db),
		repository.NewStockMovementRepository(db),
		repository.NewCompanyRepository(db),
		repository.NewTransactionManager(db),
		stubDocRenderer{},
		nil,
		t.TempDir(),
	)

	router := gin.New()
	NewBillingHandler(svc).RegisterRoutes(&router.RouterGroup)
	return &billingRouterFixture{router: router, db: db, customer: customer, ghee: ghee, paneer: paneer}
}

func TestCreateBillEndpoint(t *testing.T) {
	t.Run("drops zero-quantity lines and bills the rest", func(t *testing.T) {
		f := setupBillingRouter(t)

		rec := postJSON(t, f.router, "/api/bills", gin.H{
			"customer_id": f.customer.ID,
			"tax_mode":    "NO_TAX",
			"items": []gin.H{
				{"product_id": f.ghee.ID, "qty": 0},
				{"product_id": f.paneer.ID, "qty": 2},
			},
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var items []model.BillItem
		require.NoError(t, f.db.Find(&items).Error)
		require.Len(t, items, 1)
		assert.Equal(t, "Paneer 200g", items[0].Product)
		assert.Equal(t, 2, items[0].Qty)

		// The zeroed line never touched stock.
		var ghee model.Product
		require.NoError(t, f.db.First(&ghee, f.ghee.ID).Error)
		assert.Equal(t, 20, ghee.Stock)
	})

	t.Run("a cart of only zero-quantity lines is a validation error", func(t *testing.T) {
		f := setupBillingRouter(t)

		rec := postJSON(t, f.router, "/api/bills", gin.H{
			"customer_id": f.customer.ID,
			"tax_mode":    "GST",
			"items":       []gin.H{{"product_id": f.ghee.ID, "qty": 0}},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
