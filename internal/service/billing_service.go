package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/billing"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/model"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/repository"
	ws "github.com/aakshay001/MOOFUs-Billing-APP/internal/websocket"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultTerms is printed on the invoice when the caller supplies none.
const DefaultTerms = "Goods once sold will not be taken back. E. & O.E."

// --- DTOs ---

type BillLineRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	// Qty carries no binding constraint: non-positive lines are dropped
	// from the cart in CreateBill rather than failing the whole request.
	Qty         int     `json:"qty"`
	Price       *string `json:"price"`    // overrides the product price snapshot
	DiscountPct *string `json:"discount"` // overrides the product default discount %
	FreeQty     *int    `json:"free"`     // overrides the product default free qty
	BatchNo     string  `json:"batch_no"` // optional batch to draw the quantity from
}

type CreateBillRequest struct {
	CustomerID    uint              `json:"customer_id" binding:"required"`
	BillDate      string            `json:"bill_date"` // YYYY-MM-DD, defaults to today
	TaxMode       string            `json:"tax_mode" binding:"required,oneof=GST IGST NO_TAX"`
	PaymentStatus string            `json:"payment_status"`
	Terms         string            `json:"terms"`
	Items         []BillLineRequest `json:"items" binding:"required,min=1,dive"`
}

// EditBillItemRequest is one replacement line. Lines reference products by
// the denormalized name snapshot, exactly as they are stored on the bill.
type EditBillItemRequest struct {
	Product     string `json:"product" binding:"required"`
	Qty         int    `json:"qty"`
	Price       string `json:"price" binding:"required"`
	GSTRate     string `json:"gst"`
	Mfg         string `json:"mfg"`
	Exp         string `json:"exp"`
	FreeQty     int    `json:"free"`
	DiscountPct string `json:"discount"`
	BatchNo     string `json:"batch_no"`
}

type EditBillRequest struct {
	Items         []EditBillItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentStatus string                `json:"payment_status"`
	// ReconcileStock applies the old-vs-new quantity delta to product and
	// batch stock and journals it as adjustment movements. Off by default:
	// the historical behavior is that edits never touch stock.
	ReconcileStock bool `json:"reconcile_stock"`
}

type BillItemResponse struct {
	Product     string `json:"product"`
	HSN         string `json:"hsn,omitempty"`
	BatchNo     string `json:"batch_no,omitempty"`
	Qty         int    `json:"qty"`
	Price       string `json:"price"`
	GSTRate     string `json:"gst"`
	Mfg         string `json:"mfg,omitempty"`
	Exp         string `json:"exp,omitempty"`
	FreeQty     int    `json:"free"`
	DiscountPct string `json:"discount"`
	Taxable     string `json:"taxable"`
	CGST        string `json:"cgst"`
	SGST        string `json:"sgst"`
	IGST        string `json:"igst"`
	Total       string `json:"total"`
}

type BillResponse struct {
	ID            uint               `json:"id"`
	BillNo        string             `json:"bill_no"`
	FY            string             `json:"fy"`
	CustomerID    uint               `json:"customer_id"`
	CustomerName  string             `json:"customer_name,omitempty"`
	BillDate      string             `json:"bill_date"`
	TaxMode       string             `json:"tax_mode"`
	Subtotal      string             `json:"subtotal"`
	CGST          string             `json:"cgst"`
	SGST          string             `json:"sgst"`
	IGST          string             `json:"igst"`
	GrandTotal    string             `json:"grand_total"`
	PaymentStatus string             `json:"payment_status"`
	Items         []BillItemResponse `json:"items,omitempty"`
	DocumentPath  string             `json:"document_path,omitempty"`
	// RenderWarning is set when the bill committed but the PDF could not be
	// produced or stored. The commit is never rolled back for a render
	// failure.
	RenderWarning string `json:"render_warning,omitempty"`
}

type BillFilter struct {
	FY            string
	PaymentStatus string
	CustomerID    uint
	Page          int
	Limit         int
}

// --- Interface ---

type BillingService interface {
	CreateBill(ctx context.Context, req CreateBillRequest) (BillResponse, error)
	EditBill(ctx context.Context, billNo string, req EditBillRequest) (BillResponse, error)
	GetBill(ctx context.Context, billNo string) (BillResponse, error)
	ListBills(ctx context.Context, filter BillFilter) ([]BillResponse, int64, error)
	BillDocumentPath(ctx context.Context, billNo string) (string, error)
}

type billingService struct {
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	batchRepo    repository.BatchRepository
	movementRepo repository.StockMovementRepository
	companyRepo  repository.CompanyRepository
	txManager    repository.TransactionManager
	renderer     DocumentRenderer
	hub          *ws.Hub
	billDir      string
	now          func() time.Time
}

func NewBillingService(
	billRepo repository.BillRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	batchRepo repository.BatchRepository,
	movementRepo repository.StockMovementRepository,
	companyRepo repository.CompanyRepository,
	txManager repository.TransactionManager,
	renderer DocumentRenderer,
	hub *ws.Hub,
	billDir string,
) BillingService {
	return &billingService{
		billRepo:     billRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		batchRepo:    batchRepo,
		movementRepo: movementRepo,
		companyRepo:  companyRepo,
		txManager:    txManager,
		renderer:     renderer,
		hub:          hub,
		billDir:      billDir,
		now:          time.Now,
	}
}

// --- Create ---

func (s *billingService) CreateBill(ctx context.Context, req CreateBillRequest) (BillResponse, error) {
	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		return BillResponse{}, fmt.Errorf("failed to load company profile: %w", err)
	}
	if strings.TrimSpace(company.Name) == "" {
		return BillResponse{}, ErrCompanyNotConfigured
	}

	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BillResponse{}, fmt.Errorf("customer %d: %w", req.CustomerID, ErrNotFound)
		}
		return BillResponse{}, fmt.Errorf("failed to load customer: %w", err)
	}

	billDate, err := parseBillDate(req.BillDate, s.now)
	if err != nil {
		return BillResponse{}, err
	}

	status := req.PaymentStatus
	if status == "" {
		status = model.PaymentPending
	}
	if !validPaymentStatus(status) {
		return BillResponse{}, fmt.Errorf("unknown payment status %q: %w", status, ErrValidation)
	}

	mode := billing.TaxMode(req.TaxMode)

	// Resolve cart lines against live products. Lines with qty <= 0 are
	// excluded from the cart entirely.
	type cartEntry struct {
		productID uint
		line      billing.CartLine
	}
	entries := make([]cartEntry, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Qty <= 0 {
			continue
		}
		product, findErr := s.productRepo.FindByID(ctx, item.ProductID)
		if findErr != nil {
			if errors.Is(findErr, gorm.ErrRecordNotFound) {
				return BillResponse{}, fmt.Errorf("product %d: %w", item.ProductID, ErrNotFound)
			}
			return BillResponse{}, fmt.Errorf("failed to load product %d: %w", item.ProductID, findErr)
		}

		price := product.Price
		if item.Price != nil {
			if price, err = parseDecimalField(*item.Price, "price"); err != nil {
				return BillResponse{}, err
			}
		}
		discount := product.DiscountPct
		if item.DiscountPct != nil {
			if discount, err = parseDecimalField(*item.DiscountPct, "discount"); err != nil {
				return BillResponse{}, err
			}
		}
		free := product.FreeQty
		if item.FreeQty != nil {
			free = *item.FreeQty
		}

		entries = append(entries, cartEntry{
			productID: product.ID,
			line: billing.CartLine{
				Product:     product.Name,
				HSN:         product.HSN,
				BatchNo:     item.BatchNo,
				Mfg:         product.Mfg,
				Exp:         product.Exp,
				Qty:         item.Qty,
				UnitPrice:   price,
				DiscountPct: discount,
				GSTRate:     product.GSTRate,
				FreeQty:     free,
			},
		})
	}
	if len(entries) == 0 {
		return BillResponse{}, fmt.Errorf("cart is empty: %w", ErrValidation)
	}

	lines := make([]billing.CartLine, len(entries))
	for i, e := range entries {
		lines[i] = e.line
	}
	computed, totals := billing.ComputeCart(lines, mode)

	var bill model.Bill
	var lowStock []model.Product

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		fy := billing.FinancialYearAt(s.now())
		count, countErr := s.billRepo.CountByFY(txCtx, fy)
		if countErr != nil {
			return fmt.Errorf("failed to count bills for %s: %w", fy, countErr)
		}
		billNo := billing.FormatInvoiceNo(fy, count+1)

		bill = model.Bill{
			BillNo:        billNo,
			FY:            fy,
			CustomerID:    customer.ID,
			BillDate:      billDate,
			TaxMode:       string(mode),
			Subtotal:      totals.Taxable,
			CGST:          totals.CGST,
			SGST:          totals.SGST,
			IGST:          totals.IGST,
			GrandTotal:    totals.GrandTotal,
			PaymentStatus: status,
		}
		if createErr := s.billRepo.Create(txCtx, &bill); createErr != nil {
			return fmt.Errorf("failed to create bill: %w", createErr)
		}

		for _, cl := range computed {
			item := &model.BillItem{
				BillNo:      billNo,
				Product:     cl.Product,
				Qty:         cl.Qty,
				Price:       cl.UnitPrice,
				GSTRate:     cl.GSTRate,
				Mfg:         cl.Mfg,
				Exp:         cl.Exp,
				FreeQty:     cl.FreeQty,
				DiscountPct: cl.DiscountPct,
				BatchNo:     cl.BatchNo,
			}
			if itemErr := s.billRepo.CreateItem(txCtx, item); itemErr != nil {
				return fmt.Errorf("failed to create bill item: %w", itemErr)
			}
		}

		for i, cl := range computed {
			product, stockErr := s.applySale(txCtx, entries[i].productID, cl.BatchNo, cl.Qty, billNo, customer.Name)
			if stockErr != nil {
				return stockErr
			}
			if product.Stock < model.LowStockThreshold {
				lowStock = append(lowStock, *product)
			}
		}

		return nil
	})
	if err != nil {
		return BillResponse{}, err
	}

	for _, p := range lowStock {
		s.broadcastLowStock(p)
	}

	resp := s.toBillResponse(bill, customer.Name, computed)

	// Two-phase: the bill and stock are committed; rendering happens after
	// and only reports failure.
	resp.DocumentPath, resp.RenderWarning = s.renderAndStore(ctx, *company, *customer, bill, req.Terms, computed, totals)

	return resp, nil
}

// applySale decrements product stock (clamped at zero), decrements the
// selected batch quantity if one was chosen, and appends the OUT ledger row.
func (s *billingService) applySale(ctx context.Context, productID uint, batchNo string, qty int, billNo, customerName string) (*model.Product, error) {
	product, err := s.productRepo.FindByIDForUpdate(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock product %d: %w", productID, err)
	}

	product.Stock = clampStock(product.Stock - qty)
	if err := s.productRepo.UpdateStock(ctx, product.ID, product.Stock); err != nil {
		return nil, fmt.Errorf("failed to update stock for product %d: %w", productID, err)
	}

	movementBatch := model.BatchNoNone
	if batchNo != "" {
		movementBatch = batchNo
		batch, batchErr := s.batchRepo.FindByProductAndNo(ctx, productID, batchNo)
		if batchErr != nil && !errors.Is(batchErr, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load batch %s: %w", batchNo, batchErr)
		}
		if batchErr == nil {
			batch.Quantity = clampStock(batch.Quantity - qty)
			if updErr := s.batchRepo.Update(ctx, batch); updErr != nil {
				return nil, fmt.Errorf("failed to update batch %s: %w", batchNo, updErr)
			}
		}
	}

	movement := &model.StockMovement{
		ProductID:    product.ID,
		BatchNo:      movementBatch,
		MovementType: model.MovementOut,
		Quantity:     qty,
		Date:         s.now(),
		Reference:    billNo,
		Notes:        "Sale to " + customerName,
	}
	if err := s.movementRepo.Append(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to record stock movement: %w", err)
	}

	return product, nil
}

// --- Edit ---

func (s *billingService) EditBill(ctx context.Context, billNo string, req EditBillRequest) (BillResponse, error) {
	bill, err := s.billRepo.FindByBillNoWithItems(ctx, billNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BillResponse{}, fmt.Errorf("bill %s: %w", billNo, ErrNotFound)
		}
		return BillResponse{}, fmt.Errorf("failed to load bill: %w", err)
	}

	status := req.PaymentStatus
	if status == "" {
		status = bill.PaymentStatus
	}
	if !validPaymentStatus(status) {
		return BillResponse{}, fmt.Errorf("unknown payment status %q: %w", status, ErrValidation)
	}

	// Stored mode first; inference from the nonzero tax fields only for
	// legacy rows that predate the explicit column.
	mode := billing.TaxMode(bill.TaxMode)
	if !billing.ValidTaxMode(bill.TaxMode) {
		mode = billing.InferTaxMode(bill.CGST, bill.SGST, bill.IGST)
	}

	lines := make([]billing.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		price, parseErr := parseDecimalField(item.Price, "price")
		if parseErr != nil {
			return BillResponse{}, parseErr
		}
		gst, parseErr := parseOptionalDecimal(item.GSTRate, "gst")
		if parseErr != nil {
			return BillResponse{}, parseErr
		}
		discount, parseErr := parseOptionalDecimal(item.DiscountPct, "discount")
		if parseErr != nil {
			return BillResponse{}, parseErr
		}
		lines = append(lines, billing.CartLine{
			Product:     item.Product,
			BatchNo:     item.BatchNo,
			Mfg:         item.Mfg,
			Exp:         item.Exp,
			Qty:         item.Qty,
			UnitPrice:   price,
			DiscountPct: discount,
			GSTRate:     gst,
			FreeQty:     item.FreeQty,
		})
	}

	computed, totals := billing.ComputeCart(lines, mode)
	if len(computed) == 0 {
		return BillResponse{}, fmt.Errorf("edited bill has no items: %w", ErrValidation)
	}

	oldItems := bill.Items

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.billRepo.DeleteItemsByBillNo(txCtx, billNo); delErr != nil {
			return fmt.Errorf("failed to clear bill items: %w", delErr)
		}
		for _, cl := range computed {
			item := &model.BillItem{
				BillNo:      billNo,
				Product:     cl.Product,
				Qty:         cl.Qty,
				Price:       cl.UnitPrice,
				GSTRate:     cl.GSTRate,
				Mfg:         cl.Mfg,
				Exp:         cl.Exp,
				FreeQty:     cl.FreeQty,
				DiscountPct: cl.DiscountPct,
				BatchNo:     cl.BatchNo,
			}
			if itemErr := s.billRepo.CreateItem(txCtx, item); itemErr != nil {
				return fmt.Errorf("failed to insert bill item: %w", itemErr)
			}
		}

		bill.TaxMode = string(mode)
		bill.Subtotal = totals.Taxable
		bill.CGST = totals.CGST
		bill.SGST = totals.SGST
		bill.IGST = totals.IGST
		bill.GrandTotal = totals.GrandTotal
		bill.PaymentStatus = status
		bill.Items = nil
		if updErr := s.billRepo.Update(txCtx, bill); updErr != nil {
			return fmt.Errorf("failed to update bill: %w", updErr)
		}

		if req.ReconcileStock {
			if recErr := s.reconcileStock(txCtx, billNo, oldItems, computed); recErr != nil {
				return recErr
			}
		}
		return nil
	})
	if err != nil {
		return BillResponse{}, err
	}

	var customer model.Customer
	c, custErr := s.customerRepo.FindByID(ctx, bill.CustomerID)
	if custErr == nil {
		customer = *c
	}

	resp := s.toBillResponse(*bill, customer.Name, computed)
	if custErr != nil {
		resp.RenderWarning = "bill updated but customer could not be loaded for the PDF"
		return resp, nil
	}

	company, companyErr := s.companyRepo.Get(ctx)
	if companyErr != nil {
		resp.RenderWarning = "bill updated but company profile could not be loaded for the PDF"
		return resp, nil
	}
	resp.DocumentPath, resp.RenderWarning = s.renderAndStore(ctx, *company, customer, *bill, DefaultTerms, computed, totals)

	return resp, nil
}

// reconcileStock applies the per-product/per-batch quantity delta between the
// old and new item sets. Extra quantity sold journals ADJUST_OUT, quantity
// returned journals ADJUST_IN; product stock and batch quantities stay
// clamped at zero.
func (s *billingService) reconcileStock(ctx context.Context, billNo string, oldItems []model.BillItem, newItems []billing.ComputedLine) error {
	type key struct {
		product string
		batchNo string
	}
	deltas := make(map[key]int)
	for _, it := range oldItems {
		deltas[key{it.Product, it.BatchNo}] -= it.Qty
	}
	for _, cl := range newItems {
		deltas[key{cl.Product, cl.BatchNo}] += cl.Qty
	}

	for k, delta := range deltas {
		if delta == 0 {
			continue
		}
		product, err := s.productRepo.FindByName(ctx, k.product)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// The snapshot no longer matches a live product; nothing to
				// reconcile against.
				continue
			}
			return fmt.Errorf("failed to resolve product %q: %w", k.product, err)
		}

		product.Stock = clampStock(product.Stock - delta)
		if err := s.productRepo.UpdateStock(ctx, product.ID, product.Stock); err != nil {
			return fmt.Errorf("failed to update stock for %q: %w", k.product, err)
		}

		if k.batchNo != "" {
			batch, batchErr := s.batchRepo.FindByProductAndNo(ctx, product.ID, k.batchNo)
			if batchErr != nil && !errors.Is(batchErr, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to load batch %s: %w", k.batchNo, batchErr)
			}
			if batchErr == nil {
				batch.Quantity = clampStock(batch.Quantity - delta)
				if updErr := s.batchRepo.Update(ctx, batch); updErr != nil {
					return fmt.Errorf("failed to update batch %s: %w", k.batchNo, updErr)
				}
			}
		}

		// delta > 0: more sold than before, ADJUST_OUT with negative qty.
		// delta < 0: quantity returned, ADJUST_IN with positive qty.
		movementType := model.MovementAdjustOut
		if delta < 0 {
			movementType = model.MovementAdjustIn
		}
		quantity := -delta
		movementBatch := k.batchNo
		if movementBatch == "" {
			movementBatch = model.BatchNoNone
		}
		movement := &model.StockMovement{
			ProductID:    product.ID,
			BatchNo:      movementBatch,
			MovementType: movementType,
			Quantity:     quantity,
			Date:         s.now(),
			Reference:    billNo,
			Notes:        "Bill edit reconciliation",
		}
		if err := s.movementRepo.Append(ctx, movement); err != nil {
			return fmt.Errorf("failed to record reconciliation movement: %w", err)
		}
	}
	return nil
}

// --- View / List ---

func (s *billingService) GetBill(ctx context.Context, billNo string) (BillResponse, error) {
	bill, err := s.billRepo.FindByBillNoWithItems(ctx, billNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BillResponse{}, fmt.Errorf("bill %s: %w", billNo, ErrNotFound)
		}
		return BillResponse{}, fmt.Errorf("failed to load bill: %w", err)
	}

	mode := billing.TaxMode(bill.TaxMode)
	if !billing.ValidTaxMode(bill.TaxMode) {
		mode = billing.InferTaxMode(bill.CGST, bill.SGST, bill.IGST)
	}

	computed, _ := billing.ComputeCart(itemsToCartLines(bill.Items), mode)

	customerName := ""
	if bill.Customer != nil {
		customerName = bill.Customer.Name
	}
	return s.toBillResponse(*bill, customerName, computed), nil
}

func (s *billingService) ListBills(ctx context.Context, filter BillFilter) ([]BillResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	var statuses []string
	if filter.PaymentStatus != "" {
		statuses = []string{filter.PaymentStatus}
	}
	bills, total, err := s.billRepo.List(ctx, repository.BillListFilter{
		FY:         filter.FY,
		CustomerID: filter.CustomerID,
		Statuses:   statuses,
		Page:       filter.Page,
		Limit:      filter.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bills: %w", err)
	}

	result := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		name := ""
		if b.Customer != nil {
			name = b.Customer.Name
		}
		result = append(result, s.toBillResponse(b, name, nil))
	}
	return result, total, nil
}

// BillDocumentPath rebuilds the stored PDF location for a bill, the same way
// the create flow derived it.
func (s *billingService) BillDocumentPath(ctx context.Context, billNo string) (string, error) {
	bill, err := s.billRepo.FindByBillNoWithItems(ctx, billNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("bill %s: %w", billNo, ErrNotFound)
		}
		return "", fmt.Errorf("failed to load bill: %w", err)
	}
	customerName := ""
	if bill.Customer != nil {
		customerName = bill.Customer.Name
	}
	return s.documentPath(bill.BillDate, customerName, bill.BillNo), nil
}

// --- Rendering ---

func (s *billingService) renderAndStore(ctx context.Context, company model.Company, customer model.Customer, bill model.Bill, terms string, computed []billing.ComputedLine, totals billing.Totals) (string, string) {
	if s.renderer == nil {
		return "", ""
	}
	if terms == "" {
		terms = DefaultTerms
	}

	settings, err := s.companyRepo.GetSettings(ctx)
	if err != nil {
		settings = &model.Settings{}
	}

	doc := InvoiceDocument{
		Company:       company,
		Customer:      applyShippingDefaults(customer),
		InvoiceNo:     bill.BillNo,
		InvoiceDate:   bill.BillDate.Format("2006-01-02"),
		Terms:         terms,
		TaxMode:       billing.TaxMode(bill.TaxMode),
		PaymentStatus: bill.PaymentStatus,
		UPIID:         settings.UPIID,
		LogoPath:      settings.LogoPath,
		Lines:         computed,
		Totals:        totals,
	}

	data, err := s.renderer.RenderInvoice(doc)
	if err != nil {
		log.Printf("invoice %s: PDF generation failed: %v", bill.BillNo, err)
		return "", "invoice saved but PDF generation failed: " + err.Error()
	}

	path := s.documentPath(bill.BillDate, customer.Name, bill.BillNo)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("invoice %s: could not create document folder: %v", bill.BillNo, err)
		return "", "invoice saved but PDF could not be stored: " + err.Error()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("invoice %s: could not write document: %v", bill.BillNo, err)
		return "", "invoice saved but PDF could not be stored: " + err.Error()
	}

	return path, ""
}

// documentPath is bills/{YYYY-MM}/{customer}/{INV_fy_seq}.pdf.
func (s *billingService) documentPath(billDate time.Time, customerName, billNo string) string {
	return filepath.Join(
		s.billDir,
		billDate.Format("2006-01"),
		sanitizeFolderName(customerName),
		strings.ReplaceAll(billNo, "/", "_")+".pdf",
	)
}

// --- Helpers ---

func (s *billingService) broadcastLowStock(product model.Product) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(ws.Event{
		Event: ws.EventLowStock,
		Data: map[string]interface{}{
			"product_id": product.ID,
			"name":       product.Name,
			"stock":      product.Stock,
		},
	})
	if err != nil {
		return
	}
	s.hub.Broadcast <- payload
}

func (s *billingService) toBillResponse(bill model.Bill, customerName string, computed []billing.ComputedLine) BillResponse {
	resp := BillResponse{
		ID:            bill.ID,
		BillNo:        bill.BillNo,
		FY:            bill.FY,
		CustomerID:    bill.CustomerID,
		CustomerName:  customerName,
		BillDate:      bill.BillDate.Format("2006-01-02"),
		TaxMode:       bill.TaxMode,
		Subtotal:      bill.Subtotal.StringFixed(2),
		CGST:          bill.CGST.StringFixed(2),
		SGST:          bill.SGST.StringFixed(2),
		IGST:          bill.IGST.StringFixed(2),
		GrandTotal:    bill.GrandTotal.StringFixed(2),
		PaymentStatus: bill.PaymentStatus,
	}
	for _, cl := range computed {
		resp.Items = append(resp.Items, BillItemResponse{
			Product:     cl.Product,
			HSN:         cl.HSN,
			BatchNo:     cl.BatchNo,
			Qty:         cl.Qty,
			Price:       cl.UnitPrice.StringFixed(2),
			GSTRate:     cl.GSTRate.StringFixed(2),
			Mfg:         cl.Mfg,
			Exp:         cl.Exp,
			FreeQty:     cl.FreeQty,
			DiscountPct: cl.DiscountPct.StringFixed(2),
			Taxable:     cl.Taxable.StringFixed(2),
			CGST:        cl.CGST.StringFixed(2),
			SGST:        cl.SGST.StringFixed(2),
			IGST:        cl.IGST.StringFixed(2),
			Total:       cl.Total.StringFixed(2),
		})
	}
	return resp
}

func itemsToCartLines(items []model.BillItem) []billing.CartLine {
	lines := make([]billing.CartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, billing.CartLine{
			Product:     it.Product,
			BatchNo:     it.BatchNo,
			Mfg:         it.Mfg,
			Exp:         it.Exp,
			Qty:         it.Qty,
			UnitPrice:   it.Price,
			DiscountPct: it.DiscountPct,
			GSTRate:     it.GSTRate,
			FreeQty:     it.FreeQty,
		})
	}
	return lines
}

// applyShippingDefaults fills empty shipping fields from the billing fields.
func applyShippingDefaults(c model.Customer) model.Customer {
	if c.ShipName == "" {
		c.ShipName = c.Name
	}
	if c.ShipAddress == "" {
		c.ShipAddress = c.Address
	}
	if c.ShipPhone == "" {
		c.ShipPhone = c.Phone
	}
	if c.ShipGSTIN == "" {
		c.ShipGSTIN = c.GSTIN
	}
	return c
}

func clampStock(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func validPaymentStatus(s string) bool {
	switch s {
	case model.PaymentPending, model.PaymentPaid, model.PaymentPartiallyPaid:
		return true
	}
	return false
}

func parseBillDate(s string, now func() time.Time) (time.Time, error) {
	if s == "" {
		return now(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid bill_date %q: %w", s, ErrValidation)
	}
	return t, nil
}

func parseDecimalField(s, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", field, s, ErrValidation)
	}
	return d, nil
}

func parseOptionalDecimal(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return parseDecimalField(s, field)
}

// sanitizeFolderName keeps alphanumerics, spaces, hyphens and underscores,
// mirroring how the bill folders have always been named.
func sanitizeFolderName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
