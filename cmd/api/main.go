package main

import (
	"log"
	"os"

	_ "github.com/aakshay001/MOOFUs-Billing-APP/api/swagger" // swagger docs
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/database"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/handler"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/middleware"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/pdf"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/repository"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/service"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           MOOFUs Billing API
// @version         1.0
// @description     Billing and inventory API for a small business: customers, products, stock batches, GST tax invoices and sales reports.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "postgres"
	}
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	if dbName == "" {
		dbName = "postgres"
	}
	if dbSslMode == "" {
		dbSslMode = "disable"
	}

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	billDir := os.Getenv("BILL_DIR")
	if billDir == "" {
		billDir = "bills"
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	batchRepo := repository.NewBatchRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	billRepo := repository.NewBillRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	txManager := repository.NewTransactionManager(db)

	renderer := pdf.NewRenderer()

	customerService := service.NewCustomerService(customerRepo)
	productService := service.NewProductService(productRepo)
	companyService := service.NewCompanyService(companyRepo)
	stockService := service.NewStockService(productRepo, batchRepo, movementRepo, txManager, wsHub)
	billingService := service.NewBillingService(
		billRepo, customerRepo, productRepo, batchRepo, movementRepo, companyRepo,
		txManager, renderer, wsHub, billDir,
	)
	reportService := service.NewReportService(billRepo, customerRepo)

	// Initialize Handlers
	customerHandler := handler.NewCustomerHandler(customerService)
	productHandler := handler.NewProductHandler(productService)
	companyHandler := handler.NewCompanyHandler(companyService)
	stockHandler := handler.NewStockHandler(stockService)
	billingHandler := handler.NewBillingHandler(billingService)
	reportHandler := handler.NewReportHandler(reportService)

	// Set up Gin Router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint for low-stock alerts
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// Register API Routes
	customerHandler.RegisterRoutes(router.Group(""))
	productHandler.RegisterRoutes(router.Group(""))
	companyHandler.RegisterRoutes(router.Group(""))
	stockHandler.RegisterRoutes(router.Group(""))
	billingHandler.RegisterRoutes(router.Group(""))
	reportHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
