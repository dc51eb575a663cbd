package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/comdesk/comdesk-api/internal/application/service"
	"github.com/comdesk/comdesk-api/internal/config"
	"github.com/comdesk/comdesk-api/internal/infrastructure/repository"
	"github.com/comdesk/comdesk-api/internal/presentation/http/handler"
	"github.com/comdesk/comdesk-api/internal/presentation/http/routes"
	"github.com/comdesk/comdesk-api/pkg/logger"
	"github.com/comdesk/comdesk-api/pkg/pdf"
	"github.com/comdesk/comdesk-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize logger
	appLogger, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.App.Env != "production",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	sequenceRepo, err := repository.NewFileSequenceRepository(cfg.Counters.Dir)
	if err != nil {
		appLogger.Fatalw("Failed to initialize sequence counters", "dir", cfg.Counters.Dir, "error", err)
	}
	vendorRepo := repository.NewVendorRepository(cfg.Data.VendorsFile, appLogger)
	endUserRepo := repository.NewEndUserRepository(cfg.Data.EndUsersFile, appLogger)
	productRepo := repository.NewProductRepository(cfg.Data.ProductsFile, appLogger)
	salesPersonRepo := repository.NewSalesPersonRepository(cfg.Data.SalesPersonsFile, appLogger)
	idempotencyRepo := repository.NewMemoryIdempotencyRepository()

	// Fixed organization identity stamped on every document
	branding := pdf.Branding{
		CompanyName:    cfg.Branding.CompanyName,
		CompanyAddress: cfg.Branding.CompanyAddress,
		CompanyEmail:   cfg.Branding.CompanyEmail,
		CompanyPhone:   cfg.Branding.CompanyPhone,
		CompanyGSTNo:   cfg.Branding.CompanyGSTNo,
		LogoPath:       cfg.Branding.LogoPath,
		StampPath:      cfg.Branding.StampPath,
	}

	// Initialize services
	authService := service.NewAuthService(salesPersonRepo, jwtManager)
	directoryService := service.NewDirectoryService(vendorRepo, endUserRepo, productRepo)
	quotationService := service.NewQuotationService(sequenceRepo, vendorRepo, productRepo, salesPersonRepo, branding)
	purchaseOrderService := service.NewPurchaseOrderService(sequenceRepo, vendorRepo, endUserRepo, productRepo, branding)
	invoiceService := service.NewInvoiceService(sequenceRepo, endUserRepo, branding, cfg.Branding.Declaration)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Directory:     handler.NewDirectoryHandler(directoryService),
		Quotation:     handler.NewQuotationHandler(quotationService),
		PurchaseOrder: handler.NewPurchaseOrderHandler(purchaseOrderService),
		Invoice:       handler.NewInvoiceHandler(invoiceService),
	}

	deps := &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Log:             appLogger,
		IdempotencyRepo: idempotencyRepo,
	}

	router := routes.Setup(handlers, deps)

	appLogger.Infow("Starting server", "name", cfg.App.Name, "port", cfg.App.Port, "env", cfg.App.Env)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatalw("Failed to start server", "error", err)
	}
}
