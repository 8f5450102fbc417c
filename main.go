// File: everafter/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"everafter/config"
	"everafter/cron"
	"everafter/database"
	contentRepo "everafter/database/repository/content"
	inquiryRepo "everafter/database/repository/inquiry"
	vendorRepo "everafter/database/repository/vendor"
	"everafter/handlers"
	"everafter/middleware"
	"everafter/routes"
	"everafter/services/booking"
	"everafter/services/catalog"
	"everafter/services/content"
	ai "everafter/services/intelligence"
	"everafter/services/payment"
	"everafter/services/storage"
	"everafter/services/tasks"
	"everafter/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitRedis()
	db := database.Database()

	// repositories.
	vendors := vendorRepo.NewMongoVendorRepo(db)
	pages := contentRepo.NewMongoContentRepo(db)
	inquiries := inquiryRepo.NewMongoInquiryRepo(db)

	// services.
	catalogService := catalog.NewCatalogService(vendors, logger.Named("catalog"))
	if config.AppConfig.SeedVendors {
		seedCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := catalogService.EnsureSeeded(seedCtx); err != nil {
			logger.Error("main: vendor seeding failed", zap.Error(err))
		}
		cancel()
	}

	queueClient := asynq.NewClient(tasks.RedisOpt())
	inquiryService := &booking.DefaultInquiryService{
		Vendors:    catalogService,
		Sessions:   booking.NewRedisSessionStore(utils.GetSessionCacheClient(), config.AppConfig.SessionTTL),
		Inquiries:  inquiries,
		Payments:   payment.NewStripeGateway(config.AppConfig.StripeKey, logger.Named("payment")),
		Dispatcher: tasks.NewAsynqDispatcher(queueClient),
		Policy: booking.Policy{
			Currency:       config.AppConfig.Currency,
			MaxGuests:      config.AppConfig.MaxGuests,
			MonthEchoGuard: config.AppConfig.MonthEchoGuard,
		},
		Logger: logger.Named("inquiry"),
	}

	contentService := content.NewContentService(
		pages,
		content.NewRedisWorkspaceStore(utils.GetSessionCacheClient(), utils.WorkspaceTTL),
		content.NewRedisPublishedCache(utils.GetCacheClient(), utils.PublishedContentTTL),
		logger.Named("content"),
	)

	var mediaStorage storage.MediaStorage
	cld, err := storage.NewCloudinaryStorage(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
		logger.Named("storage"),
	)
	if err != nil {
		logger.Warn("main: media uploads disabled", zap.Error(err))
	} else {
		mediaStorage = cld
	}

	var generator ai.ContentGenerator
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Warn("main: assistant disabled", zap.Error(err))
		} else {
			defer gemini.Close()
			generator = gemini
		}
	}
	assistant := ai.NewAssistant(generator, catalogService,
		ai.NewRedisAnswerCache(utils.GetCacheClient(), time.Hour), logger.Named("assistant"))

	// background work.
	worker := cron.NewDeliveryWorker(tasks.RedisOpt(), inquiries, logger.Named("delivery"))
	if err := worker.Start(); err != nil {
		logger.Fatal("main: failed to start delivery worker", zap.Error(err))
	}
	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	utils.StartHealthMonitor(monitorCtx,
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient, 30*time.Second)

	// handlers.
	vendorHandler := handlers.NewVendorHandler(catalogService, inquiryService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	contentHandler := handlers.NewContentHandler(contentService)
	storageHandler := handlers.NewStorageHandler(mediaStorage)
	aiHandler := handlers.NewAIHandler(assistant)
	adminHandler := handlers.NewAdminHandler(
		config.AppConfig.AdminEmail,
		config.AppConfig.AdminPasswordHash,
		[]byte(config.AppConfig.JWTSecret),
		inquiries,
	)

	handlerBundle := &handlers.HandlerBundle{
		AdminSecret:       []byte(config.AppConfig.JWTSecret),
		MaxRequestsPerMin: config.AppConfig.MaxRequestsPerMin,

		// Vendor endpoints.
		ListVendorsHandler: vendorHandler.ListVendorsHandler,
		FacetsHandler:      vendorHandler.FacetsHandler,
		GetVendorHandler:   vendorHandler.GetVendorHandler,
		QuoteHandler:       vendorHandler.QuoteHandler,
		AskVendorHandler:   aiHandler.AskVendorHandler,

		// Inquiry endpoints.
		StartSessionHandler:  inquiryHandler.StartSessionHandler,
		GetSessionHandler:    inquiryHandler.GetSessionHandler,
		CancelSessionHandler: inquiryHandler.CancelSessionHandler,
		SelectDateHandler:    inquiryHandler.SelectDateHandler,
		AdjustGuestsHandler:  inquiryHandler.AdjustGuestsHandler,
		NextStepHandler:      inquiryHandler.NextStepHandler,
		ChangeStepHandler:    inquiryHandler.ChangeStepHandler,
		BackHandler:          inquiryHandler.BackHandler,
		ConfirmHandler:       inquiryHandler.ConfirmHandler,

		// Content endpoints.
		GetPublicContentHandler: contentHandler.GetPublicContentHandler,
		GetAdminContentHandler:  contentHandler.GetAdminContentHandler,
		EditSectionHandler:      contentHandler.EditSectionHandler,
		SaveDraftHandler:        contentHandler.SaveDraftHandler,
		PublishHandler:          contentHandler.PublishHandler,
		DiscardHandler:          contentHandler.DiscardHandler,

		// Admin endpoints.
		AdminLoginHandler:    adminHandler.LoginHandler,
		ListInquiriesHandler: adminHandler.ListInquiriesHandler,
		UploadMediaHandler:   storageHandler.UploadMediaHandler,
		DeleteMediaHandler:   storageHandler.DeleteMediaHandler,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger.Named("http")))
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	stopMonitor()
	worker.Shutdown()
	if err := queueClient.Close(); err != nil {
		logger.Warn("main: failed to close queue client", zap.Error(err))
	}
	utils.CloseRedis()
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
