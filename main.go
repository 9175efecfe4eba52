package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lightfield/config"
	"lightfield/cron"
	"lightfield/database"
	adminuserRepo "lightfield/database/repository/adminuser"
	associateRepo "lightfield/database/repository/associate"
	blogRepoPkg "lightfield/database/repository/blog"
	categoryRepo "lightfield/database/repository/category"
	contactRepo "lightfield/database/repository/contact"
	consultationRepo "lightfield/database/repository/consultation"
	conversationRepo "lightfield/database/repository/conversation"
	grantRepo "lightfield/database/repository/grant"
	testimonialRepo "lightfield/database/repository/testimonial"
	"lightfield/handlers"
	"lightfield/middleware"
	"lightfield/routes"
	"lightfield/services/booking"
	"lightfield/services/mailer"
	"lightfield/services/paystack"
	"lightfield/services/solo"
	"lightfield/services/storage"
	"lightfield/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitChatCache()

	cloudinaryStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
	}

	gemini, err := solo.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	blogRepo := blogRepoPkg.NewMongoBlogRepo()
	bookingRepo := consultationRepo.NewMongoBookingRepo()
	serviceRepo := consultationRepo.NewMongoServiceRepo()
	convRepo := conversationRepo.NewMongoConversationRepo()

	handlers.AssociateRepo = associateRepo.NewMongoAssociateRepo()
	handlers.CategoryRepo = categoryRepo.NewMongoCategoryRepo()
	handlers.BlogRepo = blogRepo
	handlers.TestimonialRepo = testimonialRepo.NewMongoTestimonialRepo()
	handlers.GrantRepo = grantRepo.NewMongoGrantRepo()
	handlers.ContactRepo = contactRepo.NewMongoContactRepo()
	handlers.ServiceRepo = serviceRepo
	handlers.BookingRepo = bookingRepo
	handlers.ConversationRepo = convRepo
	handlers.AdminRepo = adminuserRepo.NewMongoAdminUserRepo()

	// services.
	gateway := paystack.NewClient(config.AppConfig.PaystackBaseURL, config.AppConfig.PaystackSecretKey)
	handlers.PaystackWebhookValidator = gateway

	handlers.BookingService = &booking.Service{
		Bookings: bookingRepo,
		Services: serviceRepo,
		Gateway:  gateway,
		Mailer:   mailer.NewSMTPMailer(),
	}

	ctxStore := solo.NewRedisContextStore(utils.GetChatCacheClient(), 30*time.Minute)
	handlers.SoloService = &solo.Service{
		AI:            gemini,
		Context:       ctxStore,
		Conversations: convRepo,
	}
	handlers.Gemini = gemini
	handlers.Storage = cloudinaryStorage

	// Background worker for blog AI overviews.
	cron.InitOverviewWorker(blogRepo, gemini)
	handlers.EnqueueOverview = cron.EnqueueOverview
	go cron.EnqueueMissingOverviews(blogRepo)

	utils.StartHealthMonitor(utils.HealthChecks{
		Mongo:          func(ctx context.Context) error { return database.MongoClient.Ping(ctx, nil) },
		CacheRedis:     func(ctx context.Context) error { return utils.GetCacheClient().Ping(ctx).Err() },
		AuthRedis:      func(ctx context.Context) error { return utils.GetAuthCacheClient().Ping(ctx).Err() },
		ChatRedis:      func(ctx context.Context) error { return utils.GetChatCacheClient().Ping(ctx).Err() },
		PaymentGateway: gateway.Ping,
		AI:             gemini.Ping,
	})

	routes.RegisterRoutes(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
