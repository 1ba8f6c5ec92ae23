package routes

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/havncube/billing-service/docs" // generated swagger docs
	"github.com/havncube/billing-service/internal/adapter/http/handlers"
	"github.com/havncube/billing-service/internal/adapter/persistence/repository"
	"github.com/havncube/billing-service/internal/infrastructure/database"
	"github.com/havncube/billing-service/internal/infrastructure/pdf"
	"github.com/havncube/billing-service/internal/logger"
	"github.com/havncube/billing-service/internal/usecase"
)

var router = gin.New()

// Run wires the dependency graph and starts the server.
func Run() {
	logger.Init(getenvDefault("LOG_LEVEL", "info"), os.Getenv("LOG_JSON") == "true")

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes()

	port := getenvDefault("PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		logger.Global().Fatal().Err(err).Msg("failed to start the application")
	}
}

func registerRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	renderer := pdf.NewEstimateRenderer()
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, renderer)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	healthHandler := handlers.NewHealthHandler(estimateUseCase)

	router.GET("/", healthHandler.Root)

	api := router.Group("/api")
	api.GET("/health", healthHandler.Health)
	addEstimateRoutes(api, estimateHandler)
}

func setMiddlewares() {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Global().Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

// requestLogger attaches a request-scoped logger and emits one structured
// log line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		l := logger.Global().With().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), &l))

		c.Next()

		l.Info().
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
