package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "sfg_core/docs" // swagger docs, generated by swag
	"sfg_core/internal/adapter/http/handlers"
	"sfg_core/internal/adapter/http/middleware"
	"sfg_core/internal/adapter/persistence/repository"
	"sfg_core/internal/infrastructure/config"
	"sfg_core/internal/infrastructure/database"
	"sfg_core/internal/infrastructure/logging"
	"sfg_core/internal/usecase"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logging.L().WithError(err).Fatal("failed to start the application")
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()

	priceBookRepo := repository.NewPriceBookDynamoRepository(ddb)
	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	leadRepo := repository.NewLeadDynamoRepository(ddb)
	jobRepo := repository.NewJobDynamoRepository(ddb)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb)

	priceBookUseCase := usecase.NewPriceBookUseCase(priceBookRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	jobUseCase := usecase.NewJobUseCase(jobRepo, customerRepo)
	leadUseCase := usecase.NewLeadUseCase(leadRepo, customerRepo, jobRepo)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, jobRepo, priceBookRepo)

	priceBookHandler := handlers.NewPriceBookHandler(priceBookUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireBearer(cfg.Auth.Token))
	addPingRoutes(v1)
	addCoreRoutes(v1, priceBookHandler, customerHandler, leadHandler, jobHandler, estimateHandler)
}

func setMiddlewares(cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.L().WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatus(500)
	}))

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) == 1 && cfg.CORS.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Tenant-Id")
	router.Use(cors.New(corsCfg))
}
