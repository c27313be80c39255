package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "firex_service/docs" // swag-generated API docs
	"firex_service/internal/adapter/http/handlers"
	repository2 "firex_service/internal/adapter/persistence/repository"
	"firex_service/internal/infrastructure/database"
	"firex_service/internal/infrastructure/identifier"
	"firex_service/internal/infrastructure/logger"
	"firex_service/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	setMiddlewares(zlog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(zlog)

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(zlog *zap.Logger) {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewServiceRequestDynamoRepository(ddb)

	// Local DynamoDB starts empty; self-provision the table there.
	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		if err := database.EnsureServiceRequestsTable(context.Background(), ddb, requestRepo.TableName()); err != nil {
			zlog.Fatal("failed to ensure service_requests table", zap.Error(err))
		}
	}

	idGenerator := identifier.NewULIDRequestIDGenerator()

	requestUseCase := usecase.NewServiceRequestUseCase(requestRepo, idGenerator, zlog)
	queryUseCase := usecase.NewServiceRequestQueryUseCase(requestRepo)

	requestHandler := handlers.NewServiceRequestHandler(requestUseCase, queryUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRequestRoutes(v1, requestHandler)
}

func setMiddlewares(zlog *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zlog.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
