package routes

import (
	"log"
	"strconv"

	_ "psaops/docs" // This will be auto-generated
	"psaops/internal/adapter/http/handlers"
	repository2 "psaops/internal/adapter/persistence/repository"
	"psaops/internal/infrastructure/database"
	"psaops/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	lineItemRepo := repository2.NewLineItemDynamoRepository(ddb)
	refdataRepo := repository2.NewReferenceDataDynamoRepository(ddb)
	identityStore := repository2.NewRowIdentityDynamoStore(ddb)

	editor := usecase.NewSessionManager(lineItemRepo, refdataRepo, identityStore)

	rowsHandler := handlers.NewEstimateRowsHandler(editor)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, rowsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
