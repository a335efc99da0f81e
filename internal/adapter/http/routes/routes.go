package routes

import (
	"log"
	"os"
	"strconv"

	_ "oficina_xpto/docs" // swag-generated documentation
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/infrastructure/database"
	"oficina_xpto/internal/infrastructure/payments"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/internal/usecase/interfaces"

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

	workOrderRepo := repository.NewWorkOrderDynamoRepository(ddb)
	historyRepo := repository.NewWorkOrderHistoryDynamoRepository(ddb)
	budgetRepo := repository.NewBudgetDynamoRepository(ddb)
	publicLinkRepo := repository.NewPublicLinkDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	equipmentRepo := repository.NewEquipmentDynamoRepository(ddb)
	paymentRepo := repository.NewBudgetPaymentDynamoRepository(ddb)

	workOrderUseCase := usecase.NewWorkOrderUseCase(
		workOrderRepo, historyRepo, budgetRepo,
		userRepo, clientRepo, equipmentRepo,
		warrantyDaysFromEnv(),
	)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, workOrderRepo, userRepo)
	publicLinkUseCase := usecase.NewPublicLinkUseCase(publicLinkRepo, workOrderRepo, budgetRepo, userRepo, budgetUseCase)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewBudgetPaymentUseCase(paymentRepo, budgetRepo, paymentGateway)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	publicLinkHandler := handlers.NewPublicLinkHandler(publicLinkUseCase)
	paymentHandler := handlers.NewBudgetPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, workOrderHandler, budgetHandler, publicLinkHandler)
	addBudgetRoutes(v1, budgetHandler, paymentHandler)
	addPublicRoutes(v1, publicLinkHandler)
}

// warrantyDaysFromEnv reads WARRANTY_DAYS; invalid or absent values fall back
// to the default window.
func warrantyDaysFromEnv() int {
	raw := os.Getenv("WARRANTY_DAYS")
	if raw == "" {
		return usecase.DefaultWarrantyDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		log.Printf("Invalid WARRANTY_DAYS=%q, using default %d", raw, usecase.DefaultWarrantyDays)
		return usecase.DefaultWarrantyDays
	}
	return days
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
