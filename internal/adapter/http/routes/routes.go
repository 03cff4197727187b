package routes

import (
	"log"
	"os"
	"strconv"

	_ "taller_api/docs" // This will be auto-generated
	"taller_api/internal/adapter/http/handlers"
	repository2 "taller_api/internal/adapter/persistence/repository"
	"taller_api/internal/infrastructure/database"
	"taller_api/internal/infrastructure/payments"
	"taller_api/internal/usecase"
	"taller_api/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
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

	citaRepo := repository2.NewCitaDynamoRepository(ddb)
	usuarioRepo := repository2.NewUsuarioDynamoRepository(ddb)
	reparacionRepo := repository2.NewReparacionDynamoRepository(ddb)
	refaccionRepo := repository2.NewRefaccionDynamoRepository(ddb)
	dispositivoRepo := repository2.NewDispositivoDynamoRepository(ddb)
	pagoRepo := repository2.NewPagoDynamoRepository(ddb)

	var pasarela interfaces.IPasarelaPagos
	mpPasarela, err := payments.NewPasarelaMercadoPago(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		pasarela = mpPasarela
	}

	citaUseCase := usecase.NewCitaUseCase(citaRepo, usuarioRepo)
	usuarioUseCase := usecase.NewUsuarioUseCase(usuarioRepo)
	reparacionUseCase := usecase.NewReparacionUseCase(reparacionRepo, citaRepo, refaccionRepo)
	refaccionUseCase := usecase.NewRefaccionUseCase(refaccionRepo)
	dispositivoUseCase := usecase.NewDispositivoUseCase(dispositivoRepo)
	pagoUseCase := usecase.NewPagoUseCase(pagoRepo, reparacionRepo, pasarela)

	citaHandler := handlers.NewCitaHandler(citaUseCase)
	usuarioHandler := handlers.NewUsuarioHandler(usuarioUseCase)
	reparacionHandler := handlers.NewReparacionHandler(reparacionUseCase)
	refaccionHandler := handlers.NewRefaccionHandler(refaccionUseCase)
	dispositivoHandler := handlers.NewDispositivoHandler(dispositivoUseCase)
	pagoHandler := handlers.NewPagoHandler(pagoUseCase)

	addTallerRoutes(&router.RouterGroup, citaHandler, usuarioHandler, reparacionHandler, refaccionHandler, dispositivoHandler, pagoHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))
}
