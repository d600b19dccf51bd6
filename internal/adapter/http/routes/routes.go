package routes

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "taller_moto/docs" // This will be auto-generated
	"taller_moto/internal/adapter/http/handlers"
	"taller_moto/internal/console"
	"taller_moto/internal/infrastructure/workshopapi"
	"taller_moto/internal/usecase"
	"taller_moto/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	client := workshopapi.NewClientFromEnv()
	session := console.NewSession(client, client)

	// Initial load, the way the UI hydrates on mount. A failure only sets
	// the error banner; the server still starts.
	if err := session.RefreshAll(context.Background()); err != nil {
		log.Printf("[console][startup] initial load failed err=%v", err)
	}

	draftUseCase := usecase.NewOrderDraftUseCase(client, client, session)
	statusUseCase := usecase.NewOrderStatusUseCase(client, session)

	consoleHandler := handlers.NewConsoleHandler(session)
	bikeHandler := handlers.NewBikeHandler(session, draftUseCase)
	orderHandler := handlers.NewOrderHandler(session, draftUseCase, statusUseCase)

	// Rutas publicas
	addPingRoutes(router.Group(""))
	addConsoleRoutes(router.Group("/console"), consoleHandler, bikeHandler, orderHandler)

	// Browser UI
	router.StaticFS("/ui", http.FS(web.StaticFS()))
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/ui/")
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
