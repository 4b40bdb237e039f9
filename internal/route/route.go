package route

import (
	"net/http"
	"os"
	"strings"
	"time"

	log_handler "github.com/mohadmed-adel/firebase-query-server/internal/app/handler/log-handler"
	log_repository "github.com/mohadmed-adel/firebase-query-server/internal/app/repository/log-repository"
	log_service "github.com/mohadmed-adel/firebase-query-server/internal/app/service/log-service"
	"github.com/mohadmed-adel/firebase-query-server/internal/logger"
	"github.com/mohadmed-adel/firebase-query-server/internal/middleware"
	"github.com/mohadmed-adel/firebase-query-server/internal/model/webresponse"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRoutes(db *mongo.Database) *gin.Engine {
	queryLog := logger.NewQueryLogService(db.Collection(log_repository.TraceCollectionName))
	logRepo := log_repository.NewLogRepository(db, queryLog)
	logService := log_service.NewLogService(logRepo)
	logHandler := log_handler.NewLogHandler(logService)

	return buildRouter(logHandler)
}

func buildRouter(logHandler log_handler.LogHandler) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.HTTPLogger(),
	)

	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  addAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           1 * time.Hour,
	}))

	router.GET("/", logHandler.Index)

	api := router.Group("/api")
	{
		api.GET("/logs", logHandler.GetAllLogs)
		api.GET("/logs/event-type/:eventType", logHandler.GetLogsByEventType)
		api.GET("/logs/user/:userId", logHandler.GetLogsByUserID)
		api.GET("/logs/platform/:platform", logHandler.GetLogsByPlatform)
		api.GET("/logs/date-range", logHandler.GetLogsByDateRange)
		api.GET("/logs/last-hours/:hours", logHandler.GetLogsFromLastHours)
		api.POST("/logs/search", logHandler.SearchLogs)

		api.GET("/stats", logHandler.GetStatistics)
		api.GET("/event-types", logHandler.GetEventTypes)
		api.GET("/platforms", logHandler.GetPlatforms)
		api.GET("/users", logHandler.GetUsers)

		api.POST("/clear-data", logHandler.ClearAllData)

		api.GET("/health", logHandler.Health)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, webresponse.JSONResponse{
			Error:   true,
			Message: "Route tidak ditemukan",
		})
	})

	return router
}

func addAllowedOrigins(origin string) bool {
	env := os.Getenv("APP_ENV")
	if env == "development" {
		if strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "https://localhost:") {
			return true
		}
	}

	allowedDomains := []string{}
	for _, domain := range allowedDomains {
		if origin == domain {
			return true
		}
	}

	return false
}
