package handler

import (
	"dashboard_back/pkg/middleware"
	"dashboard_back/pkg/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service   *service.Service
	jwtSecret string
}

func NewHandler(service *service.Service, jwtSecret string) *Handler {
	return &Handler{
		service:   service,
		jwtSecret: jwtSecret,
	}
}

func (h *Handler) InitRoute() *gin.Engine {
	router := gin.New()

	// Mini App открывается внутри Telegram WebView, origin там произвольный
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	auth := router.Group("/auth")
	{
		auth.POST("/telegram", h.Login)
		auth.POST("/bot", h.BotAuth)
		auth.GET("/me", middleware.AuthMiddleware(h.jwtSecret), h.GetMe)
	}

	api := router.Group("/api", middleware.AuthMiddleware(h.jwtSecret))
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("/", h.GetTasks)
			tasks.POST("/", h.CreateTask)
			tasks.GET("/:id", h.GetTaskById)
			tasks.PUT("/:id", h.UpdateTask)
			tasks.DELETE("/:id", h.DeleteTask)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("/", h.GetNotifications)
			notifications.PUT("/:id/read", h.MarkNotificationRead)
		}
	}
	return router
}
