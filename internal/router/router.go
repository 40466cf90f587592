package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mdd-dev/mdd/internal/handlers"
	"github.com/mdd-dev/mdd/internal/middleware"
	"github.com/mdd-dev/mdd/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			auth.POST("/update", middleware.AuthMiddleware(), handlers.UpdateAccount)
		}

		topic := api.Group("/topic")
		{
			topic.POST("", handlers.CreateTopic)
			topic.GET("", middleware.AuthMiddleware(), handlers.ListTopics)
			topic.POST("/:id/subscribe", middleware.AuthMiddleware(), handlers.Subscribe)
			topic.GET("/:id/subscribe", middleware.AuthMiddleware(), handlers.Subscribe)
			topic.DELETE("/:id/subscribe", middleware.AuthMiddleware(), handlers.Unsubscribe)
		}

		post := api.Group("/post")
		{
			post.POST("", middleware.AuthMiddleware(), handlers.CreatePost)
			post.GET("", handlers.ListPosts)
			post.GET("/:id", handlers.GetPost)
		}

		comment := api.Group("/comment")
		{
			comment.POST("", middleware.AuthMiddleware(), handlers.CreateComment)
			comment.GET("", handlers.ListComments)
		}
	}

	return r
}
