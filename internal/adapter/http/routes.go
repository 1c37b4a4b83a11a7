package http

import (
	"github.com/gin-gonic/gin"

	"todoapp/internal/adapter/http/handlers"
	"todoapp/internal/adapter/http/middleware"
	"todoapp/internal/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	sessions ports.SessionManager,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	todoHandler *handlers.TodoHandler,
	userHandler *handlers.UserHandler,
) {
	r.Use(middleware.LanguageMiddleware(), middleware.SessionMiddleware(sessions))

	authGroup := r.Group("/auth")
	{
		authGroup.GET("", authHandler.LoginPage)
		authGroup.POST("", authHandler.Login)
		authGroup.GET("/logout", authHandler.Logout)
		authGroup.GET("/register", authHandler.RegisterPage)
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/create/user", authHandler.CreateUser)
		authGroup.POST("/token", authHandler.Token)
	}

	todoGroup := r.Group("/todos")
	{
		todoGroup.GET("", todoHandler.List)
		todoGroup.GET("/add-todo", todoHandler.AddPage)
		todoGroup.POST("/add-todo", todoHandler.Add)
		todoGroup.GET("/edit-todo/:id", todoHandler.EditPage)
		todoGroup.POST("/edit-todo/:id", todoHandler.Edit)
		todoGroup.GET("/complete/:id", todoHandler.Complete)
		todoGroup.GET("/delete/:id", todoHandler.Delete)
	}

	userGroup := r.Group("/users")
	{
		userGroup.GET("", userHandler.ListUsers)
		userGroup.GET("/user/:id", userHandler.GetUserByID)
		userGroup.PUT("/password_change", userHandler.ChangePassword)
		userGroup.DELETE("/user", userHandler.DeleteAccount)
	}

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}
}
