package router

import (
	"goblog/internal/handlers"
	"goblog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	userHandler := handlers.NewUserHandler()
	adminHandler := handlers.NewAdminHandler()

	// Public Routes
	r.GET("/", handlers.Home)

	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)

	r.GET("/posts", postHandler.List)
	r.POST("/posts", postHandler.CreateCommentFromList) // comment box on the list page
	r.GET("/posts/new", postHandler.ShowNew)
	r.POST("/posts/new", postHandler.CreateNew)
	r.GET("/posts/:id", postHandler.Detail)
	r.POST("/posts/:id", postHandler.CreateComment)
	// Long-standing alias of the create form; it never edits (see ShowNew)
	r.GET("/posts/:id/edit", postHandler.ShowNew)
	r.POST("/posts/:id/edit", postHandler.CreateNew)

	r.GET("/u/:id", userHandler.Profile)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/logout", authHandler.Logout)
		authorized.GET("/post/:id/edit", postHandler.ShowEdit)
		authorized.POST("/post/:id/edit", postHandler.Update)
		authorized.GET("/post/:id/delete", postHandler.Delete)
		authorized.GET("/settings", userHandler.ShowSettings)
		authorized.POST("/settings", userHandler.UpdateSettings)
	}

	// Admin listing pages
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/posts", adminHandler.Posts)
		admin.GET("/comments", adminHandler.Comments)
	}
}
