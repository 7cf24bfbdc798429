package main

import (
	"log"

	"blogapi/config"
	"blogapi/controllers"
	"blogapi/database"
	"blogapi/handlers"
	"blogapi/middleware"
	"blogapi/routes"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "blogapi/docs"
)

// @title Blog API
// @version 1.0
// @description A blog publishing API with groups, paginated listings and an authenticated post workflow

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.Migrate(db)

	r := gin.Default()

	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Logger())
	r.Use(middleware.ErrorHandler())

	feedService := services.NewFeedService()

	postController := controllers.NewPostController(db, feedService)
	groupController := controllers.NewGroupController(db)
	authController := controllers.NewAuthController(db)
	feedHandler := handlers.NewFeedHandler(feedService)

	routes.SetupRoutes(r, postController, groupController, authController, feedHandler)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
