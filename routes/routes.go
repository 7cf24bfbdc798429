package routes

import (
	"net/http"

	"blogapi/controllers"
	"blogapi/handlers"
	"blogapi/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, postController *controllers.PostController, groupController *controllers.GroupController, authController *controllers.AuthController, feedHandler *handlers.FeedHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// The global listing is also the root page
	r.GET("/", postController.ListPosts)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/me", middleware.AuthRequired(), authController.Me)
			auth.DELETE("/me", middleware.AuthRequired(), authController.DeleteMe)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", postController.ListPosts)
			posts.POST("", middleware.AuthRequired(), postController.CreatePost)
			posts.GET("/:id/edit", middleware.AuthRequired(), postController.GetEditForm)
			posts.PUT("/:id", middleware.AuthRequired(), postController.UpdatePost)
		}

		groups := api.Group("/groups")
		{
			groups.GET("", groupController.GetGroups)
			groups.GET("/:slug", postController.ListGroupPosts)
			groups.POST("", middleware.AuthRequired(), groupController.CreateGroup)
			groups.DELETE("/:slug", middleware.AuthRequired(), groupController.DeleteGroup)
		}

		users := api.Group("/users")
		{
			users.GET("/:username", postController.GetProfile)
			users.GET("/:username/posts/:id", postController.GetPost)
		}

		api.GET("/feed/ws", middleware.AuthRequired(), feedHandler.HandleFeed)
	}
}
