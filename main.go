package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/EminenceChannel/controllers"
	"github.com/EminenceChannel/initializers"
	"github.com/EminenceChannel/middlewares"
	"github.com/EminenceChannel/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectDB()
	services.InitPushNotificationService()
	services.InitEmailService()
}

func main() {
	router := gin.Default()

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	router.Static("/static", "./static")

	// public surface
	public := router.Group("/")
	public.Use(middlewares.CheckStore)
	{
		public.POST("/login", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.AdminLogin)

		public.GET("/posts", controllers.GetPublicPosts)
		public.GET("/posts/:post_id/comments", controllers.GetPostComments)
		public.POST("/posts/:post_id/comments", middlewares.RateLimitMiddleware(2, 5, getKey), controllers.CreateComment)

		public.POST("/requests", middlewares.RateLimitMiddleware(2, 5, getKey), controllers.CreateRequest)

		public.GET("/site-content/:page_id", controllers.GetSiteContent)
	}

	// admin only routes
	admin := router.Group("/admin")
	admin.Use(middlewares.CheckStore)
	admin.Use(middlewares.CheckAuth)
	admin.Use(middlewares.CheckAdmin)
	admin.Use(middlewares.RateLimitMiddleware(10, 10, getKey))
	{
		admin.GET("/profile", controllers.GetAdminProfile)
		admin.POST("/push-token", controllers.StorePushToken)

		admin.GET("/posts", controllers.GetAllPosts)
		admin.POST("/posts", controllers.CreatePost)
		admin.GET("/posts/:post_id", controllers.GetPost)
		admin.PUT("/posts/:post_id", controllers.UpdatePost)
		admin.DELETE("/posts/:post_id", controllers.DeletePost)

		admin.GET("/comments", controllers.GetModerationQueue)
		admin.PATCH("/comments/:comment_id/approve", controllers.ApproveComment)
		admin.PATCH("/comments/:comment_id/unapprove", controllers.UnapproveComment)
		admin.DELETE("/comments/:comment_id", controllers.DeleteComment)

		admin.GET("/requests", controllers.GetRequests)
		admin.DELETE("/requests/:request_id", controllers.DeleteRequest)

		admin.PUT("/site-content/:page_id", controllers.UpdateSiteContent)
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
