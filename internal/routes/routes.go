package routes

import (
	"taskboard/internal/handlers"
	"taskboard/internal/web"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(h *handlers.Handler) *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// Server-rendered pages come from the embedded templates
	ginRouter.SetHTMLTemplate(web.Templates())

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Taskboard is running",
		})
	})

	// Task listing and mutations
	ginRouter.GET("/", h.ListTasks)
	ginRouter.POST("/", h.CreateTask)
	ginRouter.GET("/complete/:id", h.CompleteTask)
	ginRouter.GET("/delete/:id", h.DeleteTask)
	ginRouter.GET("/edit/:id", h.EditTaskForm)
	ginRouter.POST("/edit/:id", h.UpdateTask)

	// User management
	ginRouter.GET("/users", h.UsersPage)
	ginRouter.POST("/users", h.CreateUser)
	ginRouter.GET("/delete-user/:id", h.DeleteUser)

	// Live refresh for open listing pages
	ginRouter.GET("/events", h.Events)

	return ginRouter
}
