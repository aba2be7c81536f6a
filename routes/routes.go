package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"todoapi/controllers"
	"todoapi/middleware"
	"todoapi/store"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	authController := controllers.AuthController{DB: db}
	taskController := controllers.TaskController{Store: store.NewTaskStore(db)}

	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)
	r.POST("/token/refresh", authController.Refresh)

	tasks := r.Group("/tasks", middleware.AuthMiddleware())
	tasks.GET("", taskController.ListTasks)
	tasks.POST("", taskController.CreateTask)
	tasks.GET("/:id", taskController.GetTask)
	tasks.PUT("/:id", taskController.ReplaceTask)
	tasks.PATCH("/:id", taskController.PatchTask)
	tasks.DELETE("/:id", taskController.DeleteTask)

	return r
}
