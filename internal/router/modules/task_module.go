package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devasif/smart-task-management/internal/container"
	handlers "github.com/devasif/smart-task-management/internal/interface/http"
	"github.com/devasif/smart-task-management/internal/interface/middleware"
	"github.com/devasif/smart-task-management/pkg/helpers"
)

type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserEmail(), nil))
	{
		auth.POST("/tasks", m.Handler.Create)
		auth.GET("/tasks/:email", m.Handler.ListByOwner)
		auth.DELETE("/tasks/:id", m.Handler.Delete)
		auth.PATCH("/tasks/:id/status", m.Handler.UpdateStatus)
		auth.PATCH("/tasks/:id", m.Handler.UpdateFields)
	}
}
