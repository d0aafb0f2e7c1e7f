package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devasif/smart-task-management/internal/container"
	handlers "github.com/devasif/smart-task-management/internal/interface/http"
	"github.com/devasif/smart-task-management/internal/interface/middleware"
	"github.com/devasif/smart-task-management/pkg/helpers"
)

type ProjectModule struct {
	Handler *handlers.ProjectHandler
	JWT     *helpers.JWTManager
}

func NewProjectModule(h *handlers.ProjectHandler, jwt *helpers.JWTManager) *ProjectModule {
	return &ProjectModule{Handler: h, JWT: jwt}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserEmail(), nil))
	{
		auth.POST("/projects", m.Handler.Create)
		auth.GET("/projects/:email", m.Handler.ListByOwner)
	}
}
