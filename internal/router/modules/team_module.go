package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devasif/smart-task-management/internal/container"
	handlers "github.com/devasif/smart-task-management/internal/interface/http"
	"github.com/devasif/smart-task-management/internal/interface/middleware"
	"github.com/devasif/smart-task-management/pkg/helpers"
)

type TeamModule struct {
	Handler *handlers.TeamHandler
	JWT     *helpers.JWTManager
}

func NewTeamModule(h *handlers.TeamHandler, jwt *helpers.JWTManager) *TeamModule {
	return &TeamModule{Handler: h, JWT: jwt}
}

func (m *TeamModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserEmail(), nil))
	{
		auth.POST("/teams", m.Handler.Create)
		auth.GET("/teams/:email", m.Handler.ListByOwner)
		auth.PATCH("/teams/:id/members", m.Handler.AddMember)
	}
}
