package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/devasif/smart-task-management/internal/interface/http"
	"github.com/devasif/smart-task-management/internal/interface/middleware"
	"github.com/devasif/smart-task-management/pkg/helpers"
)

type ActivityModule struct {
	Handler *handlers.ActivityHandler
	JWT     *helpers.JWTManager
}

func NewActivityModule(h *handlers.ActivityHandler, jwt *helpers.JWTManager) *ActivityModule {
	return &ActivityModule{Handler: h, JWT: jwt}
}

func (m *ActivityModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/activities/:email", m.Handler.Feed)
	}
}
