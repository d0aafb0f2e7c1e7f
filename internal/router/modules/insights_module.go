package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devasif/smart-task-management/internal/container"
	handlers "github.com/devasif/smart-task-management/internal/interface/http"
	"github.com/devasif/smart-task-management/internal/interface/middleware"
	"github.com/devasif/smart-task-management/pkg/helpers"
)

type InsightsModule struct {
	Handler *handlers.InsightsHandler
	JWT     *helpers.JWTManager
}

func NewInsightsModule(h *handlers.InsightsHandler, jwt *helpers.JWTManager) *InsightsModule {
	return &InsightsModule{Handler: h, JWT: jwt}
}

func (m *InsightsModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	// The summary walks every team; keep a tighter limit but let internal
	// callers through.
	summaryLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserEmail(), middleware.AllowPrivateIP())
	{
		auth.GET("/workload/:name", m.Handler.Workload)
		auth.GET("/summary", summaryLimiter, m.Handler.Summary)
		auth.GET("/insights/:email", m.Handler.Totals)
	}
}
