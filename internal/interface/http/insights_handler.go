package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devasif/smart-task-management/internal/application"
	repo "github.com/devasif/smart-task-management/internal/domain/repository"
	"github.com/devasif/smart-task-management/pkg/response"
)

type InsightsHandler struct {
	Svc    *application.InsightsService
	Logger *logrus.Logger
}

func NewInsightsHandler(svc *application.InsightsService, logger *logrus.Logger) *InsightsHandler {
	return &InsightsHandler{Svc: svc, Logger: logger}
}

// Workload serves the per-member open task counts for one team.
func (h *InsightsHandler) Workload(c *gin.Context) {
	members, err := h.Svc.MembersWithLoad(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Fail[any](c, http.StatusOK, "team not found", nil)
			return
		}
		storageError(c, h.Logger, "team workload", err)
		return
	}
	response.Success(c, http.StatusOK, members, "team workload")
}

// Summary serves the flattened cross-team member rollup.
func (h *InsightsHandler) Summary(c *gin.Context) {
	rows, err := h.Svc.TeamSummary(c.Request.Context())
	if err != nil {
		storageError(c, h.Logger, "team summary", err)
		return
	}
	response.Success(c, http.StatusOK, rows, "team summary")
}

// Totals serves {projectCount, taskCount} for one owner.
func (h *InsightsHandler) Totals(c *gin.Context) {
	totals, err := h.Svc.Totals(c.Request.Context(), c.Param("email"))
	if err != nil {
		storageError(c, h.Logger, "totals", err)
		return
	}
	response.Success(c, http.StatusOK, totals, "totals")
}
