package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devasif/smart-task-management/internal/application"
	"github.com/devasif/smart-task-management/pkg/response"
)

type ActivityHandler struct {
	Svc    *application.ActivityService
	Logger *logrus.Logger
}

func NewActivityHandler(svc *application.ActivityService, logger *logrus.Logger) *ActivityHandler {
	return &ActivityHandler{Svc: svc, Logger: logger}
}

func (h *ActivityHandler) Feed(c *gin.Context) {
	acts, err := h.Svc.Feed(c.Request.Context(), c.Param("email"))
	if err != nil {
		storageError(c, h.Logger, "activity feed", err)
		return
	}
	if len(acts) == 0 {
		response.Fail[any](c, http.StatusOK, "no activities found", nil)
		return
	}
	response.Success(c, http.StatusOK, acts, "activities")
}
