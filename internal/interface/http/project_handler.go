package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devasif/smart-task-management/internal/application"
	"github.com/devasif/smart-task-management/internal/interface/middleware"
	"github.com/devasif/smart-task-management/pkg/response"
)

type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

// Create accepts an open document: whatever fields the client sends are
// stored, with owner and createdAt stamped by the server.
func (h *ProjectHandler) Create(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"payload": "invalid json"})
		return
	}
	delete(fields, "_id")
	owner := c.GetString(middleware.CtxUserEmailKey)
	id, err := h.Svc.Create(c.Request.Context(), owner, fields)
	if err != nil {
		storageError(c, h.Logger, "create project", err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"insertedId": id}, "project created")
}

func (h *ProjectHandler) ListByOwner(c *gin.Context) {
	owner := c.Param("email")
	projects, err := h.Svc.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		storageError(c, h.Logger, "list projects", err)
		return
	}
	if len(projects) == 0 {
		response.Fail[any](c, http.StatusOK, "no projects found", nil)
		return
	}
	response.Success(c, http.StatusOK, projects, "projects")
}
