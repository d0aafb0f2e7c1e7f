package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devasif/smart-task-management/internal/application"
	"github.com/devasif/smart-task-management/internal/interface/middleware"
	"github.com/devasif/smart-task-management/pkg/response"
	"github.com/devasif/smart-task-management/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Project      string `json:"project" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	AssignMember string `json:"assignMember" binding:"required"`
	Priority     string `json:"priority"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type updateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	owner := c.GetString(middleware.CtxUserEmailKey)
	id, err := h.Svc.Create(c.Request.Context(), owner, application.CreateTaskInput{
		Project:      req.Project,
		Title:        req.Title,
		Description:  req.Description,
		AssignMember: req.AssignMember,
		Priority:     req.Priority,
	})
	if err != nil {
		storageError(c, h.Logger, "create task", err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"insertedId": id}, "task created")
}

func (h *TaskHandler) ListByOwner(c *gin.Context) {
	owner := c.Param("email")
	tasks, err := h.Svc.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		storageError(c, h.Logger, "list tasks", err)
		return
	}
	if len(tasks) == 0 {
		response.Fail[any](c, http.StatusOK, "no tasks found", nil)
		return
	}
	response.Success(c, http.StatusOK, tasks, "tasks")
}

func (h *TaskHandler) Delete(c *gin.Context) {
	actor := c.GetString(middleware.CtxUserEmailKey)
	n, err := h.Svc.Delete(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		storageError(c, h.Logger, "delete task", err)
		return
	}
	if n == 0 {
		response.Fail[any](c, http.StatusOK, "task not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deletedCount": n}, "task deleted")
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	actor := c.GetString(middleware.CtxUserEmailKey)
	n, err := h.Svc.SetStatus(c.Request.Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		storageError(c, h.Logger, "update task status", err)
		return
	}
	if n == 0 {
		response.Fail[any](c, http.StatusOK, "task not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"modifiedCount": n}, "status updated")
}

func (h *TaskHandler) UpdateFields(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	actor := c.GetString(middleware.CtxUserEmailKey)
	n, err := h.Svc.UpdateFields(c.Request.Context(), actor, c.Param("id"), req.Title, req.Description, req.Priority)
	if err != nil {
		storageError(c, h.Logger, "update task", err)
		return
	}
	if n == 0 {
		response.Fail[any](c, http.StatusOK, "task not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"modifiedCount": n}, "task updated")
}
