package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devasif/smart-task-management/internal/application"
	"github.com/devasif/smart-task-management/internal/domain/entity"
	"github.com/devasif/smart-task-management/internal/interface/middleware"
	"github.com/devasif/smart-task-management/pkg/response"
	"github.com/devasif/smart-task-management/pkg/validation"
)

type TeamHandler struct {
	Svc    *application.TeamService
	Logger *logrus.Logger
}

func NewTeamHandler(svc *application.TeamService, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{Svc: svc, Logger: logger}
}

type createTeamRequest struct {
	TeamName string `json:"teamName" binding:"required"`
}

type addMemberRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
	// Capacity arrives as a string from the form and is parsed server-side.
	Capacity string `json:"capacity" binding:"required"`
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	owner := c.GetString(middleware.CtxUserEmailKey)
	id, err := h.Svc.Create(c.Request.Context(), owner, req.TeamName)
	if err != nil {
		storageError(c, h.Logger, "create team", err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"insertedId": id}, "team created")
}

func (h *TeamHandler) ListByOwner(c *gin.Context) {
	owner := c.Param("email")
	teams, err := h.Svc.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		storageError(c, h.Logger, "list teams", err)
		return
	}
	if len(teams) == 0 {
		response.Fail[any](c, http.StatusOK, "no teams found", nil)
		return
	}
	response.Success(c, http.StatusOK, teams, "teams")
}

func (h *TeamHandler) AddMember(c *gin.Context) {
	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	capacity, err := strconv.Atoi(req.Capacity)
	if err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"capacity": "must be a valid number"})
		return
	}
	actor := c.GetString(middleware.CtxUserEmailKey)
	m := entity.Member{Name: req.Name, Role: req.Role, Capacity: capacity}
	n, err := h.Svc.AddMember(c.Request.Context(), actor, c.Param("id"), m)
	if err != nil {
		storageError(c, h.Logger, "add member", err)
		return
	}
	if n == 0 {
		response.Fail[any](c, http.StatusOK, "team not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"modifiedCount": n}, "member added")
}
