package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devasif/smart-task-management/internal/application"
	"github.com/devasif/smart-task-management/internal/interface/middleware"
	"github.com/devasif/smart-task-management/pkg/response"
	"github.com/devasif/smart-task-management/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Fail[any](c, http.StatusOK, "email already registered", nil)
			return
		}
		storageError(c, h.Logger, "signup", err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"insertedId": id}, "signup successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Fail[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		storageError(c, h.Logger, "login", err)
		return
	}
	response.Success(c, http.StatusOK, res, "login successful")
}

// Session returns the profile subset for the verified bearer identity.
func (h *AuthHandler) Session(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmailKey)
	u, err := h.Svc.Profile(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Fail[any](c, http.StatusOK, "user not found", nil)
			return
		}
		storageError(c, h.Logger, "session", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"name": u.Name, "email": u.Email}, "session verified")
}
