package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devasif/smart-task-management/pkg/response"
)

// storageError logs the underlying fault and reports a generic failure.
// Raw store error strings are never echoed to clients.
func storageError(c *gin.Context, logger *logrus.Logger, op string, err error) {
	if logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"op":         op,
			"request_id": c.GetString("request_id"),
		}).Error("storage operation failed")
	}
	response.Fail[any](c, http.StatusInternalServerError, "something went wrong", nil)
}
