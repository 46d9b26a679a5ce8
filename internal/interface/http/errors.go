package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/yomu-engine/internal/application"
	"github.com/oksasatya/yomu-engine/pkg/helpers"
	"github.com/oksasatya/yomu-engine/pkg/response"
)

// writeError is the only place application errors become responses, and the only
// place they are logged.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	fields := logrus.Fields{
		"request_id": c.GetString("request_id"),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	}
	msg := application.MessageOf(err)
	switch application.KindOf(err) {
	case application.KindBadRequest:
		helpers.LogWarn(logger, "bad request", err, fields)
		response.Error(c, http.StatusBadRequest, msg, nil)
	case application.KindNotFound:
		helpers.LogWarn(logger, "not found", err, fields)
		response.Error(c, http.StatusNotFound, msg, nil)
	default:
		helpers.LogError(logger, "internal server error", err, fields)
		response.Error(c, http.StatusInternalServerError, msg, nil)
	}
}
