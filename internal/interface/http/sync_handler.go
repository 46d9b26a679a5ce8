package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/yomu-engine/internal/application"
	"github.com/oksasatya/yomu-engine/pkg/helpers"
	"github.com/oksasatya/yomu-engine/pkg/response"
	"github.com/oksasatya/yomu-engine/pkg/validation"
)

type SyncHandler struct {
	Svc    *application.SyncService
	Logger *logrus.Logger
}

func NewSyncHandler(svc *application.SyncService, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{Svc: svc, Logger: logger}
}

type syncUserRequest struct {
	UserID string `json:"user_id" binding:"omitempty,uuid"`
}

// Sync acknowledges the request; an optional user_id registers a shadow user.
func (h *SyncHandler) Sync(c *gin.Context) {
	var req syncUserRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		helpers.LogWarn(h.Logger, "invalid payload", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	var userID *uuid.UUID
	if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			writeError(c, h.Logger, application.BadRequest("invalid user_id", err))
			return
		}
		userID = &id
	}

	u, err := h.Svc.Sync(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if u == nil {
		response.SuccessWithoutData(c, http.StatusOK, "sync acknowledged")
		return
	}
	response.Success(c, http.StatusOK, u, "user synced")
}
