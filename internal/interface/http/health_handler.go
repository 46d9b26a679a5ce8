package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/yomu-engine/pkg/response"
)

type HealthHandler struct {
	Version string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{Version: version}
}

type healthData struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, healthData{Status: "healthy", Version: h.Version}, "service is healthy")
}
