package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/yomu-engine/internal/interface/http"
)

type SyncModule struct {
	Handler *handlers.SyncHandler
}

func NewSyncModule(h *handlers.SyncHandler) *SyncModule {
	return &SyncModule{Handler: h}
}

func (m *SyncModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users/sync", m.Handler.Sync)
}
