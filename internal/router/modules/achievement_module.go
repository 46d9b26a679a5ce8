package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/yomu-engine/internal/interface/http"
	"github.com/oksasatya/yomu-engine/internal/interface/middleware"
)

// AchievementModule wires the achievement routes:
// GET /api/achievement/:id, POST /api/achievement/:id/update, GET /api/achievements/search
type AchievementModule struct {
	Handler   *handlers.AchievementHandler
	Redis     *redis.Client
	PerMinute int
	Allow     middleware.AllowFunc
}

func NewAchievementModule(h *handlers.AchievementHandler, rdb *redis.Client, perMinute int, allow middleware.AllowFunc) *AchievementModule {
	return &AchievementModule{Handler: h, Redis: rdb, PerMinute: perMinute, Allow: allow}
}

func (m *AchievementModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(m.Redis, m.PerMinute, time.Minute, middleware.KeyByIP(), m.Allow)
	// writes get their own, tighter bucket per path
	updateLimiter := middleware.RateLimit(m.Redis, m.PerMinute/2, time.Minute, middleware.KeyByIPAndPath(), m.Allow)

	rg.GET("/achievement/:id", limiter, m.Handler.Get)
	rg.POST("/achievement/:id/update", limiter, updateLimiter, m.Handler.Update)
	rg.GET("/achievements/search", limiter, m.Handler.Search)
}
