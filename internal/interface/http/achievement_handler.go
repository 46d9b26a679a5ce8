package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/yomu-engine/internal/application"
	"github.com/oksasatya/yomu-engine/internal/domain/entity"
	"github.com/oksasatya/yomu-engine/pkg/helpers"
	"github.com/oksasatya/yomu-engine/pkg/response"
	"github.com/oksasatya/yomu-engine/pkg/validation"
)

type AchievementHandler struct {
	Svc    *application.AchievementService
	Logger *logrus.Logger
}

func NewAchievementHandler(svc *application.AchievementService, logger *logrus.Logger) *AchievementHandler {
	return &AchievementHandler{Svc: svc, Logger: logger}
}

// updateAchievementRequest accepts "password" as an alias of "secret".
type updateAchievementRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Secret   *string `json:"secret"`
	Password *string `json:"password"`
}

func (r updateAchievementRequest) toUpdate() entity.ProfileUpdate {
	secret := r.Secret
	if secret == nil {
		secret = r.Password
	}
	return entity.ProfileUpdate{Username: r.Username, Email: r.Email, Secret: secret}
}

// achievementResponse keeps the original flat body of GET /api/achievement/:id.
type achievementResponse struct {
	ID           int64    `json:"id"`
	Username     *string  `json:"username"`
	Email        *string  `json:"email"`
	Secret       *string  `json:"secret"`
	Achievements []string `json:"achievements"`
}

type searchResponse struct {
	Hits []map[string]any `json:"hits"`
}

func (h *AchievementHandler) Get(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	v, err := h.Svc.GetProfileWithAchievements(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, achievementResponse{
		ID:           v.Profile.ID,
		Username:     v.Profile.Username,
		Email:        v.Profile.Email,
		Secret:       v.Profile.Secret,
		Achievements: v.Achievements,
	})
}

func (h *AchievementHandler) Update(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	var req updateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		helpers.LogWarn(h.Logger, "invalid payload", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.ApplyUpdate(c.Request.Context(), id, req.toUpdate())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res, "profile updated")
}

func (h *AchievementHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		writeError(c, h.Logger, application.BadRequest("query parameter q is required", nil))
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		writeError(c, h.Logger, application.BadRequest("query parameter size must be an integer", err))
		return
	}
	hits, err := h.Svc.SearchProfiles(c.Request.Context(), q, size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, searchResponse{Hits: hits}, "search results")
}

func parseUserID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, application.BadRequest("invalid user id", err)
	}
	return id, nil
}
