package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
	repo "github.com/oksasatya/yomu-engine/internal/domain/repository"
)

// SyncService owns the shadow user context. It shares nothing with profiles.
type SyncService struct {
	Repo   repo.ShadowUserRepository
	Logger *logrus.Logger
}

func NewSyncService(r repo.ShadowUserRepository, logger *logrus.Logger) *SyncService {
	return &SyncService{Repo: r, Logger: logger}
}

// Sync acknowledges a sync request. When a user id is supplied the shadow user is
// created with a zero score; an existing one is left untouched.
func (s *SyncService) Sync(ctx context.Context, userID *uuid.UUID) (*entity.ShadowUser, error) {
	if userID == nil {
		return nil, nil
	}
	if *userID == uuid.Nil {
		return nil, BadRequest("user_id must not be nil uuid", nil)
	}
	u := entity.NewShadowUser(*userID)
	if err := s.Repo.InsertShadowUser(ctx, u); err != nil {
		return nil, InternalServer("failed to sync user", err)
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.UserID.String()).Debug("shadow user synced")
	}
	return u, nil
}
