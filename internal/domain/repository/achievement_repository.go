package repository

import (
	"context"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
)

// AchievementRepository stores achievement grants. It is append-only: there is no delete.
type AchievementRepository interface {
	// Grant inserts (userID, t). created is false when the grant already existed.
	Grant(ctx context.Context, userID int64, t entity.AchievementType) (created bool, err error)
	// ListByUser returns the granted types in store order.
	ListByUser(ctx context.Context, userID int64) ([]string, error)
}
