package repository

import (
	"context"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
)

type ShadowUserRepository interface {
	// InsertShadowUser creates the shadow user once; repeated calls are no-ops.
	InsertShadowUser(ctx context.Context, u *entity.ShadowUser) error
}
