package repository

import (
	"context"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
)

// ProfileRepository defines profile storage operations. Each field update is a single
// last-write-wins statement.
type ProfileRepository interface {
	Create(ctx context.Context, p *entity.Profile) error
	GetByID(ctx context.Context, id int64) (*entity.Profile, error)
	UpdateUsername(ctx context.Context, id int64, username string) error
	UpdateEmail(ctx context.Context, id int64, email string) error
	UpdateSecret(ctx context.Context, id int64, secret string) error
}
