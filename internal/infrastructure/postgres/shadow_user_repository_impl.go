package postgres

import (
	"context"
	"fmt"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
	"github.com/oksasatya/yomu-engine/internal/domain/repository"
)

type ShadowUserRepository struct {
	db DBTX
}

func NewShadowUserRepository(db DBTX) *ShadowUserRepository {
	return &ShadowUserRepository{db: db}
}

func (r *ShadowUserRepository) InsertShadowUser(ctx context.Context, u *entity.ShadowUser) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO shadow_users (user_id, total_score)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`, u.UserID, u.TotalScore)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

var _ repository.ShadowUserRepository = (*ShadowUserRepository)(nil)
