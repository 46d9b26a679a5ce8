package postgres

import (
	"context"
	"fmt"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
	"github.com/oksasatya/yomu-engine/internal/domain/repository"
)

type AchievementRepository struct {
	db DBTX
}

func NewAchievementRepository(db DBTX) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// Grant relies on the (user_id, achievement_type) unique index; a conflict is a no-op.
func (r *AchievementRepository) Grant(ctx context.Context, userID int64, t entity.AchievementType) (bool, error) {
	res, err := r.db.Exec(ctx, `
		INSERT INTO achievements_dummy (user_id, achievement_type)
		VALUES ($1, $2)
		ON CONFLICT (user_id, achievement_type) DO NOTHING
	`, userID, string(t))
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected() == 1, nil
}

func (r *AchievementRepository) ListByUser(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT achievement_type
		FROM achievements_dummy
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

var _ repository.AchievementRepository = (*AchievementRepository)(nil)
