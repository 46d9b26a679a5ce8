package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
	"github.com/oksasatya/yomu-engine/internal/domain/repository"
)

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p *entity.Profile) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users_achievements_dummy (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`, p.Username, p.Email, p.Secret)
	if err := row.Scan(&p.ID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*entity.Profile, error) {
	p := &entity.Profile{}
	row := r.db.QueryRow(ctx, `
		SELECT id, username, email, password
		FROM users_achievements_dummy
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.Username, &p.Email, &p.Secret); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) UpdateUsername(ctx context.Context, id int64, username string) error {
	return r.exec(ctx, `UPDATE users_achievements_dummy SET username = $1 WHERE id = $2`, username, id)
}

func (r *ProfileRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	return r.exec(ctx, `UPDATE users_achievements_dummy SET email = $1 WHERE id = $2`, email, id)
}

func (r *ProfileRepository) UpdateSecret(ctx context.Context, id int64, secret string) error {
	return r.exec(ctx, `UPDATE users_achievements_dummy SET password = $1 WHERE id = $2`, secret, id)
}

func (r *ProfileRepository) exec(ctx context.Context, sql string, value string, id int64) error {
	res, err := r.db.Exec(ctx, sql, value, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
