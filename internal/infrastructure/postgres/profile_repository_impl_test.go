package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
	"github.com/oksasatya/yomu-engine/internal/domain/repository"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestProfileRepository_GetByID(t *testing.T) {
	mock := newMock(t)
	r := NewProfileRepository(mock)
	ken := "ken"

	mock.ExpectQuery(regexp.QuoteMeta("FROM users_achievements_dummy")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "password"}).
			AddRow(int64(7), &ken, (*string)(nil), (*string)(nil)))

	p, err := r.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	require.NotNil(t, p.Username)
	assert.Equal(t, "ken", *p.Username)
	assert.Nil(t, p.Email)
	assert.Nil(t, p.Secret)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	r := NewProfileRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users_achievements_dummy")).
		WithArgs(int64(999)).
		WillReturnError(pgx.ErrNoRows)

	p, err := r.GetByID(context.Background(), 999)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_GetByID_DBError(t *testing.T) {
	mock := newMock(t)
	r := NewProfileRepository(mock)
	boom := errors.New("connection refused")

	mock.ExpectQuery(regexp.QuoteMeta("FROM users_achievements_dummy")).
		WithArgs(int64(1)).
		WillReturnError(boom)

	_, err := r.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileRepository_UpdateFields(t *testing.T) {
	tests := []struct {
		name  string
		sql   string
		apply func(r *ProfileRepository) error
	}{
		{
			name:  "username",
			sql:   "UPDATE users_achievements_dummy SET username = $1 WHERE id = $2",
			apply: func(r *ProfileRepository) error { return r.UpdateUsername(context.Background(), 7, "v") },
		},
		{
			name:  "email",
			sql:   "UPDATE users_achievements_dummy SET email = $1 WHERE id = $2",
			apply: func(r *ProfileRepository) error { return r.UpdateEmail(context.Background(), 7, "v") },
		},
		{
			name:  "secret",
			sql:   "UPDATE users_achievements_dummy SET password = $1 WHERE id = $2",
			apply: func(r *ProfileRepository) error { return r.UpdateSecret(context.Background(), 7, "v") },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectExec(regexp.QuoteMeta(tt.sql)).
				WithArgs("v", int64(7)).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))

			require.NoError(t, tt.apply(NewProfileRepository(mock)))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProfileRepository_UpdateMissingRow(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users_achievements_dummy SET email")).
		WithArgs("a@b.c", int64(999)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := NewProfileRepository(mock).UpdateEmail(context.Background(), 999, "a@b.c")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileRepository_Create(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users_achievements_dummy")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	p := &entity.Profile{}
	require.NoError(t, NewProfileRepository(mock).Create(context.Background(), p))
	assert.Equal(t, int64(42), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
