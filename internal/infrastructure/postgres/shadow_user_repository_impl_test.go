package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
)

func TestShadowUserRepository_Insert(t *testing.T) {
	mock := newMock(t)
	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO shadow_users")).
		WithArgs(id, 0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewShadowUserRepository(mock).InsertShadowUser(context.Background(), entity.NewShadowUser(id)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShadowUserRepository_InsertExistingIsNoop(t *testing.T) {
	mock := newMock(t)
	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id) DO NOTHING")).
		WithArgs(id, 0).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	assert.NoError(t, NewShadowUserRepository(mock).InsertShadowUser(context.Background(), entity.NewShadowUser(id)))
}
