//go:build unit

package repository

import (
	"context"
	"testing"

	"gin-shareit/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemRepositoryDelete(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		execErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "deleted", tag: "DELETE 1"},
		{name: "missing row", tag: "DELETE 0", wantKind: infra.KindNotFound},
		{name: "booked item", execErr: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "database error", execErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(MockDBTX)
			mockDB.On("Exec", mock.Anything, mock.Anything, mock.Anything).
				Return(pgconn.NewCommandTag(tt.tag), tt.execErr)

			err := NewItemRepository(mockDB).Delete(context.Background(), uuid.New())

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			mockDB.AssertExpectations(t)
		})
	}
}

func TestItemRepositoryListByRequestsWithoutRequests(t *testing.T) {
	mockDB := new(MockDBTX)

	got, err := NewItemRepository(mockDB).ListByRequests(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
	mockDB.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestRepositoryFindByID(t *testing.T) {
	tests := []struct {
		name     string
		scanErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "no rows", scanErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", scanErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(MockDBTX)
			mockDB.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(errRow{err: tt.scanErr})

			req, err := NewRequestRepository(mockDB).FindByID(context.Background(), uuid.New())

			assert.Nil(t, req)
			assert.True(t, infra.IsKind(err, tt.wantKind))
			mockDB.AssertExpectations(t)
		})
	}
}
