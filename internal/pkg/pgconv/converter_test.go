//go:build unit

package pgconv_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gin-shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, pgconv.IsUniqueViolation(unique))
	assert.False(t, pgconv.IsUniqueViolation(fk))
	assert.True(t, pgconv.IsForeignKeyViolation(fk))
	assert.True(t, pgconv.IsCheckViolation(check))
	assert.False(t, pgconv.IsCheckViolation(errors.New("plain")))

	assert.True(t, pgconv.IsNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(unique))
}

func TestTimeConversion(t *testing.T) {
	local := time.Date(2030, 1, 15, 21, 0, 0, 0, time.FixedZone("JST", 9*3600))

	got := pgconv.TimeFromPgtype(pgconv.TimeToPgtype(local))
	assert.True(t, got.Equal(local))
	assert.Equal(t, time.UTC, got.Location())

	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
	assert.NotNil(t, pgconv.TimePtrFromPgtype(pgconv.TimeToPgtype(local)))
}

func TestUUIDConversion(t *testing.T) {
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgtype.UUID{}))
	assert.False(t, pgconv.UUIDPtrToPgtype(nil).Valid)

	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id))
	if assert.NotNil(t, got) {
		assert.Equal(t, id, *got)
	}
}
