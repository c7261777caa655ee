//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"hotel-reservas/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		kinds      []infra.RepositoryErrorKind
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:       "no rows classifies as not found",
			err:        pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "unique violation classifies as duplicate key",
			err:        &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "foreign key violation",
			err:        &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "exclusion violation classifies as conflict",
			err:        &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"},
			expectKind: infra.KindConflict,
		},
		{
			name:       "unknown error defaults to db failure",
			err:        errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "explicit kind wins over classification",
			err:        pgx.ErrNoRows,
			kinds:      []infra.RepositoryErrorKind{infra.KindConflict},
			expectKind: infra.KindConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("query failed", tc.err, tc.kinds...)

			assert.True(t, infra.IsKind(wrapped, tc.expectKind))
			assert.ErrorIs(t, wrapped, tc.err)
			assert.Contains(t, wrapped.Error(), string(tc.expectKind))
			assert.Contains(t, wrapped.Error(), "query failed")
		})
	}
}

func TestIsKind(t *testing.T) {
	wrapped := infra.WrapRepoErr("query failed", pgx.ErrNoRows)

	assert.True(t, infra.IsKind(wrapped, infra.KindNotFound))
	assert.False(t, infra.IsKind(wrapped, infra.KindConflict))
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, infra.IsNoRows(pgx.ErrNoRows))
	assert.False(t, infra.IsNoRows(errors.New("other")))
}
