package sqlerr_test

import (
	"errors"
	"fmt"
	"testing"

	"marketplace/internal/adapters/out/postgres/sqlerr"
	"marketplace/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"translated", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"postgres", &pgconn.PgError{Code: "23505"}, true},
		{"postgres other", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite", errors.New("constraint failed: UNIQUE constraint failed: disputes.order_id (2067)"), true},
		{"other", errors.New("connection reset"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sqlerr.IsUniqueViolation(tc.err))
		})
	}
}

func TestWrite(t *testing.T) {
	err := sqlerr.Write(gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, err, ports.ErrDuplicateKey)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	other := errors.New("boom")
	assert.Equal(t, other, sqlerr.Write(other))
}

func TestConditional(t *testing.T) {
	assert.ErrorIs(t, sqlerr.Conditional(&gorm.DB{RowsAffected: 0}), ports.ErrStaleWrite)
	assert.NoError(t, sqlerr.Conditional(&gorm.DB{RowsAffected: 1}))
	assert.ErrorIs(t, sqlerr.Conditional(&gorm.DB{Error: gorm.ErrDuplicatedKey}), ports.ErrDuplicateKey)
}
