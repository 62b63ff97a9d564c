// Package sqlerr classifies driver errors for the GORM repositories so that
// the core only ever sees the ports sentinels.
package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// IsUniqueViolation recognizes unique constraint failures from both drivers,
// translated by GORM or not.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Write wraps unique violations in ports.ErrDuplicateKey and passes other
// errors through.
func Write(err error) error {
	if IsUniqueViolation(err) {
		return fmt.Errorf("%w: %w", ports.ErrDuplicateKey, err)
	}
	return err
}

// Conditional turns a conditional UPDATE result into ports.ErrStaleWrite
// when it matched no row.
func Conditional(result *gorm.DB) error {
	if result.Error != nil {
		return Write(result.Error)
	}
	if result.RowsAffected == 0 {
		return ports.ErrStaleWrite
	}
	return nil
}
