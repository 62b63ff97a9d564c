package commands

import (
	"errors"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// conflictOn remaps a storage uniqueness violation or a lost conditional
// write to a domain Conflict. Other errors pass through.
func conflictOn(err error, code errs.Code, reason string) error {
	if errors.Is(err, ports.ErrDuplicateKey) || errors.Is(err, ports.ErrStaleWrite) {
		return errs.NewConflictErrorWithCause(code, reason, err)
	}
	return err
}

func isStale(err error) bool {
	return errors.Is(err, ports.ErrStaleWrite)
}
