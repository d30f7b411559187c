package postgres

import (
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/riskibarqy/mockmaster/internal/domain/draft"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// wrapDBError attaches op context to a driver error. Aborts caused by concurrent
// scopes, and unique violations from two picks racing for the same slot or
// player, surface as draft.ErrSerializationConflict so callers can retry.
func wrapDBError(err error, op string) error {
	if err == nil {
		return nil
	}
	if isConflict(err) {
		return errors.WithSecondaryError(
			errors.Wrapf(draft.ErrSerializationConflict, "%s", op),
			err,
		)
	}
	return errors.Wrap(err, op)
}

func isConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch string(pqErr.Code) {
	case codeSerializationFailure, codeDeadlockDetected, codeUniqueViolation:
		return true
	default:
		return false
	}
}
