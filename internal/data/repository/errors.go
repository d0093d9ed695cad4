package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate key")
	ErrForeignKey     = errors.New("referenced record does not exist")
	ErrCheckViolation = errors.New("check constraint violated")
)

// classify wraps err with the matching repository sentinel, keeping the
// driver error in the chain. Unrecognised errors are returned unchanged.
func classify(err error) error {
	if sentinel := sentinelFor(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}

func sentinelFor(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrDuplicate
	case pgerrcode.ForeignKeyViolation:
		return ErrForeignKey
	case pgerrcode.CheckViolation:
		return ErrCheckViolation
	default:
		return nil
	}
}

// isExpected reports whether err is a classified condition callers handle,
// as opposed to a store failure worth logging.
func isExpected(err error) bool {
	return sentinelFor(err) != nil
}
