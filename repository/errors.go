package repository

import (
	"errors"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"vyoma/domain"
)

// translateDBError maps database failures onto the domain error taxonomy.
// The unique index on users.email is the source of truth for duplicates;
// the application-level lookup before insert is only a fast path.
func translateDBError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique violation
			return domain.ErrDuplicateEmail
		case "23502": // not-null violation
			return domain.ErrInvalidInput
		}
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	return err
}
