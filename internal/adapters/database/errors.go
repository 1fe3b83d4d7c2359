package database

import (
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"socialite/internal/apperrors"
)

const mysqlDuplicateEntry = 1062

// translate maps store-level failures onto the application error taxonomy.
// Anything unrecognized is a store failure and passes through unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return apperrors.ErrDuplicate
	}
	return err
}

// timeBounds narrows a query to the inclusive [start, end] window; either
// bound may be nil (open).
func timeBounds(q *gorm.DB, column string, start, end *time.Time) *gorm.DB {
	if start != nil {
		q = q.Where(column+" >= ?", *start)
	}
	if end != nil {
		q = q.Where(column+" <= ?", *end)
	}
	return q
}
