package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Base provides a shared foundation for resource repositories.
type Base struct {
	db *gorm.DB
}

func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// WithTx rebinds the base to an open transaction.
func (b Base) WithTx(tx *gorm.DB) Base {
	if tx == nil {
		return b
	}
	return Base{db: tx}
}

// Take loads the single row matching every non-nil predicate into dest.
// gorm.ErrRecordNotFound is returned when nothing matches.
func (b Base) Take(ctx context.Context, dest any, preds ...Predicate) error {
	return b.DB(ctx).Clauses(clause.Where{Exprs: compact(preds)}).Take(dest).Error
}
