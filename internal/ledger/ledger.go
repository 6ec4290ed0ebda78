// Package ledger records planned and actual operations of step budgets.
//
// All cross-entity rules live here: an operation always belongs to the
// budget of its step, every account and category it references belongs to
// that same budget, and actual operations may only point back to a planned
// operation of their own step. Every write runs in a single transaction so
// that a failed or canceled call leaves nothing behind.
package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/budget-steps/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger is safe for concurrent use. It keeps no mutable state besides
// the cache of immutable steps.
type Ledger struct {
	db    *gorm.DB
	steps *stepCache
}

// New returns a Ledger storing its data in db.
//
// Up to stepCacheSize steps are kept in memory, a size of 0 disables
// the cache.
func New(db *gorm.DB, stepCacheSize int64) (*Ledger, error) {
	steps, err := newStepCache(stepCacheSize)
	if err != nil {
		return nil, fmt.Errorf("could not create step cache: %w", err)
	}

	return &Ledger{
		db:    db,
		steps: steps,
	}, nil
}

// Close releases the resources held by the cache. The database
// connection is owned by the caller and stays open.
func (l *Ledger) Close() {
	l.steps.close()
}

func (l *Ledger) postgres() bool {
	return l.db.Dialector.Name() == models.DriverPostgres
}

// transaction runs fn in one database transaction bound to ctx.
//
// PostgreSQL runs it at READ COMMITTED, rows read through lock are
// protected until commit. SQLite has a single writer and serializes
// transactions.
func (l *Ledger) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	db := l.db.WithContext(ctx)

	if l.postgres() {
		return db.Transaction(fn, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	}

	return db.Transaction(fn)
}

// lock returns tx reading rows with a shared row lock where the database
// supports it.
func (l *Ledger) lock(tx *gorm.DB) *gorm.DB {
	if l.postgres() {
		return tx.Clauses(clause.Locking{Strength: "SHARE"})
	}

	return tx
}

// lockBudget reads a budget inside a transaction.
func (l *Ledger) lockBudget(tx *gorm.DB, id uint) (models.Budget, error) {
	var budget models.Budget
	err := l.lock(tx).First(&budget, id).Error
	if err != nil {
		return models.Budget{}, lookupError(err, "budget", id)
	}

	return budget, nil
}

// lockStep reads a step inside a transaction, bypassing the cache.
func (l *Ledger) lockStep(tx *gorm.DB, id uint) (models.Step, error) {
	var step models.Step
	err := l.lock(tx).First(&step, id).Error
	if err != nil {
		return models.Step{}, lookupError(err, "step", id)
	}

	return step, nil
}
