package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database drivers supported as the durable store.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// SQLite returns the dialector for the SQLite database file at path.
//
// Foreign keys are always enabled.
func SQLite(path string) gorm.Dialector {
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	return sqlite.Open(fmt.Sprintf("%s%s_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path, separator))
}

// Postgres returns the dialector for a PostgreSQL database.
func Postgres(host string, port int, user, password, name string) gorm.Dialector {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, name)
	return postgres.Open(dsn)
}

// Connect opens the database, configures the connection pool
// and migrates the schema.
func Connect(dialector gorm.Dialector) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger:        log.Logger,
			SlowThreshold: slowQueryThreshold,
		},
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	if db.Dialector.Name() == DriverSQLite {
		// SQLite only supports a single writer. With one connection, transactions
		// are serialized in the pool instead of failing with SQLITE_BUSY.
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(20)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	callbacks := []struct {
		name     string
		register func(string, func(*gorm.DB)) error
		fn       func(*gorm.DB)
	}{
		{"budget_steps:after_query", db.Callback().Query().After("*").Register, queryCallback},
		{"budget_steps:after_query_general", db.Callback().Query().After("*").Register, generalCallback},
		{"budget_steps:after_create", db.Callback().Create().After("*").Register, createUpdateCallback},
		{"budget_steps:after_create_general", db.Callback().Create().After("*").Register, generalCallback},
		{"budget_steps:after_update", db.Callback().Update().After("*").Register, createUpdateCallback},
		{"budget_steps:after_update_general", db.Callback().Update().After("*").Register, generalCallback},
		{"budget_steps:after_row_general", db.Callback().Row().After("*").Register, generalCallback},
	}

	for _, c := range callbacks {
		err = c.register(c.name, c.fn)
		if err != nil {
			return nil, fmt.Errorf("failed to register callback %s: %w", c.name, err)
		}
	}

	return db, nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones.
//
// Both the SQLite and the PostgreSQL messages contain the constraint name.
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	switch {
	case strings.Contains(msg, "amount_positive"):
		db.Error = ErrAmountNotPositive
	case strings.Contains(msg, ErrAmountPrecision.Error()):
		db.Error = ErrAmountPrecision
	case strings.Contains(msg, "step_dates_ordered"):
		db.Error = ErrStepDatesOrder
	case strings.Contains(msg, "transfer_accounts_different"):
		db.Error = ErrTransferSameAccount
	case strings.Contains(msg, "budget_share_role_valid"):
		db.Error = ErrBudgetShareRoleUnknown
	case strings.Contains(msg, "UNIQUE constraint failed: budget_shares.budget_id, budget_shares.user_id"),
		strings.Contains(msg, "budget_share_budget_user"):
		db.Error = ErrBudgetShareNotUnique
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "violates foreign key constraint"):
		db.Error = ErrReference
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Budget{}, BudgetShare{}, Step{}, Account{}, Category{}, Operation{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
