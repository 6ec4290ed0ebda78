package test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/budget-steps/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TmpFile returns the path of a SQLite ledger file in a directory
// that is removed after the test.
func TmpFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), fmt.Sprintf("ledger-%s.db", uuid.NewString()))
}

// Database connects to a new, fully migrated ledger database.
// The connection is closed after the test.
func Database(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := models.Connect(models.SQLite(TmpFile(t)))
	require.Nil(t, err, "Database connection failed")

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}
