package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/database"
)

// SetupTestDB creates an in-memory SQLite database with every migration applied.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// CountRows returns the number of rows in table. table must be a trusted identifier.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	//nolint:gosec // G202: table names come from test code only
	if err := db.QueryRow(`SELECT COUNT(*) FROM "` + table + `"`).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return count
}
