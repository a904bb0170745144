package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenAppliesSchemaIdempotently(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	// Re-applying must be a no-op.
	require.NoError(t, InitSchema(db))

	var tables []string
	require.NoError(t, db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'activities', 'scans') ORDER BY name`))
	require.Equal(t, []string{"activities", "scans", "users"}, tables)
}

func TestUpdateTriggerRefreshesTimestamp(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO users (name, email, updated_at) VALUES ('Alice', 'alice@example.com', '2020-01-01 00:00:00')`)
	require.NoError(t, err)

	_, err = db.Exec(`UPDATE users SET name = 'Alicia' WHERE email = 'alice@example.com'`)
	require.NoError(t, err)

	var updatedAt string
	require.NoError(t, db.Get(&updatedAt, `SELECT CAST(updated_at AS TEXT) FROM users WHERE email = 'alice@example.com'`))
	require.Greater(t, updatedAt, "2020-01-01 00:00:00")
}

func TestScanInsertTriggerRefreshesUserTimestamp(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO users (name, email, updated_at) VALUES ('Alice', 'alice@example.com', '2020-01-01 00:00:00')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO activities (name, category) VALUES ('Quiz', 'Workshop')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO scans (user_id, activity_id) VALUES (1, 1)`)
	require.NoError(t, err)

	var updatedAt string
	require.NoError(t, db.Get(&updatedAt, `SELECT CAST(updated_at AS TEXT) FROM users WHERE id = 1`))
	require.Greater(t, updatedAt, "2020-01-01 00:00:00")
}

func TestActivityNameUniqueness(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO activities (name, category) VALUES ('Quiz', 'Workshop')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO activities (name, category) VALUES ('Quiz', 'Other')`)
	require.Error(t, err)

	_, err = db.Exec(`INSERT OR IGNORE INTO activities (name, category) VALUES ('Quiz', 'Other')`)
	require.NoError(t, err)

	var category string
	require.NoError(t, db.Get(&category, `SELECT category FROM activities WHERE name = 'Quiz'`))
	require.Equal(t, "Workshop", category)
}
