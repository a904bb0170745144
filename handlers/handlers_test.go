package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"checkin-backend/database"
)

func newTestRouter(t *testing.T) (*gin.Engine, *sqlx.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userHandler := NewUserHandler(db)
	scanHandler := NewScanHandler(db)

	r := gin.New()
	r.GET("/users", userHandler.ListUsers)
	r.GET("/users/:identifier", userHandler.GetUser)
	r.PUT("/users/:identifier", userHandler.UpdateUser)
	r.POST("/scan/:identifier", scanHandler.RecordScan)
	r.GET("/scans", scanHandler.ListScanFrequencies)
	return r, db
}

func seedUser(t *testing.T, db *sqlx.DB, name, email string, badgeCode *string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO users (name, email, badge_code) VALUES (?, ?, ?)`, name, email, badgeCode)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

// seedUserAt inserts a user with an explicit updated_at so tests can
// observe the trigger-driven refresh.
func seedUserAt(t *testing.T, db *sqlx.DB, name, email, updatedAt string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO users (name, email, updated_at) VALUES (?, ?, ?)`, name, email, updatedAt)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func strPtr(s string) *string { return &s }
