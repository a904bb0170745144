package handlers

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"checkin-backend/models"
)

type UserHandler struct {
	db *sqlx.DB
}

func NewUserHandler(db *sqlx.DB) *UserHandler {
	return &UserHandler{db: db}
}

const userColumns = `id, name, email, phone, badge_code, updated_at`

// userScanRow is a scan joined with its activity, keyed by owner for
// grouping in application code.
type userScanRow struct {
	UserID int64 `db:"user_id"`
	models.ScanEntry
}

// ListUsers returns every user with their full scan history nested under
// a scans array. Users and scans are fetched separately and merged here,
// so a scanless user gets an empty array rather than a synthetic null row.
func (h *UserHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.Select(&users, `SELECT `+userColumns+` FROM users`); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var rows []userScanRow
	err := h.db.Select(&rows, `
		SELECT s.user_id, a.name AS activity_name, a.category AS activity_category, s.scanned_at
		FROM scans s
		JOIN activities a ON s.activity_id = a.id
	`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	scansByUser := make(map[int64][]models.ScanEntry, len(users))
	for _, r := range rows {
		scansByUser[r.UserID] = append(scansByUser[r.UserID], r.ScanEntry)
	}

	out := make([]models.UserWithScans, 0, len(users))
	for _, u := range users {
		scans := scansByUser[u.ID]
		if scans == nil {
			scans = []models.ScanEntry{}
		}
		out = append(out, models.UserWithScans{User: u, Scans: scans})
	}

	c.JSON(http.StatusOK, out)
}

// GetUser resolves the identifier against email or badge code and returns
// the user with nested scans.
func (h *UserHandler) GetUser(c *gin.Context) {
	identifier := c.Param("identifier")

	user, err := h.findUser(identifier)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	scans := []models.ScanEntry{}
	err = h.db.Select(&scans, `
		SELECT a.name AS activity_name, a.category AS activity_category, s.scanned_at
		FROM scans s
		JOIN activities a ON s.activity_id = a.id
		WHERE s.user_id = ?
	`, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.UserWithScans{User: *user, Scans: scans})
}

// UpdateUser applies a partial field update. Protected keys are stripped
// silently; remaining keys must belong to the known updatable column set,
// anything else is rejected before any SQL is built.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	identifier := c.Param("identifier")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, field := range models.ProtectedUserFields {
		delete(updates, field)
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	setParts := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	for field, value := range updates {
		if !models.UpdatableUserFields[field] {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown field: %s", field)})
			return
		}
		setParts = append(setParts, field+" = ?")
		args = append(args, value)
	}
	args = append(args, identifier, identifier)

	query := `UPDATE users SET ` + strings.Join(setParts, ", ") + ` WHERE email = ? OR badge_code = ?`
	result, err := h.db.Exec(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	log.Printf("Updated user %s (request %s)", identifier, c.GetString("request_id"))

	// Re-fetch the plain row; the store trigger has refreshed updated_at.
	user, err := h.findUser(identifier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) findUser(identifier string) (*models.User, error) {
	var user models.User
	err := h.db.Get(&user, `SELECT `+userColumns+` FROM users WHERE email = ? OR badge_code = ?`, identifier, identifier)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
