package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"checkin-backend/metrics"
	"checkin-backend/models"
)

type ScanHandler struct {
	db *sqlx.DB
}

func NewScanHandler(db *sqlx.DB) *ScanHandler {
	return &ScanHandler{db: db}
}

// RecordScan checks a user into an activity. The activity is created on
// first reference by name; on reuse the stored category wins and the
// request's category is ignored. Activity resolution and scan insertion
// run in one transaction so concurrent requests for the same new activity
// cannot race.
func (h *ScanHandler) RecordScan(c *gin.Context) {
	identifier := c.Param("identifier")

	var req models.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ActivityName == "" || req.ActivityCategory == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	var userID int64
	err := h.db.Get(&userID, `SELECT id FROM users WHERE email = ? OR badge_code = ?`, identifier, identifier)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.db.Beginx()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer tx.Rollback()

	// Conditional insert returning the id in a single statement: on name
	// conflict the no-op update leaves the stored category untouched.
	var activityID int64
	err = tx.Get(&activityID, `
		INSERT INTO activities (name, category) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET name = excluded.name
		RETURNING id
	`, req.ActivityName, req.ActivityCategory)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var scanID int64
	err = tx.Get(&scanID, `INSERT INTO scans (user_id, activity_id) VALUES (?, ?) RETURNING id`, userID, activityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.ScansRecorded.Inc()
	log.Printf("Recorded scan: user=%d activity=%q (request %s)", userID, req.ActivityName, c.GetString("request_id"))

	// Re-read the persisted scan; its category may differ from the request
	// when the activity pre-existed.
	var scan models.ScanEntry
	err = h.db.Get(&scan, `
		SELECT a.name AS activity_name, a.category AS activity_category, s.scanned_at
		FROM scans s
		JOIN activities a ON s.activity_id = a.id
		WHERE s.id = ?
	`, scanID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, scan)
}

// ListScanFrequencies aggregates scan counts per activity. The category
// filter restricts scans before grouping; frequency bounds apply after
// grouping via HAVING and combine with AND.
func (h *ScanHandler) ListScanFrequencies(c *gin.Context) {
	query := `
		SELECT a.name AS activity_name, a.category AS activity_category, COUNT(*) AS frequency
		FROM scans s
		JOIN activities a ON s.activity_id = a.id
	`
	var args []interface{}

	if category := c.Query("activity_category"); category != "" {
		query += ` WHERE a.category = ?`
		args = append(args, category)
	}

	query += ` GROUP BY a.id`

	var having []string
	if v := c.Query("min_frequency"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_frequency"})
			return
		}
		having = append(having, `COUNT(*) >= ?`)
		args = append(args, n)
	}
	if v := c.Query("max_frequency"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_frequency"})
			return
		}
		having = append(having, `COUNT(*) <= ?`)
		args = append(args, n)
	}
	if len(having) > 0 {
		query += ` HAVING ` + strings.Join(having, " AND ")
	}

	stats := []models.ActivityFrequency{}
	if err := h.db.Select(&stats, query, args...); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
