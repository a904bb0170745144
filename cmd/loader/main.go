// Command loader performs the one-time bulk import of attendee data. It
// reads a JSON file of users with optional historical scans and replays
// them through the same create-or-reuse-by-name activity semantics as the
// live scan endpoint, keeping the explicit scanned_at values.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"checkin-backend/config"
	"checkin-backend/database"
)

type seedScan struct {
	ActivityName     string `json:"activity_name"`
	ActivityCategory string `json:"activity_category"`
	ScannedAt        string `json:"scanned_at"`
}

type seedUser struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone"`
	BadgeCode *string    `json:"badge_code"`
	Scans     []seedScan `json:"scans"`
}

func main() {
	dataPath := flag.String("data", "data.json", "path to the seed data file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Unable to load configuration: %v\n", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Unable to open database: %v\n", err)
	}
	defer db.Close()

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatalf("Unable to read %s: %v\n", *dataPath, err)
	}

	var users []seedUser
	if err := json.Unmarshal(raw, &users); err != nil {
		log.Fatalf("Unable to parse %s: %v\n", *dataPath, err)
	}

	for _, user := range users {
		if err := loadUser(db, user); err != nil {
			log.Fatalf("Error loading initial data: %v\n", err)
		}
	}

	log.Printf("Initial data loaded successfully (%d users)", len(users))
}

func loadUser(db *sqlx.DB, user seedUser) error {
	_, err := db.Exec(
		`INSERT OR IGNORE INTO users (name, email, phone, badge_code) VALUES (?, ?, ?, ?)`,
		user.Name, user.Email, user.Phone, user.BadgeCode,
	)
	if err != nil {
		return err
	}

	// Re-resolve by email: LastInsertId is stale when the insert was ignored.
	var userID int64
	if err := db.Get(&userID, `SELECT id FROM users WHERE email = ?`, user.Email); err != nil {
		return err
	}

	for _, scan := range user.Scans {
		_, err := db.Exec(
			`INSERT OR IGNORE INTO activities (name, category) VALUES (?, ?)`,
			scan.ActivityName, scan.ActivityCategory,
		)
		if err != nil {
			return err
		}

		var activityID int64
		if err := db.Get(&activityID, `SELECT id FROM activities WHERE name = ?`, scan.ActivityName); err != nil {
			return err
		}

		_, err = db.Exec(
			`INSERT INTO scans (user_id, activity_id, scanned_at) VALUES (?, ?, ?)`,
			userID, activityID, scan.ScannedAt,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
