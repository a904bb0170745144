package models

// ScanEntry is one check-in as surfaced to clients, both nested under a
// user and as the POST /scan response.
type ScanEntry struct {
	ActivityName     string    `json:"activity_name" db:"activity_name"`
	ActivityCategory string    `json:"activity_category" db:"activity_category"`
	ScannedAt        Timestamp `json:"scanned_at" db:"scanned_at"`
}

type ScanRequest struct {
	ActivityName     string `json:"activity_name"`
	ActivityCategory string `json:"activity_category"`
}
