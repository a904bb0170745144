package models

// ActivityFrequency is one row of the GET /scans aggregation: scan count
// per activity, activities with zero scans excluded.
type ActivityFrequency struct {
	ActivityName     string `json:"activity_name" db:"activity_name"`
	ActivityCategory string `json:"activity_category" db:"activity_category"`
	Frequency        int    `json:"frequency" db:"frequency"`
}
