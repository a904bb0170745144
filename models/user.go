package models

// User is an attendee row. Email and badge code are unique at the store
// level; updated_at is maintained by triggers and never set by clients.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	BadgeCode *string   `json:"badge_code" db:"badge_code"`
	UpdatedAt Timestamp `json:"updated_at" db:"updated_at"`
}

// UserWithScans is the nested view served by GET /users and
// GET /users/:identifier. Scans is always non-nil so a user with no
// check-ins serializes as an empty array.
type UserWithScans struct {
	User
	Scans []ScanEntry `json:"scans"`
}

// ProtectedUserFields are stripped silently from update requests.
var ProtectedUserFields = []string{"id", "email", "badge_code", "updated_at", "scans"}

// UpdatableUserFields is the closed set of column names an update may touch.
// Client-supplied keys outside this set are rejected, never spliced into SQL.
var UpdatableUserFields = map[string]bool{
	"name":  true,
	"phone": true,
}
