package models

import (
	"fmt"
	"time"
)

// Timestamp carries a store timestamp in SQLite's CURRENT_TIMESTAMP text
// form ("2006-01-02 15:04:05", UTC). The driver surfaces such columns
// either as text or as parsed time.Time depending on the declared column
// type of the selected expression, so scanning accepts both. Lexicographic
// order of the text form matches chronological order.
type Timestamp string

const timestampLayout = "2006-01-02 15:04:05"

func (t *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
	case string:
		*t = Timestamp(v)
	case []byte:
		*t = Timestamp(v)
	case time.Time:
		*t = Timestamp(v.UTC().Format(timestampLayout))
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
	return nil
}

func (t Timestamp) String() string { return string(t) }
