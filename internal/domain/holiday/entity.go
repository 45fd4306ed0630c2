package holiday

import "time"

// Holiday is a single non-working date. A holiday overrides every other
// day classification.
type Holiday struct {
	Date      time.Time
	CreatedAt time.Time
}

func (h Holiday) DateKey() string {
	return h.Date.Format("2006-01-02")
}
