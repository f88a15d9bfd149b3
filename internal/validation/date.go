package validation

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateOnly is the format produced by <input type="date"> on the client.
const dateOnly = "2006-01-02"

// Date accepts either a plain calendar date ("2025-11-01") or a full RFC 3339
// timestamp and normalizes to UTC. A plain date becomes UTC midnight of that
// calendar day, so the round trip never shifts the date across a timezone.
// Invalid strings fail parsing instead of silently becoming an epoch default.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("Data inválida")
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		d.Time = t.UTC()
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t.UTC()
		return nil
	}
	return fmt.Errorf("Data inválida: %q", s)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}
