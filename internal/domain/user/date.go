package user

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01", "2006"}

// Date is a calendar date that accepts month-precision input such as "2021-03".
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month) Date {
	return Date{Time: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t.UTC()}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" || raw == `""` {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
