package entity

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day, serialized as yyyy-MM-dd.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	year, month, day := t.Date()

	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date.
func Today() Date {
	return NewDate(time.Now())
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(DateLayout))), nil
}

// UnmarshalJSON accepts yyyy-MM-dd as well as full RFC 3339 timestamps.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}

	value, err := strconv.Unquote(raw)
	if err != nil {
		return errors.Wrap(err, "date must be a JSON string")
	}

	if t, err := time.Parse(DateLayout, value); err == nil {
		*d = NewDate(t)

		return nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return errors.Errorf("invalid date %q, expected %s", value, DateLayout)
	}
	*d = NewDate(t)

	return nil
}
