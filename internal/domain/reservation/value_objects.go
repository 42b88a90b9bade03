package reservation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// WireLayout is the zone-less timestamp format exchanged with the backend
// (YYYY-MM-DDTHH:mm:ss).
const WireLayout = "2006-01-02T15:04:05"

// pickerLayout is what the date picker echoes back when it re-reads a value.
const pickerLayout = "2006-01-02 15:04:05"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DDTHH:mm:ss")

// LocalTime is a wall-clock timestamp without zone information. The zero
// value marshals to an empty string, never to null.
type LocalTime struct {
	t time.Time
}

func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

func ParseLocalTime(s string) (LocalTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LocalTime{}, nil
	}
	for _, layout := range []string{WireLayout, pickerLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewLocalTime(t), nil
		}
	}
	return LocalTime{}, ErrInvalidDate
}

func (lt LocalTime) Time() time.Time { return lt.t }
func (lt LocalTime) IsZero() bool    { return lt.t.IsZero() }

func (lt LocalTime) Add(d time.Duration) LocalTime {
	if lt.IsZero() {
		return lt
	}
	return LocalTime{t: lt.t.Add(d)}
}

func (lt LocalTime) String() string {
	if lt.IsZero() {
		return ""
	}
	return lt.t.Format(WireLayout)
}

func (lt LocalTime) Equal(other LocalTime) bool {
	return lt.t.Equal(other.t)
}

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(lt.String())
}

func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*lt = LocalTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLocalTime(s)
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}
