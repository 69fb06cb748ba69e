package timeutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
	_ "time/tzdata"
)

// LocalLayout is the display format for wall-clock times in a doctor's zone.
const LocalLayout = "2006-01-02T15:04:05"

var parseLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// LocalDateTime is a civil date and time without a zone, as sent by clients.
// Interpretation happens later against the doctor's timezone.
type LocalDateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
	Nano   int
}

// ParseLocalDateTime parses the accepted civil timestamp forms.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	for _, layout := range parseLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return FromTime(t), nil
		}
	}
	return LocalDateTime{}, fmt.Errorf("invalid local date time %q, use YYYY-MM-DDTHH:MM[:SS]", s)
}

// FromTime takes the wall clock of t, ignoring its location.
func FromTime(t time.Time) LocalDateTime {
	return LocalDateTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Nano:   t.Nanosecond(),
	}
}

func (l LocalDateTime) IsZero() bool {
	return l == LocalDateTime{}
}

// In resolves the civil time in loc. A time inside a DST overlap takes the
// earlier offset. A time inside a DST gap does not exist and is moved forward
// by the length of the gap, so 02:30 on a spring-forward night becomes 03:30.
func (l LocalDateTime) In(loc *time.Location) time.Time {
	t := time.Date(l.Year, l.Month, l.Day, l.Hour, l.Minute, l.Second, l.Nano, loc)

	wall := FromTime(t)
	if !wall.Before(l) {
		return t
	}

	// time.Date applied the offset from after the transition, landing before
	// it. Push t past the transition by the offset change.
	_, before := t.Zone()
	_, end := t.ZoneBounds()
	if end.IsZero() {
		return t
	}
	_, after := end.Zone()
	return t.Add(time.Duration(after-before) * time.Second)
}

// Before reports whether l is an earlier wall-clock reading than o.
func (l LocalDateTime) Before(o LocalDateTime) bool {
	return l.utcWall().Before(o.utcWall())
}

func (l LocalDateTime) utcWall() time.Time {
	return time.Date(l.Year, l.Month, l.Day, l.Hour, l.Minute, l.Second, l.Nano, time.UTC)
}

func (l LocalDateTime) String() string {
	return l.utcWall().Format(LocalLayout)
}

func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*l = LocalDateTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// LoadZone loads an IANA timezone name.
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// ToUTC converts a civil time in the named zone to a UTC instant.
func ToUTC(local LocalDateTime, timezone string) (time.Time, error) {
	loc, err := LoadZone(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return local.In(loc).UTC(), nil
}

// FormatInZone renders a UTC instant as wall-clock time in the named zone.
func FormatInZone(utc time.Time, timezone string) (string, error) {
	loc, err := LoadZone(timezone)
	if err != nil {
		return "", err
	}
	return utc.In(loc).Format(LocalLayout), nil
}
