package model

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DateLayout = "2006-01-02"

// Date is a calendar date without a time component. Booking ranges are
// half-open [start, end): the end date is checkout day and never overlaps
// a range starting on the same day.
type Date struct {
	time.Time
}

func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return Date{Time: t.UTC()}, nil
}

// Nights returns the whole-day count between start and end.
func Nights(start, end Date) int {
	return int(end.Time.Sub(start.Time) / (24 * time.Hour))
}

// Overlaps reports whether [s1, e1) and [s2, e2) intersect. Touching
// endpoints are not an overlap, so back-to-back stays are allowed.
func Overlaps(s1, e1, s2, e2 Date) bool {
	return s1.Time.Before(e2.Time) && s2.Time.Before(e1.Time)
}

func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

func (d Date) String() string {
	return d.Time.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(primitive.NewDateTimeFromTime(d.Time))
}

func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var dt primitive.DateTime
	if err := bson.UnmarshalValue(t, data, &dt); err != nil {
		return fmt.Errorf("failed to decode date: %w", err)
	}
	*d = DateOf(dt.Time())
	return nil
}
