package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDateRange = errors.New("check-in must be before check-out")

// DateFormat is the only calendar-date layout accepted on the wire.
const DateFormat = "2006-01-02"

// DateRange is a half-open stay interval [checkIn, checkOut): the check-out
// day itself is free for new arrivals. Both bounds are calendar dates with no
// time-of-day component.
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)

	if !in.Before(out) {
		return DateRange{}, ErrInvalidDateRange
	}

	return DateRange{checkIn: in, checkOut: out}, nil
}

func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := time.Parse(DateFormat, checkIn)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid check-in date %q: %w", checkIn, err)
	}
	out, err := time.Parse(DateFormat, checkOut)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid check-out date %q: %w", checkOut, err)
	}
	return NewDateRange(in, out)
}

func (r DateRange) CheckIn() time.Time {
	return r.checkIn
}

func (r DateRange) CheckOut() time.Time {
	return r.checkOut
}

// Overlaps reports whether two half-open ranges share at least one night.
// A range ending exactly when another begins does not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}

func (r DateRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkIn.Format(DateFormat), r.checkOut.Format(DateFormat))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
