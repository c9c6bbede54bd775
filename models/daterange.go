package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and form format for rental dates.
const DateLayout = "2006-01-02"

var (
	ErrDatesRequired = errors.New("start and end dates are required")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidRange  = errors.New("end date is before start date")
)

// DateRange is an inclusive booking window; End is never before Start.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end string) (DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return DateRange{}, ErrDatesRequired
	}
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w %q", ErrInvalidDate, start)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w %q", ErrInvalidDate, end)
	}
	if e.Before(s) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: s, End: e}, nil
}

// Days counts both ends.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}
