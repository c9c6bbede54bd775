package models

import (
	"encoding/json"
	"errors"
)

type AvailabilityKind string

const (
	KindAvailable AvailabilityKind = "available"
	// KindHeld is an item an admin marked unavailable without recording a booking.
	KindHeld AvailabilityKind = "held"
	KindRented AvailabilityKind = "rented"
)

var ErrPeriodNotFound = errors.New("rental period not found")

// Availability is the booking state of one item. Rented always carries at least one
// period and the other kinds carry none; Apply is the only way to move between them.
type Availability struct {
	kind    AvailabilityKind
	periods []RentalPeriod
}

func Available() Availability { return Availability{kind: KindAvailable} }

func Held() Availability { return Availability{kind: KindHeld} }

// Rented returns Available when no periods are given.
func Rented(periods ...RentalPeriod) Availability {
	if len(periods) == 0 {
		return Available()
	}
	return Availability{kind: KindRented, periods: append([]RentalPeriod(nil), periods...)}
}

func (a Availability) Kind() AvailabilityKind {
	if a.kind == "" {
		return KindAvailable
	}
	return a.kind
}

func (a Availability) IsAvailable() bool { return a.Kind() == KindAvailable }

// Periods returns a copy in booking order.
func (a Availability) Periods() []RentalPeriod {
	return append([]RentalPeriod(nil), a.periods...)
}

// Event is a state change requested by an admin.
type Event interface{ event() }

// Toggle flips the item between available and unavailable.
type Toggle struct{}

// Book records a rental period.
type Book struct{ Period RentalPeriod }

// Release drops one recorded rental period.
type Release struct{ PeriodID string }

func (Toggle) event()  {}
func (Book) event()    {}
func (Release) event() {}

// Apply returns the state after ev. The receiver is never modified.
func (a Availability) Apply(ev Event) (Availability, error) {
	switch ev := ev.(type) {
	case Toggle:
		if a.Kind() == KindAvailable {
			return Held(), nil
		}
		// turning an item back on discards whatever was booked
		return Available(), nil
	case Book:
		return Rented(append(a.Periods(), ev.Period)...), nil
	case Release:
		kept := make([]RentalPeriod, 0, len(a.periods))
		found := false
		for _, p := range a.periods {
			if p.ID == ev.PeriodID {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		if !found {
			return a, ErrPeriodNotFound
		}
		return Rented(kept...), nil
	}
	return a, errors.New("unknown availability event")
}

func (a Availability) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a.Kind()))
}
