package web

import (
	"math"
	"time"

	"Gin_redis_dress_rental/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var inPrinter = message.NewPrinter(language.Make("en-IN"))

// INR formats a price with Indian digit grouping. Malformed prices show a dash.
func INR(p models.Price) string {
	f := float64(p)
	if !p.Valid() || math.IsInf(f, 0) {
		return "₹—"
	}
	if f == math.Trunc(f) {
		return "₹" + inPrinter.Sprintf("%d", int64(f))
	}
	return "₹" + inPrinter.Sprintf("%.2f", f)
}

// ShortDate renders "14 Feb 2025".
func ShortDate(t time.Time) string { return t.Format("2 Jan 2006") }

// LongDate renders "14 February 2025".
func LongDate(t time.Time) string { return t.Format("2 January 2006") }

// DayMonth renders "14 Feb" for the admin booking list.
func DayMonth(t time.Time) string { return t.Format("2 Jan") }

func ISODate(t time.Time) string { return t.Format(models.DateLayout) }
