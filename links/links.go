// Package links builds the outbound contact deep links shown next to every outfit.
package links

import (
	"fmt"
	"net/url"
	"strings"
)

const shopName = "The Missing Fit"

// WhatsApp returns a wa.me link that opens a chat with number pre-filled with message.
func WhatsApp(number, message string) string {
	return "https://wa.me/" + digits(number) + "?text=" + escapeComponent(message)
}

func Tel(phone string) string {
	return "tel:" + strings.ReplaceAll(phone, " ", "")
}

// CardMessage is the short enquiry sent from a collection card.
func CardMessage(itemName string) string {
	return fmt.Sprintf("Hi! I'm interested in renting the \"%s\" from %s.", itemName, shopName)
}

// BookingMessage is the longer enquiry sent from the detail overlay.
func BookingMessage(itemName string) string {
	return CardMessage(itemName) + " Can you help me with the booking?"
}

// escapeComponent matches encodeURIComponent: spaces become %20, not +,
// and the marks it leaves alone stay literal.
var componentMarks = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeComponent(s string) string {
	return componentMarks.Replace(url.QueryEscape(s))
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
