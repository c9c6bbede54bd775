// models/catalog.go
package models

import (
	"encoding/json"
)

// CategoryAll is the pseudo-category that matches every item.
const CategoryAll = "all"

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RentalPeriod belongs to exactly one CatalogItem.
type RentalPeriod struct {
	ID           string
	Dates        DateRange
	CustomerName string
}

type rentalPeriodJSON struct {
	ID           string `json:"id"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	CustomerName string `json:"customerName,omitempty"`
}

func (p RentalPeriod) MarshalJSON() ([]byte, error) {
	return json.Marshal(rentalPeriodJSON{
		ID:           p.ID,
		StartDate:    p.Dates.Start.Format(DateLayout),
		EndDate:      p.Dates.End.Format(DateLayout),
		CustomerName: p.CustomerName,
	})
}

// CatalogItem is one rentable outfit.
type CatalogItem struct {
	ID                  string
	Name                string
	Category            string
	Description         string
	PriceWithJewelry    Price
	PriceWithoutJewelry Price
	SecurityDeposit     Price
	Image               string
	Sizes               []string
	Availability        Availability
}

func (it CatalogItem) IsAvailable() bool { return it.Availability.IsAvailable() }

func (it CatalogItem) RentalPeriods() []RentalPeriod { return it.Availability.Periods() }

// Clone copies the slices so the result can be handed out of the store.
func (it CatalogItem) Clone() CatalogItem {
	out := it
	out.Sizes = append([]string(nil), it.Sizes...)
	out.Availability = Availability{kind: it.Availability.kind, periods: it.Availability.Periods()}
	return out
}

type catalogItemJSON struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Category            string         `json:"category"`
	Description         string         `json:"description,omitempty"`
	PriceWithJewelry    Price          `json:"priceWithJewelry"`
	PriceWithoutJewelry Price          `json:"priceWithoutJewelry"`
	SecurityDeposit     Price          `json:"securityDeposit"`
	Image               string         `json:"image"`
	Sizes               []string       `json:"sizes"`
	IsAvailable         bool           `json:"isAvailable"`
	Status              Availability   `json:"status"`
	RentalPeriods       []RentalPeriod `json:"rentalPeriods"`
}

func (it CatalogItem) MarshalJSON() ([]byte, error) {
	sizes := it.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	return json.Marshal(catalogItemJSON{
		ID:                  it.ID,
		Name:                it.Name,
		Category:            it.Category,
		Description:         it.Description,
		PriceWithJewelry:    it.PriceWithJewelry,
		PriceWithoutJewelry: it.PriceWithoutJewelry,
		SecurityDeposit:     it.SecurityDeposit,
		Image:               it.Image,
		Sizes:               sizes,
		IsAvailable:         it.IsAvailable(),
		Status:              it.Availability,
		RentalPeriods:       append([]RentalPeriod{}, it.RentalPeriods()...),
	})
}
