package controllers

import (
	"html/template"
	"net/url"
	"strings"
	"time"

	"Gin_redis_dress_rental/db"
	"Gin_redis_dress_rental/links"
	"Gin_redis_dress_rental/models"
	"Gin_redis_dress_rental/session"
)

// CardView is one outfit on the collection grid.
type CardView struct {
	Item           models.CatalogItem
	DetailURL      string
	WhatsAppURL    string
	AvailableAfter *time.Time
}

// DetailView backs the detail overlay.
type DetailView struct {
	Item           models.CatalogItem
	WhatsAppURL    string
	TelURL         template.URL // tel: is not on html/template's safe scheme list
	CloseURL       string
	AvailableAfter *time.Time
}

type CategoryTab struct {
	ID     string
	Name   string
	URL    string
	Active bool
}

type CollectionPage struct {
	Categories     []CategoryTab
	ActiveCategory string
	Cards          []CardView
	Detail         *DetailView
	Flashes        []session.Flash
}

type AdminRow struct {
	Item        models.CatalogItem
	Periods     []models.RentalPeriod
	StatusLabel string
	RentalURL   string
}

// ItemForm is the add-item dialog. Prices stay text so malformed input reaches ParsePrice untouched.
type ItemForm struct {
	Name                string `form:"name" json:"name" binding:"required"`
	Category            string `form:"category" json:"category" binding:"required"`
	Description         string `form:"description" json:"description"`
	PriceWithJewelry    string `form:"priceWithJewelry" json:"priceWithJewelry"`
	PriceWithoutJewelry string `form:"priceWithoutJewelry" json:"priceWithoutJewelry"`
	SecurityDeposit     string `form:"securityDeposit" json:"securityDeposit"`
	Sizes               string `form:"sizes" json:"sizes"`
}

type RentalForm struct {
	StartDate    string `form:"startDate" json:"startDate" binding:"required"`
	EndDate      string `form:"endDate" json:"endDate" binding:"required"`
	CustomerName string `form:"customerName" json:"customerName"`
}

type RentalDialog struct {
	Item models.CatalogItem
	Form RentalForm
}

type AdminPage struct {
	Rows       []AdminRow
	Summary    db.Summary
	Categories []models.Category
	Flashes    []session.Flash
	AddItem    *ItemForm
	AddRental  *RentalDialog
}

// collectionURL links back to the storefront keeping the filter and selection.
func collectionURL(category, itemID string) string {
	q := url.Values{}
	if category != "" && category != models.CategoryAll {
		q.Set("category", category)
	}
	if itemID != "" {
		q.Set("item", itemID)
	}
	if len(q) == 0 {
		return "/#collection"
	}
	return "/?" + q.Encode() + "#collection"
}

// availableAfter is the end of the first booking on a rented item.
func availableAfter(it models.CatalogItem) *time.Time {
	if it.IsAvailable() {
		return nil
	}
	ps := it.RentalPeriods()
	if len(ps) == 0 {
		return nil
	}
	end := ps[0].Dates.End
	return &end
}

func (s *Srv) card(it models.CatalogItem, category string) CardView {
	return CardView{
		Item:           it,
		DetailURL:      collectionURL(category, it.ID),
		WhatsAppURL:    links.WhatsApp(s.Cfg.WhatsAppNumber, links.CardMessage(it.Name)),
		AvailableAfter: availableAfter(it),
	}
}

func (s *Srv) detail(it models.CatalogItem, category string) *DetailView {
	return &DetailView{
		Item:           it,
		WhatsAppURL:    links.WhatsApp(s.Cfg.WhatsAppNumber, links.BookingMessage(it.Name)),
		TelURL:         template.URL(links.Tel(s.Cfg.ContactPhone)),
		CloseURL:       collectionURL(category, ""),
		AvailableAfter: availableAfter(it),
	}
}

func adminRow(it models.CatalogItem) AdminRow {
	label := "Available"
	switch it.Availability.Kind() {
	case models.KindRented:
		label = "Rented"
	case models.KindHeld:
		label = "On hold"
	}
	return AdminRow{
		Item:        it,
		Periods:     it.RentalPeriods(),
		StatusLabel: label,
		RentalURL:   rentalDialogPath(it.ID),
	}
}

// splitSizes turns "S, M ,L" into [S M L].
func splitSizes(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (f ItemForm) newItem(image string) db.NewItem {
	return db.NewItem{
		Name:                f.Name,
		Category:            f.Category,
		Description:         f.Description,
		PriceWithJewelry:    models.ParsePrice(f.PriceWithJewelry),
		PriceWithoutJewelry: models.ParsePrice(f.PriceWithoutJewelry),
		SecurityDeposit:     models.ParsePrice(f.SecurityDeposit),
		Image:               image,
		Sizes:               splitSizes(f.Sizes),
	}
}

func (f RentalForm) newRental() db.NewRental {
	return db.NewRental{StartDate: f.StartDate, EndDate: f.EndDate, CustomerName: f.CustomerName}
}
