package db

import (
	"context"
	"strings"

	"Gin_redis_dress_rental/models"
)

// NewRental is the add-rental dialog as submitted.
type NewRental struct {
	StartDate    string
	EndDate      string
	CustomerName string
}

// AnonymousCustomer stands in when the admin leaves the customer name blank.
const AnonymousCustomer = "Anonymous"

// ToggleAvailability flips an item between available and unavailable.
// Making an item available again drops every recorded rental period.
func (r *Repo) ToggleAvailability(ctx context.Context, itemID string) (models.CatalogItem, error) {
	return r.update(ctx, OpToggle, itemID, func(it models.CatalogItem) (models.CatalogItem, error) {
		next, err := it.Availability.Apply(models.Toggle{})
		if err != nil {
			return it, err
		}
		it.Availability = next
		return it, nil
	})
}

// AddRentalPeriod books the item for the given dates and marks it rented.
// The new period is returned alongside the updated item.
func (r *Repo) AddRentalPeriod(ctx context.Context, itemID string, in NewRental) (models.CatalogItem, models.RentalPeriod, error) {
	dates, err := models.NewDateRange(in.StartDate, in.EndDate)
	if err != nil {
		r.hook(OpAddRental, err)
		return models.CatalogItem{}, models.RentalPeriod{}, err
	}
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		name = AnonymousCustomer
	}
	period := models.RentalPeriod{ID: NewID("r"), Dates: dates, CustomerName: name}

	it, err := r.update(ctx, OpAddRental, itemID, func(it models.CatalogItem) (models.CatalogItem, error) {
		next, err := it.Availability.Apply(models.Book{Period: period})
		if err != nil {
			return it, err
		}
		it.Availability = next
		return it, nil
	})
	if err != nil {
		return models.CatalogItem{}, models.RentalPeriod{}, err
	}
	return it, period, nil
}

// RemoveRentalPeriod drops one booking. The item becomes available once none are left.
func (r *Repo) RemoveRentalPeriod(ctx context.Context, itemID, periodID string) (models.CatalogItem, error) {
	return r.update(ctx, OpRemoveRental, itemID, func(it models.CatalogItem) (models.CatalogItem, error) {
		next, err := it.Availability.Apply(models.Release{PeriodID: periodID})
		if err != nil {
			return it, err
		}
		it.Availability = next
		return it, nil
	})
}
