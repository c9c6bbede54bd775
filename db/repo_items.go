package db

import (
	"context"
	"strings"

	"Gin_redis_dress_rental/models"
)

// NewItem is the add-item dialog after price coercion and image upload.
type NewItem struct {
	Name                string
	Category            string
	Description         string
	PriceWithJewelry    models.Price
	PriceWithoutJewelry models.Price
	SecurityDeposit     models.Price
	Image               string
	Sizes               []string
}

// CreateItem puts a new available item at the front of the catalog.
func (r *Repo) CreateItem(ctx context.Context, in NewItem) (models.CatalogItem, error) {
	it, err := r.createItem(ctx, in)
	r.hook(OpAddItem, err)
	return it, err
}

func (r *Repo) createItem(ctx context.Context, in NewItem) (models.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return models.CatalogItem{}, err
	}
	name, category := strings.TrimSpace(in.Name), strings.TrimSpace(in.Category)
	if name == "" || category == "" {
		return models.CatalogItem{}, ErrMissingFields
	}

	it := models.CatalogItem{
		ID:                  NewID("d"),
		Name:                name,
		Category:            category,
		Description:         strings.TrimSpace(in.Description),
		PriceWithJewelry:    in.PriceWithJewelry,
		PriceWithoutJewelry: in.PriceWithoutJewelry,
		SecurityDeposit:     in.SecurityDeposit,
		Image:               in.Image,
		Sizes:               append([]string(nil), in.Sizes...),
		Availability:        models.Available(),
	}

	r.mu.Lock()
	next := make([]models.CatalogItem, 0, len(r.items)+1)
	next = append(next, it)
	next = append(next, r.items...)
	r.items = next
	r.version++
	change := Change{Op: OpAddItem, ItemID: it.ID, Version: r.version}
	r.mu.Unlock()

	r.log.WithField("item", it.ID).Info("item added")
	r.publish(change)
	return it.Clone(), nil
}

// Summary is the headline count row on the admin page.
type Summary struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Held      int `json:"held"`
	Rented    int `json:"rented"`
	Bookings  int `json:"bookings"`
}

func (r *Repo) Summary(ctx context.Context) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := Summary{Total: len(r.items)}
	for _, it := range r.items {
		switch it.Availability.Kind() {
		case models.KindAvailable:
			s.Available++
		case models.KindHeld:
			s.Held++
		case models.KindRented:
			s.Rented++
		}
		s.Bookings += len(it.Availability.Periods())
	}
	return s, nil
}
