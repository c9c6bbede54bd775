package db

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"Gin_redis_dress_rental/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Catalog is a seed document: the filter bar and the items behind it.
type Catalog struct {
	Categories []models.Category
	Items      []models.CatalogItem
}

type catalogDoc struct {
	Categories []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"categories"`
	Items []struct {
		ID                  string   `yaml:"id"`
		Name                string   `yaml:"name"`
		Category            string   `yaml:"category"`
		Description         string   `yaml:"description"`
		PriceWithJewelry    float64  `yaml:"priceWithJewelry"`
		PriceWithoutJewelry float64  `yaml:"priceWithoutJewelry"`
		SecurityDeposit     float64  `yaml:"securityDeposit"`
		Image               string   `yaml:"image"`
		Sizes               []string `yaml:"sizes"`
		Unavailable         bool     `yaml:"unavailable"`
		Rentals             []struct {
			ID           string `yaml:"id"`
			StartDate    string `yaml:"startDate"`
			EndDate      string `yaml:"endDate"`
			CustomerName string `yaml:"customerName"`
		} `yaml:"rentals"`
	} `yaml:"items"`
}

// LoadCatalog decodes a YAML seed document. Items with rentals start out rented,
// items marked unavailable without rentals start out held.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var doc catalogDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	var c Catalog
	seen := make(map[string]struct{}, len(doc.Items))
	for _, cat := range doc.Categories {
		c.Categories = append(c.Categories, models.Category{ID: cat.ID, Name: cat.Name})
	}
	for _, in := range doc.Items {
		if in.ID == "" || in.Name == "" || in.Category == "" {
			return Catalog{}, fmt.Errorf("catalog item %q: %w", in.ID, ErrMissingFields)
		}
		if _, dup := seen[in.ID]; dup {
			return Catalog{}, fmt.Errorf("catalog item %q: %w", in.ID, ErrDuplicateID)
		}
		seen[in.ID] = struct{}{}

		var periods []models.RentalPeriod
		rentals := make(map[string]struct{}, len(in.Rentals))
		for _, p := range in.Rentals {
			if _, dup := rentals[p.ID]; dup {
				return Catalog{}, fmt.Errorf("catalog item %s rental %q: %w", in.ID, p.ID, ErrDuplicateID)
			}
			rentals[p.ID] = struct{}{}
			dates, err := models.NewDateRange(p.StartDate, p.EndDate)
			if err != nil {
				return Catalog{}, fmt.Errorf("catalog item %s rental %s: %w", in.ID, p.ID, err)
			}
			periods = append(periods, models.RentalPeriod{ID: p.ID, Dates: dates, CustomerName: p.CustomerName})
		}
		state := models.Rented(periods...)
		if len(periods) == 0 && in.Unavailable {
			state = models.Held()
		}
		c.Items = append(c.Items, models.CatalogItem{
			ID:                  in.ID,
			Name:                in.Name,
			Category:            in.Category,
			Description:         in.Description,
			PriceWithJewelry:    models.Price(in.PriceWithJewelry),
			PriceWithoutJewelry: models.Price(in.PriceWithoutJewelry),
			SecurityDeposit:     models.Price(in.SecurityDeposit),
			Image:               in.Image,
			Sizes:               in.Sizes,
			Availability:        state,
		})
	}
	return c, nil
}

func launchCatalog() Catalog {
	c, err := LoadCatalog(bytes.NewReader(seedYAML))
	if err != nil {
		panic(err)
	}
	return c
}

// SeedCategories is the fixed filter bar, "all" first.
func SeedCategories() []models.Category { return launchCatalog().Categories }

// SeedItems returns the launch collection. Each call builds fresh values.
func SeedItems() []models.CatalogItem { return launchCatalog().Items }
