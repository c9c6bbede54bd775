package db

import "Gin_redis_dress_rental/models"

// FilterByCategory keeps store order. "all" (or empty) matches everything,
// any other value must equal the item's category exactly.
func FilterByCategory(items []models.CatalogItem, category string) []models.CatalogItem {
	if category == "" || category == models.CategoryAll {
		return items
	}
	out := make([]models.CatalogItem, 0, len(items))
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}
