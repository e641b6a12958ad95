package services

import (
	"strings"

	"github.com/amyssnippet/wavvy/models"
)

// ServiceFilter holds the optional catalog filters. Nil fields impose no
// constraint; set fields are combined conjunctively.
type ServiceFilter struct {
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
}

// Matches reports whether the service passes every supplied filter. Category
// is a case-insensitive substring match against the category name.
func (f ServiceFilter) Matches(svc models.Service, categoryName string) bool {
	if f.Category != "" &&
		!strings.Contains(strings.ToLower(categoryName), strings.ToLower(f.Category)) {
		return false
	}
	if f.MinPrice != nil && svc.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && svc.Price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && svc.Rating < *f.MinRating {
		return false
	}
	return true
}

// Apply filters the slice in memory. The category name for each service is
// resolved through the supplied lookup so callers decide how categories are
// preloaded.
func (f ServiceFilter) Apply(svcs []models.Service, categoryName func(models.Service) string) []models.Service {
	out := make([]models.Service, 0, len(svcs))
	for _, svc := range svcs {
		if f.Matches(svc, categoryName(svc)) {
			out = append(out, svc)
		}
	}
	return out
}
