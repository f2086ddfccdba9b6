package query

import (
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/order"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

type OrderFilter struct {
	CustomerID string
	Status     domain.Status
	Search     string
}

// Orders derives the order-history view. Search covers the order id and its
// item names.
func Orders(in []models.Order, f OrderFilter) []models.Order {
	out := make([]models.Order, 0, len(in))

	for _, o := range in {
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		if f.Status != "" && o.Status != string(f.Status) {
			continue
		}

		fields := make([]string, 0, len(o.Items)+1)
		fields = append(fields, o.ID)
		for _, it := range o.Items {
			fields = append(fields, it.Name)
		}
		if !matchAny(f.Search, fields...) {
			continue
		}

		out = append(out, o)
	}

	return out
}
