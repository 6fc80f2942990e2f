// Package catalog holds the pure listing operations over a product slice:
// category filtering, text search, sorting and the demo seed data.
package catalog

import (
	"iter"
	"slices"
	"sort"
	"strings"

	"techmart-be/internal/entity"
	"techmart-be/pkg/store"
)

// FilterByCategory yields the products in category, in catalog order.
// "" and "All" yield every product. The sequence can be ranged over again.
func FilterByCategory(products []*entity.Product, category string) iter.Seq[*entity.Product] {
	return func(yield func(*entity.Product) bool) {
		for _, p := range products {
			if !matchesCategory(p, category) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func matchesCategory(p *entity.Product, category string) bool {
	if category == "" || category == store.CategoryAll {
		return true
	}
	return string(p.Category) == category
}

// Search narrows seq to products whose name or description contains term, case-insensitively.
func Search(seq iter.Seq[*entity.Product], term string) iter.Seq[*entity.Product] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return seq
	}
	return func(yield func(*entity.Product) bool) {
		for p := range seq {
			if !strings.Contains(strings.ToLower(p.Name), term) &&
				!strings.Contains(strings.ToLower(p.Description), term) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Sort collects seq and orders it by key. Unknown keys keep catalog order.
func Sort(seq iter.Seq[*entity.Product], key string) []*entity.Product {
	products := slices.Collect(seq)

	var less func(a, b *entity.Product) bool
	switch key {
	case store.SortByName:
		less = func(a, b *entity.Product) bool { return a.Name < b.Name }
	case store.SortByPriceAsc:
		less = func(a, b *entity.Product) bool { return a.Price.LessThan(b.Price) }
	case store.SortByPriceDesc:
		less = func(a, b *entity.Product) bool { return a.Price.GreaterThan(b.Price) }
	case store.SortByRating:
		less = func(a, b *entity.Product) bool { return a.Rating > b.Rating }
	default:
		return products
	}

	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
	return products
}

// Apply runs the full listing pipeline for a set of filters.
func Apply(products []*entity.Product, filters store.Filters) []*entity.Product {
	return Sort(Search(FilterByCategory(products, filters.Category), filters.Search), filters.Sort)
}

// Categories lists the distinct categories present in products, sorted.
func Categories(products []*entity.Product) []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		seen[string(p.Category)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ValidSortKey reports whether key is one of the supported sort orders.
func ValidSortKey(key string) bool {
	switch key {
	case store.SortByName, store.SortByPriceAsc, store.SortByPriceDesc, store.SortByRating:
		return true
	}
	return false
}
