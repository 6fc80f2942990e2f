package catalog

import (
	"slices"
	"testing"
	"time"

	"techmart-be/internal/entity"
	"techmart-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []*entity.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Id
	}
	return out
}

func TestFilterByCategoryPreservesOrder(t *testing.T) {
	products := DemoProducts(time.Now())

	got := slices.Collect(FilterByCategory(products, "Footwear"))

	assert.Equal(t, []string{"P003", "P008"}, ids(got))
}

func TestFilterByCategoryAll(t *testing.T) {
	products := DemoProducts(time.Now())

	for _, category := range []string{"", store.CategoryAll} {
		got := slices.Collect(FilterByCategory(products, category))
		assert.Len(t, got, len(products))
	}
}

func TestFilterByCategoryRestartable(t *testing.T) {
	products := DemoProducts(time.Now())
	seq := FilterByCategory(products, "Electronics")

	first := ids(slices.Collect(seq))
	second := ids(slices.Collect(seq))

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestFilterByCategoryStopsEarly(t *testing.T) {
	products := DemoProducts(time.Now())
	count := 0
	for range FilterByCategory(products, "Electronics") {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestFilterByCategoryUnknown(t *testing.T) {
	products := DemoProducts(time.Now())
	assert.Empty(t, slices.Collect(FilterByCategory(products, "Garden")))
}

func TestSearch(t *testing.T) {
	products := DemoProducts(time.Now())

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "name match ignores case", term: "iphone", want: []string{"P002"}},
		{name: "description match", term: "running shoes", want: []string{"P003", "P008"}},
		{name: "blank term keeps everything", term: "  ", want: ids(products)},
		{name: "no match", term: "toaster", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Search(FilterByCategory(products, ""), tt.term))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSort(t *testing.T) {
	products := DemoProducts(time.Now())
	footwear := func() []*entity.Product {
		return slices.Collect(FilterByCategory(products, "Footwear"))
	}

	tests := []struct {
		key  string
		want []string
	}{
		{key: store.SortByName, want: []string{"P008", "P003"}},
		{key: store.SortByPriceAsc, want: []string{"P003", "P008"}},
		{key: store.SortByPriceDesc, want: []string{"P008", "P003"}},
		{key: store.SortByRating, want: []string{"P008", "P003"}},
		{key: "unknown", want: []string{"P003", "P008"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := Sort(slices.Values(footwear()), tt.key)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply(t *testing.T) {
	products := DemoProducts(time.Now())

	got := Apply(products, store.Filters{Category: "Electronics", Search: "pro", Sort: store.SortByPriceDesc})

	assert.Equal(t, []string{"P001", "P002"}, ids(got))
}

func TestCategories(t *testing.T) {
	products := DemoProducts(time.Now())
	assert.Equal(t, []string{"Clothing", "Electronics", "Footwear"}, Categories(products))
}
