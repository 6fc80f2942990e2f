package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryFootwear    Category = "Footwear"
	CategoryHome        Category = "Home"
	CategorySports      Category = "Sports"
	CategoryBooks       Category = "Books"
	CategoryOther       Category = "Other"
)

// Categories is the fixed set offered by the admin product form, in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryFootwear,
	CategoryHome,
	CategorySports,
	CategoryBooks,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

const (
	DefaultProductImage  = "📦"
	DefaultProductRating = 4.0
	LowStockThreshold    = 10
)

type Review struct {
	Rating    int
	Text      string
	CreatedAt time.Time
}

type Product struct {
	Id          string
	Name        string
	Category    Category
	Price       decimal.Decimal
	Stock       int
	Image       string
	Description string
	Specs       []string
	Rating      float64
	ReviewCount int
	Reviews     []Review
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AddReview appends the review and folds it into the aggregate rating.
func (p *Product) AddReview(review Review) {
	total := p.Rating*float64(p.ReviewCount) + float64(review.Rating)
	p.ReviewCount++
	p.Rating = total / float64(p.ReviewCount)
	p.Reviews = append(p.Reviews, review)
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Clone returns a copy that shares no slices with p.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	c.Specs = append([]string(nil), p.Specs...)
	c.Reviews = append([]Review(nil), p.Reviews...)
	return &c
}
