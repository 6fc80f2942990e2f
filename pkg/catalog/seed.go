package catalog

import (
	"time"

	"techmart-be/internal/entity"

	"github.com/shopspring/decimal"
)

type seedProduct struct {
	id          string
	name        string
	price       string
	category    entity.Category
	description string
	stock       int
	image       string
	rating      float64
	reviews     int
	specs       []string
}

var demoCatalog = []seedProduct{
	{
		id: "P001", name: `MacBook Pro 14"`, price: "1999.99", category: entity.CategoryElectronics,
		description: "Apple M2 Pro chip, 16GB RAM, 512GB SSD. Perfect for developers and creative professionals.",
		stock:       15, image: "assets/products/macbook-pro-14.jpeg", rating: 4.8, reviews: 245,
		specs: []string{"M2 Pro Chip", "16GB RAM", "512GB SSD", `14" Display`},
	},
	{
		id: "P002", name: "iPhone 15 Pro", price: "999.99", category: entity.CategoryElectronics,
		description: "A17 Pro chip, 128GB storage, Titanium design with advanced camera system.",
		stock:       30, image: "assets/products/iphone-15-pro.webp", rating: 4.7, reviews: 189,
		specs: []string{"A17 Pro Chip", "128GB Storage", "Titanium Build", "Pro Camera"},
	},
	{
		id: "P003", name: "Nike Air Max 270", price: "129.99", category: entity.CategoryFootwear,
		description: "Comfortable running shoes with Air Max technology and modern design.",
		stock:       50, image: "assets/products/nike-air-max-270.webp", rating: 4.5, reviews: 334,
		specs: []string{"Air Max Technology", "Mesh Upper", "Foam Midsole", "Rubber Outsole"},
	},
	{
		id: "P004", name: "Sony WH-1000XM5", price: "399.99", category: entity.CategoryElectronics,
		description: "Industry-leading wireless noise-canceling headphones with 30-hour battery life.",
		stock:       25, image: "assets/products/sony-wh-1000xm5.jpg", rating: 4.9, reviews: 156,
		specs: []string{"Noise Canceling", "30hr Battery", "Quick Charge", "Touch Controls"},
	},
	{
		id: "P005", name: "Levi's 511 Slim Jeans", price: "69.99", category: entity.CategoryClothing,
		description: "Classic slim-fit denim jeans made from premium cotton blend.",
		stock:       40, image: "assets/products/levis-511.webp", rating: 4.3, reviews: 278,
		specs: []string{"Slim Fit", "98% Cotton", "Machine Wash", "Multiple Sizes"},
	},
	{
		id: "P006", name: "Canon EOS R6 Mark II", price: "2499.99", category: entity.CategoryElectronics,
		description: "Full-frame mirrorless camera with 4K video recording and advanced autofocus.",
		stock:       8, image: "assets/products/canon-eos-r6.jpg", rating: 4.6, reviews: 92,
		specs: []string{"Full Frame", "4K Video", "Image Stabilization", "Dual Card Slots"},
	},
	{
		id: "P007", name: `Samsung 4K Smart TV 55"`, price: "799.99", category: entity.CategoryElectronics,
		description: "55-inch 4K UHD Smart TV with HDR and built-in streaming apps.",
		stock:       12, image: "assets/products/samsung-tv-55.jpg", rating: 4.4, reviews: 167,
		specs: []string{"4K UHD", "Smart TV", "HDR Support", `55" Display`},
	},
	{
		id: "P008", name: "Adidas Ultraboost 22", price: "189.99", category: entity.CategoryFootwear,
		description: "Premium running shoes with Boost midsole technology and Primeknit upper.",
		stock:       35, image: "assets/products/adidas-ultraboost-22.webp", rating: 4.6, reviews: 203,
		specs: []string{"Boost Technology", "Primeknit Upper", "Continental Rubber", "Energy Return"},
	},
}

// DemoProducts returns a fresh copy of the built-in TechMart catalog.
func DemoProducts(now time.Time) []*entity.Product {
	products := make([]*entity.Product, 0, len(demoCatalog))
	for i, s := range demoCatalog {
		products = append(products, &entity.Product{
			Id:          s.id,
			Name:        s.name,
			Category:    s.category,
			Price:       decimal.RequireFromString(s.price),
			Stock:       s.stock,
			Image:       s.image,
			Description: s.description,
			Specs:       append([]string(nil), s.specs...),
			Rating:      s.rating,
			ReviewCount: s.reviews,
			Version:     1,
			// Keeps catalog order stable when sorted by creation time.
			CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
			UpdatedAt: now,
		})
	}
	return products
}
