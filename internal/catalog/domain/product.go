package domain

import (
	"strings"
	"time"

	"github.com/neonshop/commerce-core/internal/query"
	"github.com/neonshop/commerce-core/internal/validation"
)

// Product represents a catalog product.
type Product struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	SalePrice     *float64  `json:"sale_price,omitempty"`
	StockQuantity int       `json:"stock_quantity"`
	ImageURL      string    `json:"image_url"`
	Gallery       []string  `json:"gallery,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	Featured      bool      `json:"featured"`
	Active        bool      `json:"active"`
	SalesCount    int       `json:"sales_count"`
	ViewsCount    int       `json:"views_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// OnSale reports whether a valid sale price is set.
func (p *Product) OnSale() bool {
	return p.SalePrice != nil && *p.SalePrice > 0 && *p.SalePrice < p.Price
}

// EffectivePrice is the price a customer pays right now.
func (p *Product) EffectivePrice() float64 {
	if p.OnSale() {
		return *p.SalePrice
	}
	return p.Price
}

// InStock reports whether any units remain.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

// Validate checks the product's own invariants, reporting every invalid
// field at once.
func (p *Product) Validate() error {
	verrs := validation.Errors{}

	if strings.TrimSpace(p.Name) == "" {
		verrs.Add("name", "is required")
	}
	if p.Price <= 0 {
		verrs.Add("price", "must be greater than zero")
	}
	if p.SalePrice != nil && *p.SalePrice >= p.Price {
		verrs.Add("sale_price", "must be lower than price")
	}
	if p.SalePrice != nil && *p.SalePrice <= 0 {
		verrs.Add("sale_price", "must be greater than zero")
	}
	if p.StockQuantity < 0 {
		verrs.Add("stock_quantity", "cannot be negative")
	}

	return verrs.Err()
}

// HasTag reports whether the product carries the tag, ignoring case.
func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// SearchScore ranks the product against a search term. Matches are
// weighted: name 10 (+5 when the name starts with the term),
// description 3, each matching tag 2, category 1. Zero means no match.
func (p *Product) SearchScore(term string) int {
	term = strings.TrimSpace(term)
	if term == "" {
		return 0
	}

	score := 0
	if query.ContainsFold(p.Name, term) {
		score += 10
		if query.HasPrefixFold(p.Name, term) {
			score += 5
		}
	}
	if query.ContainsFold(p.Description, term) {
		score += 3
	}
	for _, tag := range p.Tags {
		if query.ContainsFold(tag, term) {
			score += 2
		}
	}
	if query.ContainsFold(p.Category, term) {
		score++
	}
	return score
}

// ProductFilter carries the recognized list predicates. Zero values are
// no-ops; all supplied predicates must hold (logical AND).
type ProductFilter struct {
	Category string
	Search   string
	Tag      string
	MinPrice *float64
	MaxPrice *float64
	OnSale   *bool
	InStock  *bool
	Featured *bool
	Active   *bool
}

// Validate rejects logically inconsistent filters before they reach the
// matching pass.
func (f ProductFilter) Validate() error {
	verrs := validation.Errors{}
	if f.MinPrice != nil && *f.MinPrice < 0 {
		verrs.Add("min_price", "cannot be negative")
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		verrs.Add("max_price", "cannot be negative")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		verrs.Add("min_price", "cannot exceed max_price")
	}
	return verrs.Err()
}

// Matches reports whether the product satisfies every supplied predicate.
func (f ProductFilter) Matches(p Product) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Search != "" &&
		!query.ContainsFold(p.Name, f.Search) &&
		!query.ContainsFold(p.Description, f.Search) {
		return false
	}
	if f.Tag != "" && !p.HasTag(f.Tag) {
		return false
	}
	if !query.InRange(p.EffectivePrice(), f.MinPrice, f.MaxPrice) {
		return false
	}
	if f.OnSale != nil && p.OnSale() != *f.OnSale {
		return false
	}
	if f.InStock != nil && p.InStock() != *f.InStock {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.Active != nil && p.Active != *f.Active {
		return false
	}
	return true
}

// ProductStats summarizes the catalog.
type ProductStats struct {
	TotalProducts   int64   `json:"total_products"`
	ActiveProducts  int64   `json:"active_products"`
	OnSaleProducts  int64   `json:"on_sale_products"`
	TotalStock      int64   `json:"total_stock"`
	AveragePrice    float64 `json:"average_price"`
	TotalCategories int64   `json:"total_categories"`
}

// ProductRepository defines the contract for product data access.
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindWithFilters(filter ProductFilter, page, limit int, sortField, sortDirection string) ([]Product, query.Pagination, error)
	Search(term string, limit int) ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)
	CountByCategory() (map[string]int, error)
	AdjustStock(id uint, delta int) (*Product, error)
	RecordView(id uint) error
	RecordSale(id uint, quantity int) error
	Stats() (*ProductStats, error)
}
