package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/neonshop/commerce-core/internal/catalog/domain"
	"github.com/neonshop/commerce-core/internal/query"
	"github.com/neonshop/commerce-core/internal/storage"
)

const productCollection = "products"

// ErrInsufficientStock is returned when a stock decrement would go below
// zero. The stored quantity is left unchanged.
var ErrInsufficientStock = errors.New("insufficient stock")

// Product list sorting. Unknown sort fields fall back to the default
// instead of failing the request.
const (
	defaultProductSort    = "created_at"
	defaultProductSortDir = query.Desc
)

var productSortFields = map[string]bool{
	"name":           true,
	"price":          true,
	"stock_quantity": true,
	"sales_count":    true,
	"views_count":    true,
	"created_at":     true,
	"updated_at":     true,
}

func productSortKey(p domain.Product, field string) any {
	switch field {
	case "name":
		return p.Name
	case "price":
		return p.EffectivePrice()
	case "stock_quantity":
		return p.StockQuantity
	case "sales_count":
		return p.SalesCount
	case "views_count":
		return p.ViewsCount
	case "created_at":
		return p.CreatedAt
	case "updated_at":
		return p.UpdatedAt
	default:
		return ""
	}
}

// FileProductRepository keeps the whole catalog in memory, in insertion
// order, and persists it back through a storage.Store on every mutation.
// The mutex is the process-wide advisory lock for the collection: id
// assignment (max+1) and whole-collection rewrites are only safe with a
// single writer.
type FileProductRepository struct {
	mu       sync.Mutex
	store    storage.Store
	products []domain.Product
}

// NewFileProductRepository loads the collection eagerly so reads never
// touch the store.
func NewFileProductRepository(store storage.Store) (*FileProductRepository, error) {
	r := &FileProductRepository{store: store}
	if err := store.Load(productCollection, &r.products); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileProductRepository) nextID() uint {
	var max uint
	for i := range r.products {
		if r.products[i].ID > max {
			max = r.products[i].ID
		}
	}
	return max + 1
}

func (r *FileProductRepository) persist() error {
	return r.store.Save(productCollection, r.products)
}

func (r *FileProductRepository) indexOf(id uint) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

// Create validates the product, assigns the next id and timestamps, and
// persists the collection. Nothing is written when validation fails.
func (r *FileProductRepository) Create(product *domain.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	product.ID = r.nextID()
	product.CreatedAt = now
	product.UpdatedAt = now

	r.products = append(r.products, *product)
	if err := r.persist(); err != nil {
		r.products = r.products[:len(r.products)-1]
		return err
	}
	return nil
}

// FindByID returns a copy of the product or storage.ErrNotFound.
func (r *FileProductRepository) FindByID(id uint) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("product %d: %w", id, storage.ErrNotFound)
	}
	p := r.products[i]
	return &p, nil
}

// FindWithFilters composes filter, sort and paginate, in that order.
func (r *FileProductRepository) FindWithFilters(filter domain.ProductFilter, page, limit int, sortField, sortDirection string) ([]domain.Product, query.Pagination, error) {
	if err := filter.Validate(); err != nil {
		return nil, query.Pagination{}, err
	}

	r.mu.Lock()
	matched := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Matches(p) {
			matched = append(matched, p)
		}
	}
	r.mu.Unlock()

	if !productSortFields[sortField] {
		sortField = defaultProductSort
		sortDirection = defaultProductSortDir
	}
	query.Sort(matched, sortField, sortDirection, productSortKey)

	items, meta := query.Paginate(matched, page, limit)
	return items, meta, nil
}

// Search ranks active products by relevance against the term and returns
// at most limit results, best match first.
func (r *FileProductRepository) Search(term string, limit int) ([]domain.Product, error) {
	r.mu.Lock()
	active := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Active {
			active = append(active, p)
		}
	}
	r.mu.Unlock()

	ranked := query.RankByScore(active, func(p domain.Product) int {
		return p.SearchScore(term)
	})

	if limit <= 0 || limit > query.MaxLimit {
		limit = query.DefaultLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Update replaces the stored product, preserving creation metadata, and
// re-stamps updated_at.
func (r *FileProductRepository) Update(product *domain.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(product.ID)
	if i < 0 {
		return fmt.Errorf("product %d: %w", product.ID, storage.ErrNotFound)
	}

	product.CreatedAt = r.products[i].CreatedAt
	product.UpdatedAt = time.Now()

	previous := r.products[i]
	r.products[i] = *product
	if err := r.persist(); err != nil {
		r.products[i] = previous
		return err
	}
	return nil
}

// Delete removes the product from the active store.
func (r *FileProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("product %d: %w", id, storage.ErrNotFound)
	}

	previous := r.products
	r.products = append(append([]domain.Product{}, r.products[:i]...), r.products[i+1:]...)
	if err := r.persist(); err != nil {
		r.products = previous
		return err
	}
	return nil
}

// Count returns the number of products in the collection.
func (r *FileProductRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

// CountByCategory aggregates product counts per distinct category.
func (r *FileProductRepository) CountByCategory() (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int)
	for _, p := range r.products {
		if p.Category != "" {
			counts[p.Category]++
		}
	}
	return counts, nil
}

// AdjustStock applies a delta to the stock quantity. A decrement below
// zero fails with ErrInsufficientStock and changes nothing.
func (r *FileProductRepository) AdjustStock(id uint, delta int) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("product %d: %w", id, storage.ErrNotFound)
	}

	next := r.products[i].StockQuantity + delta
	if next < 0 {
		return nil, fmt.Errorf("product %d: %w", id, ErrInsufficientStock)
	}

	previous := r.products[i]
	r.products[i].StockQuantity = next
	r.products[i].UpdatedAt = time.Now()
	if err := r.persist(); err != nil {
		r.products[i] = previous
		return nil, err
	}

	p := r.products[i]
	return &p, nil
}

// RecordView bumps the product's view counter.
func (r *FileProductRepository) RecordView(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("product %d: %w", id, storage.ErrNotFound)
	}

	r.products[i].ViewsCount++
	return r.persist()
}

// RecordSale bumps the product's sales counter by quantity.
func (r *FileProductRepository) RecordSale(id uint, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("product %d: %w", id, storage.ErrNotFound)
	}

	r.products[i].SalesCount += quantity
	r.products[i].UpdatedAt = time.Now()
	return r.persist()
}

// Stats summarizes the whole catalog in one pass.
func (r *FileProductRepository) Stats() (*domain.ProductStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &domain.ProductStats{
		TotalProducts: int64(len(r.products)),
	}

	var totalPrice float64
	categories := make(map[string]bool)
	for i := range r.products {
		p := &r.products[i]
		if p.Active {
			stats.ActiveProducts++
		}
		if p.OnSale() {
			stats.OnSaleProducts++
		}
		stats.TotalStock += int64(p.StockQuantity)
		totalPrice += p.Price
		if p.Category != "" {
			categories[p.Category] = true
		}
	}

	if stats.TotalProducts > 0 {
		stats.AveragePrice = totalPrice / float64(stats.TotalProducts)
	}
	stats.TotalCategories = int64(len(categories))
	return stats, nil
}
