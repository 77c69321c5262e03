package query

// Pagination limits. Limit requests above MaxLimit are clamped, not
// rejected.
const (
	DefaultLimit = 12
	MaxLimit     = 100
)

// Pagination describes the page that was produced.
type Pagination struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate slices an already filtered and sorted collection. Page is
// 1-based and clamped to >= 1; a page past the end yields an empty
// slice, never an error.
func Paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	meta := Pagination{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}

	offset := (page - 1) * limit
	if offset >= total {
		return []T{}, meta
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return items[offset:end], meta
}
