package domain

// Page is one window of a listing plus its pagination metadata.
type Page[T any] struct {
	Items         []T   `json:"items"`
	Number        int64 `json:"number"`
	Size          int64 `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int64 `json:"total_pages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// NewPage computes the metadata for one page window. A pageNumber past the
// end yields an empty page with Last set, not an error.
func NewPage[T any](items []T, pageNumber, pageSize, totalElements int64) Page[T] {
	totalPages := int64(0)
	if totalElements > 0 {
		totalPages = (totalElements + pageSize - 1) / pageSize
	}

	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:         items,
		Number:        pageNumber,
		Size:          pageSize,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		First:         pageNumber == 0,
		Last:          totalPages == 0 || pageNumber >= totalPages-1,
	}
}
