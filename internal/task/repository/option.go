package repository

import "life-manager/internal/model"

// ListOptions holds the filters and pagination for listing tasks. Zero-value
// filters are omitted from the query entirely, not encoded as match-anything.
type ListOptions struct {
	Status    string
	Section   string
	Intensity int
	UserID    string
	Page      int // 1-based
	PerPage   int
}

// ListResult is one page of records plus pagination totals from the store.
type ListResult struct {
	Tasks      []model.StructuredTask
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
}
