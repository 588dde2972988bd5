package domain

import "idn-area/internal/pagination"

// ListQuery is a validated list request. Codes are dotted.
type ListQuery struct {
	Name       string
	ParentCode string
	Sort       pagination.SortOptions
	Page       pagination.Query
}

// WithParent returns a copy of q scoped to parent.
func (q ListQuery) WithParent(parent string) ListQuery {
	q.ParentCode = parent
	return q
}
