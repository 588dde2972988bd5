package pagination

import "strings"

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder accepts "asc" or "desc" in any letter case.
func ParseOrder(s string) (Order, bool) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case Asc:
		return Asc, true
	case Desc:
		return Desc, true
	default:
		return "", false
	}
}

// Sort is a single-field ordering directive handed to a data source.
type Sort struct {
	Field string
	Order Order
}

// Descending reports whether the directive orders from high to low.
func (s Sort) Descending() bool { return s.Order == Desc }

// SortOptions is the caller's requested ordering; empty fields mean "use the default".
type SortOptions struct {
	SortBy    string
	SortOrder Order
}

// ResolveSort fills missing request values from def. It does not check that
// the field is sortable; that is the request validator's job. A default
// without an order sorts ascending.
func ResolveSort(req SortOptions, def Sort) Sort {
	out := def
	if req.SortBy != "" {
		out.Field = req.SortBy
	}
	if req.SortOrder != "" {
		out.Order = req.SortOrder
	}
	if out.Order == "" {
		out.Order = Asc
	}
	return out
}
