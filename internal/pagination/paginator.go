// Package pagination fetches one bounded page of a filtered, sorted
// collection and describes where that page sits among all pages.
package pagination

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Source is the data access contract the paginator drives. The filter type
// is opaque to the paginator.
type Source[T, F any] interface {
	FindPage(ctx context.Context, filter F, sort *Sort, skip, limit int) ([]T, error)
	Count(ctx context.Context, filter F) (int, error)
}

// Query carries the requested page. Zero values fall back to defaults.
// Limit is assumed to be already bounded by request validation.
type Query struct {
	Page  int
	Limit int
}

// Pages holds page numbers. First and Last are always set; the others are
// nil when that page does not exist.
type Pages struct {
	First    int  `json:"first"`
	Last     int  `json:"last"`
	Current  *int `json:"current"`
	Previous *int `json:"previous"`
	Next     *int `json:"next"`
}

// Meta describes a fetched page.
type Meta struct {
	Total      int   `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	Pages      Pages `json:"pages"`
}

// Page is one materialized slice of a collection.
type Page[T any] struct {
	Data []T
	Meta Meta
}

// Paginator carries the process-wide page size default.
type Paginator struct {
	DefaultLimit int
}

// New returns a paginator using defaultLimit, or DefaultLimit when it is not positive.
func New(defaultLimit int) Paginator {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	return Paginator{DefaultLimit: defaultLimit}
}

// Normalize applies the page and limit defaults.
func (p Paginator) Normalize(q Query) Query {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = p.DefaultLimit
		if q.Limit <= 0 {
			q.Limit = DefaultLimit
		}
	}
	return q
}

// Offset is the number of records before page q.Page of a normalized
// query. ok is false when that number does not fit in an int.
func Offset(q Query) (skip int, ok bool) {
	if q.Page < 1 || q.Limit < 1 || q.Page-1 > math.MaxInt/q.Limit {
		return 0, false
	}
	return (q.Page - 1) * q.Limit, true
}

// Paginate runs the page query and the count query concurrently and
// assembles the page with its metadata.
func Paginate[T, F any](ctx context.Context, p Paginator, src Source[T, F], filter F, sort *Sort, q Query) (Page[T], error) {
	q = p.Normalize(q)
	skip, ok := Offset(q)
	if !ok {
		// No collection reaches this far; only the count is worth asking for.
		total, err := src.Count(ctx, filter)
		if err != nil {
			return Page[T]{}, fmt.Errorf("count: %w", err)
		}
		return Page[T]{Data: []T{}, Meta: NewMeta(q.Page, q.Limit, total)}, nil
	}

	var (
		rows  []T
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = src.FindPage(gctx, filter, sort, skip, q.Limit)
		if err != nil {
			return fmt.Errorf("find page: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = src.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Page[T]{}, err
	}

	if rows == nil {
		rows = []T{}
	}
	return Page[T]{Data: rows, Meta: NewMeta(q.Page, q.Limit, total)}, nil
}

// NewMeta computes page metadata. An empty collection has zero pages but
// still reports page 1 as both first and last.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	pages := Pages{First: 1, Last: max(totalPages, 1)}
	if page >= 1 && page <= totalPages {
		pages.Current = intPtr(page)
	}
	if page > 1 && page <= totalPages {
		pages.Previous = intPtr(page - 1)
	}
	if page >= 1 && page < totalPages {
		pages.Next = intPtr(page + 1)
	}

	return Meta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Pages:      pages,
	}
}

func intPtr(v int) *int { return &v }
