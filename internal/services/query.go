// Package services composes the stores, the sort resolver and the paginator
// into the read operations exposed over HTTP.
package services

import (
	"context"
	"errors"
	"fmt"

	"idn-area/internal/domain"
	"idn-area/internal/pagination"
	"idn-area/internal/repositories"
)

// DefaultSort orders every entity by code ascending unless the caller asks otherwise.
var DefaultSort = pagination.Sort{Field: repositories.FieldCode, Order: pagination.Asc}

// filterFor builds the store filter of q. parentField is the logical field
// the parent code is compared against; it is ignored when q has no parent.
func filterFor(q domain.ListQuery, parentField string) repositories.Filter {
	f := repositories.Filter{Name: q.Name}
	if parentField != "" && q.ParentCode != "" {
		f.Equals = map[string]string{parentField: q.ParentCode}
	}
	return f
}

func find[T any](ctx context.Context, p pagination.Paginator, store repositories.Store[T], parentField string, q domain.ListQuery) (pagination.Page[T], error) {
	sort := pagination.ResolveSort(q.Sort, DefaultSort)
	return pagination.Paginate[T, repositories.Filter](ctx, p, store, filterFor(q, parentField), &sort, q.Page)
}

// findOne looks up a record that must exist.
func findOne[T any](ctx context.Context, store repositories.Store[T], resource, code string) (T, error) {
	v, err := store.FindByCode(ctx, code)
	if errors.Is(err, repositories.ErrNotFound) {
		return v, domain.NotFoundError{Resource: resource, Code: code, Err: err}
	}
	if err != nil {
		return v, fmt.Errorf("find %s %s: %w", resource, code, err)
	}
	return v, nil
}

// lookup resolves an ancestor. A missing ancestor is nil, not an error.
func lookup[T any](ctx context.Context, store repositories.Store[T], resource, code string) (*T, error) {
	if code == "" {
		return nil, nil
	}
	v, err := store.FindByCode(ctx, code)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s %s: %w", resource, code, err)
	}
	return &v, nil
}

// requireParent fails with NotFoundError when a path parent does not exist.
func requireParent[T any](ctx context.Context, store repositories.Store[T], resource, code string) error {
	_, err := findOne(ctx, store, resource, code)
	return err
}
