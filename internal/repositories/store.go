// Package repositories reads administrative area records from the active
// storage backend. Every backend implements Store for each entity.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"idn-area/internal/domain/models"
	"idn-area/internal/pagination"
)

// ErrNotFound is returned by FindByCode when no record has the code.
var ErrNotFound = errors.New("record not found")

// checkWindow rejects a page window no backend can serve.
func checkWindow(skip, limit int) error {
	if skip < 0 || limit < 1 {
		return fmt.Errorf("invalid page window: skip %d, limit %d", skip, limit)
	}
	return nil
}

// Logical field names shared by filters and sort directives.
const (
	FieldCode             = "code"
	FieldName             = "name"
	FieldCoordinate       = "coordinate"
	FieldProvinceCode     = "provinceCode"
	FieldRegencyCode      = "regencyCode"
	FieldDistrictCode     = "districtCode"
	FieldIsPopulated      = "isPopulated"
	FieldIsOutermostSmall = "isOutermostSmall"
)

// Filter selects records. Name is a substring match; Equals maps logical
// field names to dotted codes that must match exactly.
type Filter struct {
	Name   string
	Equals map[string]string
}

// Store is the read contract for one entity. Codes are passed and returned
// in dotted form.
type Store[T any] interface {
	FindPage(ctx context.Context, f Filter, sort *pagination.Sort, skip, limit int) ([]T, error)
	Count(ctx context.Context, f Filter) (int, error)
	FindByCode(ctx context.Context, code string) (T, error)
}

// Stores groups the stores of every entity for one backend.
type Stores struct {
	Provinces Store[models.Province]
	Regencies Store[models.Regency]
	Districts Store[models.District]
	Villages  Store[models.Village]
	Islands   Store[models.Island]
}
