package repositories

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"idn-area/internal/domain/models"
	"idn-area/internal/pagination"
)

// FieldFunc reads a logical field of a record as text.
type FieldFunc[T any] func(record T, field string) (string, bool)

// MemoryStore serves a fixed set of records from memory. It is the
// in-process backend the service and HTTP tests build on. Records are never
// modified after construction, so no locking is needed.
type MemoryStore[T any] struct {
	records []T
	fold    bool
	field   FieldFunc[T]
}

// NewMemoryStore copies records into a new store. fold selects
// case-insensitive name matching.
func NewMemoryStore[T any](fold bool, field FieldFunc[T], records ...T) *MemoryStore[T] {
	return &MemoryStore[T]{
		records: append([]T(nil), records...),
		fold:    fold,
		field:   field,
	}
}

// Seed is the record set of a memory backend.
type Seed struct {
	Provinces []models.Province
	Regencies []models.Regency
	Districts []models.District
	Villages  []models.Village
	Islands   []models.Island
}

// NewMemoryStores builds every entity store from seed.
func NewMemoryStores(fold bool, seed Seed) Stores {
	return Stores{
		Provinces: NewMemoryStore(fold, ProvinceField, seed.Provinces...),
		Regencies: NewMemoryStore(fold, RegencyField, seed.Regencies...),
		Districts: NewMemoryStore(fold, DistrictField, seed.Districts...),
		Villages:  NewMemoryStore(fold, VillageField, seed.Villages...),
		Islands:   NewMemoryStore(fold, IslandField, seed.Islands...),
	}
}

func (s *MemoryStore[T]) value(r T, field string) (string, error) {
	v, ok := s.field(r, field)
	if !ok {
		return "", fmt.Errorf("unknown field %q", field)
	}
	return v, nil
}

func (s *MemoryStore[T]) matches(r T, f Filter) (bool, error) {
	if f.Name != "" {
		name, err := s.value(r, FieldName)
		if err != nil {
			return false, err
		}
		needle := f.Name
		if s.fold {
			name, needle = strings.ToLower(name), strings.ToLower(needle)
		}
		if !strings.Contains(name, needle) {
			return false, nil
		}
	}
	for _, field := range sortedKeys(f.Equals) {
		v, err := s.value(r, field)
		if err != nil {
			return false, err
		}
		if v != f.Equals[field] {
			return false, nil
		}
	}
	return true, nil
}

func (s *MemoryStore[T]) filter(f Filter) ([]T, error) {
	out := []T{}
	for _, r := range s.records {
		ok, err := s.matches(r, f)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryStore[T]) FindPage(_ context.Context, f Filter, srt *pagination.Sort, skip, limit int) ([]T, error) {
	if err := checkWindow(skip, limit); err != nil {
		return nil, err
	}
	rows, err := s.filter(f)
	if err != nil {
		return nil, err
	}
	if srt != nil && srt.Field != "" {
		if len(rows) > 0 {
			if _, err := s.value(rows[0], srt.Field); err != nil {
				return nil, err
			}
		}
		sort.SliceStable(rows, func(i, j int) bool {
			a, _ := s.field(rows[i], srt.Field)
			b, _ := s.field(rows[j], srt.Field)
			if srt.Descending() {
				return a > b
			}
			return a < b
		})
	}
	if skip >= len(rows) {
		return []T{}, nil
	}
	return rows[skip : skip+min(limit, len(rows)-skip)], nil
}

func (s *MemoryStore[T]) Count(_ context.Context, f Filter) (int, error) {
	rows, err := s.filter(f)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *MemoryStore[T]) FindByCode(_ context.Context, code string) (T, error) {
	for _, r := range s.records {
		if v, _ := s.field(r, FieldCode); v == code {
			return r, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

func ProvinceField(p models.Province, field string) (string, bool) {
	switch field {
	case FieldCode:
		return p.Code, true
	case FieldName:
		return p.Name, true
	}
	return "", false
}

func RegencyField(r models.Regency, field string) (string, bool) {
	switch field {
	case FieldCode:
		return r.Code, true
	case FieldName:
		return r.Name, true
	case FieldProvinceCode:
		return r.ProvinceCode, true
	}
	return "", false
}

func DistrictField(d models.District, field string) (string, bool) {
	switch field {
	case FieldCode:
		return d.Code, true
	case FieldName:
		return d.Name, true
	case FieldRegencyCode:
		return d.RegencyCode, true
	}
	return "", false
}

func VillageField(v models.Village, field string) (string, bool) {
	switch field {
	case FieldCode:
		return v.Code, true
	case FieldName:
		return v.Name, true
	case FieldDistrictCode:
		return v.DistrictCode, true
	}
	return "", false
}

func IslandField(i models.Island, field string) (string, bool) {
	switch field {
	case FieldCode:
		return i.Code, true
	case FieldName:
		return i.Name, true
	case FieldCoordinate:
		return i.Coordinate, true
	case FieldRegencyCode:
		if i.RegencyCode == nil {
			return "", true
		}
		return *i.RegencyCode, true
	case FieldIsPopulated:
		return strconv.FormatBool(i.IsPopulated), true
	case FieldIsOutermostSmall:
		return strconv.FormatBool(i.IsOutermostSmall), true
	}
	return "", false
}
