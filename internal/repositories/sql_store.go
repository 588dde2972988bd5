package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"idn-area/internal/areacode"
	"idn-area/internal/domain/models"
	"idn-area/internal/pagination"
	"idn-area/internal/provider"
)

// SQLStore reads one entity table through database/sql. R is the scanned
// row shape and T the model it converts to.
type SQLStore[R, T any] struct {
	db      *sqlx.DB
	dialect dialect
	fold    bool
	entity  Entity
	convert func(R) T
}

// NewSQLStore builds a store for entity on db using the dialect of c.
func NewSQLStore[R, T any](db *sqlx.DB, c provider.Capability, entity Entity, convert func(R) T) (*SQLStore[R, T], error) {
	d, err := dialectFor(c)
	if err != nil {
		return nil, err
	}
	return &SQLStore[R, T]{
		db:      db,
		dialect: d,
		fold:    c.CaseInsensitiveContains,
		entity:  entity,
		convert: convert,
	}, nil
}

// NewSQLStores builds every entity store for a relational backend.
func NewSQLStores(db *sqlx.DB, c provider.Capability) (Stores, error) {
	provinces, err := NewSQLStore(db, c, ProvinceEntity, provinceRow.model)
	if err != nil {
		return Stores{}, err
	}
	regencies, err := NewSQLStore(db, c, RegencyEntity, regencyRow.model)
	if err != nil {
		return Stores{}, err
	}
	districts, err := NewSQLStore(db, c, DistrictEntity, districtRow.model)
	if err != nil {
		return Stores{}, err
	}
	villages, err := NewSQLStore(db, c, VillageEntity, villageRow.model)
	if err != nil {
		return Stores{}, err
	}
	islands, err := NewSQLStore(db, c, IslandEntity, islandRow.model)
	if err != nil {
		return Stores{}, err
	}
	return Stores{
		Provinces: provinces,
		Regencies: regencies,
		Districts: districts,
		Villages:  villages,
		Islands:   islands,
	}, nil
}

func (s *SQLStore[R, T]) selectFrom() string {
	return "SELECT " + strings.Join(s.entity.Columns, ", ") + " FROM " + s.entity.Table
}

func (s *SQLStore[R, T]) where(f Filter) (string, []any, error) {
	var (
		clauses []string
		args    []any
	)
	if f.Name != "" {
		col, _ := s.entity.column(FieldName)
		clause, arg := s.dialect.contains(col, f.Name, s.fold)
		clauses = append(clauses, clause)
		args = append(args, arg)
	}
	for _, field := range sortedKeys(f.Equals) {
		col, ok := s.entity.column(field)
		if !ok {
			return "", nil, fmt.Errorf("%s: unknown filter field %q", s.entity.Table, field)
		}
		clauses = append(clauses, col+" = ?")
		args = append(args, areacode.Compact(f.Equals[field]))
	}
	if len(clauses) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func (s *SQLStore[R, T]) orderBy(sort *pagination.Sort) (string, error) {
	if sort == nil || sort.Field == "" {
		return "", nil
	}
	col, ok := s.entity.column(sort.Field)
	if !ok {
		return "", fmt.Errorf("%s: unknown sort field %q", s.entity.Table, sort.Field)
	}
	dir := "ASC"
	if sort.Descending() {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir, nil
}

func (s *SQLStore[R, T]) FindPage(ctx context.Context, f Filter, sort *pagination.Sort, skip, limit int) ([]T, error) {
	if err := checkWindow(skip, limit); err != nil {
		return nil, err
	}
	where, args, err := s.where(f)
	if err != nil {
		return nil, err
	}
	order, err := s.orderBy(sort)
	if err != nil {
		return nil, err
	}
	query := s.db.Rebind(s.selectFrom() + where + order + " LIMIT ? OFFSET ?")
	args = append(args, limit, skip)

	var rows []R
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", s.entity.Table, err)
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.convert(r))
	}
	return out, nil
}

func (s *SQLStore[R, T]) Count(ctx context.Context, f Filter) (int, error) {
	where, args, err := s.where(f)
	if err != nil {
		return 0, err
	}
	query := s.db.Rebind("SELECT COUNT(*) FROM " + s.entity.Table + where)

	var n int
	if err := s.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.entity.Table, err)
	}
	return n, nil
}

func (s *SQLStore[R, T]) FindByCode(ctx context.Context, code string) (T, error) {
	var zero T
	query := s.db.Rebind(s.selectFrom() + " WHERE code = ? LIMIT 1")

	var row R
	if err := s.db.GetContext(ctx, &row, query, areacode.Compact(code)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("find %s by code: %w", s.entity.Table, err)
	}
	return s.convert(row), nil
}

var (
	_ Store[models.Province] = (*SQLStore[provinceRow, models.Province])(nil)
	_ Store[models.Island]   = (*SQLStore[islandRow, models.Island])(nil)
)
