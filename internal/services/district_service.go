package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"idn-area/internal/areacode"
	"idn-area/internal/domain"
	"idn-area/internal/domain/models"
	"idn-area/internal/pagination"
	"idn-area/internal/repositories"
)

type DistrictService struct {
	Stores    repositories.Stores
	Paginator pagination.Paginator
}

// Find lists districts, optionally scoped to q.ParentCode as a regency code.
func (s DistrictService) Find(ctx context.Context, q domain.ListQuery) (pagination.Page[models.District], error) {
	return find(ctx, s.Paginator, s.Stores.Districts, repositories.FieldRegencyCode, q)
}

// FindByRegency lists the districts of a regency that must exist.
func (s DistrictService) FindByRegency(ctx context.Context, regencyCode string, q domain.ListQuery) (pagination.Page[models.District], error) {
	if err := requireParent(ctx, s.Stores.Regencies, "Regency", regencyCode); err != nil {
		return pagination.Page[models.District]{}, err
	}
	return s.Find(ctx, q.WithParent(regencyCode))
}

// FindByCode returns the district with its regency and province. Both
// ancestors are looked up concurrently.
func (s DistrictService) FindByCode(ctx context.Context, code string) (models.DistrictDetail, error) {
	district, err := findOne(ctx, s.Stores.Districts, "District", code)
	if err != nil {
		return models.DistrictDetail{}, err
	}

	var parent models.DistrictParent
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		parent.Regency, err = lookup(gctx, s.Stores.Regencies, "regency", district.RegencyCode)
		return err
	})
	g.Go(func() (err error) {
		parent.Province, err = lookup(gctx, s.Stores.Provinces, "province", areacode.ProvinceCode(district.Code))
		return err
	})
	if err := g.Wait(); err != nil {
		return models.DistrictDetail{}, err
	}
	return models.DistrictDetail{District: district, Parent: parent}, nil
}
