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

type VillageService struct {
	Stores    repositories.Stores
	Paginator pagination.Paginator
}

// Find lists villages, optionally scoped to q.ParentCode as a district code.
func (s VillageService) Find(ctx context.Context, q domain.ListQuery) (pagination.Page[models.Village], error) {
	return find(ctx, s.Paginator, s.Stores.Villages, repositories.FieldDistrictCode, q)
}

// FindByDistrict lists the villages of a district that must exist.
func (s VillageService) FindByDistrict(ctx context.Context, districtCode string, q domain.ListQuery) (pagination.Page[models.Village], error) {
	if err := requireParent(ctx, s.Stores.Districts, "District", districtCode); err != nil {
		return pagination.Page[models.Village]{}, err
	}
	return s.Find(ctx, q.WithParent(districtCode))
}

// FindByCode returns the village with its district, regency and province.
func (s VillageService) FindByCode(ctx context.Context, code string) (models.VillageDetail, error) {
	village, err := findOne(ctx, s.Stores.Villages, "Village", code)
	if err != nil {
		return models.VillageDetail{}, err
	}

	var parent models.VillageParent
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		parent.District, err = lookup(gctx, s.Stores.Districts, "district", village.DistrictCode)
		return err
	})
	g.Go(func() (err error) {
		parent.Regency, err = lookup(gctx, s.Stores.Regencies, "regency", areacode.RegencyCode(village.Code))
		return err
	})
	g.Go(func() (err error) {
		parent.Province, err = lookup(gctx, s.Stores.Provinces, "province", areacode.ProvinceCode(village.Code))
		return err
	})
	if err := g.Wait(); err != nil {
		return models.VillageDetail{}, err
	}
	return models.VillageDetail{Village: village, Parent: parent}, nil
}
