package services

import (
	"context"

	"idn-area/internal/domain"
	"idn-area/internal/domain/models"
	"idn-area/internal/pagination"
	"idn-area/internal/repositories"
)

type RegencyService struct {
	Stores    repositories.Stores
	Paginator pagination.Paginator
}

// Find lists regencies, optionally scoped to q.ParentCode as a province code.
// An unknown province yields an empty page.
func (s RegencyService) Find(ctx context.Context, q domain.ListQuery) (pagination.Page[models.Regency], error) {
	return find(ctx, s.Paginator, s.Stores.Regencies, repositories.FieldProvinceCode, q)
}

// FindByProvince lists the regencies of a province that must exist.
func (s RegencyService) FindByProvince(ctx context.Context, provinceCode string, q domain.ListQuery) (pagination.Page[models.Regency], error) {
	if err := requireParent(ctx, s.Stores.Provinces, "Province", provinceCode); err != nil {
		return pagination.Page[models.Regency]{}, err
	}
	return s.Find(ctx, q.WithParent(provinceCode))
}

func (s RegencyService) FindByCode(ctx context.Context, code string) (models.RegencyDetail, error) {
	regency, err := findOne(ctx, s.Stores.Regencies, "Regency", code)
	if err != nil {
		return models.RegencyDetail{}, err
	}
	province, err := lookup(ctx, s.Stores.Provinces, "province", regency.ProvinceCode)
	if err != nil {
		return models.RegencyDetail{}, err
	}
	return models.RegencyDetail{
		Regency: regency,
		Parent:  models.RegencyParent{Province: province},
	}, nil
}
