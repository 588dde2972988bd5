package services

import (
	"context"

	"idn-area/internal/domain"
	"idn-area/internal/domain/models"
	"idn-area/internal/pagination"
	"idn-area/internal/repositories"
)

type ProvinceService struct {
	Provinces repositories.Store[models.Province]
	Paginator pagination.Paginator
}

func (s ProvinceService) Find(ctx context.Context, q domain.ListQuery) (pagination.Page[models.Province], error) {
	return find(ctx, s.Paginator, s.Provinces, "", q)
}

func (s ProvinceService) FindByCode(ctx context.Context, code string) (models.Province, error) {
	return findOne(ctx, s.Provinces, "Province", code)
}
