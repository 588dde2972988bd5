package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"idn-area/internal/areacode"
	"idn-area/internal/coordinate"
	"idn-area/internal/domain"
	"idn-area/internal/domain/models"
	"idn-area/internal/pagination"
	"idn-area/internal/repositories"
)

type IslandService struct {
	Stores    repositories.Stores
	Paginator pagination.Paginator
}

// Find lists islands, optionally scoped to q.ParentCode as a regency code.
// Every island carries latitude and longitude decoded from its coordinate.
func (s IslandService) Find(ctx context.Context, q domain.ListQuery) (pagination.Page[models.Island], error) {
	page, err := find(ctx, s.Paginator, s.Stores.Islands, repositories.FieldRegencyCode, q)
	if err != nil {
		return page, err
	}
	for i := range page.Data {
		if err := locate(&page.Data[i]); err != nil {
			return pagination.Page[models.Island]{}, err
		}
	}
	return page, nil
}

// FindByRegency lists the islands of a regency that must exist.
func (s IslandService) FindByRegency(ctx context.Context, regencyCode string, q domain.ListQuery) (pagination.Page[models.Island], error) {
	if err := requireParent(ctx, s.Stores.Regencies, "Regency", regencyCode); err != nil {
		return pagination.Page[models.Island]{}, err
	}
	return s.Find(ctx, q.WithParent(regencyCode))
}

// FindByCode returns the island with its regency and province. Islands
// without a regency have both ancestors nil.
func (s IslandService) FindByCode(ctx context.Context, code string) (models.IslandDetail, error) {
	island, err := findOne(ctx, s.Stores.Islands, "Island", code)
	if err != nil {
		return models.IslandDetail{}, err
	}
	if err := locate(&island); err != nil {
		return models.IslandDetail{}, err
	}

	detail := models.IslandDetail{Island: island}
	if island.RegencyCode == nil {
		return detail, nil
	}
	regencyCode := *island.RegencyCode

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		detail.Parent.Regency, err = lookup(gctx, s.Stores.Regencies, "regency", regencyCode)
		return err
	})
	g.Go(func() (err error) {
		detail.Parent.Province, err = lookup(gctx, s.Stores.Provinces, "province", areacode.ProvinceCode(regencyCode))
		return err
	})
	if err := g.Wait(); err != nil {
		return models.IslandDetail{}, err
	}
	return detail, nil
}

func locate(island *models.Island) error {
	p, err := coordinate.Convert(island.Coordinate)
	if err != nil {
		return fmt.Errorf("island %s: %w", island.Code, err)
	}
	island.Latitude = p.Latitude
	island.Longitude = p.Longitude
	return nil
}
