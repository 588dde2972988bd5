package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"idn-area/internal/domain"
	"idn-area/internal/domain/models"
	"idn-area/internal/pagination"
	"idn-area/internal/repositories"
)

func strPtr(s string) *string { return &s }

func fixtureSeed() repositories.Seed {
	return repositories.Seed{
		Provinces: []models.Province{
			{Code: "11", Name: "ACEH"},
			{Code: "32", Name: "JAWA BARAT"},
		},
		Regencies: []models.Regency{
			{Code: "11.01", Name: "KABUPATEN ACEH SELATAN", ProvinceCode: "11"},
			{Code: "32.04", Name: "KABUPATEN BANDUNG", ProvinceCode: "32"},
			{Code: "32.73", Name: "KOTA BANDUNG", ProvinceCode: "32"},
		},
		Districts: []models.District{
			{Code: "32.04.05", Name: "CILEUNYI", RegencyCode: "32.04"},
			{Code: "32.73.01", Name: "SUKASARI", RegencyCode: "32.73"},
			{Code: "32.73.02", Name: "COBLONG", RegencyCode: "32.73"},
		},
		Villages: []models.Village{
			{Code: "32.73.01.1001", Name: "SARIJADI", DistrictCode: "32.73.01"},
			{Code: "32.73.02.1001", Name: "DAGO", DistrictCode: "32.73.02"},
		},
		Islands: []models.Island{
			{Code: "11.01.40001", Name: "PULAU BATEEYANG", Coordinate: `03°19'03.44" N 097°06'29.98" E`, RegencyCode: strPtr("11.01")},
			{Code: "11.00.40001", Name: "PULAU LEPAS", Coordinate: `00°30'00.00" S 100°00'00.00" E`},
		},
	}
}

type ServiceSuite struct {
	suite.Suite
	ctx       context.Context
	stores    repositories.Stores
	paginator pagination.Paginator
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.stores = repositories.NewMemoryStores(true, fixtureSeed())
	s.paginator = pagination.New(10)
}

func (s *ServiceSuite) TestProvinceFindDefaultsToCodeAscending() {
	svc := ProvinceService{Provinces: s.stores.Provinces, Paginator: s.paginator}

	page, err := svc.Find(s.ctx, domain.ListQuery{})
	s.Require().NoError(err)
	s.Require().Len(page.Data, 2)
	s.Equal("11", page.Data[0].Code)
	s.Equal(2, page.Meta.Total)
	s.Equal(10, page.Meta.Limit)
}

func (s *ServiceSuite) TestProvinceFindByCodeNotFound() {
	svc := ProvinceService{Provinces: s.stores.Provinces, Paginator: s.paginator}

	_, err := svc.FindByCode(s.ctx, "99")
	s.Require().Error(err)
	s.True(domain.IsNotFound(err))
	s.Equal("Province with code '99' not found", err.Error())
}

func (s *ServiceSuite) TestRegencyFindFiltersByNameAndProvince() {
	svc := RegencyService{Stores: s.stores, Paginator: s.paginator}

	page, err := svc.Find(s.ctx, domain.ListQuery{
		Name:       "bandung",
		ParentCode: "32",
		Sort:       pagination.SortOptions{SortBy: "name", SortOrder: pagination.Desc},
	})
	s.Require().NoError(err)
	s.Require().Len(page.Data, 2)
	s.Equal("KOTA BANDUNG", page.Data[0].Name)
	s.Equal("KABUPATEN BANDUNG", page.Data[1].Name)
}

func (s *ServiceSuite) TestUnknownFilterParentYieldsEmptyPage() {
	svc := DistrictService{Stores: s.stores, Paginator: s.paginator}

	page, err := svc.Find(s.ctx, domain.ListQuery{ParentCode: "99.99"})
	s.Require().NoError(err)
	s.Empty(page.Data)
	s.NotNil(page.Data)
	s.Equal(0, page.Meta.Total)
	s.Nil(page.Meta.Pages.Current)
}

func (s *ServiceSuite) TestUnknownPathParentIsNotFound() {
	regencies := RegencyService{Stores: s.stores, Paginator: s.paginator}
	_, err := regencies.FindByProvince(s.ctx, "99", domain.ListQuery{})
	s.True(domain.IsNotFound(err))

	villages := VillageService{Stores: s.stores, Paginator: s.paginator}
	_, err = villages.FindByDistrict(s.ctx, "32.73.99", domain.ListQuery{})
	s.True(domain.IsNotFound(err))
}

func (s *ServiceSuite) TestNestedListUsesPathParent() {
	svc := DistrictService{Stores: s.stores, Paginator: s.paginator}

	page, err := svc.FindByRegency(s.ctx, "32.73", domain.ListQuery{ParentCode: "32.04"})
	s.Require().NoError(err)
	s.Len(page.Data, 2)
	for _, d := range page.Data {
		s.Equal("32.73", d.RegencyCode)
	}
}

func (s *ServiceSuite) TestDistrictFindByCodeResolvesAncestors() {
	svc := DistrictService{Stores: s.stores, Paginator: s.paginator}

	detail, err := svc.FindByCode(s.ctx, "32.73.02")
	s.Require().NoError(err)
	s.Equal("COBLONG", detail.Name)
	s.Require().NotNil(detail.Parent.Regency)
	s.Equal("KOTA BANDUNG", detail.Parent.Regency.Name)
	s.Require().NotNil(detail.Parent.Province)
	s.Equal("JAWA BARAT", detail.Parent.Province.Name)
}

func (s *ServiceSuite) TestVillageFindByCodeResolvesAncestors() {
	svc := VillageService{Stores: s.stores, Paginator: s.paginator}

	detail, err := svc.FindByCode(s.ctx, "32.73.01.1001")
	s.Require().NoError(err)
	s.Equal("SUKASARI", detail.Parent.District.Name)
	s.Equal("32.73", detail.Parent.Regency.Code)
	s.Equal("32", detail.Parent.Province.Code)
}

func (s *ServiceSuite) TestRegencyFindByCodeResolvesProvince() {
	svc := RegencyService{Stores: s.stores, Paginator: s.paginator}

	detail, err := svc.FindByCode(s.ctx, "11.01")
	s.Require().NoError(err)
	s.Require().NotNil(detail.Parent.Province)
	s.Equal("ACEH", detail.Parent.Province.Name)
}

func (s *ServiceSuite) TestIslandCoordinatesAndOrphanParent() {
	svc := IslandService{Stores: s.stores, Paginator: s.paginator}

	orphan, err := svc.FindByCode(s.ctx, "11.00.40001")
	s.Require().NoError(err)
	s.Nil(orphan.Parent.Regency)
	s.Nil(orphan.Parent.Province)
	s.InDelta(-0.5, orphan.Latitude, 1e-9)
	s.InDelta(100.0, orphan.Longitude, 1e-9)

	owned, err := svc.FindByCode(s.ctx, "11.01.40001")
	s.Require().NoError(err)
	s.Equal("11.01", owned.Parent.Regency.Code)
	s.Equal("11", owned.Parent.Province.Code)

	page, err := svc.FindByRegency(s.ctx, "11.01", domain.ListQuery{})
	s.Require().NoError(err)
	s.Require().Len(page.Data, 1)
	s.InDelta(3.3176, page.Data[0].Latitude, 1e-3)
}

func (s *ServiceSuite) TestIslandMalformedCoordinate() {
	stores := repositories.NewMemoryStores(true, repositories.Seed{
		Islands: []models.Island{{Code: "11.01.40002", Coordinate: "not a coordinate"}},
	})
	svc := IslandService{Stores: stores, Paginator: s.paginator}

	_, err := svc.Find(s.ctx, domain.ListQuery{})
	s.Require().Error(err)
	s.True(domain.IsCoordinateFormat(err))
}

type mockStore[T any] struct {
	mock.Mock
}

func (m *mockStore[T]) FindPage(ctx context.Context, f repositories.Filter, sort *pagination.Sort, skip, limit int) ([]T, error) {
	args := m.Called(ctx, f, sort, skip, limit)
	rows, _ := args.Get(0).([]T)
	return rows, args.Error(1)
}

func (m *mockStore[T]) Count(ctx context.Context, f repositories.Filter) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

func (m *mockStore[T]) FindByCode(ctx context.Context, code string) (T, error) {
	args := m.Called(ctx, code)
	v, _ := args.Get(0).(T)
	return v, args.Error(1)
}

func TestFindPassesFilterSortAndWindow(t *testing.T) {
	store := new(mockStore[models.Village])
	filter := repositories.Filter{Name: "dago", Equals: map[string]string{repositories.FieldDistrictCode: "32.73.02"}}
	sort := &pagination.Sort{Field: "name", Order: pagination.Asc}

	store.On("FindPage", mock.Anything, filter, sort, 20, 10).
		Return([]models.Village{{Code: "32.73.02.1001", Name: "DAGO"}}, nil)
	store.On("Count", mock.Anything, filter).Return(21, nil)

	svc := VillageService{Stores: repositories.Stores{Villages: store}, Paginator: pagination.New(10)}
	page, err := svc.Find(context.Background(), domain.ListQuery{
		Name:       "dago",
		ParentCode: "32.73.02",
		Sort:       pagination.SortOptions{SortBy: "name"},
		Page:       pagination.Query{Page: 3},
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.Equal(t, 3, page.Meta.TotalPages)
	require.NotNil(t, page.Meta.Pages.Current)
	require.Nil(t, page.Meta.Pages.Next)
	store.AssertExpectations(t)
}

func TestBackendFailuresPropagate(t *testing.T) {
	boom := errors.New("connection refused")

	provinces := new(mockStore[models.Province])
	provinces.On("FindByCode", mock.Anything, "32").Return(models.Province{}, boom)
	regencies := new(mockStore[models.Regency])
	regencies.On("FindByCode", mock.Anything, "32.04").
		Return(models.Regency{Code: "32.04", ProvinceCode: "32"}, nil)

	svc := RegencyService{
		Stores:    repositories.Stores{Provinces: provinces, Regencies: regencies},
		Paginator: pagination.New(10),
	}
	_, err := svc.FindByCode(context.Background(), "32.04")
	require.ErrorIs(t, err, boom)
	require.False(t, domain.IsNotFound(err))

	_, err = svc.FindByProvince(context.Background(), "32", domain.ListQuery{})
	require.ErrorIs(t, err, boom)
}
