package repositories

import (
	"context"
	"math"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"idn-area/internal/domain/models"
	"idn-area/internal/pagination"
	"idn-area/internal/provider"
)

const sqliteSchema = `
CREATE TABLE provinces (code TEXT PRIMARY KEY, name TEXT NOT NULL);
CREATE TABLE regencies (code TEXT PRIMARY KEY, name TEXT NOT NULL, province_code TEXT NOT NULL);
CREATE TABLE districts (code TEXT PRIMARY KEY, name TEXT NOT NULL, regency_code TEXT NOT NULL);
CREATE TABLE villages (code TEXT PRIMARY KEY, name TEXT NOT NULL, district_code TEXT NOT NULL);
CREATE TABLE islands (
	code TEXT PRIMARY KEY,
	coordinate TEXT NOT NULL,
	is_outermost_small TEXT NOT NULL,
	is_populated TEXT NOT NULL,
	name TEXT NOT NULL,
	regency_code TEXT NULL
);
INSERT INTO provinces VALUES ('11', 'ACEH'), ('32', 'JAWA BARAT'), ('33', 'JAWA TENGAH');
INSERT INTO regencies VALUES ('3204', 'KABUPATEN BANDUNG', '32'), ('3273', 'KOTA BANDUNG', '32');
INSERT INTO islands VALUES
	('110140001', '03°19''03.44" N 097°06''29.98" E', '2', '0', 'PULAU BATEEYANG', '1101'),
	('110040001', '02°00''00.00" N 096°00''00.00" E', '0', '1', 'PULAU TANPA KABUPATEN', NULL);
`

func newSQLiteStores(t *testing.T) Stores {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(sqliteSchema)
	require.NoError(t, err)

	stores, err := NewSQLStores(db, provider.MustLookup(provider.SQLite))
	require.NoError(t, err)
	return stores
}

func TestSQLiteStoreCaseSensitiveContains(t *testing.T) {
	stores := newSQLiteStores(t)
	ctx := context.Background()

	n, err := stores.Provinces.Count(ctx, Filter{Name: "jawa"})
	require.NoError(t, err)
	assert.Zero(t, n)

	rows, err := stores.Provinces.FindPage(ctx, Filter{Name: "JAWA"}, &pagination.Sort{Field: FieldName, Order: pagination.Desc}, 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "JAWA TENGAH", rows[0].Name)
}

func TestSQLiteStoreThroughPaginator(t *testing.T) {
	stores := newSQLiteStores(t)

	page, err := pagination.Paginate[models.Regency, Filter](context.Background(), pagination.New(1), stores.Regencies,
		Filter{Equals: map[string]string{FieldProvinceCode: "32"}},
		&pagination.Sort{Field: FieldCode}, pagination.Query{Page: 2})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "32.73", page.Data[0].Code)
	assert.Equal(t, 2, page.Meta.TotalPages)
}

func TestSQLiteStorePageFarPastTheEnd(t *testing.T) {
	stores := newSQLiteStores(t)

	for _, q := range []pagination.Query{
		{Page: 100000000000000000, Limit: 100},
		{Page: math.MaxInt / 100, Limit: 100},
	} {
		page, err := pagination.Paginate[models.Province, Filter](context.Background(), pagination.New(10), stores.Provinces,
			Filter{}, &pagination.Sort{Field: FieldCode}, q)
		require.NoError(t, err, "%+v", q)
		assert.Empty(t, page.Data, "%+v", q)
		assert.Nil(t, page.Meta.Pages.Current)
		assert.Equal(t, 1, page.Meta.TotalPages)
	}
}

func TestSQLiteStoreIslandFlags(t *testing.T) {
	stores := newSQLiteStores(t)

	island, err := stores.Islands.FindByCode(context.Background(), "11.01.40001")
	require.NoError(t, err)
	assert.True(t, island.IsOutermostSmall)
	assert.False(t, island.IsPopulated)

	orphan, err := stores.Islands.FindByCode(context.Background(), "11.00.40001")
	require.NoError(t, err)
	assert.Nil(t, orphan.RegencyCode)
	assert.True(t, orphan.IsPopulated)
}
