package repositories

import (
	"sort"

	"idn-area/internal/areacode"
)

// Entity describes where an entity lives and which logical fields it has.
// Fields maps logical names to SQL columns; document stores use the logical
// names directly.
type Entity struct {
	Table   string
	Kind    areacode.Kind
	Fields  map[string]string
	Columns []string
}

func (e Entity) column(field string) (string, bool) {
	c, ok := e.Fields[field]
	return c, ok
}

func (e Entity) hasField(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	ProvinceEntity = Entity{
		Table: "provinces",
		Kind:  areacode.Province,
		Fields: map[string]string{
			FieldCode: "code",
			FieldName: "name",
		},
		Columns: []string{"code", "name"},
	}

	RegencyEntity = Entity{
		Table: "regencies",
		Kind:  areacode.Regency,
		Fields: map[string]string{
			FieldCode:         "code",
			FieldName:         "name",
			FieldProvinceCode: "province_code",
		},
		Columns: []string{"code", "name", "province_code"},
	}

	DistrictEntity = Entity{
		Table: "districts",
		Kind:  areacode.District,
		Fields: map[string]string{
			FieldCode:        "code",
			FieldName:        "name",
			FieldRegencyCode: "regency_code",
		},
		Columns: []string{"code", "name", "regency_code"},
	}

	VillageEntity = Entity{
		Table: "villages",
		Kind:  areacode.Village,
		Fields: map[string]string{
			FieldCode:         "code",
			FieldName:         "name",
			FieldDistrictCode: "district_code",
		},
		Columns: []string{"code", "name", "district_code"},
	}

	IslandEntity = Entity{
		Table: "islands",
		Kind:  areacode.Island,
		Fields: map[string]string{
			FieldCode:             "code",
			FieldName:             "name",
			FieldCoordinate:       "coordinate",
			FieldRegencyCode:      "regency_code",
			FieldIsPopulated:      "is_populated",
			FieldIsOutermostSmall: "is_outermost_small",
		},
		Columns: []string{"code", "coordinate", "is_outermost_small", "is_populated", "name", "regency_code"},
	}
)
