package repositories

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"idn-area/internal/areacode"
	"idn-area/internal/domain/models"
	"idn-area/internal/utils"
)

// Rows mirror the stored shape: dot-stripped codes, snake_case SQL columns
// and camelCase document fields.

type provinceRow struct {
	ID   any    `db:"-" bson:"_id,omitempty"`
	Code string `db:"code" bson:"code"`
	Name string `db:"name" bson:"name"`
}

func (r provinceRow) model() models.Province {
	return models.Province{
		Record: models.Record{InternalID: r.ID},
		Code:   areacode.Expand(areacode.Province, r.Code),
		Name:   r.Name,
	}
}

type regencyRow struct {
	ID           any    `db:"-" bson:"_id,omitempty"`
	Code         string `db:"code" bson:"code"`
	Name         string `db:"name" bson:"name"`
	ProvinceCode string `db:"province_code" bson:"provinceCode"`
}

func (r regencyRow) model() models.Regency {
	return models.Regency{
		Record:       models.Record{InternalID: r.ID},
		Code:         areacode.Expand(areacode.Regency, r.Code),
		Name:         r.Name,
		ProvinceCode: areacode.Expand(areacode.Province, r.ProvinceCode),
	}
}

type districtRow struct {
	ID          any    `db:"-" bson:"_id,omitempty"`
	Code        string `db:"code" bson:"code"`
	Name        string `db:"name" bson:"name"`
	RegencyCode string `db:"regency_code" bson:"regencyCode"`
}

func (r districtRow) model() models.District {
	return models.District{
		Record:      models.Record{InternalID: r.ID},
		Code:        areacode.Expand(areacode.District, r.Code),
		Name:        r.Name,
		RegencyCode: areacode.Expand(areacode.Regency, r.RegencyCode),
	}
}

type villageRow struct {
	ID           any    `db:"-" bson:"_id,omitempty"`
	Code         string `db:"code" bson:"code"`
	Name         string `db:"name" bson:"name"`
	DistrictCode string `db:"district_code" bson:"districtCode"`
}

func (r villageRow) model() models.Village {
	return models.Village{
		Record:       models.Record{InternalID: r.ID},
		Code:         areacode.Expand(areacode.Village, r.Code),
		Name:         r.Name,
		DistrictCode: areacode.Expand(areacode.District, r.DistrictCode),
	}
}

type islandRow struct {
	ID               any     `db:"-" bson:"_id,omitempty"`
	Code             string  `db:"code" bson:"code"`
	Coordinate       string  `db:"coordinate" bson:"coordinate"`
	IsOutermostSmall Flag    `db:"is_outermost_small" bson:"isOutermostSmall"`
	IsPopulated      Flag    `db:"is_populated" bson:"isPopulated"`
	Name             string  `db:"name" bson:"name"`
	RegencyCode      *string `db:"regency_code" bson:"regencyCode"`
}

func (r islandRow) model() models.Island {
	var regency *string
	if r.RegencyCode != nil && *r.RegencyCode != "" {
		code := areacode.Expand(areacode.Regency, *r.RegencyCode)
		regency = &code
	}
	return models.Island{
		Record:           models.Record{InternalID: r.ID},
		Code:             areacode.Expand(areacode.Island, r.Code),
		Coordinate:       r.Coordinate,
		IsOutermostSmall: bool(r.IsOutermostSmall),
		IsPopulated:      bool(r.IsPopulated),
		Name:             r.Name,
		RegencyCode:      regency,
	}
}

// Flag is a stored yes/no field. Backends may hold it as a boolean, a
// number or text; text goes through utils.ParseFlag.
type Flag bool

func (f *Flag) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case int64:
		*f = v != 0
	case float64:
		*f = v != 0
	case []byte:
		*f = Flag(utils.ParseFlag(string(v)))
	case string:
		*f = Flag(utils.ParseFlag(v))
	default:
		return fmt.Errorf("scan flag: unsupported type %T", src)
	}
	return nil
}

func (f *Flag) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*f = false
	case bson.TypeBoolean:
		*f = Flag(rv.Boolean())
	case bson.TypeInt32:
		*f = rv.Int32() != 0
	case bson.TypeInt64:
		*f = rv.Int64() != 0
	case bson.TypeDouble:
		*f = rv.Double() != 0
	case bson.TypeString:
		*f = Flag(utils.ParseFlag(rv.StringValue()))
	default:
		return fmt.Errorf("decode flag: unsupported bson type %s", t)
	}
	return nil
}
