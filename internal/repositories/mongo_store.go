package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"idn-area/internal/areacode"
	"idn-area/internal/domain/models"
	"idn-area/internal/pagination"
	"idn-area/internal/provider"
)

// MongoStore reads one entity collection. Document fields use the logical
// field names.
type MongoStore[R, T any] struct {
	coll    *mongo.Collection
	fold    bool
	entity  Entity
	convert func(R) T
}

// NewMongoStore builds a store for entity backed by its collection in db.
func NewMongoStore[R, T any](db *mongo.Database, c provider.Capability, entity Entity, convert func(R) T) *MongoStore[R, T] {
	return &MongoStore[R, T]{
		coll:    db.Collection(entity.Table),
		fold:    c.CaseInsensitiveContains,
		entity:  entity,
		convert: convert,
	}
}

// NewMongoStores builds every entity store for a document backend.
func NewMongoStores(db *mongo.Database, c provider.Capability) Stores {
	return Stores{
		Provinces: NewMongoStore(db, c, ProvinceEntity, provinceRow.model),
		Regencies: NewMongoStore(db, c, RegencyEntity, regencyRow.model),
		Districts: NewMongoStore(db, c, DistrictEntity, districtRow.model),
		Villages:  NewMongoStore(db, c, VillageEntity, villageRow.model),
		Islands:   NewMongoStore(db, c, IslandEntity, islandRow.model),
	}
}

func (s *MongoStore[R, T]) filter(f Filter) (bson.M, error) {
	out := bson.M{}
	if f.Name != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Name)}
		if s.fold {
			re.Options = "i"
		}
		out[FieldName] = re
	}
	for _, field := range sortedKeys(f.Equals) {
		if !s.entity.hasField(field) {
			return nil, fmt.Errorf("%s: unknown filter field %q", s.entity.Table, field)
		}
		out[field] = areacode.Compact(f.Equals[field])
	}
	return out, nil
}

func (s *MongoStore[R, T]) FindPage(ctx context.Context, f Filter, sort *pagination.Sort, skip, limit int) ([]T, error) {
	if err := checkWindow(skip, limit); err != nil {
		return nil, err
	}
	filter, err := s.filter(f)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit))
	if sort != nil && sort.Field != "" {
		if !s.entity.hasField(sort.Field) {
			return nil, fmt.Errorf("%s: unknown sort field %q", s.entity.Table, sort.Field)
		}
		dir := 1
		if sort.Descending() {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: sort.Field, Value: dir}})
	}

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.entity.Table, err)
	}
	var rows []R
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.entity.Table, err)
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.convert(r))
	}
	return out, nil
}

func (s *MongoStore[R, T]) Count(ctx context.Context, f Filter) (int, error) {
	filter, err := s.filter(f)
	if err != nil {
		return 0, err
	}
	n, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", s.entity.Table, err)
	}
	return int(n), nil
}

func (s *MongoStore[R, T]) FindByCode(ctx context.Context, code string) (T, error) {
	var (
		zero T
		row  R
	)
	err := s.coll.FindOne(ctx, bson.M{FieldCode: areacode.Compact(code)}).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("find %s by code: %w", s.entity.Table, err)
	}
	return s.convert(row), nil
}

var _ Store[models.Village] = (*MongoStore[villageRow, models.Village])(nil)
