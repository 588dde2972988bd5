package config

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	_ "modernc.org/sqlite"

	"idn-area/internal/repositories"
)

const pingTimeout = 3 * time.Second

// Database is the open connection of the configured backend. Exactly one of
// SQL and Mongo is set.
type Database struct {
	SQL   *sqlx.DB
	Mongo *mongo.Client
	env   Env
}

// ConnectDB opens and pings the backend selected by env.
func ConnectDB(ctx context.Context, env Env) (*Database, error) {
	c := env.Provider
	if c.SQL() {
		db, err := sqlx.Open(c.Driver, env.DBURL)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", c.Provider, err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(10 * time.Minute)
		db.SetConnMaxIdleTime(5 * time.Minute)

		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := db.PingContext(pctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping %s: %w", c.Provider, err)
		}
		return &Database{SQL: db, env: env}, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(env.DBURL))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", c.Provider, err)
	}
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping %s: %w", c.Provider, err)
	}
	return &Database{Mongo: client, env: env}, nil
}

// Stores builds the entity stores on top of the connection.
func (d *Database) Stores() (repositories.Stores, error) {
	if d.SQL != nil {
		return repositories.NewSQLStores(d.SQL, d.env.Provider)
	}
	return repositories.NewMongoStores(d.Mongo.Database(d.env.DBName), d.env.Provider), nil
}

func (d *Database) Close(ctx context.Context) error {
	if d == nil {
		return nil
	}
	if d.SQL != nil {
		return d.SQL.Close()
	}
	if d.Mongo != nil {
		return d.Mongo.Disconnect(ctx)
	}
	return nil
}
