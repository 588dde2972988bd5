package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"idn-area/internal/domain"
	"idn-area/internal/pagination"
	"idn-area/internal/provider"
)

type Env struct {
	AppAddr         string
	GinMode         string
	Provider        provider.Capability
	DBURL           string
	DBName          string
	DefaultPageSize int
	MaxPageSize     int
	CORSOrigins     []string
	LogLevel        string
	LogFormat       string
}

// LoadEnv reads the process environment, after loading .env when present.
func LoadEnv() (Env, error) {
	_ = godotenv.Load(".env")
	return loadEnv(os.Getenv)
}

func loadEnv(getenv func(string) string) (Env, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	env := Env{
		AppAddr:   get("APP_ADDR", ":8080"),
		GinMode:   get("GIN_MODE", ""),
		DBURL:     get("DB_URL", ""),
		DBName:    get("DB_NAME", "idn_area"),
		LogLevel:  get("LOG_LEVEL", "info"),
		LogFormat: get("LOG_FORMAT", "text"),
	}

	c, err := provider.Lookup(getenv("DB_PROVIDER"))
	if err != nil {
		return Env{}, err
	}
	env.Provider = c

	if env.DBURL == "" {
		return Env{}, domain.ConfigurationError{Key: "DB_URL", Msg: "is required"}
	}

	if env.DefaultPageSize, err = positive(get, "APP_PAGINATION_DEFAULT_PAGE_SIZE", pagination.DefaultLimit); err != nil {
		return Env{}, err
	}
	if env.MaxPageSize, err = positive(get, "APP_PAGINATION_MAX_PAGE_SIZE", pagination.MaxLimit); err != nil {
		return Env{}, err
	}
	if env.DefaultPageSize > env.MaxPageSize {
		return Env{}, domain.ConfigurationError{
			Key: "APP_PAGINATION_DEFAULT_PAGE_SIZE",
			Msg: "must not exceed APP_PAGINATION_MAX_PAGE_SIZE",
		}
	}

	for _, o := range strings.Split(get("CORS_ALLOWED_ORIGINS", ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			env.CORSOrigins = append(env.CORSOrigins, o)
		}
	}
	return env, nil
}

func positive(get func(string, string) string, key string, def int) (int, error) {
	raw := get(key, "")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, domain.ConfigurationError{Key: key, Msg: "must be a positive integer"}
	}
	return n, nil
}
