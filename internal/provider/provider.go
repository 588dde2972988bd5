// Package provider holds the static capability table of supported storage
// backends. The active Capability is resolved once at startup and passed to
// the components that depend on it.
package provider

import (
	"sort"
	"strings"

	"idn-area/internal/domain"
)

// Name identifies a storage backend.
type Name string

const (
	MongoDB    Name = "mongodb"
	PostgreSQL Name = "postgresql"
	MySQL      Name = "mysql"
	SQLite     Name = "sqlite"
)

// Capability describes what a backend can do.
type Capability struct {
	Provider Name
	// Driver is the database/sql driver name; empty for document stores.
	Driver string
	// CaseInsensitiveContains is true when name filters can ignore letter case.
	CaseInsensitiveContains bool
	// DocumentStore is true when records carry the store's internal id field.
	DocumentStore bool
}

// SQL reports whether the backend is reached through database/sql.
func (c Capability) SQL() bool { return c.Driver != "" }

var capabilities = map[Name]Capability{
	MongoDB: {
		Provider:                MongoDB,
		CaseInsensitiveContains: true,
		DocumentStore:           true,
	},
	PostgreSQL: {
		Provider:                PostgreSQL,
		Driver:                  "postgres",
		CaseInsensitiveContains: true,
	},
	MySQL: {
		Provider: MySQL,
		Driver:   "mysql",
	},
	SQLite: {
		Provider: SQLite,
		Driver:   "sqlite",
	},
}

// Lookup returns the capability of the named backend.
func Lookup(name string) (Capability, error) {
	n := Name(strings.ToLower(strings.TrimSpace(name)))
	if n == "" {
		return Capability{}, domain.ConfigurationError{Key: "DB_PROVIDER", Msg: "is required"}
	}
	c, ok := capabilities[n]
	if !ok {
		return Capability{}, domain.ConfigurationError{
			Key: "DB_PROVIDER",
			Msg: "unsupported provider " + string(n) + ", expected one of " + strings.Join(Names(), ", "),
		}
	}
	return c, nil
}

// MustLookup is Lookup for compile-time known names.
func MustLookup(name Name) Capability {
	c, err := Lookup(string(name))
	if err != nil {
		panic(err)
	}
	return c
}

// Names lists the supported backends in a stable order.
func Names() []string {
	out := make([]string, 0, len(capabilities))
	for n := range capabilities {
		out = append(out, string(n))
	}
	sort.Strings(out)
	return out
}
