package repositories

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"idn-area/internal/provider"
)

func init() {
	// modernc.org/sqlite registers as "sqlite", which sqlx does not know.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// dialect renders the backend specific parts of a query. Queries are written
// with ? placeholders and rebound by sqlx.
type dialect struct {
	// contains returns a substring predicate on column and its argument.
	// fold selects case-insensitive matching.
	contains func(column, value string, fold bool) (string, any)
}

// Name filters are validated to contain no % or _ so LIKE patterns need no escaping.
var dialects = map[provider.Name]dialect{
	provider.PostgreSQL: {
		contains: func(column, value string, fold bool) (string, any) {
			if fold {
				return column + " ILIKE ?", "%" + value + "%"
			}
			return column + " LIKE ?", "%" + value + "%"
		},
	},
	provider.MySQL: {
		contains: func(column, value string, fold bool) (string, any) {
			if fold {
				return "LOWER(" + column + ") LIKE LOWER(?)", "%" + value + "%"
			}
			return column + " COLLATE utf8mb4_bin LIKE ?", "%" + value + "%"
		},
	},
	provider.SQLite: {
		contains: func(column, value string, fold bool) (string, any) {
			if fold {
				return column + " LIKE ?", "%" + value + "%"
			}
			return "instr(" + column + ", ?) > 0", value
		},
	},
}

func dialectFor(c provider.Capability) (dialect, error) {
	d, ok := dialects[c.Provider]
	if !ok {
		return dialect{}, fmt.Errorf("no sql dialect for provider %q", c.Provider)
	}
	return d, nil
}
