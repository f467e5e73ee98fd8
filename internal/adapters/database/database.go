// Package database holds the Postgres-backed repository adapters.
package database

import (
	// Registers the postgres dialect used by every adapter's goqu builder.
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)
