// Package sqlstore persists site content in SQLite or PostgreSQL.
//
// One DB handle serves every resource kind; Store binds a kind's table and
// columns to the shared handle. SQLite is the default on-disk store and
// PostgreSQL is available for hosted deployments.
package sqlstore
