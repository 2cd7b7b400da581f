// Package persistence implements the repository contracts on top of GORM,
// supporting SQLite and PostgreSQL backends.
package persistence
