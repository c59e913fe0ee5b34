// Package repository provides data access layer implementations for the balance service.
package repository

import (
	"github.com/jmoiron/sqlx"
)

// DBTX is the query surface shared by *db.DB and *sqlx.Tx, so repositories
// can run either on the pool or inside a transaction.
type DBTX interface {
	sqlx.ExtContext
}
