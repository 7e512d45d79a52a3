// Package storage defines the persistence contracts of the portal: abstracts,
// profiles, the activity trail, entity maintenance and job insertion, plus
// transaction management. pkg/storage/postgres implements them.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go portal/pkg/storage Storage,AllStorage
package storage

import "context"

// AllStorage is the full set of capabilities available on both plain and
// transactional handles.
type AllStorage interface {
	AbstractStorage
	ProfileStorage
	ActivityStorage
	MaintenanceStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is a non-transactional handle that can open transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
