package store

import (
	"time"
)

// DB is the history storage interface.
type DB interface {
	// PutRecord saves a record, overwriting any record with the same time.
	PutRecord(r *Record) error
	// GetRecords returns the records made since the given time in time
	// order. An empty kind matches every record.
	GetRecords(since time.Time, kind Kind) ([]*Record, error)
	// DeleteRecords deletes one or more saved records
	DeleteRecords(records []*Record) error
	// Close ends the database connection
	Close() error
}
