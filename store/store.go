// Package store keeps a history of exported lessons and finished playthroughs
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/apperr"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/timeutil"
)

const historyBucket = "history"

var errLessonsRunning = &apperr.Error{
	Message: "is lessons already running? Only one instance can record history at a time",
}

// Kind says what a record is about.
type Kind string

const (
	KindExport   Kind = "export"
	KindPlayback Kind = "playback"
)

// Record is one entry in the history.
type Record struct {
	Time      time.Time `json:"time"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	VideoID   string    `json:"video_id"`
	Path      string    `json:"path,omitempty"`
	Questions int       `json:"questions"`
	Answered  int       `json:"answered"`
	Trimmed   bool      `json:"trimmed"`
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) PutRecord(r *Record) error {
	value, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(historyBucket)).Put(timeutil.ToKey(r.Time), value)
	})
}

func (c *Client) GetRecords(since time.Time, kind Kind) ([]*Record, error) {
	var records []*Record

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(historyBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var r Record

			err := json.Unmarshal(v, &r)
			if err != nil {
				return err
			}

			if r.Time.Before(since) || (kind != "" && r.Kind != kind) {
				continue
			}

			records = append(records, &r)
		}

		return nil
	})

	// RFC3339 keys with trimmed fractions do not sort by time on their own
	slices.SortStableFunc(records, func(a, b *Record) int {
		return a.Time.Compare(b.Time)
	})

	return records, err
}

func (c *Client) DeleteRecords(records []*Record) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(historyBucket))

		for _, r := range records {
			err := b.Delete(timeutil.ToKey(r.Time))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Count returns the number of records in the history.
func (c *Client) Count() (int, error) {
	var n int

	err := c.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(historyBucket)).Stats().KeyN
		return nil
	})

	return n, err
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errLessonsRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(historyBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
