// Package store persists registered scripts in a local bbolt database.
// Records are stored as JSON in a single bucket keyed by name. Updates are
// full replacements: the caller supplies a complete record and only the ID
// and CreatedAt of the previous version survive.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/davidhurst/scriptbox/internal/script"
)

const scriptsBucket = "scripts"

// ErrNotFound is returned when no script is registered under a name.
var ErrNotFound = errors.New("script not found")

// Store provides persistent storage for script records.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the script database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("open script database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(scriptsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Put saves a script record under its name, creating or fully replacing it.
// New records get an ID and CreatedAt; replacements keep both and only
// refresh UpdatedAt.
func (s *Store) Put(rec *script.Script) error {
	if rec.Name == "" {
		return errors.New("script name is required")
	}
	if rec.Original == "" {
		return errors.New("script text is required")
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(scriptsBucket))

		now := time.Now().UTC()
		if existing := b.Get([]byte(rec.Name)); existing != nil {
			var prev script.Script
			if err := json.Unmarshal(existing, &prev); err == nil {
				rec.ID = prev.ID
				rec.Metadata.CreatedAt = prev.Metadata.CreatedAt
			}
		}
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if rec.Metadata.CreatedAt.IsZero() {
			rec.Metadata.CreatedAt = now
		}
		rec.Metadata.UpdatedAt = now

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put([]byte(rec.Name), data)
	})
}

// Get retrieves a script by name, falling back to alias lookup.
func (s *Store) Get(name string) (*script.Script, error) {
	var rec *script.Script

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(scriptsBucket))

		if data := b.Get([]byte(name)); data != nil {
			rec = &script.Script{}
			return json.Unmarshal(data, rec)
		}

		// Alias lookup requires a scan; aliases are a convenience, not an
		// index.
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var candidate script.Script
			if err := json.Unmarshal(v, &candidate); err != nil {
				continue
			}
			if candidate.Metadata.Alias == name {
				rec = &candidate
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return rec, nil
}

// List returns all registered scripts sorted by name.
func (s *Store) List() ([]*script.Script, error) {
	var recs []*script.Script

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(scriptsBucket))
		return b.ForEach(func(k, v []byte) error {
			var rec script.Script
			if err := json.Unmarshal(v, &rec); err != nil {
				return nil // skip corrupt entries rather than failing the list
			}
			recs = append(recs, &rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(recs, func(i, j int) bool { return recs[i].Name < recs[j].Name })
	return recs, nil
}

// Remove deletes a script by name.
func (s *Store) Remove(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(scriptsBucket))
		if b.Get([]byte(name)) == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return b.Delete([]byte(name))
	})
}

// Clear removes every registered script.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(scriptsBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(scriptsBucket))
		return err
	})
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
