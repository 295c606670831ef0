// Package forward implements the id → record store from which full results
// are materialized after the radix index produces a set of matching ids.
package forward

import (
	"unsafe"

	"github.com/atlasmesh/geocoder/internal/address"
)

// Store maps record ids to full address records. It is written only during
// shard initialization; after that any number of concurrent readers may use
// it without locking.
type Store struct {
	records map[uint64]address.Record
}

// New returns an empty store.
func New() *Store {
	return &Store{records: make(map[uint64]address.Record)}
}

// Insert stores rec under id, overwriting any previous entry.
func (s *Store) Insert(id uint64, rec address.Record) {
	s.records[id] = rec
}

// Get returns the record for id, if present.
func (s *Store) Get(id uint64) (address.Record, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

// Contains reports whether id has an entry.
func (s *Store) Contains(id uint64) bool {
	_, ok := s.records[id]
	return ok
}

// Size returns the number of stored records.
func (s *Store) Size() int {
	return len(s.records)
}

// StorageSize returns an approximate byte count of the stored records:
// per-entry key and struct size plus string contents.
func (s *Store) StorageSize() uintptr {
	var size uintptr
	for _, rec := range s.records {
		size += unsafe.Sizeof(uint64(0)) + unsafe.Sizeof(rec)
		size += uintptr(len(rec.Number) + len(rec.Street) + len(rec.Unit) +
			len(rec.City) + len(rec.Postcode) +
			len(rec.OriginalStreet) + len(rec.OriginalUnit) + len(rec.OriginalCity))
	}
	return size
}
