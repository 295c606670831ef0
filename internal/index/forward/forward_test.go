package forward

import (
	"testing"

	"github.com/atlasmesh/geocoder/internal/address"
)

func TestStore(t *testing.T) {
	s := New()

	rec := address.Record{
		Longitude: -122.3,
		Latitude:  47.6,
		Number:    "123",
		Street:    "MAIN STREET",
		City:      "SEATTLE",
		Postcode:  "98101",
		Hash:      42,
	}

	t.Run("empty store", func(t *testing.T) {
		if s.Size() != 0 {
			t.Errorf("Size() = %d, want 0", s.Size())
		}
		if s.Contains(42) {
			t.Error("Contains(42) on empty store")
		}
		if _, ok := s.Get(42); ok {
			t.Error("Get(42) on empty store returned ok")
		}
	})

	t.Run("insert and get", func(t *testing.T) {
		s.Insert(42, rec)
		got, ok := s.Get(42)
		if !ok {
			t.Fatal("Get(42) not found after Insert")
		}
		if !got.Equal(rec) {
			t.Errorf("Get(42) = %+v, want %+v", got, rec)
		}
		if !s.Contains(42) || s.Size() != 1 {
			t.Errorf("Contains/Size inconsistent after insert")
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		updated := rec
		updated.City = "TACOMA"
		s.Insert(42, updated)
		got, _ := s.Get(42)
		if got.City != "TACOMA" {
			t.Errorf("Get after overwrite: city = %q", got.City)
		}
		if s.Size() != 1 {
			t.Errorf("Size() = %d after overwrite, want 1", s.Size())
		}
	})

	t.Run("storage size grows", func(t *testing.T) {
		before := s.StorageSize()
		s.Insert(43, rec)
		if s.StorageSize() <= before {
			t.Error("StorageSize did not grow")
		}
	})
}
