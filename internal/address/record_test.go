package address

import "testing"

func TestValidateCoordinates(t *testing.T) {
	cases := []struct {
		name     string
		lon, lat float64
		want     bool
	}{
		{"origin", 0, 0, true},
		{"seattle", -122.33, 47.6, true},
		{"lon max", 180, 0, true},
		{"lon over", 180.0001, 0, false},
		{"lat min", 0, -90, true},
		{"lat under", 0, -90.5, false},
		{"nan lon", nan(), 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateCoordinates(tc.lon, tc.lat); got != tc.want {
				t.Errorf("ValidateCoordinates(%v, %v) = %v, want %v", tc.lon, tc.lat, got, tc.want)
			}
		})
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestRecordEqual(t *testing.T) {
	base := Record{
		Longitude: -122.608996,
		Latitude:  47.166377,
		Number:    "611",
		Street:    "3RD ST",
		City:      "STEILACOOM",
		Postcode:  "98388",
		Hash:      0x46a6ea62641c0d1c,
	}

	t.Run("identical", func(t *testing.T) {
		if !base.Equal(base) {
			t.Error("record not equal to itself")
		}
	})

	t.Run("within epsilon", func(t *testing.T) {
		other := base
		other.Longitude += 1e-10
		if !base.Equal(other) {
			t.Error("coordinates within epsilon should compare equal")
		}
	})

	t.Run("outside epsilon", func(t *testing.T) {
		other := base
		other.Latitude += 1e-6
		if base.Equal(other) {
			t.Error("coordinates outside epsilon should differ")
		}
	})

	t.Run("string field differs", func(t *testing.T) {
		other := base
		other.City = "TACOMA"
		if base.Equal(other) {
			t.Error("records with different cities should differ")
		}
	})
}

func TestHashString(t *testing.T) {
	r := Record{Hash: 0x46a6ea62641c0d1c}
	if got := r.HashString(); got != "46a6ea62641c0d1c" {
		t.Errorf("HashString() = %q", got)
	}
	small := Record{Hash: 0xff}
	if got := small.HashString(); got != "00000000000000ff" {
		t.Errorf("HashString() = %q, want zero-padded", got)
	}
}
