package catalog

import (
	"math"
	"testing"
)

// Published l/b values from the ATNF catalogue for comparison; the exact
// rotation agrees to well under 0.01 degree.
func TestGalacticDegrees(t *testing.T) {
	tests := []struct {
		name         string
		raDeg        float64
		decDeg       float64
		wantL, wantB float64
	}{
		{"Crab", 83.633, 22.0145, 184.5574, -5.7844},
		{"Vela", 128.8361, -45.1764, 263.5520, -2.7872},
		{"J0006+1834", 1.52, 18.5831, 108.1721, -42.9849},
	}

	for _, tt := range tests {
		l, b := GalacticDegrees(tt.raDeg, tt.decDeg)
		if math.Abs(l-tt.wantL) > 0.01 || math.Abs(b-tt.wantB) > 0.01 {
			t.Errorf("%s: GalacticDegrees = (%f, %f); want (%f, %f)",
				tt.name, l, b, tt.wantL, tt.wantB)
		}
	}
}

func TestEquatorialToGalacticRange(t *testing.T) {
	for ra := 0.0; ra < 360; ra += 17 {
		for dec := -88.0; dec <= 88; dec += 11 {
			lon, lat := EquatorialToGalactic(ra, dec)
			if lon < -math.Pi || lon >= math.Pi {
				t.Errorf("lon %v out of [-pi, pi) for ra=%v dec=%v", lon, ra, dec)
			}
			if lat < -math.Pi/2 || lat > math.Pi/2 {
				t.Errorf("lat %v out of range for ra=%v dec=%v", lat, ra, dec)
			}
		}
	}
}

func TestGalacticPole(t *testing.T) {
	// The north galactic pole itself maps to b = +90.
	_, lat := EquatorialToGalactic(192.85948, 27.12825)
	if math.Abs(lat-math.Pi/2) > 1e-6 {
		t.Errorf("NGP latitude = %v; want pi/2", lat)
	}
}
