package catalog

import "math"

// galactic.go - exact J2000 equatorial to galactic coordinate rotation.
//
// Uses the IAU galactic frame constants for epoch J2000:
// north galactic pole at RA 192.85948, Dec 27.12825, and galactic
// longitude of the north celestial pole 122.93192 (degrees).

const (
	ngpRA  = 192.85948 * math.Pi / 180
	ngpDec = 27.12825 * math.Pi / 180
	lonNCP = 122.93192 * math.Pi / 180
)

// EquatorialToGalactic converts J2000 equatorial coordinates in decimal
// degrees to galactic longitude and latitude in radians. Longitude is
// wrapped to [-pi, pi) for sky-map plotting.
func EquatorialToGalactic(raDeg, decDeg float64) (lon, lat float64) {
	ra := raDeg * math.Pi / 180
	dec := decDeg * math.Pi / 180

	sinb := math.Sin(dec)*math.Sin(ngpDec) +
		math.Cos(dec)*math.Cos(ngpDec)*math.Cos(ra-ngpRA)
	lat = math.Asin(sinb)

	y := math.Cos(dec) * math.Sin(ra-ngpRA)
	x := math.Sin(dec)*math.Cos(ngpDec) -
		math.Cos(dec)*math.Sin(ngpDec)*math.Cos(ra-ngpRA)
	lon = lonNCP - math.Atan2(y, x)

	// wrap to [-pi, pi)
	lon = math.Mod(lon+math.Pi, 2*math.Pi)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	lon -= math.Pi

	return lon, lat
}

// GalacticDegrees is EquatorialToGalactic with the longitude unwrapped to
// the conventional [0, 360) degree range. Used for verification against
// published catalogue values.
func GalacticDegrees(raDeg, decDeg float64) (lonDeg, latDeg float64) {
	lon, lat := EquatorialToGalactic(raDeg, decDeg)
	lonDeg = lon * 180 / math.Pi
	if lonDeg < 0 {
		lonDeg += 360
	}
	return lonDeg, lat * 180 / math.Pi
}
