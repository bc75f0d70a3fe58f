// Package catalog provides ATNF pulsar catalogue processing utilities.
// This package contains the psrcat parser, the normalized record store,
// and the derived-quantity functions used by the plotting and status
// message tools.
package catalog

// SchemaVersion is the current normalized catalog schema version.
const SchemaVersion = 1

// Float is an optional catalog value. Valid reports whether the source
// carried a usable number; Value is meaningful only when Valid is true.
// Absent fields stay absent through the whole pipeline - they are never
// collapsed to zero.
type Float struct {
	Value float64
	Valid bool
}

// Some returns a present Float.
func Some(v float64) Float {
	return Float{Value: v, Valid: true}
}

// None returns an absent Float.
func None() Float {
	return Float{}
}

// Pulsar is one normalized record from the ATNF Pulsar Catalogue.
// Raw fields are immutable after load; everything derived (period, pdot,
// characteristic age, surface field, visibility) is a pure function of
// the raw fields and is computed on demand.
type Pulsar struct {
	NameB string // legacy B designation, may be empty
	NameJ string // canonical J designation, unique within a store

	RAJ  string // right ascension as catalogued, "hh:mm:ss.s"
	DECJ string // declination as catalogued, "+dd:mm:ss"

	// Normalized position. Meaningful only when PosValid is true.
	RADeg  float64
	DecDeg float64
	GalLon float64 // galactic longitude, radians, wrapped to [-pi, pi]
	GalLat float64 // galactic latitude, radians

	PosValid bool

	F0 Float // barycentric rotation frequency, Hz
	F1 Float // frequency derivative, Hz/s, normally negative
	DM Float // dispersion measure, pc/cm^3
}

// Name returns the display designation: the B name when the catalogue
// carries one, the J name otherwise.
func (p *Pulsar) Name() string {
	if p.NameB != "" {
		return p.NameB
	}
	return p.NameJ
}

// Period returns the rotational period in seconds.
func (p *Pulsar) Period() (float64, bool) {
	return Period(p.F0)
}

// Pdot returns the period derivative (dimensionless, s/s).
func (p *Pulsar) Pdot() (float64, bool) {
	return Pdot(p.F0, p.F1)
}

// CharAgeYears returns the characteristic age in Julian years.
func (p *Pulsar) CharAgeYears() (float64, bool) {
	return CharAgeYears(p.F0, p.F1)
}

// SurfaceField returns the surface magnetic field strength in Gauss.
func (p *Pulsar) SurfaceField() (float64, bool) {
	return SurfaceField(p.F0, p.F1)
}

// VisibleFrom returns the telescope sites whose declination band contains
// this pulsar. Empty when the position is absent.
func (p *Pulsar) VisibleFrom() []string {
	if !p.PosValid {
		return nil
	}
	return VisibleFrom(p.DecDeg)
}

// Plottable reports whether the record carries enough valid data to take
// part in selection and plotting: a positive rotation frequency and a
// parsed position.
func (p *Pulsar) Plottable() bool {
	return p.F0.Valid && p.F0.Value > 0 && p.PosValid
}
