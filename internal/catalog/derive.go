package catalog

import "math"

// derive.go - pure derived-quantity functions over raw catalogue fields.
//
// Every function is total: missing or degenerate inputs yield an explicit
// not-ok result instead of NaN, Inf, or a runtime fault. Callers render
// not-ok as "unknown" and keep such values off log-scaled plot axes.

const (
	// DipoleFieldConst is the vacuum dipole braking constant K in
	// B = K * sqrt(P * Pdot), in G s^(-1/2).
	DipoleFieldConst = 3.2e19

	// SecondsPerYear is one Julian year.
	SecondsPerYear = 31557600.0
)

// Period returns the rotational period 1/F0 in seconds.
// Undefined when F0 is absent or non-positive.
func Period(f0 Float) (float64, bool) {
	if !f0.Valid || f0.Value <= 0 {
		return 0, false
	}
	return 1 / f0.Value, true
}

// Pdot returns the period derivative -F1/F0^2. Positive for the normal
// spin-down case (F1 < 0). Undefined when either input is absent or F0
// is non-positive.
func Pdot(f0, f1 Float) (float64, bool) {
	if !f0.Valid || !f1.Valid || f0.Value <= 0 {
		return 0, false
	}
	return -f1.Value / (f0.Value * f0.Value), true
}

// CharAge returns the characteristic spin-down age -F0/(2*F1) in seconds.
// Undefined when F1 is absent or zero, or F0 is absent or non-positive.
func CharAge(f0, f1 Float) (float64, bool) {
	if !f0.Valid || !f1.Valid || f0.Value <= 0 || f1.Value == 0 {
		return 0, false
	}
	return -f0.Value / (2 * f1.Value), true
}

// CharAgeYears returns the characteristic age in Julian years.
func CharAgeYears(f0, f1 Float) (float64, bool) {
	age, ok := CharAge(f0, f1)
	if !ok {
		return 0, false
	}
	return age / SecondsPerYear, true
}

// SurfaceField returns the surface magnetic field K*sqrt(-F1/F0^3) in
// Gauss. Undefined under the same guards as CharAge, and additionally
// when -F1/F0^3 is negative (spinning-up or glitching objects), which
// would put the square root out of domain.
func SurfaceField(f0, f1 Float) (float64, bool) {
	if !f0.Valid || !f1.Valid || f0.Value <= 0 || f1.Value == 0 {
		return 0, false
	}
	arg := -f1.Value / (f0.Value * f0.Value * f0.Value)
	if arg < 0 {
		return 0, false
	}
	return DipoleFieldConst * math.Sqrt(arg), true
}
