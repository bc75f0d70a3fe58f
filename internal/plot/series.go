// Package plot composes the data series behind the P-Pdot diagram and
// the galactic sky map. It produces structured point data only; the
// rendering collaborator owns axes, projection, and raster output.
package plot

import (
	"math"

	"github.com/KI7MT/pulsar-lab-apps/internal/catalog"
)

// Point is one plottable datum. X/Y units depend on the series: seconds
// and s/s for the P-Pdot diagram, radians for the sky map.
type Point struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Label     string  `json:"label,omitempty"`
	Color     string  `json:"color"`
	Highlight bool    `json:"highlight,omitempty"`
}

// Reference is a well-known pulsar drawn on every P-Pdot diagram for
// orientation.
type Reference struct {
	Name   string
	Period float64 // s
	Pdot   float64 // s/s
	Color  string
}

// WellKnown is the fixed comparison set.
var WellKnown = []Reference{
	{Name: "Vela", Period: 0.0893, Pdot: 1.250e-13, Color: "orange"},
	{Name: "Crab", Period: 0.0334, Pdot: 4.204e-13, Color: "green"},
	{Name: "Geminga", Period: 0.2371, Pdot: 1.097e-13, Color: "purple"},
}

const (
	populationColor = "lightblue"
	highlightColor  = "red"
)

// PPdotSeries builds the period / period-derivative scatter set: the
// background population, the well-known reference pulsars, and the
// selected record highlighted last. Both axes are log-scaled downstream,
// so any record with an undefined or non-positive period or pdot
// contributes no point rather than a zero.
func PPdotSeries(selected *catalog.Pulsar, population []catalog.Pulsar) []Point {
	points := make([]Point, 0, len(population)+len(WellKnown)+1)

	for i := range population {
		p := &population[i]
		if p.NameJ == selected.NameJ {
			continue
		}
		period, pdot, ok := logSafePPdot(p)
		if !ok {
			continue
		}
		points = append(points, Point{X: period, Y: pdot, Color: populationColor})
	}

	for _, ref := range WellKnown {
		points = append(points, Point{
			X:     ref.Period,
			Y:     ref.Pdot,
			Label: ref.Name,
			Color: ref.Color,
		})
	}

	if period, pdot, ok := logSafePPdot(selected); ok {
		points = append(points, Point{
			X:         period,
			Y:         pdot,
			Label:     selected.Name(),
			Color:     highlightColor,
			Highlight: true,
		})
	}

	return points
}

// SkySeries builds the galactic-coordinate scatter set. Records without
// a valid position contribute no point.
func SkySeries(selected *catalog.Pulsar, population []catalog.Pulsar) []Point {
	points := make([]Point, 0, len(population)+1)

	for i := range population {
		p := &population[i]
		if p.NameJ == selected.NameJ || !p.PosValid {
			continue
		}
		points = append(points, Point{X: p.GalLon, Y: p.GalLat, Color: populationColor})
	}

	if selected.PosValid {
		points = append(points, Point{
			X:         selected.GalLon,
			Y:         selected.GalLat,
			Label:     selected.Name(),
			Color:     highlightColor,
			Highlight: true,
		})
	}

	return points
}

// AgeLine is one constant-characteristic-age guide line for the P-Pdot
// diagram (Lorimer & Kramer, Handbook of Pulsar Astronomy, fig 1.13).
type AgeLine struct {
	Label string    `json:"label"`
	X     []float64 `json:"x"` // period, s
	Y     []float64 `json:"y"` // pdot, s/s
}

// ageLineSamples points per guide line across the period axis.
const ageLineSamples = 50

var ageLineLabels = []string{"100 kyr", "1 Myr", "10 Myr", "100 Myr", "1 Gyr", "10 Gyr"}

// AgeLines returns guide lines for ages 1e5 through 1e10 years, sampled
// log-uniformly over periods 1e-3 to 10 s. Pdot = P / (2 * age).
func AgeLines() []AgeLine {
	lines := make([]AgeLine, 0, len(ageLineLabels))
	for i, label := range ageLineLabels {
		ageSec := math.Pow(10, float64(i+5)) * catalog.SecondsPerYear
		line := AgeLine{
			Label: label,
			X:     make([]float64, ageLineSamples),
			Y:     make([]float64, ageLineSamples),
		}
		for j := 0; j < ageLineSamples; j++ {
			exp := -3 + 4*float64(j)/float64(ageLineSamples-1)
			p := math.Pow(10, exp)
			line.X[j] = p
			line.Y[j] = p / (2 * ageSec)
		}
		lines = append(lines, line)
	}
	return lines
}

func logSafePPdot(p *catalog.Pulsar) (period, pdot float64, ok bool) {
	period, ok = p.Period()
	if !ok || period <= 0 {
		return 0, 0, false
	}
	pdot, ok = p.Pdot()
	if !ok || pdot <= 0 {
		return 0, 0, false
	}
	return period, pdot, true
}
