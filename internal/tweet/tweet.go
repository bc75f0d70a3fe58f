// Package tweet formats the fixed-layout status text for a selected
// pulsar. Length limits, authentication, and delivery belong to the
// posting collaborator, not here.
package tweet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KI7MT/pulsar-lab-apps/internal/catalog"
)

// unknown is the placeholder for absent or undefined values. Derived
// quantities arrive as explicit (value, ok) pairs, so a NaN can never
// leak into the text.
const unknown = "unknown"

// Compose renders the status block for one record. Field order is fixed:
// name, RA, Dec, period, pdot, DM, characteristic age, surface field,
// visibility.
func Compose(p *catalog.Pulsar) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Pulsar: %s\n", p.Name())
	fmt.Fprintf(&b, "RA: %s\n", orUnknown(p.RAJ))
	fmt.Fprintf(&b, "Dec: %s\n", orUnknown(catalog.FormatDec(p.DECJ)))

	if period, ok := p.Period(); ok {
		// three significant digits
		fmt.Fprintf(&b, "Period: %s s\n", strconv.FormatFloat(period, 'g', 3, 64))
	} else {
		fmt.Fprintf(&b, "Period: %s\n", unknown)
	}

	if pdot, ok := p.Pdot(); ok {
		fmt.Fprintf(&b, "Pdot: %.3e\n", pdot)
	} else {
		fmt.Fprintf(&b, "Pdot: %s\n", unknown)
	}

	if p.DM.Valid {
		fmt.Fprintf(&b, "DM: %.1f pc/cm^3\n", p.DM.Value)
	} else {
		fmt.Fprintf(&b, "DM: %s\n", unknown)
	}

	if age, ok := p.CharAgeYears(); ok {
		fmt.Fprintf(&b, "Characteristic Age: %.3e yr\n", age)
	} else {
		fmt.Fprintf(&b, "Characteristic Age: %s\n", unknown)
	}

	if field, ok := p.SurfaceField(); ok {
		fmt.Fprintf(&b, "Surface Magnetic Field: %.3e G\n", field)
	} else {
		fmt.Fprintf(&b, "Surface Magnetic Field: %s\n", unknown)
	}

	sites := p.VisibleFrom()
	if len(sites) == 0 {
		b.WriteString("Visible from none")
	} else {
		fmt.Fprintf(&b, "Visible from %s", strings.Join(sites, ", "))
	}

	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
