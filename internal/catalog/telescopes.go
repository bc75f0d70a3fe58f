package catalog

// telescopes.go - declination visibility bands for major pulsar
// observatories. A pulsar is observable from a site when its declination
// falls inside the site's band; band edges are inclusive.

// Telescope is one observatory with its observable declination band in
// decimal degrees.
type Telescope struct {
	Name   string
	DecMin float64
	DecMax float64
}

// Telescopes is the fixed site table. Bands are the pointing limits of
// each instrument (Arecibo -1:00:00 to +37:30:00, CHIME -15 to +90,
// FAST -14:12:00 to +65:48:00, GBT -46 to +90, VLA -44 to +90).
var Telescopes = []Telescope{
	{Name: "Arecibo", DecMin: -1, DecMax: 37.5},
	{Name: "CHIME", DecMin: -15, DecMax: 90},
	{Name: "FAST", DecMin: -14.2, DecMax: 65.8},
	{Name: "GBT", DecMin: -46, DecMax: 90},
	{Name: "VLA", DecMin: -44, DecMax: 90},
}

// CanSee reports whether the site can observe the given declination.
func (t Telescope) CanSee(decDeg float64) bool {
	return decDeg >= t.DecMin && decDeg <= t.DecMax
}

// VisibleFrom returns the names of all sites able to observe the given
// declination, in table order.
func VisibleFrom(decDeg float64) []string {
	var names []string
	for _, t := range Telescopes {
		if t.CanSee(decDeg) {
			names = append(names, t.Name)
		}
	}
	return names
}
