package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// angle.go - sexagesimal angle parsing for catalogued RA/Dec strings.
//
// The ATNF catalogue writes positions as colon-separated sexagesimal
// strings ("hh:mm:ss.s" / "+dd:mm:ss"). Truncated strings are legal:
// missing components are zero-filled from the left, so "+18:34" means
// +18:34:00. The original catalogued strings are kept on the record for
// display; these functions produce the normalized decimal degrees.

// ParseRA converts an "hh:mm:ss.s" right ascension to decimal degrees.
func ParseRA(s string) (float64, error) {
	hours, err := parseSexagesimal(s)
	if err != nil {
		return 0, fmt.Errorf("invalid RA %q: %w", s, err)
	}
	if hours < 0 || hours >= 24 {
		return 0, fmt.Errorf("invalid RA %q: hours out of range", s)
	}
	return hours * 15, nil
}

// ParseDec converts a "+dd:mm:ss" declination to decimal degrees.
// The leading sign applies to the whole angle.
func ParseDec(s string) (float64, error) {
	deg, err := parseSexagesimal(s)
	if err != nil {
		return 0, fmt.Errorf("invalid Dec %q: %w", s, err)
	}
	if deg < -90 || deg > 90 {
		return 0, fmt.Errorf("invalid Dec %q: degrees out of range", s)
	}
	return deg, nil
}

// FormatDec returns the catalogued declination string with an explicit
// leading sign for display.
func FormatDec(decj string) string {
	if decj == "" {
		return decj
	}
	if decj[0] != '+' && decj[0] != '-' {
		return "+" + decj
	}
	return decj
}

// parseSexagesimal parses up to three colon-separated components into a
// decimal value in units of the first component. One or two components
// are accepted; the rest default to zero.
func parseSexagesimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty angle")
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	fields := strings.Split(s, ":")
	if len(fields) > 3 {
		return 0, fmt.Errorf("too many components")
	}

	parts := [3]float64{}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, fmt.Errorf("negative component %q", f)
		}
		parts[i] = v
	}

	v := parts[0] + parts[1]/60 + parts[2]/3600
	if neg {
		v = -v
	}
	return v, nil
}
