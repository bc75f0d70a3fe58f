package plot

import (
	"math"
	"testing"

	"github.com/KI7MT/pulsar-lab-apps/internal/catalog"
)

func plottableRecord(nameJ string, f0, f1 float64, decDeg float64) catalog.Pulsar {
	p := catalog.Pulsar{
		NameJ:    nameJ,
		F0:       catalog.Some(f0),
		DecDeg:   decDeg,
		PosValid: true,
	}
	if f1 != 0 {
		p.F1 = catalog.Some(f1)
	}
	p.GalLon, p.GalLat = catalog.EquatorialToGalactic(10, decDeg)
	return p
}

func TestPPdotSeries(t *testing.T) {
	selected := plottableRecord("J0534+2200", 29.946923, -3.77535e-10, 22.0)
	population := []catalog.Pulsar{
		selected, // skipped: same record
		plottableRecord("J0006+1834", 0.381568, -2.9e-16, 18.6),
		plottableRecord("J1111-2222", 1.25, 0, 5.0), // F1 absent: no point
	}

	points := PPdotSeries(&selected, population)

	// one population point, three references, one highlight
	want := 1 + len(WellKnown) + 1
	if len(points) != want {
		t.Fatalf("len(points) = %d; want %d", len(points), want)
	}

	last := points[len(points)-1]
	if !last.Highlight || last.Label != "J0534+2200" || last.Color != "red" {
		t.Errorf("last point = %+v; want highlighted selection", last)
	}
	if period, _ := selected.Period(); math.Abs(last.X-period) > 1e-15 {
		t.Errorf("highlight X = %v; want period %v", last.X, period)
	}

	for _, pt := range points[:len(points)-1] {
		if pt.Highlight {
			t.Errorf("non-final point %+v is highlighted", pt)
		}
		if pt.X <= 0 || pt.Y <= 0 {
			t.Errorf("point %+v unsafe for log axes", pt)
		}
	}

	// the references carry their names
	refs := points[1 : 1+len(WellKnown)]
	for i, ref := range WellKnown {
		if refs[i].Label != ref.Name || refs[i].Color != ref.Color {
			t.Errorf("reference %d = %+v; want %s/%s", i, refs[i], ref.Name, ref.Color)
		}
	}
}

func TestPPdotSeriesSelectionWithoutPdot(t *testing.T) {
	// selected record has no F1: it gets no highlight point
	selected := plottableRecord("J1111-2222", 1.25, 0, 5.0)
	points := PPdotSeries(&selected, []catalog.Pulsar{selected})

	if len(points) != len(WellKnown) {
		t.Fatalf("len(points) = %d; want references only", len(points))
	}
	for _, pt := range points {
		if pt.Highlight {
			t.Errorf("unexpected highlight point %+v", pt)
		}
	}
}

func TestSkySeries(t *testing.T) {
	selected := plottableRecord("J0534+2200", 29.946923, -3.77535e-10, 22.0)
	noPos := catalog.Pulsar{NameJ: "J9999-9999", F0: catalog.Some(2.5)}
	population := []catalog.Pulsar{
		selected,
		plottableRecord("J0006+1834", 0.381568, -2.9e-16, 18.6),
		noPos,
	}

	points := SkySeries(&selected, population)
	if len(points) != 2 {
		t.Fatalf("len(points) = %d; want 2", len(points))
	}

	last := points[len(points)-1]
	if !last.Highlight || last.Label != "J0534+2200" {
		t.Errorf("last point = %+v; want highlighted selection", last)
	}
	if last.X != selected.GalLon || last.Y != selected.GalLat {
		t.Errorf("highlight at (%v, %v); want (%v, %v)",
			last.X, last.Y, selected.GalLon, selected.GalLat)
	}
}

func TestAgeLines(t *testing.T) {
	lines := AgeLines()
	if len(lines) != 6 {
		t.Fatalf("len(lines) = %d; want 6", len(lines))
	}
	if lines[0].Label != "100 kyr" || lines[5].Label != "10 Gyr" {
		t.Errorf("labels = %q .. %q", lines[0].Label, lines[5].Label)
	}

	for _, line := range lines {
		if len(line.X) != ageLineSamples || len(line.Y) != ageLineSamples {
			t.Fatalf("%s: sample count %d/%d", line.Label, len(line.X), len(line.Y))
		}
		if math.Abs(line.X[0]-1e-3) > 1e-12 {
			t.Errorf("%s: X[0] = %v; want 1e-3", line.Label, line.X[0])
		}
		if math.Abs(line.X[len(line.X)-1]-10) > 1e-9 {
			t.Errorf("%s: X[last] = %v; want 10", line.Label, line.X[len(line.X)-1])
		}
	}

	// pdot = P / (2 * age): the 1 Myr line at P = 1 s
	myr := lines[1]
	ageSec := 1e6 * catalog.SecondsPerYear
	for i, p := range myr.X {
		want := p / (2 * ageSec)
		if math.Abs(myr.Y[i]-want)/want > 1e-12 {
			t.Fatalf("1 Myr line Y[%d] = %v; want %v", i, myr.Y[i], want)
		}
	}
}
