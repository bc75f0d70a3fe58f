package catalog

import (
	"reflect"
	"testing"
)

func TestVisibleFrom(t *testing.T) {
	tests := []struct {
		name   string
		decDeg float64
		want   []string
	}{
		{"equatorial", 0, []string{"Arecibo", "CHIME", "FAST", "GBT", "VLA"}},
		{"northern", 54.58, []string{"CHIME", "FAST", "GBT", "VLA"}},
		{"far north", 80, []string{"CHIME", "GBT", "VLA"}},
		{"southern", -30, []string{"GBT", "VLA"}},
		{"deep south", -60, nil},
		{"arecibo south edge", -1, []string{"Arecibo", "CHIME", "FAST", "GBT", "VLA"}},
		{"arecibo north edge", 37.5, []string{"Arecibo", "CHIME", "FAST", "GBT", "VLA"}},
		{"just past arecibo", 37.51, []string{"CHIME", "FAST", "GBT", "VLA"}},
		{"gbt south edge", -46, []string{"GBT"}},
		{"just past gbt", -46.01, nil},
		{"fast north edge", 65.8, []string{"CHIME", "FAST", "GBT", "VLA"}},
	}

	for _, tt := range tests {
		got := VisibleFrom(tt.decDeg)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: VisibleFrom(%v) = %v; want %v", tt.name, tt.decDeg, got, tt.want)
		}
	}
}

func TestPulsarVisibleFrom(t *testing.T) {
	p := Pulsar{NameJ: "J0000+0000", DecDeg: 20, PosValid: true}
	if got := p.VisibleFrom(); len(got) != 5 {
		t.Errorf("VisibleFrom = %v; want all five sites", got)
	}

	noPos := Pulsar{NameJ: "J0000+0000"}
	if got := noPos.VisibleFrom(); got != nil {
		t.Errorf("VisibleFrom without position = %v; want nil", got)
	}
}
