package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testRecords() []Pulsar {
	crab := Pulsar{
		NameB: "B0531+21", NameJ: "J0534+2200",
		RAJ: "05:34:31.97", DECJ: "+22:00:52.06",
		F0: Some(29.946923), F1: Some(-3.77535e-10), DM: Some(56.77),
	}
	crab.RADeg, _ = ParseRA(crab.RAJ)
	crab.DecDeg, _ = ParseDec(crab.DECJ)
	crab.GalLon, crab.GalLat = EquatorialToGalactic(crab.RADeg, crab.DecDeg)
	crab.PosValid = true

	faint := Pulsar{
		NameJ: "J0006+1834",
		RAJ:   "00:06:04.8", DECJ: "+18:34:59",
		F0: Some(0.381568),
	}
	faint.RADeg, _ = ParseRA(faint.RAJ)
	faint.DecDeg, _ = ParseDec(faint.DECJ)
	faint.GalLon, faint.GalLat = EquatorialToGalactic(faint.RADeg, faint.DecDeg)
	faint.PosValid = true

	// no position, kept but never plottable
	blind := Pulsar{NameJ: "J9999-9999", F0: Some(2.5), DM: Some(11.4)}

	return []Pulsar{crab, faint, blind}
}

func TestStoreLookup(t *testing.T) {
	s := NewStore(testRecords())

	if s.Count() != 3 {
		t.Fatalf("Count = %d; want 3", s.Count())
	}

	byJ, err := s.Get("J0534+2200")
	if err != nil {
		t.Fatalf("Get by J name failed: %v", err)
	}
	byB, err := s.Get("B0531+21")
	if err != nil {
		t.Fatalf("Get by B name failed: %v", err)
	}
	if byJ.NameJ != byB.NameJ {
		t.Error("B and J lookups should hit the same record")
	}

	_, err = s.Get("J0000+0000")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(miss) err = %v; want ErrNotFound", err)
	}
}

func TestStorePlottable(t *testing.T) {
	s := NewStore(testRecords())

	pool := s.Plottable()
	if len(pool) != 2 {
		t.Fatalf("Plottable() size = %d; want 2", len(pool))
	}
	if s.PlottableCount() != len(pool) {
		t.Errorf("PlottableCount = %d; want %d", s.PlottableCount(), len(pool))
	}
	for _, p := range pool {
		if !p.Plottable() {
			t.Errorf("%s in plottable pool but not plottable", p.NameJ)
		}
	}
}

func TestStoreFilterOrder(t *testing.T) {
	s := NewStore(testRecords())

	all := s.Filter(func(*Pulsar) bool { return true })
	if !reflect.DeepEqual(all, s.All()) {
		t.Error("Filter(true) should preserve source order")
	}

	withDM := s.Filter(func(p *Pulsar) bool { return p.DM.Valid })
	if len(withDM) != 2 {
		t.Errorf("Filter(DM valid) size = %d; want 2", len(withDM))
	}
	if withDM[0].NameJ != "J0534+2200" || withDM[1].NameJ != "J9999-9999" {
		t.Errorf("Filter order wrong: %s, %s", withDM[0].NameJ, withDM[1].NameJ)
	}
}

func TestStoreCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pulsars.csv")

	orig := NewStore(testRecords())
	if err := orig.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadCache(path)
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}

	if !reflect.DeepEqual(loaded.All(), orig.All()) {
		t.Error("cache round trip is not lossless")
	}
	if loaded.PlottableCount() != orig.PlottableCount() {
		t.Errorf("PlottableCount after reload = %d; want %d",
			loaded.PlottableCount(), orig.PlottableCount())
	}
}

func TestLoadCacheHeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(path, []byte("A,B,C\n1,2,3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadCache(path)
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %v; want *FormatError", err)
	}
}

func TestOpenLifecycle(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "pulsars.csv")
	sourcePath := filepath.Join(dir, "psrcat.db")
	if err := os.WriteFile(sourcePath, []byte(sampleTable), 0644); err != nil {
		t.Fatal(err)
	}

	// first open parses the source and writes the cache
	s, err := Open(cachePath, sourcePath, false)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if s.Count() != 2 {
		t.Fatalf("Count = %d; want 2", s.Count())
	}
	if s.DroppedRecords() != 1 {
		t.Errorf("DroppedRecords = %d; want 1", s.DroppedRecords())
	}
	if _, err := os.Stat(cachePath); err != nil {
		t.Fatalf("cache not written: %v", err)
	}

	// second open reads the cache, even with the source gone
	if err := os.Remove(sourcePath); err != nil {
		t.Fatal(err)
	}
	cached, err := Open(cachePath, sourcePath, false)
	if err != nil {
		t.Fatalf("cached Open failed: %v", err)
	}
	if !reflect.DeepEqual(cached.All(), s.All()) {
		t.Error("cached records differ from source parse")
	}

	// force without a source fails
	if _, err := Open(cachePath, sourcePath, true); err == nil {
		t.Error("forced Open without source should fail")
	}
}
