package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// store.go - the normalized record store and its flat CSV cache.
//
// A Store is built once per invocation and read-only afterwards. The
// on-disk cache mirrors the normalized schema one row per record, with
// empty cells as the absent marker, and is replaced wholesale via a
// temp file + rename so a concurrent reader never sees a half-written
// table.

// ErrNotFound is returned by Get for a designation that matches no record.
var ErrNotFound = errors.New("pulsar not found")

// cacheHeader names every normalized field, in column order.
var cacheHeader = []string{
	"NAMEB", "NAMEJ", "RAJ", "DECJ",
	"RA_DEG", "DEC_DEG", "GAL_LON", "GAL_LAT",
	"F0", "F1", "DM",
}

// Store holds the normalized record collection with lookup and
// filtering support. Immutable after construction.
type Store struct {
	records   []Pulsar
	byName    map[string]int
	plottable []int
	dropped   int
}

// NewStore builds a store over records in source order. Both B and J
// designations are indexed; on a duplicate the first row wins and a
// warning is logged.
func NewStore(records []Pulsar) *Store {
	s := &Store{
		records: records,
		byName:  make(map[string]int, 2*len(records)),
	}
	for i, p := range records {
		for _, name := range []string{p.NameJ, p.NameB} {
			if name == "" {
				continue
			}
			if prev, dup := s.byName[name]; dup {
				log.Printf("Duplicate designation %s (rows %d and %d), keeping first", name, prev, i)
				continue
			}
			s.byName[name] = i
		}
		if p.Plottable() {
			s.plottable = append(s.plottable, i)
		}
	}
	return s
}

// Get looks up a record by either designation, case-sensitively.
func (s *Store) Get(name string) (Pulsar, error) {
	i, ok := s.byName[name]
	if !ok {
		return Pulsar{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return s.records[i], nil
}

// All returns every record in source order. The slice is a copy.
func (s *Store) All() []Pulsar {
	out := make([]Pulsar, len(s.records))
	copy(out, s.records)
	return out
}

// Filter returns the records satisfying pred, in source order.
func (s *Store) Filter(pred func(*Pulsar) bool) []Pulsar {
	var out []Pulsar
	for i := range s.records {
		if pred(&s.records[i]) {
			out = append(out, s.records[i])
		}
	}
	return out
}

// Plottable returns the precomputed plottable subset in source order.
func (s *Store) Plottable() []Pulsar {
	out := make([]Pulsar, len(s.plottable))
	for i, idx := range s.plottable {
		out[i] = s.records[idx]
	}
	return out
}

// Count returns the number of records in the store.
func (s *Store) Count() int {
	return len(s.records)
}

// PlottableCount returns the size of the plottable subset without
// re-filtering.
func (s *Store) PlottableCount() int {
	return len(s.plottable)
}

// DroppedRecords returns the number of source rows dropped during the
// load that built this store. Zero for cache loads.
func (s *Store) DroppedRecords() int {
	return s.dropped
}

// Save writes the normalized table to path as CSV, atomically.
func (s *Store) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".pulsars-*.csv")
	if err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(cacheHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("cache write failed: %w", err)
	}
	for i := range s.records {
		if err := w.Write(cacheRow(&s.records[i])); err != nil {
			tmp.Close()
			return fmt.Errorf("cache write failed: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("cache write failed: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// LoadCache reads a previously saved normalized table.
func LoadCache(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cache read failed: %w", err)
	}
	if len(rows) == 0 {
		return nil, &FormatError{Reason: "cache is empty"}
	}
	if len(rows[0]) != len(cacheHeader) {
		return nil, &FormatError{Reason: "cache header mismatch"}
	}
	for i, name := range cacheHeader {
		if rows[0][i] != name {
			return nil, &FormatError{Reason: "cache header mismatch"}
		}
	}

	records := make([]Pulsar, 0, len(rows)-1)
	for _, row := range rows[1:] {
		p, err := parseCacheRow(row)
		if err != nil {
			return nil, fmt.Errorf("cache read failed: %w", err)
		}
		records = append(records, p)
	}
	return NewStore(records), nil
}

// Open implements the store lifecycle: load the cache when present and
// not forced, otherwise parse the source table and write a fresh cache.
func Open(cachePath, sourcePath string, force bool) (*Store, error) {
	if !force {
		if _, err := os.Stat(cachePath); err == nil {
			return LoadCache(cachePath)
		}
	}

	records, stats, err := LoadPsrcat(sourcePath)
	if err != nil {
		return nil, err
	}
	if stats.DroppedRecords > 0 {
		log.Printf("Loaded %d records (%d dropped)", stats.Parsed, stats.DroppedRecords)
	}

	s := NewStore(records)
	s.dropped = stats.DroppedRecords
	if err := s.Save(cachePath); err != nil {
		return nil, err
	}
	return s, nil
}

func cacheRow(p *Pulsar) []string {
	row := []string{p.NameB, p.NameJ, p.RAJ, p.DECJ}
	if p.PosValid {
		row = append(row,
			formatFloat(p.RADeg), formatFloat(p.DecDeg),
			formatFloat(p.GalLon), formatFloat(p.GalLat))
	} else {
		row = append(row, "", "", "", "")
	}
	row = append(row, formatOpt(p.F0), formatOpt(p.F1), formatOpt(p.DM))
	return row
}

func parseCacheRow(row []string) (Pulsar, error) {
	if len(row) != len(cacheHeader) {
		return Pulsar{}, fmt.Errorf("wrong column count %d", len(row))
	}
	p := Pulsar{
		NameB: row[0],
		NameJ: row[1],
		RAJ:   row[2],
		DECJ:  row[3],
	}
	if row[4] != "" {
		var err error
		if p.RADeg, err = strconv.ParseFloat(row[4], 64); err != nil {
			return Pulsar{}, err
		}
		if p.DecDeg, err = strconv.ParseFloat(row[5], 64); err != nil {
			return Pulsar{}, err
		}
		if p.GalLon, err = strconv.ParseFloat(row[6], 64); err != nil {
			return Pulsar{}, err
		}
		if p.GalLat, err = strconv.ParseFloat(row[7], 64); err != nil {
			return Pulsar{}, err
		}
		p.PosValid = true
	}
	var err error
	if p.F0, err = parseOptCell(row[8]); err != nil {
		return Pulsar{}, err
	}
	if p.F1, err = parseOptCell(row[9]); err != nil {
		return Pulsar{}, err
	}
	if p.DM, err = parseOptCell(row[10]); err != nil {
		return Pulsar{}, err
	}
	return p, nil
}

// formatFloat round-trips a float64 exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOpt(v Float) string {
	if !v.Valid {
		return ""
	}
	return formatFloat(v.Value)
}

func parseOptCell(s string) (Float, error) {
	if s == "" {
		return None(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return None(), err
	}
	return Some(v), nil
}
