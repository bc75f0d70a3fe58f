package catalog

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/klauspost/pgzip"
)

// parser.go - psrcat source table parsing.
//
// The ATNF psrcat.db format is one parameter per line:
//
//	PSRJ     J0006+1834    cwb+04
//	RAJ      00:06:04.8    2
//	F0       0.381568      5
//	@-----------------------------
//
// '#' starts a comment, '@-' terminates a record. Reference and error
// columns after the value are ignored, as is every parameter outside the
// normalized schema. Parsing a record can fail without failing the load;
// dropped records are counted and logged, capped at MaxErrorsToLog.

// MaxErrorsToLog bounds per-record warning output so a damaged source
// does not flood the log.
const MaxErrorsToLog = 10

// requiredParams must each appear somewhere in the source; a table
// missing one of them entirely is not a psrcat table.
var requiredParams = []string{"PSRJ", "RAJ", "DECJ", "F0"}

// absent-value markers used by catalogue exports
func isAbsentMarker(s string) bool {
	switch s {
	case "", "*", "NaN", "nan", "NAN":
		return true
	}
	return false
}

// FormatError is fatal to a load: the source is empty or is missing a
// required column entirely.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "catalog format error: " + e.Reason
}

// ParseStats holds the observable outcome of one load.
type ParseStats struct {
	TotalRecords   int // records seen in the source
	Parsed         int // records normalized successfully
	DroppedRecords int // records dropped for malformed cells
}

// LoadPsrcat reads a psrcat source file into normalized records.
// Files ending in .gz are decompressed on the fly.
func LoadPsrcat(path string) ([]Pulsar, *ParseStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReaderN(f, 256*1024, runtime.NumCPU())
		if err != nil {
			return nil, nil, fmt.Errorf("gzip open failed: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	return ParsePsrcat(r)
}

// ParsePsrcat parses a psrcat source stream. Per-record failures drop
// only that record; the returned stats carry the drop count. A source
// with no records, or one in which a required parameter never appears,
// fails with *FormatError.
func ParsePsrcat(r io.Reader) ([]Pulsar, *ParseStats, error) {
	stats := &ParseStats{}
	seen := make(map[string]bool)
	var pulsars []Pulsar

	errorCount := 0
	dropRecord := func(name string, err error) {
		stats.DroppedRecords++
		errorCount++
		if errorCount <= MaxErrorsToLog {
			log.Printf("Dropping record %s: %v", name, err)
		}
	}

	record := make(map[string]string)
	flush := func() {
		if len(record) == 0 {
			return
		}
		stats.TotalRecords++
		p, err := normalizeRecord(record)
		if err != nil {
			name := record["PSRJ"]
			if name == "" {
				name = record["PSRB"]
			}
			dropRecord(name, err)
		} else {
			pulsars = append(pulsars, p)
			stats.Parsed++
		}
		record = make(map[string]string)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "@-") {
			flush()
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		param, value := fields[0], fields[1]
		seen[param] = true

		// first occurrence wins within a record
		if _, dup := record[param]; !dup {
			record[param] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("catalog read failed: %w", err)
	}
	flush()

	if errorCount > MaxErrorsToLog {
		log.Printf("... and %d more dropped records (suppressed)", errorCount-MaxErrorsToLog)
	}

	if stats.TotalRecords == 0 {
		return nil, nil, &FormatError{Reason: "source is empty"}
	}
	for _, param := range requiredParams {
		if !seen[param] {
			return nil, nil, &FormatError{Reason: "required column " + param + " missing"}
		}
	}

	return pulsars, stats, nil
}

// normalizeRecord converts one raw parameter map into a Pulsar. A record
// without a J designation, or with a malformed numeric or position cell,
// is rejected; absent optional cells stay absent.
func normalizeRecord(record map[string]string) (Pulsar, error) {
	p := Pulsar{
		NameB: record["PSRB"],
		NameJ: record["PSRJ"],
	}
	if p.NameJ == "" {
		return Pulsar{}, fmt.Errorf("missing PSRJ designation")
	}

	var err error
	if p.F0, err = parseOptFloat(record["F0"]); err != nil {
		return Pulsar{}, fmt.Errorf("invalid F0: %w", err)
	}
	if !p.F0.Valid {
		return Pulsar{}, fmt.Errorf("missing F0")
	}
	if p.F1, err = parseOptFloat(record["F1"]); err != nil {
		return Pulsar{}, fmt.Errorf("invalid F1: %w", err)
	}
	if p.DM, err = parseOptFloat(record["DM"]); err != nil {
		return Pulsar{}, fmt.Errorf("invalid DM: %w", err)
	}

	raj, decj := record["RAJ"], record["DECJ"]
	if isAbsentMarker(raj) || isAbsentMarker(decj) {
		// position absent: record is kept but not plottable
		return p, nil
	}
	ra, err := ParseRA(raj)
	if err != nil {
		return Pulsar{}, err
	}
	dec, err := ParseDec(decj)
	if err != nil {
		return Pulsar{}, err
	}
	p.RAJ = raj
	p.DECJ = decj
	p.RADeg = ra
	p.DecDeg = dec
	p.GalLon, p.GalLat = EquatorialToGalactic(ra, dec)
	p.PosValid = true
	return p, nil
}

func parseOptFloat(s string) (Float, error) {
	s = strings.TrimSpace(s)
	if isAbsentMarker(s) {
		return None(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return None(), err
	}
	return Some(v), nil
}
