// pulsar-export - Columnar Parquet export of the normalized catalog
//
// Writes one Parquet row per record; absent fields become optional
// (null) columns, preserving the absent-vs-zero distinction for
// downstream analytics.
//
// Build: CGO_ENABLED=0 go build -ldflags="-s -w" -o build/pulsar-export ./cmd/pulsar-export

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/KI7MT/pulsar-lab-apps/internal/catalog"
	"github.com/KI7MT/pulsar-lab-apps/internal/common"
)

// Version can be overridden at build time via -ldflags
var Version = "1.0.0"

// CatalogRow matches the Parquet export schema.
type CatalogRow struct {
	NameB  string   `parquet:"name_b"`
	NameJ  string   `parquet:"name_j"`
	RAJ    string   `parquet:"raj"`
	DECJ   string   `parquet:"decj"`
	RADeg  *float64 `parquet:"ra_deg,optional"`
	DecDeg *float64 `parquet:"dec_deg,optional"`
	GalLon *float64 `parquet:"gal_lon,optional"`
	GalLat *float64 `parquet:"gal_lat,optional"`
	F0     *float64 `parquet:"f0,optional"`
	F1     *float64 `parquet:"f1,optional"`
	DM     *float64 `parquet:"dm,optional"`
}

func main() {
	cfg := common.DefaultConfig()

	cachePath := flag.String("catalog", cfg.CatalogCachePath(), "Normalized CSV catalog cache")
	psrcatPath := flag.String("psrcat", cfg.PsrcatPath(), "psrcat source table (.db or .db.gz)")
	outPath := flag.String("out", "pulsars.parquet", "Output Parquet file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pulsar-export v%s - Catalog Parquet Exporter\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Exports the normalized ATNF catalog to Parquet.\n\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	store, err := catalog.Open(*cachePath, *psrcatPath, false)
	if err != nil {
		log.Fatalf("Catalog load failed: %v", err)
	}
	log.Printf("Catalog: %d records", store.Count())

	startTime := time.Now()

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Cannot create output file: %v", err)
	}

	w := parquet.NewGenericWriter[CatalogRow](f)
	rows := make([]CatalogRow, 0, store.Count())
	for _, p := range store.All() {
		rows = append(rows, toRow(&p))
	}
	if _, err := w.Write(rows); err != nil {
		log.Fatalf("Parquet write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		log.Fatalf("Parquet close failed: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Output close failed: %v", err)
	}

	info, _ := os.Stat(*outPath)
	log.Printf("Wrote %d rows to %s (%d bytes) in %v",
		len(rows), *outPath, info.Size(), time.Since(startTime).Round(time.Millisecond))
}

func toRow(p *catalog.Pulsar) CatalogRow {
	row := CatalogRow{
		NameB: p.NameB,
		NameJ: p.NameJ,
		RAJ:   p.RAJ,
		DECJ:  p.DECJ,
		F0:    optPtr(p.F0),
		F1:    optPtr(p.F1),
		DM:    optPtr(p.DM),
	}
	if p.PosValid {
		row.RADeg = &p.RADeg
		row.DecDeg = &p.DecDeg
		row.GalLon = &p.GalLon
		row.GalLat = &p.GalLat
	}
	return row
}

func optPtr(v catalog.Float) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Value
}
