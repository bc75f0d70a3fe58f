// pulsar-day - pick one pulsar from the ATNF catalogue and emit its
// status text plus the data series behind the P-Pdot and sky-map plots.
//
// The normalized catalog is cached as flat CSV next to the source table;
// -init -force rebuilds it from the psrcat source.
//
// Build: CGO_ENABLED=0 go build -ldflags="-s -w" -o build/pulsar-day ./cmd/pulsar-day

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/KI7MT/pulsar-lab-apps/internal/catalog"
	"github.com/KI7MT/pulsar-lab-apps/internal/common"
	"github.com/KI7MT/pulsar-lab-apps/internal/plot"
	"github.com/KI7MT/pulsar-lab-apps/internal/tweet"
)

// Version can be overridden at build time via -ldflags
var Version = "1.0.0"

// plotPayload is the renderer input boundary: two point series, the age
// guide lines, and the highlight animation plan.
type plotPayload struct {
	PPdot     []plot.Point   `json:"ppdot"`
	Sky       []plot.Point   `json:"sky"`
	AgeLines  []plot.AgeLine `json:"age_lines"`
	Animation plot.Animation `json:"animation"`
}

func main() {
	cfg := common.DefaultConfig()

	cachePath := flag.String("catalog", cfg.CatalogCachePath(), "Normalized CSV catalog cache")
	psrcatPath := flag.String("psrcat", cfg.PsrcatPath(), "psrcat source table (.db or .db.gz)")
	initOnly := flag.Bool("init", false, "Initialize the catalog cache and exit")
	force := flag.Bool("force", false, "Rebuild the cache from the psrcat source")
	listAll := flag.Bool("list", false, "List all catalog records and exit")
	pulsarName := flag.String("pulsar", "", "Explicit pulsar designation (B or J name)")
	seed := flag.Int64("seed", 0, "Deterministic selection seed (0 = entropy)")
	plotJSON := flag.String("plot-json", "", "Write plot data series to this JSON file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pulsar-day v%s - Pulsar of the Day\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Selects one pulsar (random plottable record, or -pulsar NAME),\n")
		fmt.Fprintf(os.Stderr, "prints its status text, and optionally writes the plot series.\n\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	log.SetOutput(os.Stderr)

	if err := os.MkdirAll(filepath.Dir(*cachePath), 0755); err != nil {
		log.Fatalf("Cannot create catalog directory: %v", err)
	}

	store, err := catalog.Open(*cachePath, *psrcatPath, *force)
	if err != nil {
		log.Fatalf("Catalog load failed: %v", err)
	}
	log.Printf("Catalog: %d records, %d plottable", store.Count(), store.PlottableCount())

	if *initOnly {
		log.Printf("Catalog cache ready at %s", *cachePath)
		return
	}

	if *listAll {
		listRecords(store)
		return
	}

	selector := catalog.NewSelector()
	if *seed != 0 {
		selector = catalog.NewSeededSelector(*seed)
	}

	p, err := selector.Pick(store, *pulsarName)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		log.Fatalf("Unable to locate %q in the catalog", *pulsarName)
	case errors.Is(err, catalog.ErrEmptyPool):
		log.Fatalf("Selection failed: %v", err)
	case err != nil:
		log.Fatalf("Selection failed: %v", err)
	}

	fmt.Println(tweet.Compose(&p))

	if *plotJSON != "" {
		if err := writePlotData(*plotJSON, &p, store.Plottable()); err != nil {
			log.Fatalf("Plot data write failed: %v", err)
		}
		log.Printf("Plot data: %s", *plotJSON)
	}
}

func listRecords(store *catalog.Store) {
	fmt.Println("NAMEB:NAMEJ:RAJ:DECJ")
	for _, p := range store.All() {
		fmt.Printf("%s:%s:%s:%s\n", p.NameB, p.NameJ, p.RAJ, p.DECJ)
	}
}

func writePlotData(path string, selected *catalog.Pulsar, population []catalog.Pulsar) error {
	payload := plotPayload{
		PPdot:    plot.PPdotSeries(selected, population),
		Sky:      plot.SkySeries(selected, population),
		AgeLines: plot.AgeLines(),
	}
	if period, ok := selected.Period(); ok {
		payload.Animation = plot.DefaultAnimation.Plan(period)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
