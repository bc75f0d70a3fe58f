// pulsar-verify - Cross-check the ingested ClickHouse catalog table
// against the local normalized store.
//
// Runs native-protocol count queries (total rows and plottable rows) and
// compares them with the local CSV cache counts. Exits non-zero on
// mismatch.
//
// Build: CGO_ENABLED=0 go build -ldflags="-s -w" -o build/pulsar-verify ./cmd/pulsar-verify

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ClickHouse/ch-go"
	"github.com/ClickHouse/ch-go/proto"

	"github.com/KI7MT/pulsar-lab-apps/internal/catalog"
	"github.com/KI7MT/pulsar-lab-apps/internal/common"
)

// Version can be overridden at build time via -ldflags
var Version = "1.0.0"

func countQuery(ctx context.Context, conn *ch.Client, query string) (uint64, error) {
	var result proto.ColUInt64
	if err := conn.Do(ctx, ch.Query{
		Body: query,
		Result: proto.Results{
			{Name: "count()", Data: &result},
		},
	}); err != nil {
		return 0, err
	}
	if result.Rows() == 0 {
		return 0, fmt.Errorf("empty count result")
	}
	return result.Row(0), nil
}

func main() {
	cfg := common.DefaultConfig()

	chHost := flag.String("ch-host", fmt.Sprintf("%s:%d", cfg.ClickHouseHost, cfg.ClickHousePort), "ClickHouse address")
	chDB := flag.String("ch-db", cfg.ClickHouseDatabase, "ClickHouse database")
	chTable := flag.String("ch-table", "catalog", "ClickHouse table")
	cachePath := flag.String("catalog", cfg.CatalogCachePath(), "Normalized CSV catalog cache")
	psrcatPath := flag.String("psrcat", cfg.PsrcatPath(), "psrcat source table (.db or .db.gz)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pulsar-verify v%s - Catalog Ingest Verifier\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Compares ClickHouse row counts with the local catalog.\n\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("\nShutdown requested...")
		cancel()
	}()

	store, err := catalog.Open(*cachePath, *psrcatPath, false)
	if err != nil {
		log.Fatalf("Catalog load failed: %v", err)
	}

	log.Printf("Connecting to ClickHouse at %s...", *chHost)
	conn, err := ch.Dial(ctx, ch.Options{
		Address:     *chHost,
		Database:    *chDB,
		Compression: ch.CompressionLZ4,
	})
	if err != nil {
		log.Fatalf("ClickHouse connection failed: %v", err)
	}
	defer conn.Close()

	tableFQN := fmt.Sprintf("%s.%s", *chDB, *chTable)
	log.Printf("Table: %s", tableFQN)

	total, err := countQuery(ctx, conn, fmt.Sprintf("SELECT count() FROM %s", tableFQN))
	if err != nil {
		log.Fatalf("Count query failed: %v", err)
	}

	plottable, err := countQuery(ctx, conn, fmt.Sprintf(
		"SELECT count() FROM %s WHERE f0 > 0 AND ra_deg IS NOT NULL", tableFQN))
	if err != nil {
		log.Fatalf("Plottable count query failed: %v", err)
	}

	log.Printf("ClickHouse: %d records, %d plottable", total, plottable)
	log.Printf("Local:      %d records, %d plottable", store.Count(), store.PlottableCount())

	if total != uint64(store.Count()) || plottable != uint64(store.PlottableCount()) {
		log.Fatal("MISMATCH between ClickHouse table and local catalog")
	}
	log.Println("Verification OK")
}
