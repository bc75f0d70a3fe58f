// pulsar-ingest - Normalized ATNF catalog ingestion into ClickHouse
//
// Loads the CSV catalog cache (building it from the psrcat source when
// absent) and batch-inserts every record. Absent F1/DM/position fields
// map to Nullable columns, never to zero.
//
// Build: CGO_ENABLED=0 go build -ldflags="-s -w" -o build/pulsar-ingest ./cmd/pulsar-ingest

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/KI7MT/pulsar-lab-apps/internal/catalog"
	"github.com/KI7MT/pulsar-lab-apps/internal/common"
)

// Version can be overridden at build time via -ldflags
var Version = "1.0.0"

const createTableDDL = `
CREATE TABLE IF NOT EXISTS %s (
    name_b  String,
    name_j  String,
    raj     String,
    decj    String,
    ra_deg  Nullable(Float64),
    dec_deg Nullable(Float64),
    gal_lon Nullable(Float64),
    gal_lat Nullable(Float64),
    f0      Nullable(Float64),
    f1      Nullable(Float64),
    dm      Nullable(Float64)
) ENGINE = MergeTree ORDER BY name_j`

func main() {
	cfg := common.DefaultConfig()

	chHost := flag.String("ch-host", fmt.Sprintf("%s:%d", cfg.ClickHouseHost, cfg.ClickHousePort), "ClickHouse address")
	chDB := flag.String("ch-db", cfg.ClickHouseDatabase, "ClickHouse database")
	chTable := flag.String("ch-table", "catalog", "ClickHouse table")
	cachePath := flag.String("catalog", cfg.CatalogCachePath(), "Normalized CSV catalog cache")
	psrcatPath := flag.String("psrcat", cfg.PsrcatPath(), "psrcat source table (.db or .db.gz)")
	create := flag.Bool("create", false, "Create the table if it does not exist")
	truncate := flag.Bool("truncate", false, "Truncate table before insert")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pulsar-ingest v%s - Pulsar Catalog Ingester\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ingests the normalized ATNF catalog into ClickHouse.\n\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	log.Println("=========================================================")
	log.Printf("Pulsar Ingest v%s", Version)
	log.Println("=========================================================")

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
	log.Printf("Catalog: %d records, %d plottable", store.Count(), store.PlottableCount())

	log.Printf("Connecting to ClickHouse at %s...", *chHost)
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{*chHost},
		Auth: clickhouse.Auth{
			Database: *chDB,
			Username: cfg.ClickHouseUser,
			Password: cfg.ClickHousePassword,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
		MaxOpenConns:    2,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		log.Fatalf("ClickHouse connection failed: %v", err)
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		log.Fatalf("ClickHouse ping failed: %v", err)
	}

	tableFQN := fmt.Sprintf("%s.%s", *chDB, *chTable)
	log.Printf("Table: %s", tableFQN)

	if *create {
		if err := conn.Exec(ctx, fmt.Sprintf(createTableDDL, tableFQN)); err != nil {
			log.Fatalf("Create table failed: %v", err)
		}
	}

	if *truncate {
		log.Printf("Truncating table %s...", tableFQN)
		if err := conn.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s", tableFQN)); err != nil {
			log.Printf("Truncate warning: %v", err)
		}
	}

	startTime := time.Now()

	batch, err := conn.PrepareBatch(ctx, fmt.Sprintf("INSERT INTO %s", tableFQN))
	if err != nil {
		log.Fatalf("Prepare batch failed: %v", err)
	}

	for _, p := range store.All() {
		raDeg, decDeg, galLon, galLat := positionColumns(&p)
		err := batch.Append(
			p.NameB,
			p.NameJ,
			p.RAJ,
			p.DECJ,
			raDeg,
			decDeg,
			galLon,
			galLat,
			optColumn(p.F0),
			optColumn(p.F1),
			optColumn(p.DM),
		)
		if err != nil {
			log.Fatalf("Append failed for %s: %v", p.NameJ, err)
		}
	}

	if err := batch.Send(); err != nil {
		log.Fatalf("Insert error: %v", err)
	}

	elapsed := time.Since(startTime)

	log.Println()
	log.Println("=========================================================")
	log.Println("Final Statistics")
	log.Println("=========================================================")
	log.Printf("Total Records: %d", store.Count())
	log.Printf("Elapsed:       %v", elapsed.Round(time.Millisecond))
	log.Println("=========================================================")
}

// optColumn maps an optional catalog value to a Nullable column value.
func optColumn(v catalog.Float) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Value
}

func positionColumns(p *catalog.Pulsar) (raDeg, decDeg, galLon, galLat *float64) {
	if !p.PosValid {
		return nil, nil, nil, nil
	}
	return &p.RADeg, &p.DecDeg, &p.GalLon, &p.GalLat
}
