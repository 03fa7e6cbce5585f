// Command resolve parses a location string and prints the coordinate it
// resolves to. Useful for checking what the exporter will do with a given
// LOCATION value before deploying it.
//
// Usage:
//
//	go run ./cmd/resolve "52°30'N 13°24'E"
//	go run ./cmd/resolve -skip-lookup "Berlin"
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fuelmon/fuelprice-exporter/internal/adapter/nominatim"
	"github.com/fuelmon/fuelprice-exporter/internal/domain"
)

func main() {
	skipLookup := flag.Bool("skip-lookup", false, "only classify the location, do not call Nominatim for named places")
	timeout := flag.Duration("timeout", 10*time.Second, "geocoding request timeout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: resolve [-skip-lookup] [-timeout 10s] <location>")
		os.Exit(2)
	}

	raw := flag.Arg(0)
	loc, err := domain.ParseLocation(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse %q: %v\n", raw, err)
		os.Exit(1)
	}

	switch l := loc.(type) {
	case domain.Coordinate:
		fmt.Printf("coordinate: %s\n", l)
		return
	case domain.Named:
		fmt.Printf("named place: %s\n", l)
	}

	if *skipLookup {
		return
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	geocoder := nominatim.NewClient(*timeout, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	coord, err := domain.ResolveCoordinates(ctx, loc, geocoder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve %q: %v\n", raw, err)
		os.Exit(1)
	}
	fmt.Printf("resolved: %s\n", coord)
}
