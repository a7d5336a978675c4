package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/UnforeseenOcean/snippets-1/internal/http"
	"github.com/UnforeseenOcean/snippets-1/internal/incident"
)

func usage() {
	fmt.Println("Incident Log - scrape one month of the campus crime log to JSON")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  incidentlog [options] <month> <year>")
	fmt.Println()
	fmt.Printf("Month is 1-12; year is %d through the current year.\n", incident.MinYear)
	fmt.Println()
	flag.PrintDefaults()
}

func main() {
	// Command line flags
	var (
		outputFlag  = flag.String("o", "", "Output file (default: <month>-<year>.json)")
		urlFlag     = flag.String("url", "", "Crime log URL template with %d verbs for month and year")
		lenientFlag = flag.Bool("lenient", false, "Drop a trailing unpaired table row instead of failing")
		verboseFlag = flag.Bool("v", false, "Show verbose output")
	)

	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(1)
	}

	month, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid month %q\n\n", flag.Arg(0))
		usage()
		os.Exit(1)
	}
	year, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid year %q\n\n", flag.Arg(1))
		usage()
		os.Exit(1)
	}

	query, err := incident.NewQuery(month, year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		usage()
		os.Exit(1)
	}
	if *urlFlag != "" {
		query.URLTemplate = *urlFlag
	}
	output := *outputFlag
	if output == "" {
		output = query.OutputFile()
	}

	// Configure logger
	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	)
	slog.SetDefault(logger)

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	fmt.Println("🚔 Incident Log")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	slog.Debug("Fetching crime log", "url", query.URL())

	client := http.NewClient()
	page, err := client.GetString(ctx, query.URL())
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nCancelled.")
			os.Exit(130)
		}
		slog.Error("Error fetching crime log", "error", err)
		os.Exit(2)
	}

	records, err := incident.NewParser(*lenientFlag).Parse(page)
	if err != nil {
		slog.Error("Error parsing crime log", "error", err)
		os.Exit(2)
	}

	if err := records.Save(output); err != nil {
		slog.Error("Error writing output", "error", err)
		os.Exit(2)
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Wrote %d records to %s\n", len(records), output)
}
