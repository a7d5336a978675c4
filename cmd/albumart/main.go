package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/UnforeseenOcean/snippets-1/internal/artwork"
	"github.com/UnforeseenOcean/snippets-1/internal/audio"
	"github.com/UnforeseenOcean/snippets-1/internal/batch"
	"github.com/UnforeseenOcean/snippets-1/internal/config"
)

func usage() {
	fmt.Println("Album Art - embed cover artwork into every MP3 under a directory")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  albumart [options] [directory]")
	fmt.Println()
	fmt.Println("The directory defaults to the current one.")
	fmt.Println("For interactive mode, use: albumart-tui")
	fmt.Println()
	flag.PrintDefaults()
}

func main() {
	// Command line flags
	var (
		artworkFlag    = flag.String("f", "", "Artwork file to embed (default: probe the directory for cover.* and folder.*)")
		sequentialFlag = flag.Bool("s", false, "Embed one file at a time, in discovery order")
		jobsFlag       = flag.Int("j", 0, "Number of parallel jobs (0 = one per CPU)")
		configFlag     = flag.String("config", "", "Path to config file")
		dryRunFlag     = flag.Bool("dry-run", false, "Resolve artwork and list target files without changing anything")
		verboseFlag    = flag.Bool("v", false, "Show verbose output")
		helpFlag       = flag.Bool("h", false, "Show this help")
	)

	flag.Parse()

	if *helpFlag {
		usage()
		os.Exit(1)
	}
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: expected at most one directory argument")
		fmt.Fprintln(os.Stderr)
		usage()
		os.Exit(1)
	}
	if *jobsFlag < 0 {
		fmt.Fprintln(os.Stderr, "Error: -j must not be negative")
		fmt.Fprintln(os.Stderr)
		usage()
		os.Exit(1)
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

	// Target directory
	dir := "."
	if flag.NArg() == 1 {
		dir = flag.Arg(0)
	}
	info, err := os.Stat(dir)
	if err != nil {
		slog.Error("Cannot open target directory", "error", err)
		os.Exit(2)
	}
	if !info.IsDir() {
		slog.Error("Target is not a directory", "path", dir)
		os.Exit(2)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		settings, err = config.Load(*configFlag)
		if err != nil {
			slog.Error("Error loading config", "error", err)
			os.Exit(2)
		}
	}

	// Apply flags
	workers := settings.Jobs
	if *jobsFlag > 0 {
		workers = *jobsFlag
	}
	if *sequentialFlag {
		workers = 1
	}

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

	fmt.Println("🎨 Album Art")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	// Resolve the external encoder
	encoderPath, err := audio.ResolveEncoder(settings.EncoderPath)
	if err != nil {
		slog.Error("Encoder not available", "error", err)
		os.Exit(2)
	}
	slog.Debug("Using encoder", "path", encoderPath)

	// Resolve artwork
	var src *artwork.Source
	if *artworkFlag != "" {
		src, err = artwork.Load(*artworkFlag)
	} else {
		src, err = artwork.Discover(dir, settings.ArtworkFileNames)
	}
	if err != nil {
		slog.Error("No usable artwork", "error", err)
		os.Exit(2)
	}
	slog.Info("Using artwork", "file", src.Path, "size", fmt.Sprintf("%dx%d", src.Width, src.Height))

	artPath, cleanup, err := artwork.Prepare(ctx, src, settings)
	if err != nil {
		slog.Error("Error preparing artwork", "error", err)
		os.Exit(2)
	}
	// os.Exit skips deferred calls, so every exit below cleans up first.

	// Create the runner with progress mapped onto the logger
	embedder := audio.NewEmbedder(encoderPath)
	runner := batch.NewRunner(embedder, workers, func(event batch.ProgressEvent) {
		switch event.Level {
		case batch.LevelError:
			slog.Error(event.Message)
		case batch.LevelWarning:
			slog.Warn(event.Message)
		case batch.LevelVerbose:
			slog.Debug(event.Message)
		default:
			slog.Info(event.Message)
		}
	})

	if err := runner.Initialize(dir, artPath); err != nil {
		cleanup()
		slog.Error("Error scanning for audio files", "error", err)
		os.Exit(2)
	}

	if *dryRunFlag {
		fmt.Println("\n[Dry run - not embedding]")
		for _, job := range runner.Jobs() {
			fmt.Println("   " + job.AudioPath)
		}
		cleanup()
		return
	}

	report, err := runner.Run(ctx)
	cleanup()
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nRun cancelled.")
			os.Exit(130)
		}
		slog.Error("Error during run", "error", err)
		os.Exit(2)
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ %s\n", report.Summary())
	if !report.AllOK() {
		fmt.Println("\nFailed files:")
		for _, res := range report.Failures {
			fmt.Printf("   ✗ %s: %v\n", res.Job.AudioPath, res.Err)
		}
		os.Exit(3)
	}
}
