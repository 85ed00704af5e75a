// ABOUTME: Entry point for ring-player application
// ABOUTME: Handles command-line parsing, profiling, and routing to TUI, list, or headless modes

// Package main provides the entry point for ring-player, a circular playlist player for the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"ring-player/config"
	"ring-player/library"
	"ring-player/metadata"
	"ring-player/player"
	"ring-player/playlist"
	"ring-player/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	list := flag.Bool("list", false, "print the queue and exit")
	headless := flag.Bool("headless", false, "play without the interactive UI")
	debug := flag.Bool("debug", false, "enable debug logging to ring-player.log")
	flag.Parse()

	InitLogging(*debug)

	configPath := config.GetConfigPath()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	args := flag.Args()
	if len(args) == 0 && cfg.LibraryDir == "" {
		fmt.Println("Usage: ring-player [flags] [file|directory|playlist.m3u ...]")
		fmt.Println("Example: ring-player ~/Music")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	if *cpuprofile != "" {
		stopCPUProfile := setupCPUProfile(*cpuprofile)
		defer stopCPUProfile()
	}

	if *memprofile != "" {
		defer writeMemoryProfile(*memprofile)
	}

	queue, err := BuildQueue(QueueOptions{
		Args:       args,
		LibraryDir: cfg.LibraryDir,
		Filters:    cfg.FileFilters,
		Verbose:    *list || *headless,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	switch {
	case *list:
		if err := RunList(queue); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)

			return 1
		}

	case *headless:
		if err := RunHeadless(queue, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)

			return 1
		}

	default:
		if err := runTUI(queue, cfg, configPath); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)

			return 1
		}
	}

	return 0
}

// runTUI wires the engine, library scanner, and tag extractor into the UI
func runTUI(queue *playlist.Playlist, cfg config.Config, configPath string) error {
	engine := player.NewEngine(cfg.DefaultVolume)
	defer engine.Close()

	scanLibrary := func() ([]string, error) {
		filter, err := library.NewFilter(cfg.FileFilters)
		if err != nil {
			return nil, err
		}

		return library.Scan(cfg.LibraryDir, filter)
	}

	opts := tui.Options{
		LibraryDir: cfg.LibraryDir,
	}

	return tui.Run(opts, queue, engine, scanLibrary, metadata.ExtractAll, debugf, cfg, configPath)
}

// setupCPUProfile starts CPU profiling, returns cleanup function
func setupCPUProfile(filename string) func() {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		log.Fatalf("could not start CPU profile: %v", err)
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close CPU profile: %v", err)
		}
	}
}

// writeMemoryProfile writes memory profile to file
func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)

		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
