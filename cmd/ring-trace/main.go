package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sushydev/ring_array_go/internal/logger"
	"github.com/sushydev/ring_array_go/internal/trace"
)

func main() {
	// Flags
	scriptPath := flag.String("script", "", "YAML trace script (default: built-in reference trace)")
	capacity := flag.Int("capacity", 0, "Override the script's initial capacity")
	debug := flag.Bool("debug", false, "Log every step to stderr")
	flag.Parse()

	if err := run(os.Stdout, os.Stderr, *scriptPath, *capacity, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(stdout, stderr io.Writer, scriptPath string, capacity int, debug bool) error {
	logger.Init(stderr, debug)

	script := trace.Default()
	if scriptPath != "" {
		loaded, err := trace.Load(scriptPath)
		if err != nil {
			return fmt.Errorf("failed to load script: %w", err)
		}
		script = loaded
	}
	if capacity > 0 {
		script.Capacity = capacity
	}

	logger.Info("running trace", "capacity", script.Capacity, "steps", len(script.Steps))

	result, err := trace.Run(script)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "final dynamic array:")
	for _, item := range result.Items {
		fmt.Fprintln(stdout, item)
	}
	if len(result.Reads) > 0 {
		fmt.Fprintln(stdout, "reads:", result.Reads)
	}
	fmt.Fprintln(stdout, "capacity:", result.Capacity)
	fmt.Fprintln(stdout, "startingIndex:", result.Start)
	fmt.Fprintln(stdout, "length:", result.Length)
	fmt.Fprintln(stdout, "staticArray:", result.Slots)

	return nil
}
