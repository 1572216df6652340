// fixorient reorients a GLB model for Three.js/WebGL viewers: the smallest
// bounding-box dimension (the height) is rotated onto the Y axis and the
// scene is re-exported.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/robertogonzalez-tech/pallet-configurator/internal/logger"
	"github.com/robertogonzalez-tech/pallet-configurator/internal/orient"
)

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		printUsage()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	if _, err := os.Stat(inputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", inputPath)
		os.Exit(1)
	}

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res, err := orient.Fix(inputPath, outputPath, logger.Log)
	if err != nil {
		logger.Log.Error("orientation fix failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Log.Info("done",
		zap.Bool("rotated", res.Rotated),
		zap.Bool("upright", res.Upright),
	)
	logger.Sync()
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `fixorient - reorient a GLB model for Y-up web viewers

Usage:
  fixorient [options] <input.glb> <output.glb>

Options:
  -debug    Enable debug logging

The smallest bounding-box dimension is assumed to be the model's height and
is rotated onto the Y axis with a single 90-degree turn.`)
}
