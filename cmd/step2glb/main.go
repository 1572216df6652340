// step2glb batch-converts STEP CAD models into web-ready GLB files,
// recentered at the world origin. The job list comes from a YAML config
// file (see -init-config); missing inputs are skipped and failed jobs are
// logged without aborting the batch.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/robertogonzalez-tech/pallet-configurator/internal/config"
	"github.com/robertogonzalez-tech/pallet-configurator/internal/convert"
	"github.com/robertogonzalez-tech/pallet-configurator/internal/logger"
)

var flagInitConfig = flag.String("init-config", "", "Write the default config to this path and exit")

func main() {
	config.ParseFlags()

	if *flagInitConfig != "" {
		if err := config.Default().SaveTo(*flagInitConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Wrote default config to", *flagInitConfig)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	conv := convert.New(cfg.Converter, logger.Log)
	converted := conv.RunBatch(cfg)

	logger.Log.Info("batch finished",
		zap.Int("converted", converted),
		zap.Int("jobs", len(cfg.Jobs)),
	)
	// Per-file failures are logged above and never affect the exit status.
}
