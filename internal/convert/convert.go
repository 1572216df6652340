// Package convert implements the STEP to GLB conversion pipeline. The STEP
// import stage is delegated to an external CAD converter process; the
// intermediate STL it produces is reloaded, recentered at the origin and
// exported as binary glTF. The intermediate STL is a durable byproduct and
// is never removed.
package convert

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/robertogonzalez-tech/pallet-configurator/internal/config"
	"github.com/robertogonzalez-tech/pallet-configurator/pkg/formats"
	"github.com/robertogonzalez-tech/pallet-configurator/pkg/geom"
	"github.com/robertogonzalez-tech/pallet-configurator/pkg/scene"
)

// Converter runs STEP to GLB conversions.
type Converter struct {
	command string
	args    []string
	log     *zap.Logger
}

// New returns a Converter that uses the configured external CAD converter.
func New(cfg config.ConverterConfig, log *zap.Logger) *Converter {
	return &Converter{
		command: cfg.Command,
		args:    cfg.Args,
		log:     log,
	}
}

// STLPath returns the intermediate STL path for a STEP input: the same path
// with the extension swapped.
func STLPath(stepPath string) string {
	ext := filepath.Ext(stepPath)
	if ext == "" {
		return stepPath + ".stl"
	}
	return strings.TrimSuffix(stepPath, ext) + ".stl"
}

// stepToSTL invokes the external CAD converter to tessellate the STEP
// geometry into an STL file.
func (c *Converter) stepToSTL(stepPath, stlPath string) error {
	args := append(append([]string{}, c.args...), stepPath, stlPath)
	cmd := exec.Command(c.command, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s: %w: %s", c.command, strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Convert runs the full pipeline for one file pair: STEP import, STL
// reload, recentering at the centroid, GLB export. Geometry stays in its
// source units; only diagnostics are reported in inches.
func (c *Converter) Convert(stepPath, glbPath string) error {
	c.log.Info("loading STEP", zap.String("path", stepPath))

	stlPath := STLPath(stepPath)
	if err := c.stepToSTL(stepPath, stlPath); err != nil {
		return fmt.Errorf("importing %s: %w", stepPath, err)
	}
	c.log.Info("created STL", zap.String("path", stlPath))

	stl, err := formats.LoadSTL(stlPath)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(stepPath), filepath.Ext(stepPath))
	s := scene.FromSTL(stl, name)

	// Center the mesh at the world origin.
	s.Translate(s.Centroid().Neg())

	size := s.Bounds().Size()
	c.log.Info("mesh recentered",
		zap.Int("triangles", s.TriangleCount()),
		zap.String("size_mm", formatSize(size, 1)),
		zap.String("size_in", formatSize(size, geom.MillimetersPerInch)),
	)

	if err := scene.SaveGLB(s, glbPath); err != nil {
		return fmt.Errorf("exporting %s: %w", glbPath, err)
	}
	c.log.Info("created GLB", zap.String("path", glbPath))

	return nil
}

// RunBatch converts every job in the config. Missing inputs are skipped and
// failed conversions are logged; neither stops the remaining jobs.
// It returns the number of successful conversions.
func (c *Converter) RunBatch(cfg *config.Config) int {
	converted := 0
	for _, job := range cfg.Jobs {
		input, output := cfg.ResolveJob(job)

		if _, err := os.Stat(input); err != nil {
			c.log.Warn("skipping missing input", zap.String("path", input))
			continue
		}

		c.log.Info("converting", zap.String("input", input), zap.String("output", output))
		if err := c.Convert(input, output); err != nil {
			c.log.Error("conversion failed", zap.String("input", input), zap.Error(err))
			continue
		}
		converted++
	}
	return converted
}

func formatSize(size geom.Vec3, divisor float64) string {
	return fmt.Sprintf("X=%.1f Y=%.1f Z=%.1f", size.X/divisor, size.Y/divisor, size.Z/divisor)
}
