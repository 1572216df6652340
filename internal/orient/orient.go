// Package orient corrects the axis orientation of GLB models for Y-up web
// viewers. The smallest bounding-box extent is assumed to be the object's
// height and is rotated onto the Y axis with a single quarter turn about a
// coordinate axis. The heuristic assumes one axis is unambiguously smallest;
// ties resolve to the lowest-indexed axis, and arbitrary orientations that
// would need compound rotations are out of scope.
package orient

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/robertogonzalez-tech/pallet-configurator/pkg/geom"
	"github.com/robertogonzalez-tech/pallet-configurator/pkg/scene"
)

// Analysis describes the orientation of a bounding box and the rotation
// that stands the model upright.
type Analysis struct {
	Size     geom.Vec3
	Height   geom.Axis // axis with the smallest extent
	Length   geom.Axis // axis with the largest extent, diagnostic only
	Rotation geom.Mat4
}

// NeedsRotation reports whether the model is not already Y-up.
func (a Analysis) NeedsRotation() bool {
	return a.Height != geom.AxisY
}

// Analyze derives the orientation analysis from a bounding box.
func Analyze(box geom.Box) Analysis {
	size := box.Size()
	height := geom.MinAxis(size)
	return Analysis{
		Size:     size,
		Height:   height,
		Length:   geom.MaxAxis(size),
		Rotation: geom.UprightRotation(height),
	}
}

// Result reports what Fix did to a model.
type Result struct {
	OldSize geom.Vec3
	NewSize geom.Vec3
	Rotated bool
	// Upright is false when the post-rotation check found that Y is still
	// not the smallest extent.
	Upright bool
}

// Fix loads a GLB, rotates its smallest extent onto the Y axis and writes
// the result. The output is written even when the post-rotation check
// fails; that case is only warned about.
func Fix(inputPath, outputPath string, log *zap.Logger) (*Result, error) {
	log.Info("loading GLB", zap.String("path", inputPath))

	s, err := scene.LoadGLB(inputPath)
	if err != nil {
		return nil, err
	}

	a := Analyze(s.Bounds())
	logSize(log, "original size", a.Size)
	log.Info("smallest (height)",
		zap.String("axis", a.Height.String()),
		zap.Float64("inches", a.Size.Component(a.Height)/geom.MillimetersPerInch))
	log.Info("largest (length)",
		zap.String("axis", a.Length.String()),
		zap.Float64("inches", a.Size.Component(a.Length)/geom.MillimetersPerInch))

	if a.NeedsRotation() {
		log.Info("rotating height onto Y", zap.String("from", a.Height.String()))
		s.Transform(a.Rotation)
	} else {
		log.Info("height already on Y axis, no rotation needed")
	}

	newSize := s.Bounds().Size()
	logSize(log, "new size", newSize)

	upright := geom.MinAxis(newSize) == geom.AxisY
	if !upright {
		log.Warn("Y is not the smallest dimension after rotation")
	}

	log.Info("saving GLB", zap.String("path", outputPath))
	if err := scene.SaveGLB(s, outputPath); err != nil {
		return nil, fmt.Errorf("saving %s: %w", outputPath, err)
	}

	return &Result{
		OldSize: a.Size,
		NewSize: newSize,
		Rotated: a.NeedsRotation(),
		Upright: upright,
	}, nil
}

func logSize(log *zap.Logger, msg string, size geom.Vec3) {
	log.Info(msg,
		zap.String("mm", fmt.Sprintf("X=%.1f Y=%.1f Z=%.1f", size.X, size.Y, size.Z)),
		zap.String("inches", fmt.Sprintf("X=%.1f Y=%.1f Z=%.1f",
			size.X/geom.MillimetersPerInch,
			size.Y/geom.MillimetersPerInch,
			size.Z/geom.MillimetersPerInch)),
	)
}
