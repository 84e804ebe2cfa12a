// Package config holds the value types the core actually needs
// (LayoutParams, a DAG's k) plus the broader visual configuration
// validation described by spec §7 (opacity/stroke-width/k clamping)
// for the external visual collaborator that embeds this core.
package config

import (
	"fmt"

	"github.com/kaspaviz/dagcore/utils/wrappers"
)

// LayoutParams configures the Layout Engine (spec §4.4, §6). Epsilon
// is the column-membership tolerance on x; the layout engine requires
// 0 < Epsilon < HorizontalSpacing.
type LayoutParams struct {
	GenesisX          float64
	GenesisY          float64
	HorizontalSpacing float64
	VerticalSpacing   float64
	Epsilon           float64
}

// DefaultLayoutParams returns the documented defaults from spec §6.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		GenesisX:          -5.5,
		GenesisY:          0.0,
		HorizontalSpacing: 2.0,
		VerticalSpacing:   1.0,
		Epsilon:           0.5,
	}
}

// Validate reports every spacing misconfiguration at once (via
// wrappers.Errs, grounded on the teacher's config.Parameters.Valid()
// style) rather than stopping at the first. Unlike the opacity/k
// clamping in Clamp below, a non-positive spacing cannot be silently
// repaired — the column-epsilon arithmetic in the layout engine
// assumes both spacings are strictly positive — so this returns an
// error instead of a warning.
func (p LayoutParams) Validate() error {
	var errs wrappers.Errs
	errs.AddIf(p.HorizontalSpacing <= 0, ErrInvalidHorizontalSpacing)
	errs.AddIf(p.VerticalSpacing <= 0, ErrInvalidVerticalSpacing)
	errs.AddIf(p.Epsilon <= 0 || p.Epsilon >= p.HorizontalSpacing, ErrInvalidEpsilon)
	return errs.Err()
}

// DAGConfig is the one parameter the GHOSTDAG engine needs beyond the
// store itself.
type DAGConfig struct {
	K int
}

// DefaultDAGConfig returns spec.md's default k of 18.
func DefaultDAGConfig() DAGConfig {
	return DAGConfig{K: 18}
}

// VisualConfig is the broader configuration struct a visual
// collaborator embedding this core would carry (spec §7): opacity and
// stroke-width style fields that are clamped rather than rejected,
// plus k, which the core itself validates strictly at construction
// (ghostdag.NewEngine returns ErrInvalidK) but which a UI layer may
// still want to clamp defensively before ever reaching the core.
type VisualConfig struct {
	K           int
	Opacity     float64
	StrokeWidth float64
}

// DefaultVisualConfig returns a starting point with no clamping
// needed.
func DefaultVisualConfig() VisualConfig {
	return VisualConfig{K: 18, Opacity: 1.0, StrokeWidth: 1.0}
}

// Clamp enforces spec §7's ranges in place and returns one warning
// string per field it had to adjust. An empty slice means the config
// was already valid.
func (c *VisualConfig) Clamp() []string {
	var warnings []string

	if c.K < 0 {
		warnings = append(warnings, fmt.Sprintf("k clamped from %d to 0", c.K))
		c.K = 0
	}
	if c.Opacity < 0 {
		warnings = append(warnings, fmt.Sprintf("opacity clamped from %g to 0", c.Opacity))
		c.Opacity = 0
	} else if c.Opacity > 1 {
		warnings = append(warnings, fmt.Sprintf("opacity clamped from %g to 1", c.Opacity))
		c.Opacity = 1
	}
	if c.StrokeWidth < 1 {
		warnings = append(warnings, fmt.Sprintf("stroke_width clamped from %g to 1", c.StrokeWidth))
		c.StrokeWidth = 1
	}

	return warnings
}
