package superpixel

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/multierr"

	"go.viam.com/slic/rimage"
)

// RenderMode selects the output buffer produced by Segment.
type RenderMode string

const (
	// RenderModeBoundary marks region boundaries with the highlight color over a transparent
	// background.
	RenderModeBoundary RenderMode = "boundary"
	// RenderModeFill paints every region with a translucent pseudo-color. Meant for debugging.
	RenderModeFill RenderMode = "fill"
)

// Defaults for the tunables. The window multipliers and iteration count were picked
// empirically.
const (
	DefaultSegmentCount  = 256
	DefaultCompactness   = 10.0
	DefaultIterations    = 10
	DefaultWindowBehind  = 1.75
	DefaultWindowAhead   = 1.75
	DefaultMinSizeFactor = 0.25
	DefaultMaxSizeFactor = 5.0
	DefaultHighlight     = "#ff0000"
)

// Config holds the parameters of one segmentation run.
type Config struct {
	SegmentCount int     `json:"segment_count"`
	Compactness  float64 `json:"compactness"`

	// Iterations is the number of assign/update rounds of the clusterer.
	Iterations int `json:"iterations"`
	// WindowBehind and WindowAhead size the search window around a centroid, in multiples of
	// the grid spacing, toward lower and higher coordinates respectively.
	WindowBehind float64 `json:"window_behind"`
	WindowAhead  float64 `json:"window_ahead"`

	// Fragments smaller than MinSizeFactor*avgArea are merged into a neighbor; no flood fill
	// grows past MaxSizeFactor*avgArea pixels.
	MinSizeFactor float64 `json:"min_size_factor"`
	MaxSizeFactor float64 `json:"max_size_factor"`

	RenderMode RenderMode `json:"render_mode"`
	// Highlight is the hex color of boundary pixels, e.g. "#ff0000".
	Highlight string `json:"highlight"`
}

// NewConfig returns a config with the given segment count and compactness and every tunable at
// its default.
func NewConfig(segmentCount int, compactness float64) Config {
	return Config{
		SegmentCount:  segmentCount,
		Compactness:   compactness,
		Iterations:    DefaultIterations,
		WindowBehind:  DefaultWindowBehind,
		WindowAhead:   DefaultWindowAhead,
		MinSizeFactor: DefaultMinSizeFactor,
		MaxSizeFactor: DefaultMaxSizeFactor,
		RenderMode:    RenderModeBoundary,
		Highlight:     DefaultHighlight,
	}
}

// DefaultConfig returns NewConfig(DefaultSegmentCount, DefaultCompactness).
func DefaultConfig() Config {
	return NewConfig(DefaultSegmentCount, DefaultCompactness)
}

// Validate checks the parameters that do not depend on the image. Every violation is reported.
func (cfg Config) Validate() error {
	var errs error
	if cfg.SegmentCount < 1 {
		errs = multierr.Append(errs, newInvalidParameterError("segment_count", cfg.SegmentCount, "must be at least 1"))
	}
	if !(cfg.Compactness > 0) {
		errs = multierr.Append(errs, newInvalidParameterError("compactness", cfg.Compactness, "must be positive"))
	}
	if cfg.Iterations < 1 {
		errs = multierr.Append(errs, newInvalidParameterError("iterations", cfg.Iterations, "must be at least 1"))
	}
	if !(cfg.WindowBehind > 0) {
		errs = multierr.Append(errs, newInvalidParameterError("window_behind", cfg.WindowBehind, "must be positive"))
	}
	if !(cfg.WindowAhead > 0) {
		errs = multierr.Append(errs, newInvalidParameterError("window_ahead", cfg.WindowAhead, "must be positive"))
	}
	if !(cfg.MinSizeFactor >= 0) {
		errs = multierr.Append(errs, newInvalidParameterError("min_size_factor", cfg.MinSizeFactor, "must not be negative"))
	}
	if !(cfg.MaxSizeFactor > 0) {
		errs = multierr.Append(errs, newInvalidParameterError("max_size_factor", cfg.MaxSizeFactor, "must be positive"))
	}
	switch cfg.RenderMode {
	case RenderModeBoundary, RenderModeFill:
	default:
		errs = multierr.Append(errs, newInvalidParameterError("render_mode", cfg.RenderMode, "must be boundary or fill"))
	}
	if _, err := colorful.Hex(cfg.Highlight); err != nil {
		errs = multierr.Append(errs, newInvalidParameterError("highlight", cfg.Highlight, err.Error()))
	}
	return errs
}

// ValidateImage checks the config against a concrete input buffer.
func (cfg Config) ValidateImage(buf []byte, width, height int) error {
	errs := cfg.Validate()
	if width < 1 {
		errs = multierr.Append(errs, newInvalidParameterError("width", width, "must be at least 1"))
	}
	if height < 1 {
		errs = multierr.Append(errs, newInvalidParameterError("height", height, "must be at least 1"))
	}
	if width >= 1 && height >= 1 {
		pixels := width * height
		if cfg.SegmentCount > pixels {
			errs = multierr.Append(errs, newInvalidParameterError("segment_count", cfg.SegmentCount, "exceeds the pixel count"))
		}
		if len(buf) != pixels*rimage.BytesPerPixel {
			errs = multierr.Append(errs, newInvalidParameterError("buffer", len(buf), "length must be width*height*4"))
		}
	}
	return errs
}

// HighlightColor parses Highlight into an opaque color.
func (cfg Config) HighlightColor() (color.NRGBA, error) {
	c, err := colorful.Hex(cfg.Highlight)
	if err != nil {
		return color.NRGBA{}, newInvalidParameterError("highlight", cfg.Highlight, err.Error())
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
