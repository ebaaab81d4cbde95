package superpixel

import (
	"context"
	"image/color"
	"time"

	"github.com/pkg/errors"

	"go.viam.com/slic/logging"
	"go.viam.com/slic/rimage"
)

// Result is the outcome of a segmentation run.
type Result struct {
	// Labels is the connected label map; values are dense in [0, NumLabels).
	Labels    *LabelMap
	NumLabels int
	// Spacing is the grid step the centroids were seeded with.
	Spacing float64
	Stats   Stats
}

// A Segmenter runs the SLIC pipeline with a fixed config. All working state is local to a call,
// so one Segmenter may serve concurrent callers.
type Segmenter struct {
	cfg       Config
	highlight color.NRGBA
	table     *rimage.GammaTable

	logger             logging.Logger
	clusterLogger      logging.Logger
	connectivityLogger logging.Logger
}

// NewSegmenter validates cfg and returns a Segmenter logging to logger.
func NewSegmenter(cfg Config, logger logging.Logger) (*Segmenter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	hl, err := cfg.HighlightColor()
	if err != nil {
		return nil, err
	}
	return &Segmenter{
		cfg:                cfg,
		highlight:          hl,
		table:              rimage.DefaultGammaTable(),
		logger:             logger,
		clusterLogger:      logger.Sublogger("cluster"),
		connectivityLogger: logger.Sublogger("connectivity"),
	}, nil
}

// Config returns the config the Segmenter was built with.
func (s *Segmenter) Config() Config {
	return s.cfg
}

// SegmentLabels clusters an RGBA8 buffer and returns its connected label map. Parameters are
// checked before anything is allocated. ctx is consulted between clustering rounds.
func (s *Segmenter) SegmentLabels(ctx context.Context, buf []byte, width, height int) (*Result, error) {
	if err := s.cfg.ValidateImage(buf, width, height); err != nil {
		return nil, err
	}
	start := time.Now()

	field := NewPixelField(buf, width, height, s.table)
	spacing := SolveSpacing(width, height, s.cfg.SegmentCount)
	centroids := InitCentroids(field, s.cfg.SegmentCount, spacing)
	s.logger.CDebugw(ctx, "seeded centroids",
		"width", width, "height", height, "segments", s.cfg.SegmentCount, "spacing", spacing)

	clusterer := NewClusterer(field, centroids, spacing, s.cfg)
	degenerate := 0
	for i := 0; i < s.cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "segmentation stopped after %d of %d iterations", i, s.cfg.Iterations)
		}
		iterStart := time.Now()
		report := clusterer.Iterate()
		degenerate += len(report.Degenerate)
		if len(report.Degenerate) > 0 {
			s.clusterLogger.CDebugw(ctx, "centroids without members kept their position",
				"iteration", i, "centroids", report.Degenerate)
		}
		s.clusterLogger.CDebugw(ctx, "iteration done", "iteration", i, "took", time.Since(iterStart))
	}

	raw := clusterer.Labels()
	unassigned := raw.CountUnassigned()
	if unassigned > 0 {
		s.clusterLogger.CDebugw(ctx, "pixels outside every search window", "count", unassigned)
	}

	connected, report := EnforceConnectivity(raw, s.cfg.SegmentCount, s.cfg.MinSizeFactor, s.cfg.MaxSizeFactor)
	s.connectivityLogger.CDebugw(ctx, "enforced connectivity", "labels", report.Labels, "merged", report.Merged)

	stats := ComputeStats(connected, report.Labels)
	stats.Unassigned = unassigned
	stats.Degenerate = degenerate
	stats.Merged = report.Merged
	s.logger.CDebugw(ctx, "segmentation done", "regions", stats.Regions, "took", time.Since(start))

	return &Result{
		Labels:    connected,
		NumLabels: report.Labels,
		Spacing:   spacing,
		Stats:     stats,
	}, nil
}

// Segment runs SegmentLabels and renders the labels per the configured RenderMode into an RGBA8
// buffer of the input's size.
func (s *Segmenter) Segment(ctx context.Context, buf []byte, width, height int) ([]byte, *Result, error) {
	res, err := s.SegmentLabels(ctx, buf, width, height)
	if err != nil {
		return nil, nil, err
	}
	return s.Render(res.Labels), res, nil
}

// Render draws labels per the configured RenderMode.
func (s *Segmenter) Render(labels *LabelMap) []byte {
	if s.cfg.RenderMode == RenderModeFill {
		return RenderFill(labels)
	}
	return RenderBoundaries(labels, s.highlight)
}

// Segment is the one-shot form of Segmenter.Segment: it validates cfg, segments buf and returns
// the rendered overlay. Nothing is logged.
func Segment(buf []byte, width, height int, cfg Config) ([]byte, error) {
	s, err := NewSegmenter(cfg, logging.NewBlankLogger("slic"))
	if err != nil {
		return nil, err
	}
	out, _, err := s.Segment(context.Background(), buf, width, height)
	return out, err
}
