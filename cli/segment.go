package cli

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/slic/config"
	"go.viam.com/slic/logging"
	"go.viam.com/slic/rimage"
	"go.viam.com/slic/vision/superpixel"
)

// run is one invocation of a segmentation command.
type run struct {
	ctx       context.Context
	logger    logging.Logger
	ioLogger  logging.Logger
	cfg       *config.Config
	segmenter *superpixel.Segmenter

	src           image.Image
	buf           []byte
	width, height int
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.Path(flagConfig); path != "" {
		var err error
		if cfg, err = config.Read(path); err != nil {
			return nil, errors.Wrapf(err, "cannot read config %q", path)
		}
	}

	seg := &cfg.Segmentation
	if c.IsSet(FlagSegments) {
		seg.SegmentCount = c.Int(FlagSegments)
	}
	if c.IsSet(FlagCompactness) {
		seg.Compactness = c.Float64(FlagCompactness)
	}
	if c.IsSet(FlagIterations) {
		seg.Iterations = c.Int(FlagIterations)
	}
	if c.IsSet(FlagMode) {
		seg.RenderMode = superpixel.RenderMode(c.String(FlagMode))
	}
	if c.IsSet(FlagHighlight) {
		seg.Highlight = c.String(FlagHighlight)
	}
	return cfg, cfg.Validate()
}

// debugPatterns raise the command's logger and all of its subloggers to debug. They come after the
// config's patterns so that they win.
var debugPatterns = []logging.LoggerPatternConfig{
	{Pattern: "slic", Level: "debug"},
	{Pattern: "slic.*", Level: "debug"},
}

// newLogger registers the command's logger so that the config's log patterns, and the debug
// flag, reach it and every sublogger made from it. Nothing outside the registry is changed, so a
// later run in the same process starts from the config alone.
func newLogger(c *cli.Context, cfg *config.Config) (logging.Logger, context.Context, error) {
	logger := logging.NewBlankLogger("slic")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	logging.RegisterLogger("slic", logger)

	patterns := cfg.Log
	ctx := c.Context
	if c.Bool(flagDebug) {
		patterns = append(append([]logging.LoggerPatternConfig{}, cfg.Log...), debugPatterns...)
		ctx = logging.EnableDebugMode(ctx, "")
	}
	if err := logging.UpdateLoggerRegistryConfig(patterns, logger); err != nil {
		return nil, nil, err
	}
	return logger, ctx, nil
}

func newRun(c *cli.Context) (*run, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	logger, ctx, err := newLogger(c, cfg)
	if err != nil {
		return nil, err
	}
	r := &run{ctx: ctx, logger: logger, ioLogger: logger.Sublogger("io"), cfg: cfg}

	r.segmenter, err = superpixel.NewSegmenter(cfg.Segmentation, logger.Sublogger("segment"))
	if err != nil {
		return nil, err
	}

	input := c.Path(FlagInput)
	src, err := rimage.ReadImageFromFile(input)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	if maxDim := c.Int(FlagMaxDim); maxDim > 0 {
		src = rimage.ResizeToFit(src, maxDim)
		if src.Bounds() != b {
			r.ioLogger.Infow("downscaled input", "from", b.Size().String(), "to", src.Bounds().Size().String())
		}
	}
	r.src = src
	r.buf, r.width, r.height = rimage.BufferFromImage(src)
	r.ioLogger.CDebugw(ctx, "read image", "path", input, "width", r.width, "height", r.height)
	return r, nil
}

// SegmentAction segments the input image and writes the overlay.
func SegmentAction(c *cli.Context) error {
	r, err := newRun(c)
	if err != nil {
		return err
	}
	overlay, res, err := r.segmenter.Segment(r.ctx, r.buf, r.width, r.height)
	if err != nil {
		return err
	}
	if res.Stats.Unassigned > 0 {
		warningf(c.App.Writer, "%d pixels were outside every search window", res.Stats.Unassigned)
	}

	img, err := rimage.ImageFromBuffer(overlay, r.width, r.height)
	if err != nil {
		return err
	}
	var out image.Image = img
	if c.Bool(FlagComposite) {
		if c.Bool(FlagCaption) {
			out = rimage.CompositeWithCaption(r.src, img, fmt.Sprintf("%d superpixels", res.NumLabels), color.White)
		} else {
			out = rimage.Composite(r.src, img)
		}
	}

	output := c.Path(FlagOutput)
	if err := rimage.WriteImageToFile(output, out); err != nil {
		return err
	}
	r.ioLogger.CDebugw(r.ctx, "wrote image", "path", output)
	successf(c.App.Writer, "wrote %d superpixels to %s", res.NumLabels, output)
	return nil
}

// StatsAction segments the input image and prints a table of region statistics.
func StatsAction(c *cli.Context) error {
	r, err := newRun(c)
	if err != nil {
		return err
	}
	res, err := r.segmenter.SegmentLabels(r.ctx, r.buf, r.width, r.height)
	if err != nil {
		return err
	}

	infof(c.App.Writer, "%s: %dx%d, %d superpixels requested", c.Path(FlagInput), r.width, r.height,
		r.cfg.Segmentation.SegmentCount)
	printf(c.App.Writer, "%s", statsTable(res))
	return nil
}

func statsTable(res *superpixel.Result) string {
	s := res.Stats
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Statistic", "Value"})
	t.AppendRows([]table.Row{
		{"regions", s.Regions},
		{"grid spacing", fmt.Sprintf("%.3f", res.Spacing)},
		{"min area", s.MinArea},
		{"max area", s.MaxArea},
		{"mean area", fmt.Sprintf("%.2f", s.MeanArea)},
		{"area std dev", fmt.Sprintf("%.2f", s.StdDevArea)},
		{"merged fragments", s.Merged},
		{"empty clusters", s.Degenerate},
		{"unreached pixels", s.Unassigned},
	})
	return t.Render()
}
