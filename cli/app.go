// Package cli contains the slic command line tool.
package cli

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"go.viam.com/slic/vision/superpixel"
)

// Global flags.
const (
	flagConfig = "config"
	flagDebug  = "debug"
)

// Segmentation flags, shared by the segment and stats commands. They override the config file.
const (
	FlagInput       = "input"
	FlagOutput      = "output"
	FlagSegments    = "segments"
	FlagCompactness = "compactness"
	FlagIterations  = "iterations"
	FlagMaxDim      = "max-dim"
	FlagMode        = "mode"
	FlagHighlight   = "highlight"
	FlagComposite   = "composite"
	FlagCaption     = "caption"
)

func segmentationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.PathFlag{
			Name:      FlagInput,
			Aliases:   []string{"i"},
			Required:  true,
			TakesFile: true,
			Usage:     "image to segment",
		},
		&cli.IntFlag{
			Name:        FlagSegments,
			Aliases:     []string{"k"},
			Usage:       "target number of superpixels",
			DefaultText: fmt.Sprint(superpixel.DefaultSegmentCount),
		},
		&cli.Float64Flag{
			Name:        FlagCompactness,
			Aliases:     []string{"m"},
			Usage:       "weight of spatial distance against color distance",
			DefaultText: fmt.Sprint(superpixel.DefaultCompactness),
		},
		&cli.IntFlag{
			Name:        FlagIterations,
			Usage:       "clustering rounds",
			DefaultText: fmt.Sprint(superpixel.DefaultIterations),
		},
		&cli.IntFlag{
			Name:  FlagMaxDim,
			Usage: "downscale the input so neither side exceeds `PIXELS` (0 keeps the original size)",
		},
	}
}

// NewApp returns the slic app writing to the given outputs.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "slic",
		Usage:           "segment images into superpixels",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:      flagConfig,
				Aliases:   []string{"c"},
				TakesFile: true,
				Usage:     "load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "segment",
				Usage:     "write a superpixel overlay for an image",
				UsageText: fmt.Sprintf("slic segment --%s <image> --%s <image> [other options]", FlagInput, FlagOutput),
				Flags: append(segmentationFlags(),
					&cli.PathFlag{
						Name:      FlagOutput,
						Aliases:   []string{"o"},
						Required:  true,
						TakesFile: true,
						Usage:     "where to write the result; the extension picks the format",
					},
					&cli.StringFlag{
						Name:  FlagMode,
						Usage: "overlay style: boundary or fill",
					},
					&cli.StringFlag{
						Name:  FlagHighlight,
						Usage: "hex color of region boundaries",
					},
					&cli.BoolFlag{
						Name:  FlagComposite,
						Usage: "draw the overlay over the input instead of on a transparent background",
					},
					&cli.BoolFlag{
						Name:  FlagCaption,
						Usage: "label a composite with the region count",
					},
				),
				Action: SegmentAction,
			},
			{
				Name:   "stats",
				Usage:  "print region statistics for an image",
				Flags:  segmentationFlags(),
				Action: StatsAction,
			},
		},
	}
}
