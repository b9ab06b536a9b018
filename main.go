package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	flagOut   = "out"
	flagDim   = "dim"
	flagDebug = "debug"
	flagImage = "image"
)

func main() {
	if err := newApp(nil).Run(os.Args); err != nil {
		fatal(err.Error())
	}
}

// newApp builds the command line. A nil logger is built from --debug
// once flags are parsed.
func newApp(logger *zap.SugaredLogger) *cli.App {
	return &cli.App{
		Name:      "imgcoords",
		Usage:     "write an image's normalized axes and pixel colors to a text file",
		ArgsUsage: "[image]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagOut,
				Aliases: []string{"o"},
				Value:   defaultOutPath,
				EnvVars: []string{"IMGCOORDS_OUT"},
				Usage:   "write coordinates to `FILE`",
			},
			&cli.IntFlag{
				Name:    flagDim,
				Aliases: []string{"d"},
				Value:   DefaultDimension,
				EnvVars: []string{"IMGCOORDS_DIM"},
				Usage:   "number of values per axis, must be greater than 1",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				EnvVars: []string{"IMGCOORDS_DEBUG"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if logger != nil {
				return nil
			}
			var err error
			logger, err = newLogger(c.Bool(flagDebug))
			return err
		},
		Action: func(c *cli.Context) error {
			cfg, err := configFromContext(c)
			if err != nil {
				return err
			}
			return run(cfg, logger)
		},
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "print image width, height and the output line count",
				ArgsUsage: "[image]",
				Action: func(c *cli.Context) error {
					return info(c, logger)
				},
			},
			{
				Name:      "verify",
				Usage:     "parse an output file and print its axis and pixel counts",
				ArgsUsage: "[coords]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagImage,
						Usage: "check the pixel count against `IMAGE`",
					},
				},
				Action: func(c *cli.Context) error {
					return verify(c, logger)
				},
			},
		},
	}
}

func configFromContext(c *cli.Context) (Config, error) {
	if c.NArg() > 1 {
		return Config{}, errors.Errorf("expected a single image, got %d", c.NArg())
	}
	cfg := DefaultConfig()
	if c.Args().Present() {
		cfg.ImagePath = c.Args().First()
	}
	cfg.OutPath = c.String(flagOut)
	cfg.Dimension = c.Int(flagDim)
	return cfg, cfg.Validate()
}

// run loads the image, builds both axes and writes them out.
func run(cfg Config, logger *zap.SugaredLogger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Debugw("loading image", "path", cfg.ImagePath)
	img, err := LoadImage(cfg.ImagePath)
	if err != nil {
		return err
	}

	logger.Debugw("generating axes", "dimension", cfg.Dimension)
	x, y, err := Axes(cfg.Dimension)
	if err != nil {
		return err
	}

	logger.Debugw("writing coords", "path", cfg.OutPath)
	if err := WriteFile(cfg.OutPath, x, y, img.Pixels()); err != nil {
		return err
	}
	logger.Infow("wrote coords",
		"image", cfg.ImagePath,
		"width", img.Width(),
		"height", img.Height(),
		"lines", cfg.Lines(img.Width(), img.Height()),
		"out", cfg.OutPath,
	)
	return nil
}

func info(c *cli.Context, logger *zap.SugaredLogger) error {
	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}
	imgCfg, err := LoadImageConfig(cfg.ImagePath)
	if err != nil {
		return err
	}
	lines := cfg.Lines(imgCfg.Width, imgCfg.Height)

	out := c.App.Writer
	if f, ok := out.(*os.File); ok {
		cw, ch, err := cellSize(int(f.Fd()))
		if err == nil {
			_, err = fmt.Fprintf(out, "%d %d %d %d %d\n",
				imgCfg.Width, imgCfg.Height, lines, ceilDiv(imgCfg.Width, cw), ceilDiv(imgCfg.Height, ch))
			return err
		}
		logger.Debugw("skipping cell footprint", "error", err)
	}
	_, err = fmt.Fprintf(out, "%d %d %d\n", imgCfg.Width, imgCfg.Height, lines)
	return err
}

func verify(c *cli.Context, logger *zap.SugaredLogger) error {
	if c.NArg() > 1 {
		return errors.Errorf("expected a single coords file, got %d", c.NArg())
	}
	path := c.String(flagOut)
	if c.Args().Present() {
		path = c.Args().First()
	}

	logger.Debugw("parsing coords", "path", path, "dimension", c.Int(flagDim))
	coords, err := ReadFile(path, c.Int(flagDim))
	if err != nil {
		return err
	}
	if imgPath := c.String(flagImage); imgPath != "" {
		imgCfg, err := LoadImageConfig(imgPath)
		if err != nil {
			return err
		}
		if want := imgCfg.Width * imgCfg.Height; len(coords.Pixels) != want {
			return errors.Errorf("%s holds %d pixels but %s has %d", path, len(coords.Pixels), imgPath, want)
		}
	}
	_, err = fmt.Fprintf(c.App.Writer, "%d %d %d\n", len(coords.X), len(coords.Y), len(coords.Pixels))
	return err
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// noreturn
func fatal(err string) {
	fmt.Fprintf(os.Stderr, "imgcoords: %v\n", err)
	os.Exit(1)
}
