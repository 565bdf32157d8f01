package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"honnef.co/go/spline"
)

const (
	flagConfig    = "config"
	flagDebug     = "debug"
	flagAt        = "at"
	flagArc       = "arc"
	flagPoint     = "point"
	flagSamples   = "samples"
	flagStep      = "step"
	flagPrecision = "precision"

	defaultPrecision = 6
)

type app struct {
	logger *zap.Logger
}

func newApp(w io.Writer) *cli.App {
	a := &app{logger: zap.NewNop()}
	precision := &cli.IntFlag{
		Name:  flagPrecision,
		Value: defaultPrecision,
		Usage: "maximum number of decimals to print, 0 for exact output",
	}
	return &cli.App{
		Name:   "splinectl",
		Usage:  "query Catmull-Rom splines",
		Writer: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load the spline description from `FILE`",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return errors.Wrap(err, "creating logger")
				}
				a.logger = logger
			}
			return nil
		},
		After: func(c *cli.Context) error {
			_ = a.logger.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "length",
				Usage:  "print the arc length of the spline",
				Flags:  []cli.Flag{precision},
				Action: a.length,
			},
			{
				Name:      "sample",
				Usage:     "print position and derivatives at a location",
				UsageText: "splinectl sample --at X [--arc]",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:     flagAt,
						Required: true,
						Usage:    "normalized location, or arc length with --arc",
					},
					&cli.BoolFlag{
						Name:  flagArc,
						Usage: "interpret --at as arc length",
					},
					precision,
				},
				Action: a.sample,
			},
			{
				Name:  "normalize",
				Usage: "convert an arc length location to a normalized location",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:     flagAt,
						Required: true,
						Usage:    "arc length location",
					},
					precision,
				},
				Action: a.normalize,
			},
			{
				Name:  "closest",
				Usage: "find the point on the spline closest to a point",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     flagPoint,
						Required: true,
						Usage:    "query point as `x,y[,z]`",
					},
					&cli.IntFlag{
						Name:  flagSamples,
						Value: spline.DefaultClosestSamples,
						Usage: "samples of the coarse scan per segment",
					},
					precision,
				},
				Action: a.closest,
			},
			{
				Name:  "svg",
				Usage: "print the spline's x/y projection as SVG path data",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  flagStep,
						Value: 0.1,
						Usage: "distance between samples, in normalized location",
					},
					precision,
				},
				Action: a.svg,
			},
		},
	}
}

// load reads the spline description named by the global config flag.
func (a *app) load(c *cli.Context) (*splineConfig, spline.Spline[r3.Vector, r3.Vector], error) {
	path := c.String(flagConfig)
	if path == "" {
		return nil, spline.Spline[r3.Vector, r3.Vector]{}, errors.New("no spline description, use --config")
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, spline.Spline[r3.Vector, r3.Vector]{}, errors.Wrapf(err, "loading %s", path)
	}
	s := cfg.spline()
	a.logger.Debug("loaded spline",
		zap.String("path", path),
		zap.Stringer("type", s.Type()),
		zap.String("margins", cfg.Margins),
		zap.Int("handles", s.HandleCount()),
		zap.Int("segments", s.SegmentCount()))
	return cfg, s, nil
}

func (a *app) length(c *cli.Context) error {
	cfg, s, err := a.load(c)
	if err != nil {
		return err
	}
	l, err := s.Length(cfg.Samples)
	if err != nil {
		return errors.Wrap(err, "computing length")
	}
	a.logger.Debug("computed length", zap.Int("samples", cfg.Samples), zap.Float64("length", l))
	return printf(c, "%s\n", formatNumber(l, c.Int(flagPrecision)))
}

func (a *app) sample(c *cli.Context) error {
	cfg, s, err := a.load(c)
	if err != nil {
		return err
	}
	at := c.Float64(flagAt)
	var sample spline.Sample[r3.Vector, r3.Vector]
	if c.Bool(flagArc) {
		sample, err = s.SampleAtWith(spline.Location(at), cfg.Samples)
	} else {
		sample, err = s.Sample(spline.NormalizedLocation(at))
	}
	if err != nil {
		return errors.Wrapf(err, "sampling at %g", at)
	}
	prec := c.Int(flagPrecision)
	return printf(c, "location %s\nposition %s\ntangent %s\ncurvature %s\n",
		formatNumber(float64(sample.Location), prec),
		formatVector(sample.Position, prec),
		formatVector(sample.Tangent, prec),
		formatVector(sample.Curvature, prec))
}

func (a *app) normalize(c *cli.Context) error {
	cfg, s, err := a.load(c)
	if err != nil {
		return err
	}
	at := c.Float64(flagAt)
	loc, err := s.NormalizeWith(spline.Location(at), cfg.Samples)
	if err != nil {
		return errors.Wrapf(err, "normalizing %g", at)
	}
	return printf(c, "%s\n", formatNumber(float64(loc), c.Int(flagPrecision)))
}

func (a *app) closest(c *cli.Context) error {
	cfg, s, err := a.load(c)
	if err != nil {
		return err
	}
	q, err := parsePoint(c.String(flagPoint))
	if err != nil {
		return err
	}
	samples := c.Int(flagSamples)
	if samples < 2 {
		return errors.Errorf("samples: need at least 2, got %d", samples)
	}
	res, err := s.ClosestPoint(q, samples)
	if err != nil {
		return errors.Wrap(err, "finding closest point")
	}
	abs, err := s.DenormalizeWith(res.Location, cfg.Samples)
	if err != nil {
		return errors.Wrap(err, "computing arc length location")
	}
	a.logger.Debug("found closest point",
		zap.Float64("location", float64(res.Location)),
		zap.Float64("distance", res.Distance))
	prec := c.Int(flagPrecision)
	return printf(c, "location %s\narc %s\nposition %s\ndistance %s\n",
		formatNumber(float64(res.Location), prec),
		formatNumber(float64(abs), prec),
		formatVector(res.Position, prec),
		formatNumber(res.Distance, prec))
}

func (a *app) svg(c *cli.Context) error {
	_, s, err := a.load(c)
	if err != nil {
		return err
	}
	step := c.Float64(flagStep)
	if !(step > 0) {
		return errors.Errorf("step: must be positive, got %g", step)
	}
	if _, err := s.Segments(); err != nil {
		return errors.Wrap(err, "sampling spline")
	}
	n := float64(s.SegmentCount())
	var pts []r3.Vector
	for i := 0; ; i++ {
		loc := min(float64(i)*step, n)
		pts = append(pts, s.MustSample(spline.NormalizedLocation(loc)).Position)
		if loc == n {
			break
		}
	}
	a.logger.Debug("sampled spline", zap.Int("points", len(pts)))
	if err := writeSVGPath(c.App.Writer, pts, c.Int(flagPrecision)); err != nil {
		return err
	}
	return printf(c, "\n")
}

func printf(c *cli.Context, format string, args ...any) error {
	_, err := fmt.Fprintf(c.App.Writer, format, args...)
	return err
}

// parsePoint parses a point given as two or three comma separated
// coordinates.
func parsePoint(s string) (r3.Vector, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 && len(fields) != 3 {
		return r3.Vector{}, errors.Errorf("point: need 2 or 3 coordinates, got %q", s)
	}
	var coords [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return r3.Vector{}, errors.Wrapf(err, "point: coordinate %d", i)
		}
		coords[i] = v
	}
	return r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
