package main

import (
	"bytes"
	"os"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"honnef.co/go/spline"
	"honnef.co/go/spline/geom"
)

const (
	marginsAuto     = "auto"
	marginsExplicit = "explicit"
)

// splineConfig is the YAML description of a spline.
type splineConfig struct {
	Type    string      `yaml:"type"`
	Margins string      `yaml:"margins"`
	Samples int         `yaml:"samples"`
	Handles [][]float64 `yaml:"handles"`
}

// loadConfig reads and validates the spline description at path.
func loadConfig(path string) (*splineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading spline description")
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*splineConfig, error) {
	var cfg splineConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding spline description")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks the description and fills in defaults.
func (cfg *splineConfig) validate() error {
	if cfg.Type == "" {
		cfg.Type = spline.Centripetal.String()
	}
	if _, ok := spline.ParseType(cfg.Type); !ok {
		return errors.Errorf("type: unknown spline type %q", cfg.Type)
	}
	switch cfg.Margins = strings.ToLower(cfg.Margins); cfg.Margins {
	case "":
		cfg.Margins = marginsAuto
	case marginsAuto, marginsExplicit:
	default:
		return errors.Errorf("margins: must be %q or %q, got %q", marginsAuto, marginsExplicit, cfg.Margins)
	}
	switch {
	case cfg.Samples == 0:
		cfg.Samples = spline.DefaultSamplesPerSegment
	case cfg.Samples < 0:
		return errors.Errorf("samples: must be positive, got %d", cfg.Samples)
	}
	for i, h := range cfg.Handles {
		if len(h) != 2 && len(h) != 3 {
			return errors.Errorf("handles[%d]: need 2 or 3 coordinates, got %d", i, len(h))
		}
	}
	return nil
}

func (cfg *splineConfig) handles() []r3.Vector {
	out := make([]r3.Vector, len(cfg.Handles))
	for i, h := range cfg.Handles {
		out[i] = r3.Vector{X: h[0], Y: h[1]}
		if len(h) == 3 {
			out[i].Z = h[2]
		}
	}
	return out
}

// spline builds the described spline. The description must have been
// validated.
func (cfg *splineConfig) spline() spline.Spline[r3.Vector, r3.Vector] {
	typ, _ := spline.ParseType(cfg.Type)
	if cfg.Margins == marginsExplicit {
		return spline.FromHandlesIncludingMargin[r3.Vector, r3.Vector](geom.Space{}, cfg.handles(), typ)
	}
	return spline.FromInterpolating[r3.Vector, r3.Vector](geom.Space{}, cfg.handles(), typ)
}
