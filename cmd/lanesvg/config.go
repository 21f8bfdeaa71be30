package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/roadgeom"
)

// Config is a scene: design lines with their lanes, and the flattener used to
// draw them.
type Config struct {
	Flattener FlattenerConfig `yaml:"flattener"`
	Lines     []LineConfig    `yaml:"lines"`
}

type FlattenerConfig struct {
	// Kind is one of segments, deviation, angle and deviation-angle.
	Kind      string  `yaml:"kind"`
	Segments  int     `yaml:"segments"`
	Deviation float64 `yaml:"deviation"`
	Angle     float64 `yaml:"angle"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type OrientedPointConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Heading float64 `yaml:"heading"`
}

func (op OrientedPointConfig) point() roadgeom.OrientedPoint {
	return roadgeom.OPt(op.X, op.Y, op.Heading)
}

// LineConfig describes one design line. Which fields are used depends on
// Kind:
//
//   - straight: start, length
//   - arc: start, radius, left, and angle or length
//   - clothoid: start and end, or start, length, startCurvature and
//     endCurvature
//   - bezier: start, end and optionally shape
//   - polyline: points
type LineConfig struct {
	Name           string               `yaml:"name"`
	Kind           string               `yaml:"kind"`
	Start          OrientedPointConfig  `yaml:"start"`
	End            *OrientedPointConfig `yaml:"end"`
	Radius         float64              `yaml:"radius"`
	Left           bool                 `yaml:"left"`
	Angle          float64              `yaml:"angle"`
	Length         float64              `yaml:"length"`
	StartCurvature float64              `yaml:"startCurvature"`
	EndCurvature   float64              `yaml:"endCurvature"`
	Shape          float64              `yaml:"shape"`
	Points         []PointConfig        `yaml:"points"`
	Lanes          []LaneConfig         `yaml:"lanes"`
}

type LaneConfig struct {
	Name   string        `yaml:"name"`
	Slices []SliceConfig `yaml:"slices"`
}

type SliceConfig struct {
	Position float64 `yaml:"position"`
	Offset   float64 `yaml:"offset"`
	Width    float64 `yaml:"width"`
	// End places the slice at the end of the line, whatever its length.
	End bool `yaml:"end"`
}

// Load reads and validates the scene in the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a scene. Unknown fields are rejected.
func Parse(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty config")
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the structure of the scene. Geometric constraints are
// checked when the lines are built.
func (cfg *Config) Validate() error {
	switch cfg.Flattener.Kind {
	case "", "segments", "deviation", "angle", "deviation-angle":
	default:
		return fmt.Errorf("unknown flattener kind %q", cfg.Flattener.Kind)
	}
	if len(cfg.Lines) == 0 {
		return errors.New("no lines")
	}
	names := make(map[string]bool, len(cfg.Lines))
	for i := range cfg.Lines {
		lc := &cfg.Lines[i]
		if lc.Name == "" {
			lc.Name = fmt.Sprintf("line%d", i+1)
		}
		if names[lc.Name] {
			return fmt.Errorf("duplicate line name %q", lc.Name)
		}
		names[lc.Name] = true
		switch lc.Kind {
		case "straight", "arc", "clothoid", "polyline":
		case "bezier":
			if lc.End == nil {
				return fmt.Errorf("line %q: bezier needs an end point", lc.Name)
			}
		default:
			return fmt.Errorf("line %q: unknown kind %q", lc.Name, lc.Kind)
		}
		for j := range lc.Lanes {
			lane := &lc.Lanes[j]
			if lane.Name == "" {
				lane.Name = fmt.Sprintf("lane%d", j+1)
			}
			if len(lane.Slices) == 0 {
				return fmt.Errorf("line %q: lane %q has no slices", lc.Name, lane.Name)
			}
		}
	}
	return nil
}

// BuildFlattener returns the configured Flattener. Without a kind, lines are
// flattened to a maximum deviation of 0.01.
func (fc FlattenerConfig) BuildFlattener() (roadgeom.Flattener, error) {
	switch fc.Kind {
	case "segments":
		return roadgeom.NumSegments(fc.Segments)
	case "deviation":
		return roadgeom.MaxDeviation(fc.Deviation)
	case "angle":
		return roadgeom.MaxAngle(fc.Angle)
	case "deviation-angle":
		return roadgeom.MaxDeviationAndAngle(fc.Deviation, fc.Angle)
	case "":
		return roadgeom.MaxDeviation(0.01)
	default:
		return roadgeom.Flattener{}, fmt.Errorf("unknown flattener kind %q", fc.Kind)
	}
}

// Build constructs the design line.
func (lc LineConfig) Build() (roadgeom.ContinuousLine, error) {
	start := lc.Start.point()
	switch lc.Kind {
	case "straight":
		return roadgeom.NewContinuousStraight(start, lc.Length)
	case "arc":
		if lc.Angle == 0 && lc.Length != 0 {
			return roadgeom.NewContinuousArcLength(start, lc.Radius, lc.Left, lc.Length)
		}
		return roadgeom.NewContinuousArc(start, lc.Radius, lc.Left, lc.Angle)
	case "clothoid":
		if lc.End != nil {
			return roadgeom.NewContinuousClothoid(start, lc.End.point())
		}
		return roadgeom.NewContinuousClothoidLength(start, lc.Length, lc.StartCurvature, lc.EndCurvature)
	case "bezier":
		if lc.End == nil {
			return nil, errors.New("bezier needs an end point")
		}
		shape := lc.Shape
		if shape == 0 {
			shape = 1
		}
		return roadgeom.NewContinuousBezierCubicBetween(start, lc.End.point(), shape)
	case "polyline":
		pts := make([]roadgeom.Point, len(lc.Points))
		for i, pt := range lc.Points {
			pts[i] = roadgeom.Pt(pt.X, pt.Y)
		}
		line, err := roadgeom.NewPolyline(pts...)
		if err != nil {
			return nil, err
		}
		return roadgeom.NewContinuousPolyLine(line)
	default:
		return nil, fmt.Errorf("unknown kind %q", lc.Kind)
	}
}

// crossSection converts the lane's slices, resolving slices placed at the
// end of line.
func (lane LaneConfig) crossSection(line roadgeom.ContinuousLine) []roadgeom.CrossSectionSlice {
	out := make([]roadgeom.CrossSectionSlice, len(lane.Slices))
	for i, s := range lane.Slices {
		pos := s.Position
		if s.End {
			pos = line.Length()
		}
		out[i] = roadgeom.CrossSectionSlice{Position: pos, Offset: s.Offset, Width: s.Width}
	}
	return out
}
