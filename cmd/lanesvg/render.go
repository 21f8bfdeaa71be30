package main

import (
	"fmt"
	"html"
	"io"
	"iter"
	"log/slog"

	"honnef.co/go/roadgeom"
)

// Scene holds the flattened geometry of a configuration.
type Scene struct {
	Lines []SceneLine
}

type SceneLine struct {
	Name   string
	Design roadgeom.Polyline
	Lanes  []SceneLane
}

type SceneLane struct {
	Name                string
	Center, Left, Right roadgeom.Polyline
}

// BuildScene builds and flattens every line and lane of cfg with fl.
func BuildScene(cfg *Config, fl roadgeom.Flattener) (*Scene, error) {
	scene := &Scene{Lines: make([]SceneLine, 0, len(cfg.Lines))}
	for _, lc := range cfg.Lines {
		line, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", lc.Name, err)
		}
		design, err := line.Flatten(fl)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", lc.Name, err)
		}
		slog.Debug("flattened design line", "line", lc.Name, "kind", lc.Kind,
			"length", line.Length(), "points", design.Len())

		sl := SceneLine{Name: lc.Name, Design: design}
		for _, lane := range lc.Lanes {
			sc, err := buildLane(line, lane, fl)
			if err != nil {
				return nil, fmt.Errorf("line %q: lane %q: %w", lc.Name, lane.Name, err)
			}
			sl.Lanes = append(sl.Lanes, sc)
		}
		scene.Lines = append(scene.Lines, sl)
	}
	return scene, nil
}

func buildLane(line roadgeom.ContinuousLine, lane LaneConfig, fl roadgeom.Flattener) (SceneLane, error) {
	cs := lane.crossSection(line)
	out := SceneLane{Name: lane.Name}
	for _, edge := range []struct {
		offsets func(roadgeom.ContinuousLine, []roadgeom.CrossSectionSlice) (*roadgeom.FractionalLengthData, error)
		dst     *roadgeom.Polyline
	}{
		{roadgeom.CenterOffsets, &out.Center},
		{roadgeom.LeftEdgeOffsets, &out.Left},
		{roadgeom.RightEdgeOffsets, &out.Right},
	} {
		offsets, err := edge.offsets(line, cs)
		if err != nil {
			return SceneLane{}, err
		}
		l, err := line.FlattenOffset(offsets, fl)
		if err != nil {
			return SceneLane{}, err
		}
		*edge.dst = l
	}
	return out, nil
}

// BoundingBox returns the bounding box of all lines and lanes.
func (s *Scene) BoundingBox() roadgeom.Rect {
	var (
		r     roadgeom.Rect
		first = true
	)
	add := func(l roadgeom.Polyline) {
		if first {
			r = l.BoundingBox()
			first = false
			return
		}
		r = r.Union(l.BoundingBox())
	}
	for _, sl := range s.Lines {
		add(sl.Design)
		for _, lane := range sl.Lanes {
			add(lane.Left)
			add(lane.Right)
		}
	}
	return r
}

// svgPath formats seq for an SVG document. Geometry is y-up, SVG is y-down.
func svgPath(seq iter.Seq[roadgeom.PathElement]) string {
	return roadgeom.SVG(roadgeom.TransformElements(seq, roadgeom.FlipY), roadgeom.SVGOptions{MaxPrecision: 3})
}

// WriteSVG writes the scene as an SVG document. Lanes are drawn as filled
// areas with their edges and a dashed center line, design lines on top.
func (s *Scene) WriteSVG(w io.Writer) error {
	box := s.BoundingBox().Transform(roadgeom.FlipY)
	margin := 0.05*max(box.Width(), box.Height()) + 1
	box = box.Inflate(margin, margin)
	stroke := max(box.Width(), box.Height()) / 1000

	var err error
	printf := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	printf("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%.3f %.3f %.3f %.3f\">\n",
		box.X0, box.Y0, box.Width(), box.Height())
	for _, sl := range s.Lines {
		printf("<g id=\"%s\">\n", html.EscapeString(sl.Name))
		for _, lane := range sl.Lanes {
			printf("<path class=\"lane\" data-name=\"%s\" d=\"%s\" fill=\"#d0d0d0\" stroke=\"none\"/>\n",
				html.EscapeString(lane.Name), svgPath(roadgeom.Contour(lane.Left, lane.Right)))
			for _, edge := range []roadgeom.Polyline{lane.Left, lane.Right} {
				printf("<path class=\"edge\" d=\"%s\" fill=\"none\" stroke=\"#404040\" stroke-width=\"%.3g\"/>\n",
					svgPath(edge.PathElements()), stroke)
			}
			printf("<path class=\"center\" d=\"%s\" fill=\"none\" stroke=\"#ffffff\" stroke-width=\"%.3g\" stroke-dasharray=\"%.3g\"/>\n",
				svgPath(lane.Center.PathElements()), stroke, 10*stroke)
		}
		printf("<path class=\"design\" d=\"%s\" fill=\"none\" stroke=\"#d02020\" stroke-width=\"%.3g\"/>\n",
			svgPath(sl.Design.PathElements()), stroke)
		printf("</g>\n")
	}
	printf("</svg>\n")
	return err
}
