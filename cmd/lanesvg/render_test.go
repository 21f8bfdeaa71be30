package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/roadgeom"
)

func TestBuildScene(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sceneYAML))
	require.NoError(t, err)
	fl, err := cfg.Flattener.BuildFlattener()
	require.NoError(t, err)

	scene, err := BuildScene(cfg, fl)
	require.NoError(t, err)
	require.Len(t, scene.Lines, 6)

	approach := scene.Lines[0]
	assert.Equal(t, "approach", approach.Name)
	assert.Equal(t, roadgeom.Pt(0, 0), approach.Design.First())
	assert.Equal(t, roadgeom.Pt(50, 0), approach.Design.Last())
	require.Len(t, approach.Lanes, 1)

	lane := approach.Lanes[0]
	assert.Equal(t, roadgeom.Pt(0, 0), lane.Left.First())
	assert.Equal(t, roadgeom.Pt(0, -1.75), lane.Center.First())
	assert.Equal(t, roadgeom.Pt(0, -3.5), lane.Right.First())
	assert.Equal(t, roadgeom.Pt(50, -3.5), lane.Right.Last())

	box := scene.BoundingBox()
	assert.LessOrEqual(t, box.Y0, -3.5)
	assert.GreaterOrEqual(t, box.X1, 50.0)
}

func TestBuildSceneError(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
lines:
  - name: short
    kind: straight
    length: 10
    lanes:
      - name: past
        slices:
          - {position: 0, offset: 0, width: 3}
          - {position: 20, offset: 0, width: 3}
`))
	require.NoError(t, err)
	fl, err := roadgeom.MaxDeviation(0.1)
	require.NoError(t, err)

	_, err = BuildScene(cfg, fl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `line "short": lane "past"`)
	assert.ErrorIs(t, err, roadgeom.ErrValidation)
}

func TestWriteSVG(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
lines:
  - name: main
    kind: straight
    start: {x: 0, y: 0, heading: 0}
    length: 100
    lanes:
      - name: left
        slices:
          - {position: 0, offset: 1.5, width: 3}
          - {end: true, offset: 1.5, width: 3}
`))
	require.NoError(t, err)
	fl, err := roadgeom.NumSegments(1)
	require.NoError(t, err)
	scene, err := BuildScene(cfg, fl)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, scene.WriteSVG(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox=`))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, `<g id="main">`)
	// The lane lies above the design line, which is negative y in SVG.
	assert.Contains(t, out, `d="M0,-3 L100,-3 L100,0 L0,0 Z"`)
	assert.Contains(t, out, `class="design" d="M0,0 L100,0"`)
	assert.Contains(t, out, `class="center" d="M0,-1.5 L100,-1.5"`)
}
