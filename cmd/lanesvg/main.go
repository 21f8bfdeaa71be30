// Command lanesvg draws road design lines and their lanes, described in a
// YAML file, as an SVG document.
//
// Usage:
//
//	lanesvg -config scene.yaml [-o out.svg] [-deviation eps] [-v]
//
// A scene lists design lines and, for each, lanes given by cross-section
// slices:
//
//	flattener:
//	  kind: deviation
//	  deviation: 0.01
//	lines:
//	  - name: main
//	    kind: clothoid
//	    start: {x: 0, y: 0, heading: 0}
//	    length: 100
//	    startCurvature: 0
//	    endCurvature: 0.01
//	    lanes:
//	      - name: right
//	        slices:
//	          - {position: 0, offset: -1.75, width: 3.5}
//	          - {end: true, offset: -1.75, width: 3.5}
package main

import (
	"bufio"
	"flag"
	"log"
	"log/slog"
	"os"

	"honnef.co/go/roadgeom"
)

func main() {
	var (
		configPath = flag.String("config", "", "scene configuration (YAML)")
		output     = flag.String("o", "", "output file (default stdout)")
		deviation  = flag.Float64("deviation", 0, "override the flattener with a maximum deviation")
		verbose    = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("lanesvg: ")

	if *configPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
		roadgeom.SetLogger(logger)
	}

	cfg, err := Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	fc := cfg.Flattener
	if *deviation != 0 {
		fc = FlattenerConfig{Kind: "deviation", Deviation: *deviation}
	}
	fl, err := fc.BuildFlattener()
	if err != nil {
		log.Fatal(err)
	}
	scene, err := BuildScene(cfg, fl)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal(err)
		}
		out = f
	}
	bw := bufio.NewWriter(out)
	if err := scene.WriteSVG(bw); err != nil {
		log.Fatal(err)
	}
	if err := bw.Flush(); err != nil {
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}
	slog.Debug("wrote scene", "lines", len(scene.Lines), "output", *output)
}
