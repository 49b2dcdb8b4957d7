// nest is a small demo CLI that exercises the packer facade end to end:
// it reads a JSON job description from a file or stdin, runs Pack,
// PackMulti, or Estimate per -mode, and writes the JSON result to
// stdout.
//
// Usage:
//
//	nest -mode=pack -job=job.json
//	cat job.json | nest -mode=multi
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/piwi3910/stickernest/internal/geom"
	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/packer"
	"github.com/piwi3910/stickernest/internal/strategy"
)

// jobPolygon is one named polygon's vertices in a job file, ordered CCW
// or CW (the geometry kernel normalizes internally where it matters).
type jobPolygon struct {
	ID     string       `json:"id"`
	Points [][2]float64 `json:"points"`
	Tag    string       `json:"tag,omitempty"`
}

// job is the JSON shape read from -job or stdin.
type job struct {
	Polygons     []jobPolygon `json:"polygons"`
	SheetWidth   float64      `json:"sheet_width"`
	SheetHeight  float64      `json:"sheet_height"`
	Spacing      float64      `json:"spacing"`
	Strategy     string       `json:"strategy"`
	Rotations    []float64    `json:"rotations,omitempty"`
	PageCount    int          `json:"page_count,omitempty"`
	PackAllItems bool         `json:"pack_all_items,omitempty"`
	Millimeters  bool         `json:"millimeters,omitempty"`
}

func main() {
	mode := flag.String("mode", "pack", "Operation: pack, multi, estimate")
	jobPath := flag.String("job", "", "Path to a job JSON file; reads stdin if empty")
	flag.Parse()

	j, err := readJob(*jobPath)
	if err != nil {
		log.Fatalf("read job: %v", err)
	}

	polygons := toPackable(j.Polygons)
	opts := model.DefaultOptions()
	if len(j.Rotations) > 0 {
		opts.Rotations = j.Rotations
	}
	opts.Spacing = j.Spacing
	opts.PackAllItems = j.PackAllItems
	kind := strategy.Kind(j.Strategy)
	if kind == "" {
		kind = strategy.Raster
	}
	unit := packer.Inches
	if j.Millimeters {
		unit = packer.Millimeters
	}

	var result any
	switch *mode {
	case "pack":
		result, err = packer.Pack(context.Background(), polygons, j.SheetWidth, j.SheetHeight, kind, opts, unit, nil)
	case "multi":
		pageCount := j.PageCount
		if pageCount <= 0 {
			pageCount = 1
		}
		result, err = packer.PackMulti(context.Background(), polygons, j.SheetWidth, j.SheetHeight, pageCount, kind, opts, unit, nil)
	case "estimate":
		pageCount := j.PageCount
		if pageCount <= 0 {
			pageCount = 1
		}
		result, err = packer.Estimate(polygons, j.SheetWidth, j.SheetHeight, pageCount, j.Spacing, unit)
	default:
		log.Fatalf("unknown mode %q (want pack, multi, or estimate)", *mode)
	}
	if err != nil {
		log.Fatalf("%s: %v", *mode, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("write result: %v", err)
	}
}

func readJob(path string) (job, error) {
	var r io.Reader
	if path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return job{}, err
		}
		defer f.Close()
		r = f
	}

	var j job
	if err := json.NewDecoder(r).Decode(&j); err != nil {
		return job{}, fmt.Errorf("decode: %w", err)
	}
	return j, nil
}

func toPackable(in []jobPolygon) []model.PackablePolygon {
	out := make([]model.PackablePolygon, len(in))
	for i, p := range in {
		pts := make(geom.Polygon, len(p.Points))
		for j, v := range p.Points {
			pts[j] = geom.Point{X: v[0], Y: v[1]}
		}
		pp := model.NewPackablePolygon(p.ID, pts)
		pp.Tag = p.Tag
		out[i] = pp
	}
	return out
}
