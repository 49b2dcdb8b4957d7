package packer

import (
	"github.com/piwi3910/stickernest/internal/geom"
	"github.com/piwi3910/stickernest/internal/model"
)

// Unit selects the coordinate system of a Pack/PackMulti/Estimate call's
// inputs and outputs. The core always computes in inches (model.Options,
// every strategy, and the planner are unit-agnostic in the sense that
// they simply trust the numbers they are given to already be inches);
// this facade is the only place a millimeter caller's numbers are
// converted, per internal/model/units.go.
type Unit int

const (
	Inches Unit = iota
	Millimeters
)

func (u Unit) toInches(polygons []model.PackablePolygon, sheetW, sheetH, spacing float64) ([]model.PackablePolygon, float64, float64, float64) {
	if u != Millimeters {
		return polygons, sheetW, sheetH, spacing
	}
	out := make([]model.PackablePolygon, len(polygons))
	for i, p := range polygons {
		pts := model.PolygonFromMM(p.Points)
		out[i] = model.NewPackablePolygon(p.ID, pts)
		out[i].Tag = p.Tag
	}
	return out, sheetW / model.MMPerInch, sheetH / model.MMPerInch, spacing / model.MMPerInch
}

func (u Unit) placementToOutput(p model.Placement) model.Placement {
	if u != Millimeters {
		return p
	}
	mm := model.PointToMM(geom.Point{X: p.X, Y: p.Y})
	p.X, p.Y = mm.X, mm.Y
	if p.Points != nil {
		p.Points = model.PolygonToMM(p.Points)
	}
	return p
}

func (u Unit) resultToOutput(r model.Result) model.Result {
	if u != Millimeters {
		return r
	}
	out := make([]model.Placement, len(r.Placements))
	for i, p := range r.Placements {
		out[i] = u.placementToOutput(p)
	}
	r.Placements = out
	return r
}

func (u Unit) multiResultToOutput(r model.MultiSheetResult) model.MultiSheetResult {
	if u != Millimeters {
		return r
	}
	sheets := make([]model.Sheet, len(r.Sheets))
	for i, sheet := range r.Sheets {
		placements := make([]model.Placement, len(sheet.Placements))
		for j, p := range sheet.Placements {
			placements[j] = u.placementToOutput(p)
		}
		sheet.Placements = placements
		sheets[i] = sheet
	}
	r.Sheets = sheets
	return r
}
