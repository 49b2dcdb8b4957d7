package planner

import (
	"math"
	"sort"

	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/strategy"
)

// SortCandidates orders pool in place for the given strategy: height
// descending then area descending for raster and bottom-left, area
// descending for gravity, and area descending (vertex-count weighted when
// weightByVertexCount is set) for nfp, matching the packing order each
// strategy was built to exploit.
func SortCandidates(pool []model.PackablePolygon, kind strategy.Kind, weightByVertexCount bool) {
	switch kind {
	case strategy.Gravity:
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].Area > pool[j].Area
		})
	case strategy.NFP:
		if weightByVertexCount {
			sort.SliceStable(pool, func(i, j int) bool {
				return weightedArea(pool[i]) > weightedArea(pool[j])
			})
			return
		}
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].Area > pool[j].Area
		})
	default: // raster, bottom-left
		sort.SliceStable(pool, func(i, j int) bool {
			if pool[i].Height != pool[j].Height {
				return pool[i].Height > pool[j].Height
			}
			return pool[i].Area > pool[j].Area
		})
	}
}

// weightedArea prioritizes hard-to-place shapes for the NFP sampler by
// scaling area by the square root of vertex count.
func weightedArea(p model.PackablePolygon) float64 {
	return p.Area * math.Sqrt(float64(len(p.Points)))
}
