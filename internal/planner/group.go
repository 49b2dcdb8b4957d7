package planner

import (
	"sort"

	"github.com/piwi3910/stickernest/internal/model"
)

// tagged is one group tag's designs, generalizing the teacher's
// materialGroup (internal/engine/optimizer.go) from sheet-material
// compatibility to an arbitrary caller-supplied compatibility tag on a
// PackablePolygon.
type tagged struct {
	tag     string
	designs []model.PackablePolygon
}

// groupByTag partitions designs by Tag. Each physical design instance is
// packed exactly once, so, unlike the teacher's universal *stocks* (which
// are genuinely reusable across every material group), untagged designs
// do not get replicated into every tag group — they form one dedicated
// untagged group of their own, matching how the teacher's universal
// *parts* get a single dedicated group rather than one copy per material.
// A pool with no tags at all collapses into a single untagged group.
func groupByTag(designs []model.PackablePolygon) []tagged {
	tagSet := make(map[string]bool)
	var universal []model.PackablePolygon
	for _, d := range designs {
		if d.Tag == "" {
			universal = append(universal, d)
			continue
		}
		tagSet[d.Tag] = true
	}

	if len(tagSet) == 0 {
		return []tagged{{designs: designs}}
	}

	tags := make([]string, 0, len(tagSet))
	for t := range tagSet {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	groups := make([]tagged, 0, len(tags)+1)
	for _, t := range tags {
		g := tagged{tag: t}
		for _, d := range designs {
			if d.Tag == t {
				g.designs = append(g.designs, d)
			}
		}
		groups = append(groups, g)
	}
	if len(universal) > 0 {
		groups = append(groups, tagged{designs: universal})
	}
	return groups
}
