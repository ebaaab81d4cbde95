package superpixel

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Stats describes the regions of one segmentation run.
type Stats struct {
	Regions    int     `json:"regions"`
	MinArea    int     `json:"min_area"`
	MaxArea    int     `json:"max_area"`
	MeanArea   float64 `json:"mean_area"`
	StdDevArea float64 `json:"stddev_area"`

	// Unassigned counts pixels no clustering window reached.
	Unassigned int `json:"unassigned"`
	// Degenerate counts centroid updates skipped for lack of members, over all rounds.
	Degenerate int `json:"degenerate"`
	// Merged counts fragments folded into a neighbor by the connectivity pass.
	Merged int `json:"merged"`
}

// RegionAreas returns the pixel count of every label in [0, numLabels). Labels outside that
// range are not counted.
func RegionAreas(labels *LabelMap, numLabels int) []int {
	areas := make([]int, numLabels)
	for _, l := range labels.Labels {
		if l >= 0 && int(l) < numLabels {
			areas[l]++
		}
	}
	return areas
}

// ComputeStats fills the area statistics of a connected label map.
func ComputeStats(labels *LabelMap, numLabels int) Stats {
	areas := RegionAreas(labels, numLabels)
	s := Stats{Regions: numLabels}
	if numLabels == 0 {
		return s
	}
	s.MinArea = lo.Min(areas)
	s.MaxArea = lo.Max(areas)
	data := lo.Map(areas, func(a, _ int) float64 { return float64(a) })
	if len(data) == 1 {
		s.MeanArea = data[0]
		return s
	}
	s.MeanArea, s.StdDevArea = stat.MeanStdDev(data, nil)
	return s
}
