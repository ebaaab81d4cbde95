package superpixel

import (
	"github.com/chewxy/math32"
)

// Distance is the L1 distance between a pixel and a centroid, with the spatial part weighted
// by xyCoeff (compactness / spacing).
func Distance(p, c FeaturePoint, xyCoeff float32) float32 {
	color := math32.Abs(p.L-c.L) + math32.Abs(p.A-c.A) + math32.Abs(p.B-c.B)
	spatial := math32.Abs(p.X-c.X) + math32.Abs(p.Y-c.Y)
	// The explicit conversion keeps the product from being fused into the addition.
	return color + float32(xyCoeff*spatial)
}

// IterationReport summarizes one assign/update round.
type IterationReport struct {
	// Degenerate lists the centroids that ended the round without members. They keep their
	// previous value.
	Degenerate []int
}

type centroidSum struct {
	l, a, b, x, y float64
	count         int
}

// Clusterer runs SLIC assignment rounds over a pixel field. Centroids are swept in index order
// and a pixel only moves to a strictly closer centroid; both rules shape the result and are
// kept deliberately.
type Clusterer struct {
	field     *PixelField
	centroids []FeaturePoint
	labels    *LabelMap
	spacing   float64
	xyCoeff   float32
	behind    float64
	ahead     float64
	sums      []centroidSum
}

// NewClusterer takes ownership of centroids.
func NewClusterer(field *PixelField, centroids []FeaturePoint, spacing float64, cfg Config) *Clusterer {
	return &Clusterer{
		field:     field,
		centroids: centroids,
		labels:    NewLabelMap(field.Width, field.Height),
		spacing:   spacing,
		xyCoeff:   float32(cfg.Compactness / spacing),
		behind:    cfg.WindowBehind,
		ahead:     cfg.WindowAhead,
		sums:      make([]centroidSum, len(centroids)),
	}
}

// Labels returns the current label map. Values are Unassigned or in [0, len(centroids)).
func (c *Clusterer) Labels() *LabelMap {
	return c.labels
}

// Centroids returns the current centroids.
func (c *Clusterer) Centroids() []FeaturePoint {
	return c.centroids
}

// Iterate runs one assignment sweep followed by one centroid update.
func (c *Clusterer) Iterate() IterationReport {
	for k := range c.centroids {
		c.sweep(k)
	}
	return c.update()
}

func (c *Clusterer) window(center float32, limit int) (int, int) {
	lo := max(int(float64(center)-c.spacing*c.behind), 0)
	hi := min(int(float64(center)+c.spacing*c.ahead), limit)
	return lo, hi
}

func (c *Clusterer) sweep(k int) {
	centroid := c.centroids[k]
	label := int32(k)
	xMin, xMax := c.window(centroid.X, c.field.Width)
	yMin, yMax := c.window(centroid.Y, c.field.Height)
	for y := yMin; y < yMax; y++ {
		row := y * c.field.Width
		for x := xMin; x < xMax; x++ {
			i := row + x
			current := c.labels.Labels[i]
			if current == Unassigned {
				c.labels.Labels[i] = label
				continue
			}
			p := c.field.Points[i]
			if Distance(p, centroid, c.xyCoeff) < Distance(p, c.centroids[current], c.xyCoeff) {
				c.labels.Labels[i] = label
			}
		}
	}
}

func (c *Clusterer) update() IterationReport {
	for k := range c.sums {
		c.sums[k] = centroidSum{}
	}
	for i, label := range c.labels.Labels {
		if label == Unassigned {
			continue
		}
		p := c.field.Points[i]
		s := &c.sums[label]
		s.l += float64(p.L)
		s.a += float64(p.A)
		s.b += float64(p.B)
		s.x += float64(p.X)
		s.y += float64(p.Y)
		s.count++
	}

	var report IterationReport
	for k, s := range c.sums {
		if s.count == 0 {
			report.Degenerate = append(report.Degenerate, k)
			continue
		}
		n := float64(s.count)
		c.centroids[k] = FeaturePoint{
			L: float32(s.l / n),
			A: float32(s.a / n),
			B: float32(s.b / n),
			X: float32(s.x / n),
			Y: float32(s.y / n),
		}
	}
	return report
}

// Cluster runs cfg.Iterations rounds and returns the resulting labels. Pixels no window ever
// reached stay Unassigned.
func Cluster(field *PixelField, centroids []FeaturePoint, spacing float64, cfg Config) *LabelMap {
	c := NewClusterer(field, centroids, spacing, cfg)
	for i := 0; i < cfg.Iterations; i++ {
		c.Iterate()
	}
	return c.Labels()
}
