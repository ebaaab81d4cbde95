package superpixel

// ConnectivityReport summarizes one connectivity pass.
type ConnectivityReport struct {
	// Labels is the number of labels in the output, which are dense in [0, Labels).
	Labels int
	// Merged counts undersized fragments folded into a neighboring region.
	Merged int
}

// adjacencyTally counts, per already assigned label, how many times a component touched it.
// Only touched entries are cleared between components.
type adjacencyTally struct {
	counts  []int
	touched []int32
}

func (t *adjacencyTally) add(label int32) {
	if t.counts[label] == 0 {
		t.touched = append(t.touched, label)
	}
	t.counts[label]++
}

// best returns the most touched label, the smallest one on ties, and resets the tally. It
// returns Unassigned when nothing was touched.
func (t *adjacencyTally) best() int32 {
	winner, winnerCount := Unassigned, 0
	for _, label := range t.touched {
		count := t.counts[label]
		if count > winnerCount || (count == winnerCount && label < winner) {
			winner, winnerCount = label, count
		}
		t.counts[label] = 0
	}
	t.touched = t.touched[:0]
	return winner
}

// EnforceConnectivity relabels labels so that every output label is a single 4-connected
// region. Components are discovered by breadth-first flood fills in raster order, each capped at
// maxSizeFactor*avgArea pixels; a component smaller than minSizeFactor*avgArea joins the
// neighboring label it touches most. avgArea is the pixel count over numSegments.
// Unassigned input pixels form regions of their own.
func EnforceConnectivity(labels *LabelMap, numSegments int, minSizeFactor, maxSizeFactor float64) (*LabelMap, ConnectivityReport) {
	width, height := labels.Width, labels.Height
	size := width * height
	avgArea := float64(size) / float64(numSegments)
	minSize := minSizeFactor * avgArea
	maxSize := max(int(maxSizeFactor*avgArea), 1)

	out := NewLabelMap(width, height)
	tally := adjacencyTally{counts: make([]int, size)}
	queue := make([]int, 0, min(maxSize, size))

	var report ConnectivityReport
	next := int32(0)
	for start := 0; start < size; start++ {
		if out.Labels[start] != Unassigned {
			continue
		}
		original := labels.Labels[start]
		out.Labels[start] = next
		queue = append(queue[:0], start)

		for head := 0; head < len(queue); head++ {
			i := queue[head]
			x, y := i%width, i/width
			for n := 0; n < 4; n++ {
				nx, ny := x+dx4[n], y+dy4[n]
				if !out.In(nx, ny) {
					continue
				}
				j := ny*width + nx
				if assigned := out.Labels[j]; assigned != Unassigned {
					if assigned != next {
						tally.add(assigned)
					}
					continue
				}
				if labels.Labels[j] != original || len(queue) >= maxSize {
					continue
				}
				out.Labels[j] = next
				queue = append(queue, j)
			}
		}

		target := tally.best()
		if float64(len(queue)) < minSize && target != Unassigned {
			for _, i := range queue {
				out.Labels[i] = target
			}
			report.Merged++
			continue
		}
		next++
	}

	report.Labels = int(next)
	return out, report
}
