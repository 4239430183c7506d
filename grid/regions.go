package grid

// Regions labels every 4-connected region of open cells.
// The returned slice has one entry per cell in row-major order: the region
// number (starting at 0, numbered in row-major order of each region's first
// cell) or -1 for blocked cells. count is the number of regions.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for labels and the queue.
func (g *Grid) Regions() (labels []int, count int) {
	labels = make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	queue := make([]int, 0, len(g.cells))

	for i0, s := range g.cells {
		if s != Open || labels[i0] >= 0 {
			continue
		}
		// BFS to flood the region
		labels[i0] = count
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range directions {
				v := u.Add(d)
				if !g.InBounds(v) {
					continue
				}
				vi := g.index(v)
				if g.cells[vi] == Open && labels[vi] < 0 {
					labels[vi] = count
					queue = append(queue, vi)
				}
			}
		}
		count++
	}
	return labels, count
}

// Connected reports whether a and b are open cells of the same region.
// Returns ErrOutOfBounds if either coordinate is outside the grid.
func (g *Grid) Connected(a, b Coord) (bool, error) {
	if err := g.Check(a); err != nil {
		return false, err
	}
	if err := g.Check(b); err != nil {
		return false, err
	}
	labels, _ := g.Regions()
	la, lb := labels[g.index(a)], labels[g.index(b)]
	return la >= 0 && la == lb, nil
}
