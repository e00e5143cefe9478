package mines

import "math/rand/v2"

// Generate lays out p.MineCount distinct mines uniformly at random and fills
// every other cell with its adjacency count.
func Generate(p GameParams, r *rand.Rand) ([]Kind, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Len()
	kinds := make([]Kind, n) // all Count(0)

	/*
	 * Pick the mines off a list of candidate indices: every draw moves the
	 * last live candidate into the hole, so no index comes up twice.
	 */
	candidates := make([]int, n)
	for i := range candidates {
		candidates[i] = i
	}
	k := n
	for range p.MineCount {
		i := r.IntN(k)
		kinds[candidates[i]] = Mine
		k--
		candidates[i] = candidates[k]
	}

	geo := p.Geometry()
	for i, kind := range kinds {
		if !kind.IsMine() {
			continue
		}
		for _, j := range geo.Neighbors(i) {
			if !kinds[j].IsMine() {
				kinds[j]++
			}
		}
	}

	return kinds, nil
}

func countMines(geo Geometry, kinds []Kind, i int) (n int) {
	for _, j := range geo.Neighbors(i) {
		if kinds[j].IsMine() {
			n++
		}
	}
	return
}
