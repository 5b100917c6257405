package genetic

// Chromosome encodes a candidate tour as an ordered sequence of location
// indices. The first element is always the start index; the last is the end
// index for an open path or the start index again for a round trip. The
// interior is a permutation of every remaining location index.
type Chromosome []int

// unfilled marks an interior position not yet decided during crossover.
const unfilled = -1

// Fitness is the total directed cost of traversing the tour edge by edge.
// Lower is better. The chromosome must satisfy the layout invariants,
// feasibility is guaranteed by construction everywhere chromosomes are made.
func (c Chromosome) Fitness(p *Problem) float64 {
	var total float64
	for i := 0; i < len(c)-1; i++ {
		total += p.Cost(c[i], c[i+1])
	}
	return total
}

func (c Chromosome) Clone() Chromosome {
	clone := make(Chromosome, len(c))
	copy(clone, c)
	return clone
}

// Feasible reports whether c is a valid tour for p: mode-dependent length,
// endpoints at the fixed positions and an interior visiting every
// non-endpoint location exactly once.
func (c Chromosome) Feasible(p *Problem) bool {
	if len(c) != p.tourLen() {
		return false
	}
	if c[0] != p.start || c[len(c)-1] != p.end {
		return false
	}
	seen := make([]bool, p.n)
	seen[p.start] = true
	if p.mode == ModeOpenPath {
		seen[p.end] = true
	}
	for _, idx := range c[1 : len(c)-1] {
		if idx < 0 || idx >= p.n || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	for _, s := range seen {
		if !s {
			return false
		}
	}
	return true
}
