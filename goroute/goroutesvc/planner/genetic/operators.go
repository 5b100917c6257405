package genetic

import "math/rand"

// newChromosome builds one feasible random tour: every location except the
// endpoints shuffled into the interior, the fixed first and last positions
// affixed around it.
func newChromosome(p *Problem, rng *rand.Rand) Chromosome {
	c := make(Chromosome, p.tourLen())
	interior := c[1 : len(c)-1]
	k := 0
	for idx := 0; idx < p.n; idx++ {
		if idx == p.start || (p.mode == ModeOpenPath && idx == p.end) {
			continue
		}
		interior[k] = idx
		k++
	}
	rng.Shuffle(len(interior), func(i, j int) {
		interior[i], interior[j] = interior[j], interior[i]
	})
	c[0] = p.start
	c[len(c)-1] = p.end
	return c
}

// selectParent runs one tournament: size distinct members drawn without
// replacement from the population, the one with the lowest fitness winning.
// Independent tournaments may pick the same winner for both parents.
func selectParent(pop []Chromosome, fitness []float64, size int, rng *rand.Rand) Chromosome {
	best := -1
	for _, i := range rng.Perm(len(pop))[:size] {
		if best == -1 || fitness[i] < fitness[best] {
			best = i
		}
	}
	return pop[best]
}

// crossover combines two feasible parents into one feasible child by order
// crossover: a donor segment between two random interior cut positions keeps
// parent 1's genes at their positions, the remaining interior fills left to
// right with parent 2's interior genes in their original order, skipping
// genes the donor already placed. All position arithmetic derives from the
// problem's mode-dependent tour length.
func crossover(p *Problem, p1, p2 Chromosome, rng *rand.Rand) Chromosome {
	l := p.tourLen()
	il := p.interiorLen()
	if il < 2 {
		return p1.Clone()
	}

	c := make(Chromosome, l)
	for i := range c {
		c[i] = unfilled
	}
	c[0] = p.start
	c[l-1] = p.end

	cuts := rng.Perm(il)[:2]
	a, b := 1+cuts[0], 1+cuts[1]
	if a > b {
		a, b = b, a
	}
	copy(c[a:b], p1[a:b])

	present := make([]bool, p.n)
	for _, idx := range c[a:b] {
		present[idx] = true
	}
	fill := p2[1 : len(p2)-1]
	fi := 0
	for i := 1; i < l-1; i++ {
		if c[i] != unfilled {
			continue
		}
		for fi < len(fill) && present[fill[fi]] {
			fi++
		}
		if fi == len(fill) {
			break
		}
		c[i] = fill[fi]
		present[fill[fi]] = true
		fi++
	}

	// fallback: any slot the parents could not fill takes the still-missing
	// indices in ascending order
	for i := 1; i < l-1; i++ {
		if c[i] != unfilled {
			continue
		}
		for idx := 0; idx < p.n; idx++ {
			if present[idx] || idx == p.start || (p.mode == ModeOpenPath && idx == p.end) {
				continue
			}
			c[i] = idx
			present[idx] = true
			break
		}
	}
	return c
}

// mutate applies per-position swap mutation to the interior, in place. Each
// interior position independently swaps with a uniformly chosen interior
// position (possibly itself) with probability rate. Endpoints never move.
func mutate(p *Problem, c Chromosome, rate float64, rng *rand.Rand) {
	l := len(c)
	for i := 1; i < l-1; i++ {
		if rng.Float64() < rate {
			j := 1 + rng.Intn(l-2)
			c[i], c[j] = c[j], c[i]
		}
	}
}
