// Package genetic implements a generational genetic algorithm over location
// permutations: tournament selection, order crossover and interior swap
// mutation against a read-only cost matrix, with the best tour ever seen
// ratcheted outside the evolving population.
package genetic

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Solver drives the generational loop. Each generation fully replaces the
// population with children of tournament-selected parents; only the
// best-so-far result persists across generations. A fixed generation count
// is the sole stopping rule.
type Solver struct {
	problem *Problem
	config  Config
	seed    int64
	workers int

	pop     []Chromosome
	fitness []float64
	next    []Chromosome
	nextFit []float64

	generation int
	best       Result
}

func New(p *Problem, config Config) (*Solver, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := config.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > config.PopulationSize {
		workers = config.PopulationSize
	}
	return &Solver{
		problem: p,
		config:  config,
		seed:    seed,
		workers: workers,
		best:    NewEmptyResult(),
	}, nil
}

// Solve runs initialization and the full generational loop, returning the
// best tour found.
func (s *Solver) Solve() Result {
	s.init()
	for g := 0; g < s.config.Generations; g++ {
		s.step()
	}
	return s.best
}

func (s *Solver) Best() Result {
	return s.best
}

// Stats reports the current population's lowest and mean fitness.
func (s *Solver) Stats() (best, mean float64) {
	if len(s.fitness) == 0 {
		return math.NaN(), math.NaN()
	}
	return floats.Min(s.fitness), stat.Mean(s.fitness, nil)
}

// init builds the initial population and seeds the ratchet with its fittest
// member.
func (s *Solver) init() {
	n := s.config.PopulationSize
	s.pop = make([]Chromosome, n)
	s.fitness = make([]float64, n)
	s.next = make([]Chromosome, n)
	s.nextFit = make([]float64, n)
	s.generation = 0
	s.best = NewEmptyResult()
	s.each(0, func(i int, rng *rand.Rand) {
		s.pop[i] = newChromosome(s.problem, rng)
		s.fitness[i] = s.pop[i].Fitness(s.problem)
	})
	s.ratchet()
}

// step advances one generation: every child slot is filled by crossover of
// two tournament winners followed by mutation, the population is replaced
// wholesale, and the ratchet is updated.
func (s *Solver) step() {
	s.generation++
	base := uint64(s.generation) * uint64(s.config.PopulationSize)
	s.each(base, func(i int, rng *rand.Rand) {
		p1 := selectParent(s.pop, s.fitness, s.config.TournamentSize, rng)
		p2 := selectParent(s.pop, s.fitness, s.config.TournamentSize, rng)
		c := crossover(s.problem, p1, p2, rng)
		mutate(s.problem, c, s.config.MutationRate, rng)
		s.next[i] = c
		s.nextFit[i] = c.Fitness(s.problem)
	})
	s.pop, s.next = s.next, s.pop
	s.fitness, s.nextFit = s.nextFit, s.fitness
	s.ratchet()
}

// each runs f for every population slot across the worker pool. Workers only
// read the prior population and write their own slot, so the generation
// boundary is the only synchronization point. Every slot draws its RNG from
// a stream derived from the base offset, keeping runs reproducible for a
// fixed seed regardless of worker count.
func (s *Solver) each(base uint64, f func(i int, rng *rand.Rand)) {
	n := s.config.PopulationSize
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(s.workers)
	for w := 0; w < s.workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				f(i, deriveRNG(s.seed, base+uint64(i)))
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// ratchet keeps the best-so-far result monotone: the current population's
// fittest member replaces it only on strict improvement.
func (s *Solver) ratchet() {
	i := floats.MinIdx(s.fitness)
	if r := NewResult(s.pop[i].Clone(), s.fitness[i]); r.BetterThan(s.best) {
		s.best = r
	}
}
