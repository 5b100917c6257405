package planner

import (
	"context"
	"time"

	"github.com/go-kit/kit/log"
	"googlemaps.github.io/maps"
	"gonum.org/v1/gonum/mat"

	"github.com/radekwlsk/go-route/goroute/goroutesvc/planner/genetic"
	"github.com/radekwlsk/go-route/goroute/goroutesvc/trip"
)

// UnreachableMeters is recorded for a pair the distance service could not
// route: large enough that selection steers away from such legs, finite so
// optimization still terminates normally and returns the least-bad route.
const UnreachableMeters = 999999 * 1000

type Planner struct {
	client *maps.Client
	route  *trip.Route
	logger log.Logger
}

func NewPlanner(c *maps.Client, r *trip.Route, logger log.Logger) *Planner {
	return &Planner{
		client: c,
		route:  r,
		logger: logger,
	}
}

// Evaluate acquires the distance and duration matrices for the route's
// places, runs the genetic optimizer and fills the route with the best
// visiting order found: steps, totals, summary and map document.
func (p *Planner) Evaluate(ctx context.Context, opt *genetic.Config) error {
	distances, durations, err := p.distancesAndDurations(ctx)
	if err != nil {
		return err
	}

	mode := genetic.ModeOpenPath
	end := p.route.EndPlace
	if p.route.RoundTrip {
		mode = genetic.ModeRoundTrip
		end = p.route.StartPlace
	}
	problem, err := genetic.NewProblem(distances, p.route.StartPlace.Index, end.Index, mode)
	if err != nil {
		return err
	}

	solver, err := genetic.New(problem, optimizerConfig(opt))
	if err != nil {
		return err
	}
	result := solver.Solve()

	tour := result.Tour()
	p.route.Order = tour
	p.route.Steps = make([]trip.Step, 0, len(tour)-1)
	var totalDistance int64
	var totalDuration time.Duration
	for i := 0; i < len(tour)-1; i++ {
		from, to := tour[i], tour[i+1]
		duration := time.Duration(durations.At(from, to))
		distance := int64(distances.At(from, to))
		p.route.Steps = append(p.route.Steps, trip.Step{
			From:     from,
			To:       to,
			Duration: duration / time.Minute,
			Distance: distance,
		})
		totalDistance += distance
		totalDuration += duration
	}
	p.route.TotalDistance = totalDistance
	p.route.TotalDuration = totalDuration / time.Minute
	p.route.Summary = p.route.CreateSummary()
	p.route.Map = trip.NewRouteCollection(p.route)

	best, mean := solver.Stats()
	p.logger.Log(
		"msg", "route optimized",
		"places", len(p.route.Places),
		"cost", result.Cost(),
		"populationBest", best,
		"populationMean", mean,
	)

	return nil
}

// optimizerConfig overlays the request's optimizer overrides on the
// defaults. Zero-valued fields keep their default.
func optimizerConfig(opt *genetic.Config) genetic.Config {
	config := genetic.DefaultConfig()
	if opt == nil {
		return config
	}
	if opt.PopulationSize != 0 {
		config.PopulationSize = opt.PopulationSize
	}
	if opt.Generations != 0 {
		config.Generations = opt.Generations
	}
	if opt.MutationRate != 0 {
		config.MutationRate = opt.MutationRate
	}
	if opt.TournamentSize != 0 {
		config.TournamentSize = opt.TournamentSize
	}
	config.Workers = opt.Workers
	config.Seed = opt.Seed
	return config
}

// distancesAndDurations requests one distance matrix for all places at once.
// Pairs the service reports as not routable get the unreachable sentinel
// instead of failing the request.
func (p *Planner) distancesAndDurations(ctx context.Context) (distances, durations *mat.Dense, err error) {
	length := len(p.route.Places)
	distances = mat.NewDense(length, length, nil)
	durations = mat.NewDense(length, length, nil)
	addresses := make([]string, length)
	for _, place := range p.route.Places {
		addresses[place.Index] = place.Details.FormattedAddress
	}
	r := &maps.DistanceMatrixRequest{
		Origins:      addresses,
		Destinations: addresses,
		Mode:         p.route.TravelMode,
	}
	resp, err := p.client.DistanceMatrix(ctx, r)
	if err != nil {
		return nil, nil, err
	}
	for i, row := range resp.Rows {
		for j, element := range row.Elements {
			if i == j {
				continue
			}
			if element.Status == "OK" {
				distances.Set(i, j, float64(element.Distance.Meters))
				durations.Set(i, j, float64(element.Duration))
			} else {
				distances.Set(i, j, UnreachableMeters)
				p.logger.Log(
					"msg", "no route between places",
					"from", addresses[i],
					"to", addresses[j],
					"status", element.Status,
				)
			}
		}
	}
	return distances, durations, nil
}
