package goroutesvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-kit/kit/log"
	"github.com/gregjones/httpcache"
	"github.com/mitchellh/mapstructure"
	"googlemaps.github.io/maps"

	"github.com/radekwlsk/go-route/goroute/goroutesvc/planner"
	"github.com/radekwlsk/go-route/goroute/goroutesvc/trip"
	"github.com/radekwlsk/go-route/utils"
)

// Service interface definition and basic service methods implementation,
// the actual actions performed by service on data.
type Service interface {
	RoutePlan(context.Context, trip.Configuration) (trip.Route, error)
}

func New(logger log.Logger) Service {
	var s Service
	{
		s = NewService(logger)
		s = NewLoggingMiddleware(log.With(logger, "layer", "service"))(s)
	}
	return s
}

var (
	ErrAPIKeyEmpty = errors.New("request must contain Google Maps API Key as 'apiKey'")

	ErrModeEmpty = errors.New("request places description mode must be provided as 'mode'")

	ErrNotEnoughPlaces = errors.New("request must contain at least two places")

	ErrNoStartPlace = errors.New("one place must be marked as start")

	ErrTwoStartPlaces = errors.New("more than one place marked as start")

	ErrTwoEndPlaces = errors.New("more than one place marked as end")

	ErrBadMode = errors.New(fmt.Sprintf("place description mode is not valid, available modes are: %s",
		strings.Join(trip.ModeOptions, ", ")))

	ErrBadTravelMode = errors.New(fmt.Sprintf(
		"travelMode is not valid, available modes are: %s",
		strings.Join(trip.TravelModeOptions, ", ")))
)

type ErrBadDescription struct {
	Place *trip.PlaceConfig
}

func (err ErrBadDescription) Error() string {
	return fmt.Sprintf("could not parse place description of %s", err.Place.Description)
}

type ErrDescriptionInaccurate struct {
	Place *trip.PlaceConfig
}

func (err ErrDescriptionInaccurate) Error() string {
	return fmt.Sprintf("description not accurate, no results found for %s", err.Place.Description)
}

type service struct {
	logger         log.Logger
	cacheTransport *httpcache.Transport
	mapsBaseURL    string
}

func NewService(logger log.Logger) Service {
	return &service{
		logger:         logger,
		cacheTransport: httpcache.NewMemoryCacheTransport(),
	}
}

func (s *service) RoutePlan(ctx context.Context, tc trip.Configuration) (r trip.Route, err error) {
	if tc.APIKey == "" {
		return trip.Route{}, ErrAPIKeyEmpty
	}

	if tc.Mode == "" {
		return trip.Route{}, ErrModeEmpty
	} else if !utils.StringIn(tc.Mode, trip.ModeOptions) {
		return trip.Route{}, ErrBadMode
	}

	if tc.TravelMode == "" {
		tc.TravelMode = trip.TravelModeOptions[0]
	} else if !utils.StringIn(tc.TravelMode, trip.TravelModeOptions) {
		return trip.Route{}, ErrBadTravelMode
	}

	var pLen int

	if pLen = len(tc.PlacesConfiguration); pLen < 2 {
		return trip.Route{}, ErrNotEnoughPlaces
	}

	start, end := -1, -1
	for i, place := range tc.PlacesConfiguration {
		if place.Start {
			if start != -1 {
				return trip.Route{}, ErrTwoStartPlaces
			}
			start = i
		}
		if place.End {
			if end != -1 {
				return trip.Route{}, ErrTwoEndPlaces
			}
			end = i
		}
	}
	if start == -1 {
		return trip.Route{}, ErrNoStartPlace
	}

	r = trip.Route{
		Places:     make([]*trip.Place, pLen),
		TravelMode: maps.Mode(tc.TravelMode),
	}

	opts := []maps.ClientOption{
		maps.WithAPIKey(tc.APIKey),
		maps.WithHTTPClient(s.cacheTransport.Client()),
	}
	if s.mapsBaseURL != "" {
		opts = append(opts, maps.WithBaseURL(s.mapsBaseURL))
	}
	c, err := maps.NewClient(opts...)
	if err != nil {
		return r, err
	}

	wg := sync.WaitGroup{}
	wg.Add(pLen)
	errChan := make(chan error, pLen)
	for i, p := range tc.PlacesConfiguration {
		go func(i int, place *trip.PlaceConfig) {
			defer wg.Done()
			config := mapstructure.DecoderConfig{ErrorUnused: true}
			switch tc.Mode {
			case "address":
				config.Result = &trip.AddressDescription{}
			case "name":
				config.Result = &trip.NameDescription{}
			case "id":
				config.Result = &trip.PlaceIDDescription{}
			case "geo":
				config.Result = &trip.GeoDescription{}
			default:
				errChan <- ErrBadMode
				return
			}
			decoder, err := mapstructure.NewDecoder(&config)
			if err != nil {
				errChan <- err
				return
			}
			if err = decoder.Decode(place.Description); err != nil {
				errChan <- ErrBadDescription{place}
				return
			}
			if _, ok := config.Result.(trip.Description); ok {
				place.Description = config.Result
			} else {
				errChan <- ErrBadDescription{place}
				return
			}
			switch tc.Mode {
			case "address":
				if place.Description.(*trip.AddressDescription).IsEmpty() {
					errChan <- ErrBadDescription{place}
					return
				}
			case "name":
				if place.Description.(*trip.NameDescription).Name == "" {
					errChan <- ErrBadDescription{place}
					return
				}
			case "id":
				if place.Description.(*trip.PlaceIDDescription).PlaceID == "" {
					errChan <- ErrBadDescription{place}
					return
				}
			case "geo":
				if place.Description.(*trip.GeoDescription).IsEmpty() {
					errChan <- ErrBadDescription{place}
					return
				}
			}
			placeID, err := place.Description.(trip.Description).MapsPlaceID(ctx, c, tc.Region)
			switch err {
			case nil:
				break
			case trip.ErrZeroResults:
				errChan <- ErrDescriptionInaccurate{place}
				return
			default:
				errChan <- err
				return
			}
			r.Places[i] = &trip.Place{
				Index:   i,
				PlaceID: placeID,
			}
			if err = r.Places[i].SetDetails(ctx, c, tc.Language); err != nil {
				errChan <- err
				return
			}

			errChan <- nil
		}(i, p)
	}
	wg.Wait()
	close(errChan)
	for err := range errChan {
		if err != nil {
			return r, err
		}
	}

	r.StartPlace = r.Places[start]
	if end != -1 {
		r.EndPlace = r.Places[end]
	}
	r.RoundTrip = end == -1 || end == start

	p := planner.NewPlanner(c, &r, log.With(s.logger, "component", "planner"))
	if err = p.Evaluate(ctx, tc.Optimizer); err != nil {
		return r, err
	}

	return r, nil
}
