package goroutesvc

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radekwlsk/go-route/goroute/goroutesvc/planner/genetic"
	"github.com/radekwlsk/go-route/goroute/goroutesvc/trip"
)

type stubService struct {
	route trip.Route
	err   error
	got   trip.Configuration
}

func (s *stubService) RoutePlan(_ context.Context, tc trip.Configuration) (trip.Route, error) {
	s.got = tc
	return s.route, s.err
}

func TestDecodeRoutePlanRequest(t *testing.T) {
	body := `{"apiKey": "k", "mode": "name", "places": [{"description": {"name": "Louvre"}, "start": true}]}`
	r := httptest.NewRequest("POST", "/api/route/", strings.NewReader(body))

	request, err := DecodeRoutePlanRequest(context.Background(), r)
	require.NoError(t, err)

	tc := request.(routePlanRequest).Configuration
	assert.Equal(t, "k", tc.APIKey)
	assert.Equal(t, "name", tc.Mode)
	require.Len(t, tc.PlacesConfiguration, 1)
	assert.True(t, tc.PlacesConfiguration[0].Start)
}

func TestDecodeRoutePlanRequestBadJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/route/", bytes.NewReader([]byte("{")))
	_, err := DecodeRoutePlanRequest(context.Background(), r)
	assert.Error(t, err)
}

func TestErrToStatus(t *testing.T) {
	for _, err := range []error{
		ErrAPIKeyEmpty,
		ErrModeEmpty,
		ErrNotEnoughPlaces,
		ErrNoStartPlace,
		ErrTwoStartPlaces,
		ErrTwoEndPlaces,
		ErrBadMode,
		ErrBadTravelMode,
		ErrBadDescription{Place: &trip.PlaceConfig{}},
		ErrDescriptionInaccurate{Place: &trip.PlaceConfig{}},
		genetic.ErrPopulationSize,
		genetic.ErrGenerations,
		genetic.ErrMutationRate,
		genetic.ErrTournamentSize,
	} {
		assert.Equal(t, http.StatusBadRequest, errToStatus(err), "%v", err)
	}

	assert.Equal(t, http.StatusInternalServerError, errToStatus(assert.AnError))
}

func TestHTTPHandlerRoundTrip(t *testing.T) {
	stub := &stubService{
		route: trip.Route{
			RoundTrip:     true,
			Order:         []int{0, 2, 1, 0},
			TotalDistance: 12345,
			Summary:       "START somewhere",
		},
	}
	server := httptest.NewServer(MakeHTTPHandler(stub, log.NewNopLogger()))
	defer server.Close()

	endpoints, err := MakeClientEndpoints(server.Listener.Addr().String())
	require.NoError(t, err)

	config := trip.Configuration{
		APIKey: "k",
		Mode:   "id",
		PlacesConfiguration: []*trip.PlaceConfig{
			{Description: map[string]interface{}{"place_id": "a"}, Start: true},
			{Description: map[string]interface{}{"place_id": "b"}},
		},
	}
	route, err := endpoints.RoutePlan(context.Background(), config)
	require.NoError(t, err)

	assert.Equal(t, "k", stub.got.APIKey)
	assert.Equal(t, stub.route.Order, route.Order)
	assert.Equal(t, stub.route.TotalDistance, route.TotalDistance)
	assert.Equal(t, stub.route.Summary, route.Summary)
	assert.True(t, route.RoundTrip)
}

func TestHTTPHandlerEncodesServiceError(t *testing.T) {
	stub := &stubService{err: ErrNoStartPlace}
	server := httptest.NewServer(MakeHTTPHandler(stub, log.NewNopLogger()))
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/route/", "application/json",
		strings.NewReader(`{"apiKey": "k", "mode": "id", "places": []}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))

	endpoints, err := MakeClientEndpoints(server.Listener.Addr().String())
	require.NoError(t, err)
	_, err = endpoints.RoutePlan(context.Background(), trip.Configuration{})
	require.Error(t, err)
	assert.Equal(t, ErrNoStartPlace.Error(), err.Error())
}
