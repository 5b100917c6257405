package goroutesvc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/go-kit/kit/log"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"

	"github.com/radekwlsk/go-route/goroute/goroutesvc/planner/genetic"
)

func MakeHTTPHandler(s Service, logger log.Logger) http.Handler {
	r := mux.NewRouter()
	e := MakeServerEndpoints(s)
	options := []httptransport.ServerOption{
		httptransport.ServerErrorLogger(logger),
		httptransport.ServerErrorEncoder(errorEncoder),
	}

	r.Methods("POST").Path("/api/route/").Handler(httptransport.NewServer(
		e.RoutePlanEndpoint,
		DecodeRoutePlanRequest,
		EncodeResponse,
		options...,
	))

	return r
}

func DecodeRoutePlanRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var request routePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&request.Configuration); err != nil {
		return nil, err
	}
	return request, nil
}

func EncodeRoutePlanRequest(ctx context.Context, req *http.Request, request interface{}) error {
	req.Method, req.URL.Path = "POST", "/api/route/"
	return EncodeRequest(ctx, req, request.(routePlanRequest).Configuration)
}

func DecodeRoutePlanResponse(_ context.Context, resp *http.Response) (interface{}, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, errorDecoder(resp)
	}
	var response routePlanResponse
	err := json.NewDecoder(resp.Body).Decode(&response)
	return response, err
}

type erroneousResponse interface {
	error() error
}

func EncodeResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	if e, ok := response.(erroneousResponse); ok && e.error() != nil {
		errorEncoder(ctx, e.error(), w)
		return nil
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

func EncodeRequest(_ context.Context, req *http.Request, request interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return err
	}
	req.Body = ioutil.NopCloser(&buf)
	return nil
}

func errorDecoder(r *http.Response) error {
	var w errorWrapper
	if err := json.NewDecoder(r.Body).Decode(&w); err != nil {
		return err
	}
	return errors.New(w.Error)
}

func errorEncoder(_ context.Context, err error, w http.ResponseWriter) {
	if err == nil {
		panic("encodeError with nil error")
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(errToStatus(err))
	json.NewEncoder(w).Encode(map[string]interface{}{
		"err": err.Error(),
	})
}

// errToStatus maps request-class errors, everything the caller can fix in
// the configuration body, to 400; anything else is a server-side failure.
func errToStatus(err error) int {
	switch err.(type) {
	case ErrBadDescription, ErrDescriptionInaccurate:
		return http.StatusBadRequest
	}
	switch err {
	case
		ErrAPIKeyEmpty,
		ErrModeEmpty,
		ErrNotEnoughPlaces,
		ErrNoStartPlace,
		ErrTwoStartPlaces,
		ErrTwoEndPlaces,
		ErrBadMode,
		ErrBadTravelMode,
		genetic.ErrPopulationSize,
		genetic.ErrGenerations,
		genetic.ErrMutationRate,
		genetic.ErrTournamentSize:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type errorWrapper struct {
	Error string `json:"err"`
}
