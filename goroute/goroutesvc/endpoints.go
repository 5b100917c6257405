package goroutesvc

import (
	"context"
	"net/url"
	"strings"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"

	"github.com/radekwlsk/go-route/goroute/goroutesvc/trip"
)

type Endpoints struct {
	RoutePlanEndpoint endpoint.Endpoint
}

func MakeServerEndpoints(s Service) Endpoints {
	return Endpoints{
		RoutePlanEndpoint: MakeRoutePlanEndpoint(s),
	}
}

// MakeClientEndpoints returns Endpoints backed by the HTTP server at
// instance, expected in "host:port" form. Useful as a Service client in a
// Go program speaking the same codec as the server.
func MakeClientEndpoints(instance string) (Endpoints, error) {
	if !strings.HasPrefix(instance, "http") {
		instance = "http://" + instance
	}
	tgt, err := url.Parse(instance)
	if err != nil {
		return Endpoints{}, err
	}
	tgt.Path = ""

	var options []httptransport.ClientOption

	// The request encoder sets the URL path and method per endpoint.
	return Endpoints{
		RoutePlanEndpoint: httptransport.NewClient("POST", tgt, EncodeRoutePlanRequest, DecodeRoutePlanResponse,
			options...).Endpoint(),
	}, nil
}

func (e Endpoints) RoutePlan(ctx context.Context, tc trip.Configuration) (trip.Route, error) {
	request := routePlanRequest{Configuration: tc}
	response, err := e.RoutePlanEndpoint(ctx, request)
	if err != nil {
		return trip.Route{}, err
	}
	resp := response.(routePlanResponse)
	return resp.Response, resp.Err
}

func MakeRoutePlanEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(routePlanRequest)
		resp, e := s.RoutePlan(ctx, req.Configuration)
		return routePlanResponse{Response: resp, Err: e}, nil
	}
}

type routePlanRequest struct {
	Configuration trip.Configuration
}

type routePlanResponse struct {
	Response trip.Route `json:"resp,omitempty"`
	Err      error      `json:"err,omitempty"`
}

func (r routePlanResponse) error() error { return r.Err }
