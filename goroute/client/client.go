// Package client provides a HTTP client for the go-route service.
package client

import (
	"github.com/radekwlsk/go-route/goroute/goroutesvc"
)

// New returns a Service speaking to the HTTP server at remote instance.
// Instance is expected to come in "host:port" form.
func New(instance string) (goroutesvc.Service, error) {
	endpoints, err := goroutesvc.MakeClientEndpoints(instance)
	if err != nil {
		return nil, err
	}
	return endpoints, nil
}
