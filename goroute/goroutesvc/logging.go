package goroutesvc

import (
	"context"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/kr/pretty"

	"github.com/radekwlsk/go-route/goroute/goroutesvc/trip"
)

// Middleware is a service middleware, similar to endpoint middleware.
type Middleware func(Service) Service

// NewLoggingMiddleware given a logger returns a service middleware that logs
// each method call: method name, input, resulting route order, error if
// present and time of execution.
func NewLoggingMiddleware(logger log.Logger) Middleware {
	return func(next Service) Service {
		return loggingMiddleware{logger, next}
	}
}

type loggingMiddleware struct {
	logger log.Logger
	next   Service
}

func (mw loggingMiddleware) RoutePlan(ctx context.Context, tc trip.Configuration) (r trip.Route, err error) {
	defer func(begin time.Time) {
		mw.logger.Log(
			"method", "RoutePlan",
			"input", pretty.Sprint(tc.PlacesConfiguration),
			"order", pretty.Sprint(r.Order),
			"err", err,
			"took", time.Since(begin),
		)
	}(time.Now())
	return mw.next.RoutePlan(ctx, tc)
}
