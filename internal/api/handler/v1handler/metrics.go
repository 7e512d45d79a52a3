package v1handler

import (
	"fmt"
	"portal/pkg/metrics"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// requestMetrics records a request counter and a latency histogram labelled
// with the matched route rather than the raw path.
func requestMetrics(meter metric.Meter) (echo.MiddlewareFunc, error) {
	requests, err := meter.Int64Counter("portal_http_requests",
		metric.WithDescription("Number of handled v1 API requests"))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}
	duration, err := meter.Float64Histogram("portal_http_request_duration",
		metric.WithDescription("Latency of v1 API requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create request histogram: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// render now so the recorded status matches the response
				c.Error(err)
			}

			attrs := metric.WithAttributes(
				attribute.String("route", c.Path()),
				attribute.String("method", c.Request().Method),
				attribute.String("status", strconv.Itoa(c.Response().Status)),
			)
			ctx := c.Request().Context()
			requests.Add(ctx, 1, attrs)
			duration.Record(ctx, time.Since(start).Seconds(), attrs)

			return nil
		}
	}, nil
}
