package swapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Khan/genqlient/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"jediarchives/internal/config"
)

const tracerName = "jediarchives/internal/swapi"

// Request outcomes recorded on metrics and logs.
const (
	OutcomeOK        = "ok"
	OutcomeGraphQL   = "graphql_error"
	OutcomeTimeout   = "timeout"
	OutcomeTransport = "transport_error"
)

type options struct {
	logger    *zap.Logger
	metrics   *Metrics
	transport http.RoundTripper
}

// Option customizes NewClient.
type Option func(*options)

// WithLogger sets the logger used for failed operations.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics records operation durations and cache lookups on m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTransport replaces the base HTTP transport (before tracing is applied).
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// NewClient builds a genqlient client for cfg.Endpoint. The HTTP transport is
// traced with otelhttp and, when cfg.CacheSize > 0, fronted by a response Cache.
func NewClient(cfg config.SwapiConfig, opts ...Option) (graphql.Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("swapi endpoint is required")
	}

	o := options{logger: zap.NewNop(), transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(&o)
	}

	var doer graphql.Doer = &http.Client{
		Timeout:   cfg.Timeout(),
		Transport: otelhttp.NewTransport(o.transport),
	}
	if cfg.CacheSize > 0 {
		cache, err := NewCache(doer, cfg.CacheSize, o.metrics)
		if err != nil {
			return nil, err
		}
		doer = cache
	}

	return NewInstrumentedClient(graphql.NewClient(cfg.Endpoint, doer), o.logger, o.metrics), nil
}

// InstrumentedClient wraps a graphql.Client with a span, a duration histogram
// and a log line per failed operation.
type InstrumentedClient struct {
	next    graphql.Client
	logger  *zap.Logger
	metrics *Metrics
}

// NewInstrumentedClient wraps next. logger and metrics may be nil.
func NewInstrumentedClient(next graphql.Client, logger *zap.Logger, metrics *Metrics) *InstrumentedClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstrumentedClient{next: next, logger: logger, metrics: metrics}
}

// MakeRequest implements graphql.Client.
func (c *InstrumentedClient) MakeRequest(ctx context.Context, req *graphql.Request, resp *graphql.Response) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "swapi "+req.OpName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("graphql.operation.name", req.OpName)),
	)
	defer span.End()

	start := time.Now()
	err := c.next.MakeRequest(ctx, req, resp)
	latency := time.Since(start)
	outcome := Outcome(err)

	c.metrics.observeRequest(req.OpName, outcome, latency)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		c.logger.Warn("swapi_request_failed",
			zap.String("operation", req.OpName),
			zap.String("outcome", outcome),
			zap.Duration("latency", latency),
			zap.Error(err),
		)
		return err
	}

	c.logger.Debug("swapi_request",
		zap.String("operation", req.OpName),
		zap.Duration("latency", latency),
	)
	return nil
}

// Outcome classifies the error returned by an operation.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case GraphQLErrors(err) != nil:
		return OutcomeGraphQL
	case errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeout
	case isTimeout(err):
		return OutcomeTimeout
	default:
		return OutcomeTransport
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// GraphQLErrors returns the errors array of a response that reached the
// server and was answered, or nil when err is a transport failure.
func GraphQLErrors(err error) gqlerror.List {
	var list gqlerror.List
	if errors.As(err, &list) && len(list) > 0 {
		return list
	}
	var single *gqlerror.Error
	if errors.As(err, &single) {
		return gqlerror.List{single}
	}
	return nil
}
