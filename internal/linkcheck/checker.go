package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"secondchance/internal/config"
	"secondchance/pkg/domain"
	"secondchance/pkg/logger"
	"secondchance/pkg/metrics"
	"secondchance/pkg/reputation"
	"secondchance/pkg/serrors"
	"secondchance/pkg/storage"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "secondchance/internal/linkcheck"

// Lookup outcomes reported by the linkcheck.lookups counter.
const (
	OutcomeHit         = "hit"
	OutcomeClassified  = "classified"
	OutcomeRateLimited = "rate_limited"
	OutcomeNotFound    = "not_found"
	OutcomeError       = "error"
	OutcomeInvalid     = "invalid"
)

// Options configure the checker. These settings are typically derived from
// application configuration.
type Options struct {
	// WriteTimeout bounds each write issued after a verdict was returned.
	// Zero means no bound.
	WriteTimeout time.Duration
	// MeterProvider creates the checker instruments. Nil means the global provider.
	MeterProvider metric.MeterProvider
	// TracerProvider creates the checker spans. Nil means the global provider.
	TracerProvider trace.TracerProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		WriteTimeout: cfg.Database.WriteTimeout,
	}
}

// checker is the concrete implementation of the Checker interface.
type checker struct {
	storage storage.Storage
	client  reputation.Client
	tasks   *detached
	tracer  trace.Tracer

	lookups          metric.Int64Counter
	overrides        metric.Int64Counter
	classifyDuration metric.Float64Histogram
}

// CheckLink answers from the store when the host is known and classifies it
// otherwise. Store writes happen after the verdict is returned.
func (c *checker) CheckLink(ctx context.Context, rawURL string) domain.Verdict {
	ctx, span := c.tracer.Start(ctx, "linkcheck.CheckLink")
	defer span.End()

	host := Normalize(rawURL)
	span.SetAttributes(attribute.String("linkcheck.url", host))
	ctx = logger.WithFields(ctx, zap.String("url", host))
	if host == "" {
		c.countLookup(ctx, span, OutcomeInvalid)
		logger.Debug(ctx, "no host in url", zap.String("rawURL", rawURL))

		return domain.FailedVerdict()
	}

	stored, err := c.storage.MasterByURL(ctx, host)
	switch {
	case err != nil:
		// a broken store must not stop us from answering
		logger.Warn(ctx, "could not read stored verdict, classifying instead", zap.Error(err))
	case stored != nil:
		c.countLookup(ctx, span, OutcomeHit)
		verdict := *stored
		verdict.Success = true

		return verdict
	}

	start := time.Now()
	stats, err := c.client.Classify(ctx, host)
	c.classifyDuration.Record(ctx, time.Since(start).Seconds())

	switch {
	case err == nil:
		verdict := Classify(host, stats)
		c.countLookup(ctx, span, OutcomeClassified)
		c.tasks.Go(ctx, "upsert master", func(ctx context.Context) error {
			if err := c.storage.UpsertMaster(ctx, verdict.URL, verdict.Score, verdict.Safe); err != nil {
				return fmt.Errorf("could not store verdict: %w", err)
			}

			return nil
		})

		return verdict
	case errors.Is(err, serrors.ErrRateLimited):
		c.countLookup(ctx, span, OutcomeRateLimited)
		logger.Info(ctx, "reputation provider is rate limiting, deferring url")
		c.tasks.Go(ctx, "enqueue", func(ctx context.Context) error {
			created, err := c.storage.Enqueue(ctx, host)
			if err != nil {
				return fmt.Errorf("could not enqueue url: %w", err)
			}
			if created {
				logger.Debug(ctx, "url queued for later classification")
			}

			return nil
		})
	case errors.Is(err, serrors.ErrNotFound):
		c.countLookup(ctx, span, OutcomeNotFound)
		logger.Debug(ctx, "url is unknown to the reputation provider")
	default:
		c.countLookup(ctx, span, OutcomeError)
		span.RecordError(err)
		span.SetStatus(codes.Error, "classification failed")
		logger.Error(ctx, "could not classify url", zap.Error(err))
	}

	return domain.FailedVerdict()
}

// UpdateLink never consults the reputation provider. Store errors are logged
// and reported as an unsuccessful ack.
func (c *checker) UpdateLink(ctx context.Context, rawURL string) domain.Ack {
	ctx, span := c.tracer.Start(ctx, "linkcheck.UpdateLink")
	defer span.End()

	host := Normalize(rawURL)
	span.SetAttributes(attribute.String("linkcheck.url", host))
	ctx = logger.WithFields(ctx, zap.String("url", host))

	ack := domain.Ack{URL: host}
	if host == "" {
		logger.Debug(ctx, "no host in url", zap.String("rawURL", rawURL))
	} else if err := c.storage.ForceSafe(ctx, host); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "override failed")
		logger.Error(ctx, "could not mark url as safe", zap.Error(err))
	} else {
		ack.Success = true
		logger.Info(ctx, "url marked as safe")
	}

	c.overrides.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", ack.Success)))

	return ack
}

func (c *checker) Wait(ctx context.Context) error {
	return c.tasks.Wait(ctx)
}

func (c *checker) countLookup(ctx context.Context, span trace.Span, outcome string) {
	span.SetAttributes(attribute.String("linkcheck.outcome", outcome))
	c.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// New creates a new Checker backed by the provided storage and reputation client.
func New(storage storage.Storage, client reputation.Client, options Options) (Checker, error) {
	mp := options.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	tp := options.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	meter := mp.Meter(instrumentationName)

	lookups, err := meter.Int64Counter("linkcheck.lookups",
		metric.WithDescription("Link checks by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create lookups counter: %w", err)
	}
	overrides, err := meter.Int64Counter("linkcheck.overrides",
		metric.WithDescription("Links marked as safe by an operator"))
	if err != nil {
		return nil, fmt.Errorf("could not create overrides counter: %w", err)
	}
	classifyDuration, err := meter.Float64Histogram("linkcheck.classify.duration",
		metric.WithDescription("Time spent waiting for the reputation provider"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create classify duration histogram: %w", err)
	}

	return &checker{
		storage:          storage,
		client:           client,
		tasks:            &detached{timeout: options.WriteTimeout},
		tracer:           tp.Tracer(instrumentationName),
		lookups:          lookups,
		overrides:        overrides,
		classifyDuration: classifyDuration,
	}, nil
}
