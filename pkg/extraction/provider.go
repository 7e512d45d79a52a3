package extraction

import (
	"context"
	"fmt"
	"portal/pkg/annotator"
	"portal/pkg/domain"
	"portal/pkg/logger"
	"portal/pkg/metrics"
	"portal/pkg/serrors"
	"portal/pkg/taxonomy"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "portal/pkg/extraction"

// Source names the classifier that produced a result.
type Source string

const (
	SourceProvider Source = "provider"
	SourceLocal    Source = "local"
)

// Fallback reasons reported in logs and metrics.
const (
	reasonNone      = ""
	reasonNoClient  = "no_client"
	reasonError     = "provider_error"
	reasonEmpty     = "empty_annotations"
	reasonUnmatched = "unmatched_annotations"
)

// ProviderOptions tunes a ProviderClassifier.
type ProviderOptions struct {
	// MinConfidence is forwarded to the provider as its annotation threshold.
	MinConfidence float64
	// Timeout bounds the provider call. Zero leaves the caller's deadline alone.
	Timeout time.Duration
	// Meter records outcome and latency instruments. Defaults to a no-op meter.
	Meter metric.Meter
	// Tracer starts a span per provider call. Defaults to the global tracer.
	Tracer trace.Tracer
}

// ProviderClassifier classifies text through the remote annotation provider
// and falls back to the local Classifier whenever the provider cannot give a
// usable answer. It never returns an error.
type ProviderClassifier struct {
	client     annotator.Client
	taxonomy   *taxonomy.Taxonomy
	local      *Classifier
	normalizer *Normalizer
	opts       ProviderOptions

	outcomes metric.Int64Counter
	duration metric.Float64Histogram
}

// NewProviderClassifier builds a ProviderClassifier. client may be nil, in
// which case every call is served by the local classifier.
func NewProviderClassifier(client annotator.Client,
	t *taxonomy.Taxonomy,
	opts ProviderOptions) (*ProviderClassifier, error) {
	if opts.Meter == nil {
		opts.Meter = noop.NewMeterProvider().Meter(instrumentationName)
	}
	if opts.Tracer == nil {
		opts.Tracer = otel.Tracer(instrumentationName)
	}

	outcomes, err := opts.Meter.Int64Counter("portal_extractions",
		metric.WithDescription("Entity extractions by producing classifier and fallback reason."))
	if err != nil {
		return nil, fmt.Errorf("could not create extraction counter: %w", err)
	}
	duration, err := opts.Meter.Float64Histogram("portal_extraction_provider_duration",
		metric.WithDescription("Latency of annotation provider calls."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create provider duration histogram: %w", err)
	}

	return &ProviderClassifier{
		client:     client,
		taxonomy:   t,
		local:      NewClassifier(t),
		normalizer: NewNormalizer(t),
		opts:       opts,
		outcomes:   outcomes,
		duration:   duration,
	}, nil
}

// Local returns the offline classifier used for fallbacks.
func (p *ProviderClassifier) Local() *Classifier {
	return p.local
}

// Normalizer returns the term normalizer shared with reclassification.
func (p *ProviderClassifier) Normalizer() *Normalizer {
	return p.normalizer
}

// ClassifyWithProvider asks the provider to annotate text and keywords and
// reclassifies the annotations against the taxonomy. Missing credentials,
// transport or decoding errors, an exhausted quota and empty or unmatched
// annotation lists all fall back to Classify. The provider is tried once.
func (p *ProviderClassifier) ClassifyWithProvider(ctx context.Context,
	text string,
	keywords []string) domain.ExtractedEntities {
	res, _ := p.classify(ctx, text, keywords)

	return res
}

// ClassifyWithSource is ClassifyWithProvider that also reports which
// classifier produced the result.
func (p *ProviderClassifier) ClassifyWithSource(ctx context.Context,
	text string,
	keywords []string) (domain.ExtractedEntities, Source) {
	return p.classify(ctx, text, keywords)
}

func (p *ProviderClassifier) classify(ctx context.Context,
	text string,
	keywords []string) (domain.ExtractedEntities, Source) {
	if p.client == nil {
		return p.fallback(ctx, text, keywords, reasonNoClient, nil), SourceLocal
	}

	annotations, err := p.annotate(ctx, Corpus(text, keywords))
	if err != nil {
		return p.fallback(ctx, text, keywords, reasonError, err), SourceLocal
	}
	if len(annotations) == 0 {
		return p.fallback(ctx, text, keywords, reasonEmpty, nil), SourceLocal
	}

	res := p.reclassify(annotations)
	if res.Total() == 0 {
		return p.fallback(ctx, text, keywords, reasonUnmatched, nil), SourceLocal
	}

	p.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", string(SourceProvider)),
		attribute.String("reason", reasonNone)))
	logger.Debug(ctx, "classified with annotation provider",
		zap.Int("annotations", len(annotations)),
		zap.Int("terms", res.Total()),
		zap.Float64("confidence", res.Confidence))

	return res, SourceProvider
}

func (p *ProviderClassifier) annotate(ctx context.Context, corpus string) ([]domain.Annotation, error) {
	ctx, span := p.opts.Tracer.Start(ctx, "extraction.annotate",
		trace.WithAttributes(attribute.Int("text.length", len(corpus))))
	defer span.End()

	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	annotations, quota, err := p.client.Annotate(ctx, corpus, p.opts.MinConfidence)
	p.duration.Record(ctx, time.Since(start).Seconds())
	span.SetAttributes(
		attribute.Int("annotations", len(annotations)),
		attribute.Float64("quota.remaining", quota.Remaining))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "annotation failed")

		return nil, err
	}

	return annotations, nil
}

func (p *ProviderClassifier) fallback(ctx context.Context,
	text string,
	keywords []string,
	reason string,
	err error) domain.ExtractedEntities {
	fields := []zap.Field{zap.String("reason", reason)}
	if err != nil {
		fields = append(fields, zap.Error(err))
		if k := serrors.KindOf(err); k != nil {
			fields = append(fields, zap.String("kind", k.Error()))
		}
	}
	if reason == reasonNoClient {
		logger.Debug(ctx, "annotation provider not configured, using local classifier", fields...)
	} else {
		logger.Warn(ctx, "annotation provider fallback, using local classifier", fields...)
	}
	p.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", string(SourceLocal)),
		attribute.String("reason", reason)))

	return p.local.Classify(text, keywords)
}

// reclassify places every usable annotation into a category using the same
// substring heuristics as Classify, ignoring the provider's own taxonomy.
func (p *ProviderClassifier) reclassify(annotations []domain.Annotation) domain.ExtractedEntities {
	pl := newPlacement()
	var sum float64
	for _, a := range annotations {
		sum += a.Confidence
		term, c, ok := p.categorize(a)
		if ok {
			pl.assign(term, c)
		}
	}
	pl.dropKeys(p.local.falsePositives)

	confidence := sum / float64(len(annotations))
	confidence = min(max(confidence, 0), p.taxonomy.ProviderConfidenceCap)

	res := pl.materialize(p.taxonomy.Limits, confidence)
	res.RawEntities = annotations

	return res
}

// categorize decides the category of one annotation: override phrases first,
// then keyword lists in category order, then provider type hints.
func (p *ProviderClassifier) categorize(a domain.Annotation) (string, domain.Category, bool) {
	term, ok := p.normalizer.Normalize(a.Name())
	if !ok {
		return "", "", false
	}
	key := termKey(term)
	spot := termKey(a.Spot)

	var (
		match   override
		matched bool
	)
	for _, o := range p.local.overrides {
		if strings.Contains(key, o.phrase) || (spot != "" && strings.Contains(spot, o.phrase)) {
			match, matched = o, true
		}
	}
	if matched {
		return match.term, match.category, true
	}

	for _, c := range domain.Categories() {
		for _, kw := range p.local.keywords[c] {
			if key == kw.lower {
				return kw.term, c, true
			}
		}
	}
	for _, c := range domain.Categories() {
		for _, kw := range p.local.keywords[c] {
			if strings.Contains(key, kw.lower) || strings.Contains(kw.lower, key) {
				return term, c, true
			}
		}
	}

	tags := strings.ToLower(strings.Join(append(append([]string{}, a.Types...), a.Categories...), " "))
	if tags != "" {
		for _, c := range domain.Categories() {
			for _, hint := range p.taxonomy.TypeHints[c] {
				if strings.Contains(tags, strings.ToLower(hint)) {
					return term, c, true
				}
			}
		}
	}

	return "", "", false
}
