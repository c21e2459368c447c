// Package tracer provides a small tracing abstraction so services can emit
// spans without importing OpenTelemetry directly.
//
// Implementations:
//   - NoopTracer: tests and deployments without a collector
//   - OTelTracer: OpenTelemetry adapter
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span. A non-nil err marks the span as failed.
	// End must be called exactly once, typically via defer.
	End(err error)

	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a span and returns a context carrying it.
	//
	// Example:
	//   ctx, span := t.Start(ctx, tracer.SpanVerificationRun,
	//       tracer.String(tracer.AttrDocumentID, docID.String()),
	//   )
	//   defer span.End(nil)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names.
const (
	SpanVerificationRun   = "verification.run"
	SpanVerificationStage = "verification.stage"
)

// Attribute keys.
const (
	AttrDocumentID       = "document.id"
	AttrDocumentType     = "document.type"
	AttrVerifierID       = "verifier.id"
	AttrHashMatch        = "verification.hash_match"
	AttrVersionIntegrity = "verification.version_integrity"
	AttrValid            = "verification.valid"
	AttrStep             = "verification.step"
)

// Event names.
const (
	EventStepCompleted = "verification.step_completed"
)
