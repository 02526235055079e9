package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/flopezo/treeCl/pkg/natsort"
)

// Instruments holds the natural-sort counters recorded by the CLI.
type Instruments struct {
	keys   metric.Int64Counter
	tokens metric.Int64Counter
}

// metricBuilder accumulates OTel instrument creation errors,
// enabling batch construction with a single error check.
type metricBuilder struct {
	meter metric.Meter
	err   error
}

func (b *metricBuilder) counter(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("create %s: %w", name, err)
	}

	return c
}

// NewInstruments creates the natsort instruments on mt.
func NewInstruments(mt metric.Meter) (*Instruments, error) {
	b := &metricBuilder{meter: mt}

	inst := &Instruments{
		keys:   b.counter("treecl.natsort.keys", "Natural sort keys generated", "{key}"),
		tokens: b.counter("treecl.natsort.tokens", "Tokens in generated natural sort keys", "{token}"),
	}

	if b.err != nil {
		return nil, b.err
	}

	return inst, nil
}

// RecordLabels counts the keys and tokens that natural ordering of labels
// produces, without building the keys again.
func (i *Instruments) RecordLabels(ctx context.Context, op string, labels []string) {
	if i == nil {
		return
	}

	tokens := 0
	for _, label := range labels {
		tokens += natsort.TokenCount(label)
	}

	attrs := metric.WithAttributes(attribute.String("op", op))

	i.keys.Add(ctx, int64(len(labels)), attrs)
	i.tokens.Add(ctx, int64(tokens), attrs)
}
