package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zarlcorp/zfake/internal/fake"
)

// ErrNegativeCount is returned when fewer than zero records are requested.
var ErrNegativeCount = errors.New("record count must not be negative")

// Generator builds datasets from field specs.
type Generator struct {
	faker *fake.Faker
	log   *slog.Logger
}

// NewGenerator creates a generator drawing values from f. A nil logger uses
// slog.Default.
func NewGenerator(f *fake.Faker, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{faker: f, log: log}
}

// Generate is shorthand for a one-off run without cancellation or logging.
func Generate(f *fake.Faker, spec Spec, count int) (Dataset, error) {
	return NewGenerator(f, nil).Generate(context.Background(), spec, count)
}

// GenerateString parses a comma-separated field list and generates count
// records.
func (g *Generator) GenerateString(ctx context.Context, fields string, count int) (Dataset, error) {
	return g.Generate(ctx, ParseSpec(fields), count)
}

// GenerateNames generates count records with the given ordered field names.
func (g *Generator) GenerateNames(ctx context.Context, names []string, count int) (Dataset, error) {
	return g.Generate(ctx, SpecFromNames(names), count)
}

// Generate produces count records, each holding exactly the spec's fields in
// spec order. The whole spec is resolved before the first record is built, so
// an unsupported field never yields a partial dataset. ctx is checked between
// records.
func (g *Generator) Generate(ctx context.Context, spec Spec, count int) (Dataset, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("generate: %w: %d", ErrNegativeCount, count)
	}

	fns := make([]fake.Func, len(spec))
	for i, name := range spec {
		// Validate guarantees the lookup succeeds
		fns[i], _ = fake.Lookup(name)
	}

	g.log.Debug("generating records", "fields", spec.String(), "count", count)

	ds := make(Dataset, 0, count)
	for range count {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}

		rec := make(Record, len(spec))
		for i, name := range spec {
			rec[i] = Field{Name: name, Value: fns[i](g.faker)}
		}
		ds = append(ds, rec)
	}

	return ds, nil
}
