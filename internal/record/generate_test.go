package record

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zarlcorp/zfake/internal/fake"
)

func newTestGenerator() *Generator {
	return NewGenerator(fake.New(""), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

func TestGenerateShape(t *testing.T) {
	specs := []Spec{
		{"name"},
		{"name", "email"},
		{"text", "ssn", "country", "job"},
		SpecFromNames(fake.Fields()),
	}

	for _, spec := range specs {
		for _, count := range []int{0, 1, 7} {
			t.Run(spec.String(), func(t *testing.T) {
				ds, err := Generate(fake.New(""), spec, count)
				if err != nil {
					t.Fatalf("generate: %v", err)
				}
				if len(ds) != count {
					t.Fatalf("len = %d, want %d", len(ds), count)
				}
				for i, r := range ds {
					if diff := cmp.Diff([]string(spec), r.Keys()); diff != "" {
						t.Errorf("record %d keys mismatch (-want +got):\n%s", i, diff)
					}
				}
			})
		}
	}
}

func TestGenerateZeroCountIsEmpty(t *testing.T) {
	ds, err := Generate(fake.New(""), Spec{"name"}, 0)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if ds == nil || len(ds) != 0 {
		t.Errorf("want empty non-nil dataset, got %#v", ds)
	}
}

func TestGenerateUnsupportedField(t *testing.T) {
	for _, count := range []int{0, 1, 100} {
		ds, err := Generate(fake.New(""), Spec{"ssn", "phone"}, count)

		var ufe *UnsupportedFieldError
		if !errors.As(err, &ufe) {
			t.Fatalf("count %d: err = %v, want UnsupportedFieldError", count, err)
		}
		if ufe.Field != "phone" {
			t.Errorf("field = %q, want phone", ufe.Field)
		}
		if ds != nil {
			t.Errorf("partial dataset returned: %d records", len(ds))
		}
	}
}

func TestGenerateEmptySpec(t *testing.T) {
	_, err := Generate(fake.New(""), nil, 3)
	if !errors.Is(err, ErrEmptySpec) {
		t.Errorf("err = %v, want ErrEmptySpec", err)
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	_, err := Generate(fake.New(""), Spec{"name"}, -1)
	if !errors.Is(err, ErrNegativeCount) {
		t.Errorf("err = %v, want ErrNegativeCount", err)
	}
}

func TestGenerateNonEmptyValues(t *testing.T) {
	ds, err := Generate(fake.New(""), Spec{"name", "email"}, 3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i, r := range ds {
		for _, f := range r {
			if f.Value == "" {
				t.Errorf("record %d field %s is empty", i, f.Name)
			}
		}
	}
}

func TestGenerateStringAndNamesAgree(t *testing.T) {
	g := newTestGenerator()
	ctx := context.Background()

	fromString, err := g.GenerateString(ctx, "city, state ,zip", 2)
	if err != nil {
		t.Fatalf("GenerateString: %v", err)
	}
	fromNames, err := g.GenerateNames(ctx, []string{"city", "state", "zip"}, 2)
	if err != nil {
		t.Fatalf("GenerateNames: %v", err)
	}

	for i := range 2 {
		if diff := cmp.Diff(fromString[i].Keys(), fromNames[i].Keys()); diff != "" {
			t.Errorf("record %d keys differ (-string +names):\n%s", i, diff)
		}
	}
}

func TestGenerateStringUnsupported(t *testing.T) {
	g := newTestGenerator()
	_, err := g.GenerateString(context.Background(), "name,age,profession", 10)

	var ufe *UnsupportedFieldError
	if !errors.As(err, &ufe) || ufe.Field != "profession" {
		t.Errorf("err = %v, want unsupported profession", err)
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestGenerator().Generate(ctx, Spec{"name"}, 5)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestGenerateLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := NewGenerator(fake.New(""), log)

	if _, err := g.Generate(context.Background(), Spec{"job"}, 2); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(buf.String(), "fields=job") || !strings.Contains(buf.String(), "count=2") {
		t.Errorf("missing debug log, got %q", buf.String())
	}
}
