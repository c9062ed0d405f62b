package record

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/zarlcorp/zfake/internal/fake"
)

var (
	// ErrEmptySpec is returned when a spec names no fields.
	ErrEmptySpec = errors.New("field spec is empty")

	// ErrDuplicateField is returned when a spec names a field twice.
	ErrDuplicateField = errors.New("duplicate field")
)

// UnsupportedFieldError reports a field name outside the generator whitelist.
type UnsupportedFieldError struct {
	Field string
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("unsupported field type: %q", e.Field)
}

// Spec is an ordered list of field names.
type Spec []string

// ParseSpec splits a comma-separated list of field names. Surrounding
// whitespace is trimmed and empty segments are dropped.
func ParseSpec(s string) Spec {
	var spec Spec
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			spec = append(spec, name)
		}
	}
	return spec
}

// SpecFromNames uses names as given, in order.
func SpecFromNames(names []string) Spec {
	return slices.Clone(Spec(names))
}

// SpecFromMap takes the key set of m. Map iteration order is random, so keys
// are sorted to keep output stable.
func SpecFromMap[V any](m map[string]V) Spec {
	spec := make(Spec, 0, len(m))
	for k := range m {
		spec = append(spec, k)
	}
	slices.Sort(spec)
	return spec
}

// String joins the spec back into its comma-separated form.
func (s Spec) String() string {
	return strings.Join(s, ",")
}

// Validate reports the first unsupported or repeated field name, or
// ErrEmptySpec when there are none.
func (s Spec) Validate() error {
	if len(s) == 0 {
		return ErrEmptySpec
	}

	seen := make(map[string]bool, len(s))
	for _, name := range s {
		if !fake.Supported(name) {
			return &UnsupportedFieldError{Field: name}
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateField, name)
		}
		seen[name] = true
	}
	return nil
}
