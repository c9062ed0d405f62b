package record

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Spec
	}{
		{"single", "name", Spec{"name"}},
		{"ordered", "name,email,ssn", Spec{"name", "email", "ssn"}},
		{"whitespace", " name , email ", Spec{"name", "email"}},
		{"empty segments", "name,,email,", Spec{"name", "email"}},
		{"empty", "", nil},
		{"only commas", ",,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseSpec(tt.in)); diff != "" {
				t.Errorf("ParseSpec(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestSpecFromNamesCopies(t *testing.T) {
	names := []string{"city", "name"}
	spec := SpecFromNames(names)
	names[0] = "job"

	if diff := cmp.Diff(Spec{"city", "name"}, spec); diff != "" {
		t.Errorf("spec shares backing array with input (-want +got):\n%s", diff)
	}
}

func TestSpecFromMapSortsKeys(t *testing.T) {
	m := map[string]any{"state": nil, "city": 1, "name": "x"}

	if diff := cmp.Diff(Spec{"city", "name", "state"}, SpecFromMap(m)); diff != "" {
		t.Errorf("SpecFromMap mismatch (-want +got):\n%s", diff)
	}
}

func TestSpecString(t *testing.T) {
	if got := (Spec{"name", "email"}).String(); got != "name,email" {
		t.Errorf("String() = %q", got)
	}
}

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name      string
		spec      Spec
		wantErr   error
		wantField string
	}{
		{name: "valid", spec: Spec{"name", "email", "date_of_birth"}},
		{name: "empty", spec: nil, wantErr: ErrEmptySpec},
		{name: "duplicate", spec: Spec{"name", "name"}, wantErr: ErrDuplicateField},
		{name: "unsupported", spec: Spec{"ssn", "phone"}, wantField: "phone"},
		{name: "first unsupported wins", spec: Spec{"fax", "name", "phone"}, wantField: "fax"},
		{name: "case sensitive", spec: Spec{"Name"}, wantField: "Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()

			switch {
			case tt.wantField != "":
				var ufe *UnsupportedFieldError
				if !errors.As(err, &ufe) {
					t.Fatalf("Validate() = %v, want UnsupportedFieldError", err)
				}
				if ufe.Field != tt.wantField {
					t.Errorf("field = %q, want %q", ufe.Field, tt.wantField)
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
				}
			default:
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
			}
		})
	}
}

func TestUnsupportedFieldErrorMessage(t *testing.T) {
	err := &UnsupportedFieldError{Field: "phone"}
	if got := err.Error(); got != `unsupported field type: "phone"` {
		t.Errorf("Error() = %q", got)
	}
}
