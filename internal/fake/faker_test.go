package fake

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestValuePatterns(t *testing.T) {
	f := New("")

	tests := []struct {
		field string
		re    *regexp.Regexp
	}{
		{"name", regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`)},
		{"first_name", regexp.MustCompile(`^[A-Z][a-z]+$`)},
		{"last_name", regexp.MustCompile(`^[A-Z][a-z]+$`)},
		{"email", regexp.MustCompile(`^[a-z]+\d{4}@zfake\.test$`)},
		{"street", regexp.MustCompile(`^\d+ [A-Za-z]+ [A-Za-z]+$`)},
		{"address", regexp.MustCompile(`^\d+ [A-Za-z]+ [A-Za-z]+, [A-Za-z. ]+, [A-Z]{2} \d{5}$`)},
		{"state", regexp.MustCompile(`^[A-Z]{2}$`)},
		{"zip", regexp.MustCompile(`^\d{5}$`)},
		{"ssn", regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)},
		{"date_of_birth", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)},
		{"age", regexp.MustCompile(`^\d{2}$`)},
		{"id", regexp.MustCompile(`^[0-9a-f]{8}$`)},
		{"uuid", regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)},
		{"text", regexp.MustCompile(`^[A-Z][a-z]*( [a-z]+)+\.$`)},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			for range 20 {
				v, ok := f.Value(tt.field)
				if !ok {
					t.Fatalf("field %q not supported", tt.field)
				}
				if !tt.re.MatchString(v) {
					t.Errorf("%s value %q does not match %s", tt.field, v, tt.re)
				}
			}
		})
	}
}

func TestNonEmptyValues(t *testing.T) {
	f := New("")
	for _, name := range Fields() {
		t.Run(name, func(t *testing.T) {
			v, ok := f.Value(name)
			if !ok {
				t.Fatalf("registered field %q not resolvable", name)
			}
			if v == "" {
				t.Errorf("field %q produced empty value", name)
			}
		})
	}
}

func TestCustomDomain(t *testing.T) {
	f := New("My.Domain.ORG")
	if f.Domain() != "my.domain.org" {
		t.Fatalf("domain = %q, want lowercased", f.Domain())
	}
	if got := f.Email(); !strings.HasSuffix(got, "@my.domain.org") {
		t.Errorf("expected custom domain, got %q", got)
	}
}

func TestDefaultDomain(t *testing.T) {
	f := New("")
	if got := f.Email(); !strings.HasSuffix(got, "@"+DefaultDomain) {
		t.Errorf("empty domain should fall back to default, got %q", got)
	}
}

func TestSSNNeverInvalidArea(t *testing.T) {
	f := New("")
	for range 500 {
		ssn := f.SSN()
		area, err := strconv.Atoi(ssn[:3])
		if err != nil {
			t.Fatalf("parse area of %q: %v", ssn, err)
		}
		if area == 0 || area == 666 || area >= 900 {
			t.Errorf("ssn %q has reserved area", ssn)
		}
		if ssn[4:6] == "00" || ssn[7:] == "0000" {
			t.Errorf("ssn %q has zero group or serial", ssn)
		}
	}
}

func TestDateOfBirthRange(t *testing.T) {
	f := New("")
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return fixed }

	oldest := fixed.AddDate(-maxAge-1, 0, 0)
	youngest := fixed.AddDate(-minAge, 0, 1)

	for range 100 {
		dob := f.DateOfBirth()
		if dob.Before(oldest) || dob.After(youngest) {
			t.Errorf("dob %s outside [%s, %s]", dob.Format(DateLayout),
				oldest.Format(DateLayout), youngest.Format(DateLayout))
		}
	}
}

func TestAgeRange(t *testing.T) {
	f := New("")
	for range 100 {
		if a := f.Age(); a < minAge || a > maxAge {
			t.Errorf("age %d outside [%d, %d]", a, minAge, maxAge)
		}
	}
}

func TestTextWordCount(t *testing.T) {
	f := New("")
	for range 50 {
		words := strings.Fields(f.Text())
		if len(words) < minTextWords || len(words) > maxTextWords {
			t.Errorf("text has %d words, want %d-%d", len(words), minTextWords, maxTextWords)
		}
	}
}

func TestPasswordLength(t *testing.T) {
	f := New("")
	if pw := f.Password(); len(pw) != defaultPasswordLen {
		t.Errorf("password length = %d, want %d", len(pw), defaultPasswordLen)
	}
}

func TestIDRandomness(t *testing.T) {
	f := New("")
	a, b := f.ID(), f.ID()
	// 32 bits of randomness; a collision here is a broken source
	if a == b {
		t.Errorf("consecutive IDs should differ: got %q twice", a)
	}
}

func TestNameRandomness(t *testing.T) {
	f := New("")
	first := f.Name()
	different := false
	for range 5 {
		if f.Name() != first {
			different = true
			break
		}
	}
	if !different {
		t.Errorf("name generation appears non-random: got %s every time", first)
	}
}
