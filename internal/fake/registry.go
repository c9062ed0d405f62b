package fake

import (
	"slices"
	"strconv"
)

// DateLayout is the format of date_of_birth values.
const DateLayout = "2006-01-02"

// Func produces one value for a field.
type Func func(f *Faker) string

// registry is the whitelist of supported fields. Its key set is the only
// definition of what a field spec may name.
var registry = map[string]Func{
	"name":          (*Faker).Name,
	"first_name":    (*Faker).FirstName,
	"last_name":     (*Faker).LastName,
	"address":       (*Faker).Address,
	"street":        (*Faker).Street,
	"city":          (*Faker).City,
	"state":         (*Faker).State,
	"zip":           (*Faker).Zip,
	"country":       (*Faker).Country,
	"email":         (*Faker).Email,
	"ssn":           (*Faker).SSN,
	"job":           (*Faker).Job,
	"text":          (*Faker).Text,
	"password":      (*Faker).Password,
	"id":            (*Faker).ID,
	"uuid":          (*Faker).UUID,
	"date_of_birth": func(f *Faker) string { return f.DateOfBirth().Format(DateLayout) },
	"age":           func(f *Faker) string { return strconv.Itoa(f.Age()) },
}

// Lookup returns the generator for a field name.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Supported reports whether name is a whitelisted field.
func Supported(name string) bool {
	_, ok := registry[name]
	return ok
}

// Fields returns every supported field name, sorted.
func Fields() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Value generates a single value for name. ok is false for unknown fields.
func (f *Faker) Value(name string) (string, bool) {
	fn, ok := registry[name]
	if !ok {
		return "", false
	}
	return fn(f), true
}
