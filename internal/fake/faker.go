// Package fake produces synthetic personal and free-text values.
// All randomness comes from crypto/rand; nothing here touches the filesystem.
package fake

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zarlcorp/core/pkg/zcrypto"
)

const (
	minAge = 18
	maxAge = 90

	defaultPasswordLen = 20

	minTextWords = 8
	maxTextWords = 20
)

// Faker produces random field values. The zero value is not usable; call New.
type Faker struct {
	domain string
	now    func() time.Time
}

// New creates a Faker whose emails use domain, or DefaultDomain when empty.
func New(domain string) *Faker {
	if domain == "" {
		domain = DefaultDomain
	}
	return &Faker{domain: strings.ToLower(domain), now: time.Now}
}

// Domain returns the email domain in use.
func (f *Faker) Domain() string {
	return f.domain
}

// Name generates a "First Last" person name.
func (f *Faker) Name() string {
	return f.FirstName() + " " + f.LastName()
}

// FirstName generates a given name.
func (f *Faker) FirstName() string {
	return pick(firstNames)
}

// LastName generates a family name.
func (f *Faker) LastName() string {
	return pick(lastNames)
}

// Email generates an address in the form <adjective><noun><4digits>@domain.
// It is unrelated to any generated name.
func (f *Faker) Email() string {
	digits := fmt.Sprintf("%04d", randIntn(10000))
	return pick(adjectives) + pick(nouns) + digits + "@" + f.domain
}

// Address generates a single-line US postal address like
// "1234 Oak Ave, Portland, OR 97201".
func (f *Faker) Address() string {
	return fmt.Sprintf("%s, %s, %s %s", f.Street(), f.City(), f.State(), f.Zip())
}

// Street generates a street line like "1234 Oak Ave".
func (f *Faker) Street() string {
	num := 100 + randIntn(9900)
	return fmt.Sprintf("%d %s %s", num, pick(streetNames), pick(streetSuffixes))
}

// City generates a US city name.
func (f *Faker) City() string {
	return pick(cities)
}

// State generates a two-letter US state code.
func (f *Faker) State() string {
	return pick(states)
}

// Zip generates a 5-digit US zip code.
func (f *Faker) Zip() string {
	return fmt.Sprintf("%05d", randIntn(100000))
}

// Country generates a country name.
func (f *Faker) Country() string {
	return pick(countries)
}

// SSN generates a government-ID-like string AAA-GG-SSSS. The area is never
// 000, 666 or 900-999 and group and serial are never zero.
func (f *Faker) SSN() string {
	area := 1 + randIntn(898)
	if area >= 666 {
		area++
	}
	group := 1 + randIntn(99)
	serial := 1 + randIntn(9999)
	return fmt.Sprintf("%03d-%02d-%04d", area, group, serial)
}

// DateOfBirth generates a birth date for someone between 18 and 90 years old.
func (f *Faker) DateOfBirth() time.Time {
	now := f.now()
	age := minAge + randIntn(maxAge-minAge+1)
	// subtract years, then randomize the day within that year
	base := now.AddDate(-age, 0, 0)
	return base.AddDate(0, 0, -randIntn(365)).Truncate(24 * time.Hour)
}

// Age generates an age in years between 18 and 90.
func (f *Faker) Age() int {
	return minAge + randIntn(maxAge-minAge+1)
}

// Job generates a job title.
func (f *Faker) Job() string {
	return pick(jobs)
}

// Text generates a capitalized lorem sentence of 8 to 20 words.
func (f *Faker) Text() string {
	n := minTextWords + randIntn(maxTextWords-minTextWords+1)
	words := make([]string, n)
	for i := range words {
		words[i] = pick(loremWords)
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ") + "."
}

// Password generates a 20 character password.
func (f *Faker) Password() string {
	return zcrypto.GeneratePassword(defaultPasswordLen)
}

// ID generates an 8-character hex identifier.
func (f *Faker) ID() string {
	b, err := zcrypto.RandBytes(4)
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("zcrypto: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// UUID generates a random version 4 UUID.
func (f *Faker) UUID() string {
	return uuid.NewString()
}

// pick returns a random element from a string slice.
func pick(s []string) string {
	return s[randIntn(len(s))]
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
