// Package placeholder generates the fake strings printed by features.
package placeholder

import (
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Source is the part of math/rand/v2's *rand.Rand a Generator draws from.
type Source interface {
	IntN(n int) int
	Float64() float64
	Uint64() uint64
}

const (
	vowels        = "aeiou"
	consonants    = "bcdfghjklmnpqrstvwxyz"
	alphanumeric  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tokenChars    = alphanumeric + "-_"
	passwordChars = alphanumeric + "!@#$%&*"
	digits        = "0123456789"
)

// DefaultEmailDomains are used by Email when no domains are given.
var DefaultEmailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "example.com", "mail.com"}

var (
	usernameSyllables = []string{"fer", "do", "ra", "ki", "to", "mi", "za", "lo", "ven", "mar", "ra", "xi", "neo"}
	countryCodes      = []string{"+1", "+44", "+49", "+61", "+91", "+7"}
)

// Generator produces visually plausible placeholder strings. It carries no
// state of its own beyond the Source it was built with.
type Generator struct {
	src Source
}

// New returns a Generator drawing from src.
func New(src Source) *Generator {
	return &Generator{src: src}
}

// NewSeeded returns a Generator with a deterministic PCG source.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewRandom returns a Generator seeded from the runtime's random state.
func NewRandom() *Generator {
	return New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// Between returns an integer in [lo, hi].
func (g *Generator) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.src.IntN(hi-lo+1)
}

// Chance reports true with probability p.
func (g *Generator) Chance(p float64) bool {
	return g.src.Float64() < p
}

// Pick returns a random element of items. It panics on an empty slice.
func Pick[T any](g *Generator, items []T) T {
	return items[g.src.IntN(len(items))]
}

// Sample returns k distinct elements of items in random order.
func Sample[T any](g *Generator, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	pool := append([]T(nil), items...)
	for i := 0; i < k; i++ {
		j := i + g.src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func (g *Generator) fromAlphabet(alphabet string, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[g.src.IntN(len(alphabet))])
	}
	return b.String()
}

func (g *Generator) numberSuffix(name string) string {
	if g.Chance(0.6) {
		return name + strconv.Itoa(g.Between(1, 999))
	}
	return name
}

// EmailName returns the local part of a placeholder email address.
func (g *Generator) EmailName() string {
	var b strings.Builder
	groups := g.Between(1, 2)
	for i := 0; i < groups; i++ {
		// one syllable twice as often as two
		syllables := Pick(g, []int{1, 1, 2})
		for j := 0; j < syllables; j++ {
			b.WriteString(g.fromAlphabet(consonants, 1))
			b.WriteString(g.fromAlphabet(vowels, 1))
		}
	}
	return strings.ToLower(g.numberSuffix(b.String()))
}

// Email returns name@domain with a domain drawn from domains, or from
// DefaultEmailDomains when none are given.
func (g *Generator) Email(domains ...string) string {
	if len(domains) == 0 {
		domains = DefaultEmailDomains
	}
	return g.EmailName() + "@" + Pick(g, domains)
}

// IPv4 returns a dotted quad with every octet in [1, 254].
func (g *Generator) IPv4() string {
	octets := make([]string, 4)
	for i := range octets {
		octets[i] = strconv.Itoa(g.Between(1, 254))
	}
	return strings.Join(octets, ".")
}

// Code returns n alphanumeric characters.
func (g *Generator) Code(n int) string {
	return g.fromAlphabet(alphanumeric, n)
}

// Token returns three URL-safe segments of 24, 6 and 27 characters joined by dots.
func (g *Generator) Token() string {
	return g.fromAlphabet(tokenChars, 24) + "." + g.fromAlphabet(tokenChars, 6) + "." + g.fromAlphabet(tokenChars, 27)
}

// Username returns one to three syllables from a fixed set, optionally
// followed by a number.
func (g *Generator) Username() string {
	var b strings.Builder
	n := g.Between(1, 3)
	for i := 0; i < n; i++ {
		b.WriteString(Pick(g, usernameSyllables))
	}
	return g.numberSuffix(b.String())
}

// Password returns n characters from letters, digits and !@#$%&*.
func (g *Generator) Password(n int) string {
	return g.fromAlphabet(passwordChars, n)
}

// Phone returns a country prefix followed by nine digits.
func (g *Generator) Phone() string {
	return Pick(g, countryCodes) + strconv.Itoa(g.Between(100_000_000, 999_999_999))
}

// BankAccount returns twelve digits.
func (g *Generator) BankAccount() string {
	return g.fromAlphabet(digits, 12)
}

// PIN returns n digits, four when n is not positive.
func (g *Generator) PIN(n int) string {
	if n <= 0 {
		n = 4
	}
	return g.fromAlphabet(digits, n)
}

// Reader exposes the source as a byte stream, for APIs such as
// uuid.NewRandomFromReader.
func (g *Generator) Reader() io.Reader {
	return sourceReader{src: g.src}
}

type sourceReader struct {
	src Source
}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.src.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}
