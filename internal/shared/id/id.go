// Package id provides centralized ID generation for the backend.
//
// IDs are prefixed ULIDs:
//   - Lexicographic sortability: newer solutions sort after older ones
//   - Prefixed types: sol_*, fav_*, frm_*, req_* are readable in logs
//   - Type safety: separate types prevent ID misuse
//   - Time-derived: the creation instant is recoverable with Timestamp
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ============================================================================
// Type-Safe ID Wrappers
// ============================================================================

// SolutionID identifies a synthesized solution
type SolutionID string

// FavoriteID identifies a favorited formula entry
type FavoriteID string

// FormulaID identifies a built-in or custom formula
type FormulaID string

// RequestID identifies an API request
type RequestID string

// ============================================================================
// ID Prefixes (for debugging and type identification)
// ============================================================================

const (
	SolutionPrefix = "sol"
	FavoritePrefix = "fav"
	FormulaPrefix  = "frm"
	RequestPrefix  = "req"
)

// ============================================================================
// ULID Generator
// ============================================================================

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
	clock     func() time.Time
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by monotonic crypto entropy, so
// IDs minted within the same millisecond still sort in creation order.
func NewGenerator() *Generator {
	return &Generator{
		entropy: ulid.Monotonic(rand.Reader, 0),
		clock:   time.Now,
	}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source
// and clock. Useful for deterministic tests.
func NewGeneratorWithEntropy(entropy io.Reader, clock func() time.Time) *Generator {
	if clock == nil {
		clock = time.Now
	}
	return &Generator{
		entropy: entropy,
		clock:   clock,
	}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(g.clock()), g.entropy)
}

// GenerateString creates a new ULID as a string
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// ============================================================================
// Typed ID Generators
// ============================================================================

// NewSolutionID generates a new solution ID
func NewSolutionID() SolutionID {
	return SolutionID(Default().GenerateWithPrefix(SolutionPrefix))
}

// NewFavoriteID generates a new favorite ID
func NewFavoriteID() FavoriteID {
	return FavoriteID(Default().GenerateWithPrefix(FavoritePrefix))
}

// NewFormulaID generates a new formula ID
func NewFormulaID() FormulaID {
	return FormulaID(Default().GenerateWithPrefix(FormulaPrefix))
}

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

func (id SolutionID) String() string { return string(id) }
func (id FavoriteID) String() string { return string(id) }
func (id FormulaID) String() string  { return string(id) }
func (id RequestID) String() string  { return string(id) }

// ============================================================================
// Parsing
// ============================================================================

// IsValid checks if an ID string is a valid ULID, with or without prefix
func IsValid(id string) bool {
	_, err := Parse(id)
	return err == nil
}

// Parse parses a ULID string, stripping a "prefix_" if present
func Parse(id string) (ulid.ULID, error) {
	if i := strings.LastIndexByte(id, '_'); i >= 0 {
		id = id[i+1:]
	}
	return ulid.Parse(id)
}

// Timestamp extracts the creation time from an ID
func Timestamp(id string) (time.Time, error) {
	parsed, err := Parse(id)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
