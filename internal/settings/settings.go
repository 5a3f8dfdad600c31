// Package settings defines the configuration consumed by resolution and
// emission (spec.md §6, "Configuration (Settings)").
package settings

import "math/rand"

// Settings carries the knobs that influence resolve/emit but never the
// parser, which is pure text-to-AST (spec.md §4.1).
type Settings struct {
	// StaticDir is the base directory <file values are resolved
	// against. Empty disables file access entirely.
	StaticDir string

	// UnconstrainedFileAccess, when true, allows a resolved <file path
	// to escape StaticDir.
	UnconstrainedFileAccess bool

	// RequestHost, when set, becomes the default Host header on
	// requests that do not already specify one.
	RequestHost string

	// WebsocketKey is the base64 client key a WS response's handshake
	// header synthesis needs to compute Sec-WebSocket-Accept.
	WebsocketKey string

	// Rand, if non-nil, is used to resolve symbolic "r" offsets and to
	// sample Generate values that were built without their own source.
	// A nil Rand falls back to package defaults in the consumers below.
	Rand *rand.Rand

	// BlockSize is the emitter's write chunk size; zero means the
	// emitter's own default (spec.md §4.4: "default 1024").
	BlockSize int
}

// New returns zero-value Settings equivalent to an unconfigured engine:
// no file access, no default Host header, no websocket key.
func New() *Settings {
	return &Settings{}
}

// defaultRand is the shared fallback PRNG for Settings that don't carry
// their own Rand, mirroring internal/values' defaultRand: a single
// seeded generator advanced across calls, not reconstructed per call
// (a fresh rand.New(rand.NewSource(1)) on every call would return the
// same draw for a given n every time, which is not "random").
var defaultRand = rand.New(rand.NewSource(1))

func (s *Settings) rng() *rand.Rand {
	if s == nil || s.Rand == nil {
		return defaultRand
	}
	return s.Rand
}

// Intn resolves an offset/size random draw using the settings' PRNG, or
// a fixed-seed fallback when Settings or its Rand is nil.
func (s *Settings) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng().Intn(n)
}
