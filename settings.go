package pathod

import (
	"math/rand"

	"github.com/joshuafuller/pathod/internal/settings"
)

// Settings configures resolution and emission. The parser never
// consults it — spec text parses identically regardless of
// configuration (spec.md §4.1).
type Settings = settings.Settings

// Option is a functional option for configuring Settings, following
// the same pattern as the teacher library's querier.Option.
type Option func(*Settings)

// NewSettings returns a Settings with sane zero-configuration
// defaults: no file access, no default Host header, no websocket key,
// and the emitter's built-in block size.
//
// Example:
//
//	s := pathod.NewSettings(
//	    pathod.WithStaticDir("/srv/files"),
//	    pathod.WithRequestHost("example.com"),
//	)
func NewSettings(opts ...Option) *Settings {
	s := settings.New()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithStaticDir sets the base directory <file values are resolved
// against. Leaving it unset disables file access entirely.
func WithStaticDir(dir string) Option {
	return func(s *Settings) { s.StaticDir = dir }
}

// WithUnconstrainedFileAccess allows a resolved <file path to escape
// StaticDir. Use only for trusted spec sources.
func WithUnconstrainedFileAccess(allow bool) Option {
	return func(s *Settings) { s.UnconstrainedFileAccess = allow }
}

// WithRequestHost sets the default Host header synthesized onto
// requests that do not already specify one.
func WithRequestHost(host string) Option {
	return func(s *Settings) { s.RequestHost = host }
}

// WithWebsocketKey sets the base64 client key a WS response's
// handshake header synthesis uses to compute Sec-WebSocket-Accept.
func WithWebsocketKey(key string) Option {
	return func(s *Settings) { s.WebsocketKey = key }
}

// WithBlockSize sets the emitter's write chunk size. Zero restores
// the emitter's own default.
func WithBlockSize(n int) Option {
	return func(s *Settings) { s.BlockSize = n }
}

// WithRand sets the PRNG used to resolve symbolic "r" offsets and to
// sample Generate values built without their own source. Useful for
// deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(s *Settings) { s.Rand = r }
}
