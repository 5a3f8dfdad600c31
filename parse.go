package pathod

import (
	pathoderrors "github.com/joshuafuller/pathod/internal/errors"
	"github.com/joshuafuller/pathod/internal/parser"
	"github.com/joshuafuller/pathod/internal/token"
)

// Message is a parsed, not-yet-resolved spec: a response, a request,
// or a WebSocket data frame (spec.md §3).
type Message = token.Message

// ParseError reports a malformed spec, pinpointing the byte offset
// where parsing stopped matching the grammar.
type ParseError = pathoderrors.ParseError

// ParseResponse parses a response spec: a status code or "ws" marker
// followed by any number of colon-separated atoms (spec.md §3.2).
// A response spec embedded inside another spec via the "s" atom is
// parsed eagerly and recursively by the same grammar.
func ParseResponse(spec string) (*Message, error) {
	return parser.ParseResponse(spec)
}

// ParseRequest parses a request spec: a method (or "ws" marker)
// followed by a mandatory path and any number of colon-separated
// atoms (spec.md §3.2).
func ParseRequest(spec string) (*Message, error) {
	return parser.ParseRequest(spec)
}

// ParseWebsocketFrame parses a WebSocket data frame spec: the "wf"
// marker followed by any number of colon-separated atoms (spec.md
// §3.2).
func ParseWebsocketFrame(spec string) (*Message, error) {
	return parser.ParseWebsocketFrame(spec)
}
