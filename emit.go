package pathod

import (
	"io"
	"time"

	"github.com/joshuafuller/pathod/internal/emit"
	pathoderrors "github.com/joshuafuller/pathod/internal/errors"
	"github.com/joshuafuller/pathod/internal/resolve"
)

// Result reports how an emission went: whether the peer disconnected
// partway through, when it started, how long it took, and a log
// record suitable for the caller's own structured logger (spec.md
// §4.4).
type Result = emit.Result

// RenderError reports a failed resolution precondition, such as a
// WebSocket response resolved without a websocket key in Settings.
type RenderError = pathoderrors.RenderError

// FileAccessDeniedError reports that a <file value violated the
// file-access policy.
type FileAccessDeniedError = pathoderrors.FileAccessDeniedError

// ErrWriterDisconnected is the sentinel a caller's io.Writer should
// wrap (so errors.Is finds it through any intermediate wrapping) to
// report a clean peer disconnect rather than a fatal I/O error.
var ErrWriterDisconnected = emit.ErrWriterDisconnected

// Resolve synthesizes auto-headers (Content-Length, Host, WebSocket
// handshake) and resolves symbolic byte offsets against a parsed
// message, without writing anything (spec.md §4.3). Emit calls this
// internally; exported separately for callers that want to inspect
// Spec()/Length() of the resolved form before emitting it.
func Resolve(msg *Message, s *Settings) (*Message, error) {
	return resolve.Resolve(msg, s)
}

// Emit resolves msg and writes its bytes to w, interleaving any
// pause/disconnect/inject actions at their resolved byte offsets
// (spec.md §4.4). Pauses sleep via time.Sleep; use EmitWithSleeper to
// observe or fake pause durations in tests.
func Emit(msg *Message, w io.Writer, s *Settings) (Result, error) {
	return EmitWithSleeper(msg, w, s, time.Sleep)
}

// EmitWithSleeper is Emit with an injectable pause dispatch, letting
// tests assert requested pause durations without actually blocking.
func EmitWithSleeper(msg *Message, w io.Writer, s *Settings, sleep func(time.Duration)) (Result, error) {
	resolved, err := resolve.Resolve(msg, s)
	if err != nil {
		return Result{}, err
	}
	return emit.Emit(resolved, w, s, emit.Sleeper(sleep))
}
