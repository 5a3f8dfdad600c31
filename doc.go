// Package pathod crafts and emits precisely-specified HTTP and
// WebSocket traffic from a compact spec language — deliberately
// wrong, broken, or malformed responses included — for exercising how
// a client or proxy handles the edge of the protocol (spec.md
// §1 Overview).
//
// # Quick Start
//
// Parse a response spec, resolve it against a set of Settings, and
// emit it to any io.Writer:
//
//	package main
//
//	import (
//	    "log"
//	    "os"
//
//	    "github.com/joshuafuller/pathod"
//	)
//
//	func main() {
//	    msg, err := pathod.ParseResponse("200:b'hello':h'X-Header'='value'")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    s := pathod.NewSettings()
//	    result, err := pathod.Emit(msg, os.Stdout, s)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    log.Printf("wrote response in %s", result.Duration)
//	}
//
// # Spec Language
//
// A response spec is a colon-separated sequence starting with a status
// code (or "ws" for a WebSocket upgrade), followed by any number of
// atoms: headers (h'Key'='Value'), shortcuts (c for Content-Type, l
// for Location), a body (b'...'), a reason phrase (m'...'), the raw
// marker (r, suppressing header synthesis), and timed actions
// (p for pause, d for disconnect, i for inject) addressed by byte
// offset into the rendered message.
//
// A pause written with "f" in place of a duration (p10,f) has no
// timeout: Emit passes the largest time.Duration to its sleeper, and
// nothing inside Emit interrupts that sleep.
//
// A request spec instead leads with a method and a mandatory path:
// "get:/index:h'User-Agent'='custom'". A WebSocket data frame spec
// uses the "wf" marker in place of a status code or method.
//
// # Configuration
//
// Settings carries the knobs resolution and emission need: the static
// file directory <file values resolve against, a default request Host
// header, the WebSocket client key needed to compute
// Sec-WebSocket-Accept, and the emitter's write block size. Configure
// it with functional options:
//
//	s := pathod.NewSettings(
//	    pathod.WithStaticDir("/srv/pathod-files"),
//	    pathod.WithBlockSize(4096),
//	)
//
// # Error Handling
//
// Parsing returns a *pathod.ParseError pinpointing the line and column
// where the spec text stopped matching the grammar. Resolution and
// emission return *pathod.RenderError or *pathod.FileAccessDeniedError
// for precondition failures (a WebSocket response resolved without a
// key, a <file value outside the configured static directory). A
// disconnect action or a writer reporting ErrWriterDisconnected is not
// an error: Emit reports it via Result.Disconnected instead.
package pathod
