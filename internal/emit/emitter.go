package emit

import (
	"sort"
	"time"

	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/joshuafuller/pathod/internal/token"
)

const defaultBlockSize = 1024

// Sleeper abstracts a pause action's suspension so tests can observe
// requested durations without actually waiting them out. Production
// callers should pass time.Sleep.
type Sleeper func(d time.Duration)

// Result is what one emission reports back to its caller (spec.md §4.4).
type Result struct {
	Disconnected bool
	Started      time.Time
	Duration     time.Duration
	Log          map[string]interface{}
}

type pendingAction struct {
	offset int
	tok    token.Token
}

func actionOffset(t token.Token) (int, bool) {
	switch a := t.(type) {
	case *token.PauseAt:
		return a.Offset.Value, true
	case *token.DisconnectAt:
		return a.Offset.Value, true
	case *token.InjectAt:
		return a.Offset.Value, true
	default:
		return 0, false
	}
}

// Emit writes a resolved message's bytes to w, interleaving its
// actions at their resolved numeric offsets (spec.md §4.4). msg must
// already have been through internal/resolve — Emit does not
// synthesize headers or resolve symbolic offsets itself.
func Emit(msg *token.Message, w Writer, s *settings.Settings, sleep Sleeper) (Result, error) {
	if sleep == nil {
		sleep = time.Sleep
	}
	blockSize := defaultBlockSize
	if s != nil && s.BlockSize > 0 {
		blockSize = s.BlockSize
	}

	vals, err := msg.Values(s)
	if err != nil {
		return Result{}, err
	}

	var pending []pendingAction
	for _, a := range msg.Actions() {
		off, ok := actionOffset(a)
		if !ok {
			continue
		}
		pending = append(pending, pendingAction{offset: off, tok: a})
	}
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].offset < pending[j].offset })

	result := Result{Started: time.Now()}
	sofar := 0
	idx := 0

	finish := func() (Result, error) {
		result.Duration = time.Since(result.Started)
		return result, nil
	}

	for _, v := range vals {
		vLen := v.Len()
		cursor := 0

		for idx < len(pending) && pending[idx].offset < sofar+vLen {
			a := pending[idx]
			cut := a.offset - sofar
			if cut > cursor {
				disc, werr := writeChunks(w, v.Slice(cursor, cut), blockSize)
				if werr != nil {
					return Result{}, werr
				}
				if disc {
					result.Disconnected = true
					return finish()
				}
				cursor = cut
			}

			disc, derr := dispatchAction(a.tok, w, s, blockSize, sleep)
			if derr != nil {
				return Result{}, derr
			}
			if disc {
				result.Disconnected = true
				return finish()
			}
			idx++
		}

		disc, werr := writeChunks(w, v.Slice(cursor, vLen), blockSize)
		if werr != nil {
			return Result{}, werr
		}
		if disc {
			result.Disconnected = true
			return finish()
		}
		sofar += vLen
	}

	// Drain actions whose offset lies at or past sofar: "a" ("after")
	// offsets and any trailing injects (spec.md §4.4).
	for idx < len(pending) {
		disc, derr := dispatchAction(pending[idx].tok, w, s, blockSize, sleep)
		if derr != nil {
			return Result{}, derr
		}
		if disc {
			result.Disconnected = true
			break
		}
		idx++
	}

	result.Log = map[string]interface{}{"spec": msg.Spec()}
	return finish()
}

func dispatchAction(t token.Token, w Writer, s *settings.Settings, blockSize int, sleep Sleeper) (disconnected bool, err error) {
	switch a := t.(type) {
	case *token.PauseAt:
		if a.Forever {
			sleep(time.Duration(1<<63 - 1))
		} else {
			sleep(time.Duration(a.Seconds * float64(time.Second)))
		}
		return false, nil
	case *token.DisconnectAt:
		return true, nil
	case *token.InjectAt:
		gen, gerr := a.Value.Generator(s)
		if gerr != nil {
			return false, gerr
		}
		return writeChunks(w, gen.Slice(0, gen.Len()), blockSize)
	default:
		return false, nil
	}
}
