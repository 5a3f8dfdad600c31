// Package fsaccess enforces the file-access policy a <file value must
// pass before its path is handed to internal/values.NewFile (spec.md
// §5, "File-access policy").
package fsaccess

import (
	"os"
	"path/filepath"
	"strings"

	pathoderrors "github.com/joshuafuller/pathod/internal/errors"
)

// Policy caches the settings a resolved path is checked against, the
// way the teacher's source filter caches interface addresses once at
// construction instead of re-deriving them per check.
type Policy struct {
	staticDir     string
	unconstrained bool
}

// New builds a Policy. staticDir may be empty, in which case every
// <file reference is denied (spec.md §5: "staticdir unset -> all file
// references fail with FileAccessDenied").
func New(staticDir string, unconstrainedFileAccess bool) *Policy {
	return &Policy{staticDir: staticDir, unconstrained: unconstrainedFileAccess}
}

// Resolve turns a spec-supplied path into an absolute, policy-checked
// path suitable for internal/values.NewFile, or a
// *pathoderrors.FileAccessDeniedError describing which check failed.
func (p *Policy) Resolve(requested string) (string, error) {
	if p.staticDir == "" {
		return "", &pathoderrors.FileAccessDeniedError{
			Path:   requested,
			Reason: "no staticdir configured",
		}
	}

	expanded, err := expandUser(requested)
	if err != nil {
		return "", &pathoderrors.FileAccessDeniedError{Path: requested, Reason: "cannot expand path", Err: err}
	}

	joined := filepath.Join(p.staticDir, expanded)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", &pathoderrors.FileAccessDeniedError{Path: requested, Reason: "cannot resolve absolute path", Err: err}
	}
	resolved := filepath.Clean(abs)

	if !p.unconstrained {
		absStatic, err := filepath.Abs(p.staticDir)
		if err != nil {
			return "", &pathoderrors.FileAccessDeniedError{Path: requested, Reason: "cannot resolve staticdir", Err: err}
		}
		absStatic = filepath.Clean(absStatic)
		if !withinDir(absStatic, resolved) {
			return "", &pathoderrors.FileAccessDeniedError{
				Path:   requested,
				Reason: "escapes staticdir",
			}
		}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &pathoderrors.FileAccessDeniedError{Path: requested, Reason: "cannot stat target", Err: err}
	}
	if !info.Mode().IsRegular() {
		return "", &pathoderrors.FileAccessDeniedError{Path: requested, Reason: "not a regular file"}
	}
	f, err := os.Open(resolved)
	if err != nil {
		return "", &pathoderrors.FileAccessDeniedError{Path: requested, Reason: "not readable", Err: err}
	}
	f.Close()

	return resolved, nil
}

func withinDir(dir, target string) bool {
	if target == dir {
		return true
	}
	prefix := dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(target, prefix)
}

func expandUser(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
