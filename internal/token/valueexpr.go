// Package token defines the immutable spec AST: the Value expression
// nodes (literal/generate/file, spec.md §3.1) and the component/action
// tokens that reference them (spec.md §3.2), plus the Message that
// groups them (spec.md §3.3).
package token

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/joshuafuller/pathod/internal/fsaccess"
	"github.com/joshuafuller/pathod/internal/settings"
	"github.com/joshuafuller/pathod/internal/values"
)

type valueKind int

const (
	kindLiteral valueKind = iota
	kindGenerate
	kindFile
)

// ValueExpr is the AST node for a "value" or "nvalue" production:
// a literal (quoted or bare), a @size,datatype generator, or a <path
// file reference (spec.md §3.1, §4.1).
type ValueExpr struct {
	kind valueKind

	// kindLiteral
	literalBytes []byte
	naked        bool
	quote        byte

	// kindGenerate
	size  int
	unit  values.SizeUnit
	dtype values.Charset

	// kindFile
	path quotable

	// cached materialization, built lazily by Generator/Len and reused
	// by Freeze so a File is mapped at most once.
	cachedGen values.Value
}

// quotable is a bare-or-quoted text fragment, used wherever the grammar
// allows a "naked" production (spec.md §4.1: naked := qliteral | bareword).
type quotable struct {
	text  string
	naked bool
	quote byte
}

func (q quotable) spec() string {
	if q.naked {
		return q.text
	}
	return quoteString([]byte(q.text), q.quote)
}

// NewLiteralValue wraps already-escape-decoded bytes. naked records
// whether the source spec wrote this unquoted, so Spec() round-trips
// without introducing quotes the original didn't have.
func NewLiteralValue(decoded []byte, naked bool, quote byte) *ValueExpr {
	if quote == 0 {
		quote = '\''
	}
	return &ValueExpr{kind: kindLiteral, literalBytes: append([]byte(nil), decoded...), naked: naked, quote: quote}
}

// NewGenerateValue builds a @size,datatype generator node.
func NewGenerateValue(size int, unit values.SizeUnit, dtype values.Charset) *ValueExpr {
	return &ValueExpr{kind: kindGenerate, size: size, unit: unit, dtype: dtype}
}

// NewFileValue builds a <path file-reference node. pathText is the
// decoded path text (escapes already resolved if it was quoted).
func NewFileValue(pathText string, naked bool, quote byte) *ValueExpr {
	if quote == 0 {
		quote = '\''
	}
	return &ValueExpr{kind: kindFile, path: quotable{text: pathText, naked: naked, quote: quote}}
}

// IsFile reports whether this value is a <file reference — resolve and
// emit need this to decide whether file-access policy applies.
func (v *ValueExpr) IsFile() bool { return v.kind == kindFile }

// IsGenerate reports whether this value is a @size,datatype generator.
func (v *ValueExpr) IsGenerate() bool { return v.kind == kindGenerate }

// Spec renders the value back to spec-language text (spec.md §4.1 round-trip law).
func (v *ValueExpr) Spec() string {
	switch v.kind {
	case kindLiteral:
		if v.naked {
			return string(v.literalBytes)
		}
		return quoteString(v.literalBytes, v.quote)
	case kindGenerate:
		s := "@" + strconv.Itoa(v.size) + string(byte(unitOrDefault(v.unit)))
		if v.dtype != "" && v.dtype != values.CharsetBytes {
			s += "," + string(v.dtype)
		}
		return s
	case kindFile:
		return "<" + v.path.spec()
	default:
		return ""
	}
}

func unitOrDefault(u values.SizeUnit) values.SizeUnit {
	if u == 0 {
		return values.UnitBytes
	}
	return u
}

// Generator realizes this value into a byte-sequence generator,
// resolving and authorizing a <file path through policy first.
func (v *ValueExpr) Generator(s *settings.Settings) (values.Value, error) {
	if v.cachedGen != nil {
		return v.cachedGen, nil
	}
	switch v.kind {
	case kindLiteral:
		v.cachedGen = values.NewLiteral(v.literalBytes)
	case kindGenerate:
		v.cachedGen = values.NewGenerate(v.size*values.Multiplier(v.unit), v.dtype, rngOf(s))
	case kindFile:
		resolved, err := resolveFilePath(s, v.path.text)
		if err != nil {
			return nil, err
		}
		f, err := values.NewFile(resolved)
		if err != nil {
			return nil, fmt.Errorf("materialize <%s: %w", v.path.text, err)
		}
		v.cachedGen = f
	default:
		return nil, fmt.Errorf("unknown value kind")
	}
	return v.cachedGen, nil
}

// Len returns the value's byte length without necessarily reading its
// content for literal/generate; for a file value it must resolve and
// map the file once (spec.md §3.1: "File | len(file) on resolve").
func (v *ValueExpr) Len(s *settings.Settings) (int, error) {
	switch v.kind {
	case kindLiteral:
		return len(v.literalBytes), nil
	case kindGenerate:
		return v.size * values.Multiplier(v.unit), nil
	case kindFile:
		gen, err := v.Generator(s)
		if err != nil {
			return 0, err
		}
		return gen.Len(), nil
	default:
		return 0, fmt.Errorf("unknown value kind")
	}
}

// Freeze realizes this value's current bytes into a literal ValueExpr
// (spec.md §3.1 "freezable" invariant; §8 law 10 — a frozen message
// contains no Generate or File values).
func (v *ValueExpr) Freeze(s *settings.Settings) (*ValueExpr, error) {
	if v.kind == kindLiteral {
		return v, nil
	}
	gen, err := v.Generator(s)
	if err != nil {
		return nil, err
	}
	if fz, ok := gen.(values.Freezable); ok {
		lit := fz.Freeze()
		return NewLiteralValue(lit.Slice(0, lit.Len()), false, '\''), nil
	}
	return NewLiteralValue(gen.Slice(0, gen.Len()), false, '\''), nil
}

func rngOf(s *settings.Settings) *rand.Rand {
	if s == nil {
		return nil
	}
	return s.Rand
}

func resolveFilePath(s *settings.Settings, requested string) (string, error) {
	if s == nil {
		s = settings.New()
	}
	policy := fsaccess.New(s.StaticDir, s.UnconstrainedFileAccess)
	return policy.Resolve(requested)
}
