package values

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// File is a memory-mapped, read-only file value. The mapping is
// acquired on construction and released by Close (spec.md §3.1, §5 —
// "scoped: acquires a read-only mapping on construction; releases it
// when the generator is dropped"). Construction itself performs no
// policy enforcement; callers resolve and authorize the path through
// internal/fsaccess before calling NewFile.
type File struct {
	path   string
	f      *os.File
	mapped mmap.MMap
	frozen *Literal
}

// NewFile memory-maps the file at the already-resolved path.
func NewFile(resolvedPath string) (*File, error) {
	f, err := os.Open(resolvedPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", resolvedPath, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", resolvedPath, err)
	}
	if info.Size() == 0 {
		// mmap.Map rejects zero-length files; an empty Value needs no mapping.
		f.Close()
		return &File{path: resolvedPath, frozen: NewLiteral(nil)}, nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s: %w", resolvedPath, err)
	}
	return &File{path: resolvedPath, f: f, mapped: m}, nil
}

func (fv *File) Len() int {
	if fv.frozen != nil {
		return fv.frozen.Len()
	}
	return len(fv.mapped)
}

func (fv *File) Slice(a, b int) []byte {
	if fv.frozen != nil {
		return fv.frozen.Slice(a, b)
	}
	b = clamp(b, len(fv.mapped))
	if a < 0 {
		a = 0
	}
	if a > b {
		a = b
	}
	out := make([]byte, b-a)
	copy(out, fv.mapped[a:b])
	return out
}

func (fv *File) Byte(i int) byte {
	if fv.frozen != nil {
		return fv.frozen.Byte(i)
	}
	return fv.mapped[i]
}

// Freeze captures the file's current bytes into a Literal. Since the
// underlying file is not expected to change between reads, this mainly
// lets a frozen message be closed and later rendered without
// re-touching the filesystem (spec.md §8 law 10).
func (fv *File) Freeze() *Literal {
	if fv.frozen == nil {
		fv.frozen = NewLiteral(fv.Slice(0, fv.Len()))
	}
	return fv.frozen
}

// Close unmaps the file and releases the underlying descriptor
// (spec.md §9 open question 3 — the source never unmaps; this module
// does so deterministically).
func (fv *File) Close() error {
	var err error
	if fv.mapped != nil {
		err = fv.mapped.Unmap()
		fv.mapped = nil
	}
	if fv.f != nil {
		if cerr := fv.f.Close(); err == nil {
			err = cerr
		}
		fv.f = nil
	}
	return err
}

func (fv *File) String() string {
	return fmt.Sprintf("<%s", fv.path)
}
