package fsaccess

import (
	"os"
	"path/filepath"
	"testing"

	pathoderrors "github.com/joshuafuller/pathod/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestPolicy_NoStaticDirDenies(t *testing.T) {
	p := New("", false)
	_, err := p.Resolve("body.bin")
	require.Error(t, err)
	var fae *pathoderrors.FileAccessDeniedError
	require.ErrorAs(t, err, &fae)
	require.Equal(t, "no staticdir configured", fae.Reason)
}

func TestPolicy_AllowsFileWithinStaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "body.bin"), []byte("x"), 0o644))

	p := New(dir, false)
	resolved, err := p.Resolve("body.bin")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "body.bin"), filepath.Clean(resolved))
}

func TestPolicy_DeniesEscapeWhenConstrained(t *testing.T) {
	dir := t.TempDir()
	p := New(dir, false)

	_, err := p.Resolve("../../../../etc/passwd")
	require.Error(t, err)
	var fae *pathoderrors.FileAccessDeniedError
	require.ErrorAs(t, err, &fae)
	require.Equal(t, "escapes staticdir", fae.Reason)
}

func TestPolicy_AllowsEscapeWhenUnconstrained(t *testing.T) {
	outside := t.TempDir()
	target := filepath.Join(outside, "outside.bin")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	inside := t.TempDir()
	p := New(inside, true)

	rel, err := filepath.Rel(inside, target)
	require.NoError(t, err)

	resolved, err := p.Resolve(rel)
	require.NoError(t, err)
	require.Equal(t, filepath.Clean(target), filepath.Clean(resolved))
}

func TestPolicy_DeniesDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "subdir")
	require.NoError(t, os.Mkdir(sub, 0o755))

	p := New(dir, false)
	_, err := p.Resolve("subdir")
	require.Error(t, err)
	var fae *pathoderrors.FileAccessDeniedError
	require.ErrorAs(t, err, &fae)
	require.Equal(t, "not a regular file", fae.Reason)
}

func TestPolicy_DeniesMissingFile(t *testing.T) {
	dir := t.TempDir()
	p := New(dir, false)

	_, err := p.Resolve("nope.bin")
	require.Error(t, err)
}
