package values

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "body.bin")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestFile_MapsContentsAndLength(t *testing.T) {
	path := writeTempFile(t, "the quick brown fox")

	f, err := NewFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, len("the quick brown fox"), f.Len())
	require.Equal(t, "the quick brown", string(f.Slice(0, 15)))
	require.Equal(t, byte('t'), f.Byte(0))
}

func TestFile_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "")

	f, err := NewFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, 0, f.Len())
}

func TestFile_FreezeThenClose(t *testing.T) {
	path := writeTempFile(t, "frozen contents")

	f, err := NewFile(path)
	require.NoError(t, err)

	frozen := f.Freeze()
	require.NoError(t, f.Close())

	// After Close, reads on the frozen snapshot must still work.
	require.Equal(t, "frozen contents", string(frozen.Slice(0, frozen.Len())))
	require.Equal(t, "frozen contents", string(f.Slice(0, f.Len())))
}

func TestFile_MissingPath(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}
