package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	for _, content := range []string{"", "one", "one\n", "a\nb\n\nc", "\n\n", "tab\tand \r\n crlf\n"} {
		dir := t.TempDir()
		src := filepath.Join(dir, "src.c")
		require.NoError(t, os.WriteFile(src, []byte(content), 0o600))

		sb := NewSliceBuffer()
		require.NoError(t, sb.Load(src))
		assert.Equal(t, content, string(sb.Bytes()))
		assert.False(t, sb.IsModified())

		dst := filepath.Join(dir, "dst.c")
		require.NoError(t, sb.Save(dst))
		got, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, content, string(got))
		assert.Equal(t, dst, sb.FilePath())
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.c")
	sb := NewSliceBuffer()
	require.NoError(t, sb.Load(path))
	assert.Equal(t, 1, sb.LineCount())
	assert.Equal(t, path, sb.FilePath())
}

func TestSetBytes(t *testing.T) {
	sb := NewSliceBufferFromBytes([]byte("int x;"))
	assert.False(t, sb.IsModified())

	sb.SetBytes([]byte("int x;\nint y;\n"))
	assert.True(t, sb.IsModified())
	assert.Equal(t, 3, sb.LineCount())

	line, err := sb.Line(1)
	require.NoError(t, err)
	assert.Equal(t, "int y;", string(line))

	_, err = sb.Line(3)
	assert.Error(t, err)
}

func TestSavePreservesPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo"), 0o755))

	sb := NewSliceBuffer()
	require.NoError(t, sb.Load(path))
	sb.SetBytes([]byte("echo hi"))
	require.NoError(t, sb.Save(""))
	assert.False(t, sb.IsModified())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestSaveWithoutPath(t *testing.T) {
	assert.Error(t, NewSliceBuffer().Save(""))
}
