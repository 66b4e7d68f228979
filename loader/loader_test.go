package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestDecodeUTF8Passthrough(t *testing.T) {
	text, err := Decode([]byte("G0 X10 (荒加工)\nG1 X20"))
	assert.NoError(t, err)
	assert.Equal(t, "G0 X10 (荒加工)\nG1 X20", text)
}

func TestDecodeCP932Fallback(t *testing.T) {
	// "(テスト)" in CP932 followed by a plain block.
	data := []byte{'(', 0x83, 0x65, 0x83, 0x58, 0x83, 0x67, ')', '\n', 'G', '0', ' ', 'X', '1'}

	text, err := Decode(data)
	assert.NoError(t, err)
	assert.Equal(t, "(テスト)\nG0 X1", text)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.nc")
	assert.NoError(t, os.WriteFile(path, []byte("G0 X10\n"), 0o644))

	text, err := ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "G0 X10\n", text)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.nc"))
	assert.Error(t, err)
}
