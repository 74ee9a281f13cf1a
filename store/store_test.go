package store

import (
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitalone/numlist"
	"github.com/capitalone/numlist/digits"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "number.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    digits.Slice
	}{
		{"plain", "1234", digits.Slice{1, 2, 3, 4}},
		{"whitespace", "\n  56 \r\n", digits.Slice{5, 6}},
		{"empty", "", digits.Slice{}},
		{"blank", "  \n\t", digits.Slice{}},
		{"negative", "-12", digits.Slice{}},
		{"garbage", "12ab", digits.Slice{}},
		{"plus", "+9", digits.Slice{9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(writeFile(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, numlist.DecimalRadix, s.Radix())
			assert.True(t, s.Equal(tt.want), "got %v", s.Values())
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	v, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	s, err := numlist.Encode(v, 3)
	require.NoError(t, err)

	require.NoError(t, Save(path, s))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", string(data))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, numlist.Decode(back).Cmp(v))
}

func TestSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	empty, err := digits.New(3)
	require.NoError(t, err)

	require.NoError(t, Save(path, empty))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0", string(data))
}

func TestSaveErrors(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorIs(t, Save(filepath.Join(dir, "out.txt"), nil), ErrInvalidArgument)

	s, err := digits.Of(10, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, Save(filepath.Join(dir, "no", "such", "dir.txt"), s), ErrIO)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReadWrite(t *testing.T) {
	s, err := Read(strings.NewReader(" 77 "))
	require.NoError(t, err)
	assert.True(t, s.Equal(digits.Slice{7, 7}))

	var sb strings.Builder
	require.NoError(t, Write(&sb, s))
	assert.Equal(t, "77", sb.String())

	_, err = Read(failingReader{})
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, Write(failingWriter{}, s), ErrIO)
	assert.ErrorIs(t, Write(&sb, nil), ErrInvalidArgument)
}

func TestLoadRadix(t *testing.T) {
	s, err := LoadRadix(writeFile(t, "1a\n"), 16)
	require.NoError(t, err)
	assert.Equal(t, 16, s.Radix())
	assert.Equal(t, "26", numlist.RenderDecimalText(s))

	_, err = LoadRadix(writeFile(t, "12"), 2)
	assert.ErrorIs(t, err, digits.ErrRange)

	_, err = LoadRadix(filepath.Join(t.TempDir(), "missing.txt"), 2)
	assert.ErrorIs(t, err, ErrIO)

	_, err = ReadRadix(failingReader{}, 2)
	assert.ErrorIs(t, err, ErrIO)
}
