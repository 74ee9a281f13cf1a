package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference(t *testing.T) {
	p := Reference()
	assert.Equal(t, 3, p.PrimaryRadix)
	assert.Equal(t, 8, p.SecondaryRadix)
	assert.NoError(t, p.Validate())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Profile
	}{
		{"empty", "", Reference()},
		{"partial", "secondary_radix: 16\n", Profile{Name: "reference", PrimaryRadix: 3, SecondaryRadix: 16}},
		{"full", "name: hex\nprimary_radix: 2\nsecondary_radix: 36\n", Profile{Name: "hex", PrimaryRadix: 2, SecondaryRadix: 36}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		invalid bool
	}{
		{"primary too small", "primary_radix: 1\n", true},
		{"secondary too large", "secondary_radix: 37\n", true},
		{"blank name", "name: \"\"\n", true},
		{"unknown field", "tertiary_radix: 5\n", false},
		{"not yaml", "primary_radix: [\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")

	want := Profile{Name: "octal-hex", PrimaryRadix: 8, SecondaryRadix: 16}
	data, err := want.Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
