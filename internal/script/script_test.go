package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "steer.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "steer left then stop", s.Name)
	assert.Equal(t, "vehicle", s.Contract)
	assert.Equal(t, []string{"noop"}, s.Presets)
	assert.Equal(t, 12, s.Overrides["speed"])
	assert.Equal(t, []string{"get speed", "steer left 30", "stop"}, s.Calls)
	assert.Equal(t, filepath.Join("testdata", "steer.yaml"), s.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "missing contract",
			input:   "calls: [stop]\n",
			wantErr: ErrInvalidScript,
		},
		{
			name:    "unknown contract",
			input:   "contract: boat\ncalls: [stop]\n",
			wantErr: ErrUnknownContract,
		},
		{
			name:    "no calls",
			input:   "contract: vehicle\n",
			wantErr: ErrInvalidScript,
		},
		{
			name:    "unknown field",
			input:   "contract: vehicle\ncalls: [stop]\ncolour: red\n",
			wantErr: ErrInvalidScript,
		},
		{
			name:    "malformed yaml",
			input:   "contract: [vehicle\n",
			wantErr: ErrInvalidScript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		script Script
		want   string
	}{
		{"name wins", Script{Name: "n", Path: "p.yaml", Contract: "vehicle"}, "n"},
		{"path fallback", Script{Path: "p.yaml", Contract: "vehicle"}, "p.yaml"},
		{"contract fallback", Script{Contract: "vehicle"}, "vehicle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.script.DisplayName())
		})
	}
}

func TestContractNames(t *testing.T) {
	assert.Equal(t, []string{"httpclient", "vehicle"}, ContractNames())

	_, err := LookupContract("boat")
	assert.ErrorIs(t, err, ErrUnknownContract)
	assert.Contains(t, err.Error(), "httpclient")
}
