package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skyward-sdk/skyward-go/pkg/component"
	"github.com/skyward-sdk/skyward-go/pkg/pilotingitf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())

	def, ok := p.DefaultType()
	require.True(t, ok)
	assert.Equal(t, pilotingitf.TypeManualCopter, def)
}

func TestParse(t *testing.T) {
	p, err := Parse([]byte(`
name: anafi-sim
interfaces: [manualCopter, ReturnHome, lookAt]
default: manualCopter
ackLatency: 250ms
commandTimeout: 2s
startConnected: false
`))
	require.NoError(t, err)

	assert.Equal(t, "anafi-sim", p.Name)
	assert.Equal(t, 250*time.Millisecond, p.AckLatency)
	assert.Equal(t, 2*time.Second, p.CommandTimeout)
	assert.False(t, p.StartConnected)

	types, err := p.Types()
	require.NoError(t, err)
	assert.Equal(t, []component.Type{
		pilotingitf.TypeManualCopter,
		pilotingitf.TypeReturnHome,
		pilotingitf.TypeLookAt,
	}, types)
}

func TestParseKeepsDefaults(t *testing.T) {
	p, err := Parse([]byte("name: minimal\n"))
	require.NoError(t, err)

	assert.Equal(t, "minimal", p.Name)
	assert.Equal(t, Default().Interfaces, p.Interfaces)
	assert.Equal(t, DefaultAckLatency, p.AckLatency)
	assert.Equal(t, DefaultCommandTimeout, p.CommandTimeout)
	assert.True(t, p.StartConnected)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"NoName", "name: ''\n", ErrNoName},
		{"NoInterfaces", "interfaces: []\n", ErrNoInterfaces},
		{"UnknownInterface", "interfaces: [manualCopter, warpDrive]\n", ErrUnknownInterface},
		{"DuplicateInterface", "interfaces: [lookAt, LookAt]\ndefault: ''\n", ErrDuplicateInterface},
		{"DefaultNotListed", "interfaces: [lookAt]\n", ErrDefaultNotListed},
		{"NegativeLatency", "ackLatency: -1s\n", ErrInvalidLatency},
		{"TimeoutTooShort", "ackLatency: 2s\ncommandTimeout: 1s\n", ErrTimeoutTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)

			var le *LoadError
			assert.True(t, errors.As(err, &le))
		})
	}
}

func TestParseNoDefault(t *testing.T) {
	p, err := Parse([]byte("interfaces: [followMe]\ndefault: ''\n"))
	require.NoError(t, err)

	_, ok := p.DefaultType()
	assert.False(t, ok)
}

func TestParseBadYAML(t *testing.T) {
	_, err := Parse([]byte("interfaces: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("Valid", func(t *testing.T) {
		path := filepath.Join(dir, "drone.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: file-drone\n"), 0644))

		p, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "file-drone", p.Name)
	})

	t.Run("Missing", func(t *testing.T) {
		path := filepath.Join(dir, "absent.yaml")
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.Contains(t, err.Error(), path)
	})

	t.Run("InvalidNamesFile", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("interfaces: []\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
		assert.True(t, errors.Is(err, ErrNoInterfaces))
	})
}
