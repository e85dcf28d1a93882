package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plgd-dev/notification2/pkg/config"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string        `yaml:"name"`
	Timeout time.Duration `yaml:"timeout"`
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    testConfig
		wantErr bool
	}{
		{
			name: "valid",
			data: "name: test\ntimeout: 5s\n",
			want: testConfig{Name: "test", Timeout: 5 * time.Second},
		},
		{
			name:    "unknown field",
			data:    "name: test\nunknown: 1\n",
			wantErr: true,
		},
		{
			name:    "invalid duration",
			data:    "timeout: abc\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got testConfig
			err := config.Parse([]byte(tt.data), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("name: fromFile\n"), 0o600)
	require.NoError(t, err)

	var got testConfig
	err = config.Read(path, &got)
	require.NoError(t, err)
	require.Equal(t, "fromFile", got.Name)

	err = config.Read(filepath.Join(t.TempDir(), "not-exist.yaml"), &got)
	require.Error(t, err)
}

func TestToString(t *testing.T) {
	s := config.ToString(testConfig{Name: "a", Timeout: time.Second})
	require.Contains(t, s, "name: a")
	require.Contains(t, s, "timeout: 1s")
}
