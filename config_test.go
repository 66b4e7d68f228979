package nccheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nccheck.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.NoError(t, err)
	assert.Equal(t, ProfileFanucLathe, config.Machine)
	assert.Equal(t, "text", config.Output.Format)
	assert.Equal(t, 0, len(config.Limits))
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
machine: OSP_Mill
output:
  format: csv
limits:
  x:
    min: "-200"
    max: "200"
  z:
    max: "0"
`)

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, ProfileOSPMill, config.Machine)
	assert.Equal(t, "csv", config.Output.Format)
	assert.Equal(t, AxisLimit{Min: "-200", Max: "200"}, config.Limits["x"])
	assert.Equal(t, AxisLimit{Max: "0"}, config.Limits["z"])
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "limits:\n  y:\n    min: \"0\"\n")

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, ProfileFanucLathe, config.Machine)
	assert.Equal(t, "text", config.Output.Format)
}

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	t.Setenv("NC_X_MAX", "350")

	path := writeConfig(t, "limits:\n  x:\n    max: \"${NC_X_MAX}\"\n")

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "350", config.Limits["x"].Max)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown machine",
			content: "machine: MAZAK_Mill\n",
		},
		{
			name:    "unknown output format",
			content: "output:\n  format: xml\n",
		},
		{
			name:    "unknown limit axis",
			content: "limits:\n  a:\n    min: \"0\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.IsError(t, err, ErrConfigValidation)
		})
	}
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "no_such_field: true\n"))
	assert.Error(t, err)
}

func TestProfileChecksSpindleLimit(t *testing.T) {
	assert.True(t, ProfileFanucLathe.ChecksSpindleLimit())
	assert.False(t, ProfileOSPMill.ChecksSpindleLimit())
	assert.False(t, ProfileTosnucMill.ChecksSpindleLimit())
}

func TestProfileValid(t *testing.T) {
	for _, profile := range Profiles {
		assert.True(t, profile.Valid())
	}

	assert.False(t, Profile("HAAS_Mill").Valid())
	assert.False(t, Profile("").Valid())
}
