package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "op_Binary", cfg.Ingestion.Prefix)
	assert.Equal(t, 1024*1024, cfg.Ingestion.MaxLineBytes)
	assert.Equal(t, 8, cfg.Report.NumberWidth)
	assert.Equal(t, 3, cfg.Report.Precision)
	assert.Equal(t, 20, cfg.Report.OpWidth)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, `log:
  level: debug
ingestion:
  prefix: op_Unary
report:
  op_width: 12
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "op_Unary", cfg.Ingestion.Prefix)
	assert.Equal(t, 12, cfg.Report.OpWidth)

	// Keys absent from the file keep their defaults
	assert.Equal(t, 1024*1024, cfg.Ingestion.MaxLineBytes)
	assert.Equal(t, 8, cfg.Report.NumberWidth)
	assert.Equal(t, 3, cfg.Report.Precision)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/configs.yml")
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	path := writeTempConfig(t, `log:
  level: loud
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "log.level (oneof=")
}

func TestLoadConfig_MaxLineBytesTooSmall(t *testing.T) {
	path := writeTempConfig(t, `ingestion:
  max_line_bytes: 100
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "ingestion.maxlinebytes (min=4096)")
}

func TestLoadConfig_PrecisionOutOfRange(t *testing.T) {
	path := writeTempConfig(t, `report:
  precision: 12
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "report.precision (max=9)")
}
