package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  max_file_size: 2048
  max_files: 3
ocr:
  tessdata_path: /opt/tessdata
  language: kor
analysis:
  workers: 2
narrative:
  api_url: https://llm.internal/v1
  model: report-writer
  temperature: 0.2
  max_tokens: 4000
  timeout: 30s
  max_text_per_file: 500
store:
  path: /var/lib/analyzer.db
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, int64(2048), cfg.Server.MaxFileSize)
	assert.Equal(t, 3, cfg.Server.MaxFiles)
	assert.Equal(t, "/opt/tessdata", cfg.OCR.TessdataPath)
	assert.Equal(t, "kor", cfg.OCR.Language)
	assert.Equal(t, 2, cfg.Analysis.Workers)
	assert.Equal(t, "https://llm.internal/v1", cfg.Narrative.APIURL)
	assert.Equal(t, "report-writer", cfg.Narrative.Model)
	assert.Equal(t, 0.2, cfg.Narrative.Temperature)
	assert.Equal(t, 4000, cfg.Narrative.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.Narrative.Timeout)
	assert.Equal(t, 500, cfg.Narrative.MaxTextPerFile)
	assert.Equal(t, "/var/lib/analyzer.db", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.NarrativeEnabled())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(10*1024*1024), cfg.Server.MaxFileSize)
	assert.Equal(t, 5, cfg.Server.MaxFiles)
	assert.Equal(t, "kor+eng", cfg.OCR.Language)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.Equal(t, 10000, cfg.Narrative.MaxTextPerFile)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.NarrativeEnabled())
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"9090\"\nanalysis:\n  workers: 2\n")
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("ANALYSIS_WORKERS", "8")
	t.Setenv("NARRATIVE_API_URL", "http://localhost:11434/v1")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Analysis.Workers)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Narrative.APIURL)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")

	_, err := Load(path)
	assert.Error(t, err)
}
