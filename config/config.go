package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	OCR       OCRConfig       `yaml:"ocr"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Narrative NarrativeConfig `yaml:"narrative"`
	Store     StoreConfig     `yaml:"store"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Port        string `yaml:"port"`
	MaxFileSize int64  `yaml:"max_file_size"`
	MaxFiles    int    `yaml:"max_files"`
}

type OCRConfig struct {
	TessdataPath string `yaml:"tessdata_path"`
	Language     string `yaml:"language"`
}

type AnalysisConfig struct {
	Workers int `yaml:"workers"`
}

// NarrativeConfig points at an OpenAI-compatible chat completions API.
// An empty APIURL disables report generation.
type NarrativeConfig struct {
	APIURL         string        `yaml:"api_url"`
	APIKey         string        `yaml:"api_key"`
	Model          string        `yaml:"model"`
	Temperature    float64       `yaml:"temperature"`
	MaxTokens      int           `yaml:"max_tokens"`
	Timeout        time.Duration `yaml:"timeout"`
	MaxTextPerFile int           `yaml:"max_text_per_file"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the YAML file at path, applies environment overrides and fills
// defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("SERVER_PORT", c.Server.Port)
	c.OCR.TessdataPath = getEnv("TESSDATA_PREFIX", c.OCR.TessdataPath)
	c.Narrative.APIURL = getEnv("NARRATIVE_API_URL", c.Narrative.APIURL)
	c.Narrative.APIKey = getEnv("NARRATIVE_API_KEY", c.Narrative.APIKey)
	c.Narrative.Model = getEnv("NARRATIVE_MODEL", c.Narrative.Model)
	c.Store.Path = getEnv("STORE_PATH", c.Store.Path)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
	c.Analysis.Workers = getEnvAsInt("ANALYSIS_WORKERS", c.Analysis.Workers)
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.MaxFileSize <= 0 {
		c.Server.MaxFileSize = 10 * 1024 * 1024 // 10 MB
	}
	if c.Server.MaxFiles <= 0 {
		c.Server.MaxFiles = 5
	}
	if c.OCR.TessdataPath == "" {
		c.OCR.TessdataPath = "/usr/share/tesseract-ocr/4.00/tessdata"
	}
	if c.OCR.Language == "" {
		c.OCR.Language = "kor+eng"
	}
	if c.Analysis.Workers <= 0 {
		c.Analysis.Workers = 4
	}
	if c.Narrative.Model == "" {
		c.Narrative.Model = "gpt-4-turbo-preview"
	}
	if c.Narrative.Temperature == 0 {
		c.Narrative.Temperature = 0.3
	}
	if c.Narrative.MaxTokens <= 0 {
		c.Narrative.MaxTokens = 4096
	}
	if c.Narrative.Timeout <= 0 {
		c.Narrative.Timeout = 2 * time.Minute
	}
	if c.Narrative.MaxTextPerFile <= 0 {
		c.Narrative.MaxTextPerFile = 10000
	}
	if c.Store.Path == "" {
		c.Store.Path = "analyses.db"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// NarrativeEnabled reports whether a narrative endpoint is configured.
func (c *Config) NarrativeEnabled() bool {
	return c.Narrative.APIURL != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return fallback
}
