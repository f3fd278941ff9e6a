// config.go
package main

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultMaxTokens = 6000

// ConfigOverrides allows overriding embedded defaults with file paths
type ConfigOverrides struct {
	TitlePromptPath   *string
	ArticlePromptPath *string
}

// Embedded configuration files
//
//go:embed .ytblog/title-prompt.md
var defaultTitlePrompt string

//go:embed .ytblog/article-prompt.md
var defaultArticlePrompt string

// Settings represents the YAML configuration structure
type Settings struct {
	Generator struct {
		Model     string `yaml:"model"`
		MaxTokens int    `yaml:"max_tokens"`
	} `yaml:"generator"`
	Transcript struct {
		APIURL string `yaml:"api_url"`
	} `yaml:"transcript"`
}

// Config holds settings and overrides
type Config struct {
	Settings  *Settings
	Overrides *ConfigOverrides
}

// NewConfig creates a new Config with settings and overrides
func NewConfig(overrides *ConfigOverrides) (*Config, error) {
	if err := ensureConfigExists(); err != nil {
		return nil, fmt.Errorf("ensuring config files exist: %w", err)
	}

	settings, err := loadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &Config{
		Settings:  settings,
		Overrides: overrides,
	}, nil
}

// RenderTitlePrompt renders the title prompt with the transcript
// embedded.
func (c *Config) RenderTitlePrompt(transcript string) (string, error) {
	template := c.titlePromptTemplate()
	if !strings.Contains(template, "{{.transcript}}") {
		return "", fmt.Errorf("title prompt template must contain {{.transcript}} variable")
	}
	return strings.ReplaceAll(template, "{{.transcript}}", transcript), nil
}

// RenderArticlePrompt renders the article prompt with the title and
// transcript embedded.
func (c *Config) RenderArticlePrompt(title, transcript string) (string, error) {
	template := c.articlePromptTemplate()
	if !strings.Contains(template, "{{.title}}") {
		return "", fmt.Errorf("article prompt template must contain {{.title}} variable")
	}
	if !strings.Contains(template, "{{.transcript}}") {
		return "", fmt.Errorf("article prompt template must contain {{.transcript}} variable")
	}
	rendered := strings.ReplaceAll(template, "{{.title}}", title)
	return strings.ReplaceAll(rendered, "{{.transcript}}", transcript), nil
}

// titlePromptTemplate returns the title prompt (from override file or embedded)
func (c *Config) titlePromptTemplate() string {
	if c.Overrides != nil && c.Overrides.TitlePromptPath != nil {
		if content, err := os.ReadFile(*c.Overrides.TitlePromptPath); err == nil {
			return string(content)
		}
	}
	return defaultTitlePrompt
}

// articlePromptTemplate returns the article prompt (from override file or embedded)
func (c *Config) articlePromptTemplate() string {
	if c.Overrides != nil && c.Overrides.ArticlePromptPath != nil {
		if content, err := os.ReadFile(*c.Overrides.ArticlePromptPath); err == nil {
			return string(content)
		}
	}
	return defaultArticlePrompt
}

// loadSettings loads settings from the default location
func loadSettings() (*Settings, error) {
	settingsPath := getConfigPath("settings.yaml")

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", settingsPath, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if settings.Generator.Model == "" {
		return nil, fmt.Errorf("generator.model is required in %s", settingsPath)
	}
	if settings.Generator.MaxTokens <= 0 {
		log.Printf("Warning: generator.max_tokens is %d, defaulting to %d", settings.Generator.MaxTokens, defaultMaxTokens)
		settings.Generator.MaxTokens = defaultMaxTokens
	}

	return &settings, nil
}

// getConfigPath returns the path to a config file in .ytblog directory
func getConfigPath(filename string) string {
	return filepath.Join(".ytblog", filename)
}

// ensureConfigExists creates the config directory and default files if they don't exist
func ensureConfigExists() error {
	configDir := ".ytblog"

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	// Write default settings if it doesn't exist
	settingsPath := getConfigPath("settings.yaml")
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		defaultSettings := `generator:
  model: claude-sonnet-4-20250514
  max_tokens: 6000
transcript:
  api_url: ""
`
		if err := os.WriteFile(settingsPath, []byte(defaultSettings), 0644); err != nil {
			return fmt.Errorf("failed to write default settings: %w", err)
		}
	}

	return nil
}
