// Package config provides configuration management for the certificate printer.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"ritualform/internal/layout"
	"ritualform/internal/logger"
	"ritualform/internal/render"
	"ritualform/internal/types"
)

const (
	// DefaultConfigFileName is the default configuration file name
	DefaultConfigFileName = "ritualform-config.json"
	// DefaultOutputDir is the default directory for generated PDFs
	DefaultOutputDir = "output"
	// DefaultDatabaseFileName is the default SQLite database file name
	DefaultDatabaseFileName = "ritual_forms.db"
	// DefaultPageSize is the paper size used when none is configured
	DefaultPageSize = "a4"
	// DefaultLayoutName is the field layout used when none is configured.
	// The compact table matches the default A4 paper.
	DefaultLayoutName = "compact"
)

// ConfigManager manages application configuration
type ConfigManager struct {
	configPath string
	config     *types.Config
}

// NewConfigManager creates a new ConfigManager with the specified config path.
// If configPath is empty, it uses the default path in the user's home directory.
func NewConfigManager(configPath string) (*ConfigManager, error) {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			logger.Error("failed to get user home directory", err)
			return nil, types.NewAppError(types.ErrConfig, "failed to get user home directory", err)
		}
		configPath = filepath.Join(homeDir, ".config", "ritualform", DefaultConfigFileName)
	}

	logger.Info("ConfigManager initialized", logger.String("configPath", configPath))
	return &ConfigManager{
		configPath: configPath,
		config:     defaultConfig(),
	}, nil
}

// defaultConfig returns a Config with default values
func defaultConfig() *types.Config {
	return &types.Config{
		FontPaths:    render.DefaultFontPaths(),
		TemplatePath: "",
		OutputDir:    DefaultOutputDir,
		DatabasePath: filepath.Join("database", DefaultDatabaseFileName),
		PageSize:     DefaultPageSize,
		LayoutName:   DefaultLayoutName,
	}
}

// Load loads configuration from the config file.
// If the file doesn't exist or holds invalid JSON, it uses default values.
func (m *ConfigManager) Load() error {
	logger.Debug("loading configuration", logger.String("path", m.configPath))

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("config file not found, using defaults", logger.String("path", m.configPath))
			m.config = defaultConfig()
		} else {
			logger.Error("failed to read config file", err, logger.String("path", m.configPath))
			return types.NewAppError(types.ErrConfig, "failed to read config file", err)
		}
	} else {
		config := &types.Config{}
		if err := json.Unmarshal(data, config); err != nil {
			logger.Warn("invalid config file format, using defaults", logger.String("path", m.configPath), logger.Err(err))
			m.config = defaultConfig()
		} else {
			logger.Info("configuration loaded successfully",
				logger.String("path", m.configPath),
				logger.String("pageSize", config.PageSize),
				logger.String("layout", config.LayoutName),
				logger.String("template", config.TemplatePath))
			m.config = config
		}
	}

	// Apply defaults for empty fields
	if len(m.config.FontPaths) == 0 {
		m.config.FontPaths = render.DefaultFontPaths()
	}
	if m.config.OutputDir == "" {
		m.config.OutputDir = DefaultOutputDir
	}
	if m.config.DatabasePath == "" {
		m.config.DatabasePath = filepath.Join("database", DefaultDatabaseFileName)
	}
	if m.config.PageSize == "" {
		m.config.PageSize = DefaultPageSize
	}
	if m.config.LayoutName == "" {
		m.config.LayoutName = DefaultLayoutName
	}

	return nil
}

// Save saves the current configuration to the config file.
func (m *ConfigManager) Save() error {
	logger.Debug("saving configuration", logger.String("path", m.configPath))

	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Error("failed to create config directory", err, logger.String("dir", dir))
		return types.NewAppError(types.ErrConfig, "failed to create config directory", err)
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		logger.Error("failed to marshal config", err)
		return types.NewAppError(types.ErrConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		logger.Error("failed to write config file", err, logger.String("path", m.configPath))
		return types.NewAppError(types.ErrConfig, "failed to write config file", err)
	}

	logger.Info("configuration saved successfully", logger.String("path", m.configPath))
	return nil
}

// GetConfig returns the current configuration.
func (m *ConfigManager) GetConfig() *types.Config {
	if m.config == nil {
		return defaultConfig()
	}
	return m.config
}

// SetConfig sets the entire configuration.
func (m *ConfigManager) SetConfig(config *types.Config) {
	m.config = config
}

// GetConfigPath returns the path to the config file.
func (m *ConfigManager) GetConfigPath() string {
	return m.configPath
}

// GetFontPaths returns the candidate font files, in probe order.
func (m *ConfigManager) GetFontPaths() []string {
	if m.config != nil && len(m.config.FontPaths) > 0 {
		return m.config.FontPaths
	}
	return render.DefaultFontPaths()
}

// GetTemplatePath returns the background form template path, "" when unset.
func (m *ConfigManager) GetTemplatePath() string {
	if m.config != nil {
		return m.config.TemplatePath
	}
	return ""
}

// SetTemplatePath sets the background form template path and saves.
func (m *ConfigManager) SetTemplatePath(path string) error {
	if m.config == nil {
		m.config = defaultConfig()
	}
	m.config.TemplatePath = path
	return m.Save()
}

// GetOutputDir returns the directory generated PDFs are written to.
func (m *ConfigManager) GetOutputDir() string {
	if m.config != nil && m.config.OutputDir != "" {
		return m.config.OutputDir
	}
	return DefaultOutputDir
}

// GetDatabasePath returns the SQLite database file path.
func (m *ConfigManager) GetDatabasePath() string {
	if m.config != nil && m.config.DatabasePath != "" {
		return m.config.DatabasePath
	}
	return filepath.Join("database", DefaultDatabaseFileName)
}

// GetPage resolves the configured paper size name to page dimensions.
func (m *ConfigManager) GetPage() (layout.Page, error) {
	name := DefaultPageSize
	if m.config != nil && m.config.PageSize != "" {
		name = m.config.PageSize
	}
	return layout.PageByName(name)
}

// GetLayout resolves the configured layout name to its field table.
func (m *ConfigManager) GetLayout() ([]layout.FieldSpec, error) {
	name := DefaultLayoutName
	if m.config != nil && m.config.LayoutName != "" {
		name = m.config.LayoutName
	}
	return layout.LayoutByName(name)
}

// UpdateConfig updates the configuration with new values and saves it.
func (m *ConfigManager) UpdateConfig(templatePath, outputDir, databasePath, pageSize, layoutName string, fontPaths []string) error {
	logger.Info("updating configuration")
	if m.config == nil {
		m.config = defaultConfig()
	}

	if templatePath != "" {
		m.config.TemplatePath = templatePath
	}
	if outputDir != "" {
		m.config.OutputDir = outputDir
	}
	if databasePath != "" {
		m.config.DatabasePath = databasePath
	}
	if pageSize != "" {
		m.config.PageSize = pageSize
	}
	if layoutName != "" {
		m.config.LayoutName = layoutName
	}
	if len(fontPaths) > 0 {
		m.config.FontPaths = fontPaths
	}

	return m.Save()
}
