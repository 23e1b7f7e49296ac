package usecase

import (
	"context"

	"github.com/runoshun/lintgate/internal/domain"
)

// InitConfigOutput contains the result of initializing the config file.
type InitConfigOutput struct {
	Path string
}

// InitConfig is the use case for creating the project config file.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{configManager: configManager}
}

// Execute writes the template config file.
func (uc *InitConfig) Execute(_ context.Context) (*InitConfigOutput, error) {
	path, err := uc.configManager.InitProjectConfig()
	if err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: path}, nil
}
