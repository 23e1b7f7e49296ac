package usecase

import (
	"context"

	"github.com/runoshun/lintgate/internal/domain"
)

// ShowConfigInput contains options for displaying configuration.
type ShowConfigInput struct {
	IgnoreGlobal  bool
	IgnoreProject bool
}

// ShowConfigOutput contains the configuration sources and the merged result.
type ShowConfigOutput struct {
	GlobalConfig    domain.ConfigInfo
	ProjectConfig   domain.ConfigInfo
	EffectiveConfig *domain.Config
}

// ShowConfig is the use case for displaying the effective configuration.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
	}
}

// Execute returns the config sources and the merged configuration.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	effective, err := uc.configLoader.LoadWithOptions(domain.LoadConfigOptions{
		IgnoreGlobal:  in.IgnoreGlobal,
		IgnoreProject: in.IgnoreProject,
	})
	if err != nil {
		return nil, err
	}

	return &ShowConfigOutput{
		GlobalConfig:    uc.configManager.GetGlobalConfigInfo(),
		ProjectConfig:   uc.configManager.GetProjectConfigInfo(),
		EffectiveConfig: effective,
	}, nil
}
