/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/valpere/travelrelay/internal/config"
	"github.com/valpere/travelrelay/internal/logging"
	"github.com/valpere/travelrelay/internal/relay"
	"github.com/valpere/travelrelay/internal/translator"
)

// loadConfig decodes the merged flag, environment and file settings.
func loadConfig() (config.Config, error) {
	return config.Load(viper.GetViper())
}

func newLogProvider(cfg config.Config) (*logging.Provider, error) {
	provider, err := logging.NewProvider(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	return provider, nil
}

// buildService constructs the translation backend named by
// translation.provider.
func buildService(cfg config.Config) (translator.TranslationService, error) {
	switch cfg.Translation.Provider {
	case config.ProviderMagicLoop:
		return translator.NewMagicLoopService(cfg.Translation.Endpoint, cfg.HTTP.Timeout), nil
	case config.ProviderGoogle:
		return translator.NewGoogleService(), nil
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", cfg.Translation.Provider)
	}
}

func buildRelay(cfg config.Config, provider *logging.Provider) (*relay.Relay, error) {
	service, err := buildService(cfg)
	if err != nil {
		return nil, err
	}
	return relay.New(service, cfg.ServiceConfig(), provider.GetLogger("relay")), nil
}
