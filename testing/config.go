// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package testing

import (
	"strings"

	"github.com/spf13/viper"
)

// GetDefaultConfig returns the configuration at ./config/test.yaml
func GetDefaultConfig() (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetConfigName("test")
	cfg.SetConfigType("yaml")
	cfg.SetEnvPrefix("sqsforwarder")
	cfg.AddConfigPath(".")
	cfg.AddConfigPath("./config")
	cfg.AddConfigPath("../config")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	// If a config file is found, read it in.
	if err := cfg.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg.Set("otel.enabled", false)

	return cfg, nil
}
