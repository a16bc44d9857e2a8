/* Copyright 2026 Lectern Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"os"

	"github.com/pkg/errors"
)

const (
	// AppEnvProduction represents an app environment for production.
	AppEnvProduction = "PRODUCTION"
	// AppEnvTest represents an app environment for tests.
	AppEnvTest = "TEST"

	// DefaultDatabaseURL is the default SQLite database location.
	DefaultDatabaseURL = "lectern.db"
)

var (
	// ErrPortInvalid is an error for a configuration with a missing port
	ErrPortInvalid = errors.New("port is empty")
	// ErrDatabaseURLInvalid is an error for a configuration with a missing database URL
	ErrDatabaseURLInvalid = errors.New("database URL is empty")
)

// Config is an application configuration
type Config struct {
	AppEnv               string
	Port                 string
	DatabaseURL          string
	RegisterOnlyForAdmin bool
	LogLevel             string
}

// Params are the overrides for creating a new Config. Empty values fall
// back to environment variables and then to defaults.
type Params struct {
	AppEnv               string
	Port                 string
	DatabaseURL          string
	RegisterOnlyForAdmin bool
	LogLevel             string
}

func getOrEnv(value, envKey, defaultVal string) string {
	if value != "" {
		return value
	}
	if env := os.Getenv(envKey); env != "" {
		return env
	}
	return defaultVal
}

func readBoolEnv(name string) bool {
	return os.Getenv(name) == "true"
}

// New constructs and returns a new validated config.
func New(p Params) (Config, error) {
	c := Config{
		AppEnv:               getOrEnv(p.AppEnv, "APP_ENV", AppEnvProduction),
		Port:                 getOrEnv(p.Port, "PORT", "3001"),
		DatabaseURL:          getOrEnv(p.DatabaseURL, "DATABASE_URL", DefaultDatabaseURL),
		RegisterOnlyForAdmin: p.RegisterOnlyForAdmin || readBoolEnv("REGISTER_ONLY_FOR_ADMIN"),
		LogLevel:             getOrEnv(p.LogLevel, "LOG_LEVEL", "info"),
	}

	if err := validate(c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// IsTest checks if the app environment is configured to be a test environment.
func (c Config) IsTest() bool {
	return c.AppEnv == AppEnvTest
}

func validate(c Config) error {
	if c.Port == "" {
		return ErrPortInvalid
	}
	if c.DatabaseURL == "" {
		return ErrDatabaseURLInvalid
	}

	return nil
}
