// Package config loads typed configuration from environment variables.
//
// Structs are described with caarlos0/env tags. A .env file in the working
// directory is read once before the first Load; variables already present in
// the process environment win over file values.
//
//	type AppConfig struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		SpecPath string `env:"FORM_SPEC_PATH"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
package config
