// Package config loads SDK configuration structs from environment
// variables, with an optional .env file for development.
//
// Configuration structs declare their variables with `env:` field tags; Load
// parses the process environment into them. The login manager's Config is
// the primary consumer, but any struct with env tags works.
//
// # Usage
//
//	type Settings struct {
//	    AppID string `env:"FACEBOOK_APP_ID,required"`
//	    Host  string `env:"FACEBOOK_HOST_PREFIX" envDefault:"m."`
//	}
//
//	var cfg Settings
//	if err := config.Load(&cfg); err != nil {
//	    // missing required variables, malformed values
//	}
package config
