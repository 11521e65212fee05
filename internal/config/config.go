// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"reflect"
	"strings"
	"time"
)

type Config struct {
	LogLevel          string        `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
	HibpApiUrl        string        `mapstructure:"HIBP_API_URL" validate:"required,url"`
	HibpUserAgent     string        `mapstructure:"HIBP_USER_AGENT" validate:"required"`
	HibpTimeout       time.Duration `mapstructure:"HIBP_TIMEOUT" validate:"gt=0"`
	HibpPadding       bool          `mapstructure:"HIBP_PADDING"`
	HibpCacheSize     int64         `mapstructure:"HIBP_CACHE_SIZE" validate:"gte=0"`
	HibpCacheTTL      time.Duration `mapstructure:"HIBP_CACHE_TTL" validate:"required_with=HibpCacheSize"`
	MaxPasswordLength int           `mapstructure:"MAX_PASSWORD_LENGTH" validate:"gt=0"`
	Port              uint16        `mapstructure:"PORT" validate:"required"`
	SelfTLS           bool          `mapstructure:"SELF_TLS"`
	TLSCert           string        `mapstructure:"TLS_CERT" validate:"required_with=TLSKey"`
	TLSKey            string        `mapstructure:"TLS_KEY" validate:"required_with=TLSCert"`
	Debug             bool          `mapstructure:"DEBUG"`
}

var defaults = map[string]interface{}{
	"LOG_LEVEL":           "info",
	"HIBP_API_URL":        "https://api.pwnedpasswords.com",
	"HIBP_USER_AGENT":     "pwd-strength-checker/1.0",
	"HIBP_TIMEOUT":        "5s",
	"HIBP_PADDING":        false,
	"HIBP_CACHE_SIZE":     0,
	"HIBP_CACHE_TTL":      "1h",
	"MAX_PASSWORD_LENGTH": 100,
	"PORT":                3100,
}

func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		fv := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch fv.Kind() {
		case reflect.Struct:
			bindEnvs(v, fv.Interface(), append(parts, tv)...)
		default:
			_ = v.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "required_with":
		return fmt.Sprintf("This field requires the presence of %s", util.ToScreamingSnakeCase(fe.Param()))
	case "oneof":
		return fmt.Sprintf("This field must be one of [%s]", fe.Param())
	case "url":
		return "This field must be a valid URL"
	case "gt", "gte":
		return fmt.Sprintf("This field must be %s %s", fe.Tag(), fe.Param())
	}
	return fe.Error() // default error
}

// Load reads the configuration from the environment. A .env file in the working directory is
// loaded first if present, real environment variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (config Config, err error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// This is to not require a config file to unmarshal Envs in a struct
	// https://github.com/spf13/viper/issues/188#issuecomment-399884438
	bindEnvs(v, config)

	if err = v.Unmarshal(&config); err != nil {
		return config, errors.Wrap(err, "unmarshal configuration from environment")
	}

	config.LogLevel = strings.ToLower(config.LogLevel)

	validate := validator.New()
	if err = validate.Struct(&config); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			var msgs []string
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s: %s", util.ToScreamingSnakeCase(fe.Field()), msgForTag(fe)))
			}

			return config, errors.Errorf("invalid configuration. %s", strings.Join(msgs, ". "))
		}

		return config, errors.Wrap(err, "validating configuration from environment")
	}

	return config, nil
}
