package hostedpay

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by [LoadConfig], e.g.
// HOSTEDPAY_SERVER_URL.
const EnvPrefix = "HOSTEDPAY"

// LoadConfig reads gateway preferences from the file at path (YAML, JSON or
// TOML by extension) on top of [DefaultConfig], then applies HOSTEDPAY_*
// environment overrides. Unknown keys are rejected. An empty path loads
// defaults and environment only.
func LoadConfig(path string) (GatewayConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := registerConfigKeys(v, DefaultConfig()); err != nil {
		return GatewayConfig{}, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return GatewayConfig{}, fmt.Errorf("hostedpay: read config %s: %w", path, err)
		}
	}

	var cfg GatewayConfig
	if err := v.UnmarshalExact(&cfg); err != nil {
		return GatewayConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return GatewayConfig{}, err
	}
	return cfg, nil
}

// registerConfigKeys binds every GatewayConfig key to its environment
// variable and installs the non-nil defaults.
func registerConfigKeys(v *viper.Viper, defaults GatewayConfig) error {
	rv := reflect.ValueOf(defaults)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		key := strings.Split(rt.Field(i).Tag.Get("mapstructure"), ",")[0]
		if key == "" {
			continue
		}
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("hostedpay: bind %s: %w", key, err)
		}
		field := rv.Field(i)
		if field.Kind() == reflect.Pointer && field.IsNil() {
			continue
		}
		v.SetDefault(key, field.Interface())
	}
	return nil
}
