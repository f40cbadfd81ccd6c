package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/glorpus-work/pulpctl/pkg/errors"
)

// SetValue sets a configuration value by key. The result is not validated; call Validate
// before saving.
// Supported keys:
//   - admin_binary, consumer_binary: string - pulp tool names or paths
//   - command_timeout: duration - e.g. "90s", 0 disables it
//   - login, password: string - default pulp credentials
//   - use_keyring: bool - read and store passwords in the OS keyring
//   - default_repo_type: string - rpm or puppet
//   - output_format: string - text, json or yaml
//   - color_output: bool - whether to use colored output
//   - log_level: string - debug, info, warn or error
//   - log_format: string - text or json
//   - log_file: string - additional rotating log file
func (c *Config) SetValue(key, value string) error {
	s := &c.Settings
	switch key {
	case "admin_binary":
		s.AdminBinary = value
	case "consumer_binary":
		s.ConsumerBinary = value
	case "command_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %s", key, value)
		}
		s.CommandTimeout = d
	case "login":
		s.Login = value
	case "password":
		s.Password = value
	case "use_keyring":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidBoolValue, "%s: %s", key, value)
		}
		s.UseKeyring = b
	case "default_repo_type":
		s.DefaultRepoType = value
	case "output_format":
		s.OutputFormat = value
	case "color_output":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidBoolValue, "%s: %s", key, value)
		}
		s.ColorOutput = b
	case "log_level":
		s.LogLevel = value
	case "log_format":
		s.LogFormat = value
	case "log_file":
		s.LogFile = value
	default:
		return errors.ErrUnknownConfigKeyWithName(key)
	}
	return nil
}

// GetValue returns the value of key as a string.
func (c *Config) GetValue(key string) (string, error) {
	value, ok := c.ToMap()[key]
	if !ok {
		return "", errors.ErrUnknownConfigKeyWithName(key)
	}
	return value, nil
}

// ToMap returns every setting keyed by its YAML name. The password is masked.
// This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string)

	settingsValue := reflect.ValueOf(c.Settings)
	settingsType := settingsValue.Type()

	for i := 0; i < settingsValue.NumField(); i++ {
		field := settingsType.Field(i)
		yamlTag := field.Tag.Get("yaml")
		if yamlTag == "" || yamlTag == "-" {
			continue
		}

		// Handle yaml tags with options (e.g., "log_file,omitempty")
		yamlKey := strings.Split(yamlTag, ",")[0]

		fieldValue := settingsValue.Field(i)
		var strValue string

		switch v := fieldValue.Interface().(type) {
		case time.Duration:
			strValue = v.String()
		case bool:
			strValue = strconv.FormatBool(v)
		case string:
			strValue = v
		default:
			strValue = fmt.Sprintf("%v", v)
		}

		result[yamlKey] = strValue
	}

	if result["password"] != "" {
		result["password"] = "********"
	}

	return result
}

// Keys returns the supported configuration keys in file order.
func Keys() []string {
	t := reflect.TypeOf(Settings{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("yaml"); tag != "" && tag != "-" {
			keys = append(keys, strings.Split(tag, ",")[0])
		}
	}
	return keys
}
