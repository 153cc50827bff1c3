package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"

	"gam-provisioner/core/apperr"
	"gam-provisioner/core/gam"
	"gam-provisioner/core/logger"
	"gam-provisioner/core/sape"
	"gam-provisioner/core/storage"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// App holds the provisioning settings.
	App App `mapstructure:"app"`
	// AdManager holds the Google Ad Manager credentials.
	AdManager gam.Config `mapstructure:"ad_manager"`
	// Sape holds the marketplace credentials.
	Sape sape.Config `mapstructure:"sape"`
	// Storage holds the optional run report archive settings.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from <path>/config/app.yaml, the .env file and
// environment variables, then validates it.
func LoadConfig(path string) (*Config, error) {
	// Ignore error if file doesn't exist
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigFile(filepath.Join(path, "config", "app.yaml"))
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, apperr.Wrap(apperr.CodeConfiguration, err, "read config file")
	}

	// Map environment variables to nested keys (e.g. SAPE_TOKEN -> sape.token)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, apperr.Wrap(apperr.CodeConfiguration, err, "decode config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if tag := f.Tag.Get("mapstructure"); tag != "" {
			return tag
		}
		return f.Name
	})
	return v
}

// Validate checks that every required setting is present.
// The returned error is a CONFIGURATION apperr naming each offending key.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return apperr.Wrap(apperr.CodeConfiguration, err, "validate config")
	}

	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, validationMessage(fe))
	}
	return apperr.New(apperr.CodeConfiguration, strings.Join(messages, "; "))
}

func validationMessage(fe validator.FieldError) string {
	// Namespace is "Config.app.order_name"; drop the root struct name.
	key := fe.Namespace()
	if i := strings.IndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Not set %q.", key)
	case "min":
		return fmt.Sprintf("%q must have at least %s item(s).", key, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%q must not be less than %q.", key, fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("Invalid %q (%s %s).", key, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("Invalid %q (%s).", key, fe.Tag())
	}
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
// Slices are skipped: they only come from the config file.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		switch field.Type.Kind() {
		case reflect.Struct:
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		case reflect.Slice, reflect.Map:
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
