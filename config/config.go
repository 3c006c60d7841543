// Package config reads operation definitions from a configuration file so hosts without their own configuration
// reader can build configured operations.
//
// A file looks like:
//
//	log:
//	  level: debug
//	operations:
//	  - name: invoices-upload
//	    type: s3-call
//	    attributes:
//	      akid: env{{AWS_ACCESS_KEY_ID}}
//	      skid: env{{AWS_SECRET_ACCESS_KEY}}
//	      region: eu-west-1
//	      action: put
//	      bucket: invoices-@{{TENANT}}
//
// YAML, JSON and TOML are accepted, chosen by file extension. Keys are case insensitive, so attribute names are
// read in lower case. Values set in the environment with the GVESB prefix (GVESB_LOG_LEVEL) override the file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/greenvulcano/gvesb-s3"
	"github.com/greenvulcano/gvesb-s3/operation"
)

// EnvPrefix prefixes environment variables that override file values.
const EnvPrefix = "GVESB"

// ErrUnknownOperation is returned when a name matches no definition.
const ErrUnknownOperation = gvesb.Error("operation not defined")

// File is the root of a configuration file.
type File struct {
	Log        LogConfig    `mapstructure:"log"`
	Operations []Definition `mapstructure:"operations" validate:"unique=Name,dive"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
}

// Definition is one configured operation.
type Definition struct {
	Name       string            `mapstructure:"name" validate:"required"`
	Type       string            `mapstructure:"type" validate:"required"`
	Attributes map[string]string `mapstructure:"attributes"`
}

// Load reads the file at path. An empty path yields the defaults plus any environment overrides.
// Order of precedence (highest to lowest): env > config file > defaults
func Load(path string) (*File, error) {
	v := viper.New()
	v.SetDefault("log.level", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	f.Log.Level = strings.ToLower(strings.TrimSpace(f.Log.Level))

	if err := validator.New().Struct(&f); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &f, nil
}

// Operation returns the definition named name.
func (f *File) Operation(name string) (Definition, error) {
	for _, d := range f.Operations {
		if d.Name == name {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Names returns the defined operation names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Operations))
	for i, d := range f.Operations {
		names[i] = d.Name
	}
	return names
}

// Node returns a copy of the definition's attributes as a gvesb.Node.
func (d Definition) Node() gvesb.Attributes {
	node := make(gvesb.Attributes, len(d.Attributes))
	for k, v := range d.Attributes {
		node[k] = v
	}
	return node
}

// Build creates the operation from the registry, keyed by the definition name and initialized with its attributes.
// The operation type must already be registered.
func (d Definition) Build() (gvesb.CallOperation, error) {
	op, err := operation.NewConfigured(d.Type, gvesb.OperationKey(d.Name), d.Node())
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", d.Name, err)
	}
	return op, nil
}

// IsValidation reports whether err came from validating a loaded file.
func IsValidation(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
