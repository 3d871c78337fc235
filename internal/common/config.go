package common

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

const DefaultConfigFile = "./glaze.yml"

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

type Config struct {
	API            string    `yaml:"api"`
	Tables         string    `yaml:"tables"`
	Dest           string    `yaml:"dest"`
	HandlePrefix   string    `yaml:"handlePrefix"`
	UnhandledTypes []string  `yaml:"unhandledTypes"`
	LoaderFile     string    `yaml:"loaderFile"`
	Directives     []string  `yaml:"directives"`
	GlueTemplate   string    `yaml:"glueTemplate"`
	Log            LogConfig `yaml:"log"`
}

// DefaultUnhandledTypes are native types no declaration can be written for:
// callback typedefs and OpenCL interop structs.
var DefaultUnhandledTypes = []string{
	Unhandled,
	"GLDEBUGPROC",
	"GLDEBUGPROCARB",
	"GLDEBUGPROCKHR",
	"GLDEBUGPROCAMD",
	"GLVULKANPROCNV",
	"struct _cl_context",
	"struct _cl_event",
}

var DefaultDirectives = []string{
	"boundscheck=False",
	"wraparound=False",
	"initializedcheck=False",
	"always_allow_keywords=False",
	"infer_types=False",
	"optimize.unpack_method_calls=False",
	"embedsignature=True",
	"c_string_type=str",
	"c_string_encoding=ascii",
}

func DefaultConfig() *Config {
	return &Config{
		API:            "gl",
		Tables:         "./tables.yml",
		Dest:           "./glaze",
		HandlePrefix:   "GL",
		UnhandledTypes: append([]string(nil), DefaultUnhandledTypes...),
		Directives:     append([]string(nil), DefaultDirectives...),
		GlueTemplate:   DefaultGlueTemplate,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig overlays the yaml file at filepath on top of DefaultConfig.
// A missing file is not an error when filepath is the default location.
func LoadConfig(filepath string) (*Config, error) {
	config := DefaultConfig()

	if filepath == "" {
		filepath = DefaultConfigFile
	}

	bytes, err := os.ReadFile(filepath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && filepath == DefaultConfigFile {
			return config, nil
		}
		return nil, err
	}

	err = yaml.Unmarshal(bytes, config)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.API == "" {
		return errors.New("api must be set")
	}
	if c.Dest == "" {
		return errors.New("dest must be set")
	}
	if c.GlueTemplate == "" {
		return errors.New("glueTemplate must not be empty")
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}
