package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"fncase/casing"
	"fncase/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	FunctionNameCaseConfig struct {
		Expectation     common.Expectation `yaml:"expectation"`
		Severity        common.Severity    `yaml:"severity"`
		IgnoreFunctions []string           `yaml:"ignore_functions" validate:"dive,required"`
	}

	RulesConfig struct {
		FunctionNameCase FunctionNameCaseConfig `yaml:"function_name_case"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Rules     RulesConfig    `yaml:"rules"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// Options validates rule settings and converts them to form rule
// implementation works with.
func (conf *FunctionNameCaseConfig) Options() (*casing.Options, error) {
	return casing.NewOptions(conf.Expectation, conf.Severity, conf.IgnoreFunctions)
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if !process {
		return cfg, nil
	}
	if err := gencfg.Sanitize(cfg); err != nil {
		return nil, err
	}
	// report everything which is wrong at once
	err := gencfg.Validate(cfg)
	if _, e := cfg.Rules.FunctionNameCase.Options(); e != nil {
		err = multierr.Append(err, e)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
