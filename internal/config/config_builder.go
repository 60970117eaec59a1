package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"dario.cat/mergo"
)

const (
	sampleConfigFile  = "dev.sample.json"
	privateConfigFile = "dev.private.json"
	testConfigFile    = "test.config.json"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withFile appends the explicitly requested configuration file. The last
// non-empty FilePath among the already collected configs is used.
func (b *configBuilder) withFile() *configBuilder {
	path := b.explicitFile()
	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, fileCfg)
	return b
}

// withDefaultFiles appends the private (or test) file and then the sample
// file found in dir. It does nothing when an explicit file was requested.
func (b *configBuilder) withDefaultFiles(dir, appEnv string) *configBuilder {
	if b.explicitFile() != "" {
		return b
	}

	envFile := privateConfigFile
	if appEnv == "test" {
		envFile = testConfigFile
	}

	for _, name := range []string{envFile, sampleConfigFile} {
		fileCfg, err := parseOptionalFile(filepath.Join(dir, name))
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		if fileCfg != nil {
			b.configs = append(b.configs, fileCfg)
		}
	}

	return b
}

func (b *configBuilder) explicitFile() string {
	var path string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
		}
	}

	return path
}
