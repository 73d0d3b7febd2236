package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/packforge/pkg/errors"
	"github.com/arthur-debert/packforge/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// EnvPrefix is the prefix of environment overrides, e.g. PACKFORGE_GRAPH_MAX_DEPTH.
const EnvPrefix = "PACKFORGE_"

// ProjectFiles are the project config names looked up, in order.
var ProjectFiles = []string{".packforge.toml", "packforge.toml", ".packforge.yaml", "packforge.yaml"}

// Load merges the embedded defaults, the first project file found in dir and
// the environment, then validates the result.
func Load(fs afero.Fs, dir string) (*Config, error) {
	return LoadWithOverrides(fs, dir, nil)
}

// LoadWithOverrides is Load with a final layer of dotted keys, typically
// command line flags, that take precedence over everything else.
func LoadWithOverrides(fs afero.Fs, dir string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load project config if it exists
	path, err := findProjectFile(fs, dir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read project config %s", path)
		}
		if err := k.Load(&rawBytesProvider{bytes: data}, parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load project config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Project config loaded")
	}

	// 3. Load env vars
	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Load overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("duplicates", cfg.Packs.Duplicates).
		Str("report", cfg.Exclusions.Report).
		Int("maxDepth", cfg.Graph.MaxDepth).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Default returns the embedded defaults with environment overrides applied.
func Default() (*Config, error) {
	return Load(afero.NewMemMapFs(), "/")
}

// envKey maps PACKFORGE_GRAPH_MAX_DEPTH to graph.max_depth: the first
// underscore separates the section from the key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func findProjectFile(fs afero.Fs, dir string) (string, error) {
	for _, filename := range ProjectFiles {
		path := filepath.Join(dir, filename)
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path)
		}
		if exists {
			return path, nil
		}
	}
	return "", nil
}
