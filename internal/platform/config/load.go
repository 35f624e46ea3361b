package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// listKeys take comma-separated values when set from the environment.
var listKeys = map[string]bool{
	"notifier.webhooks":    true,
	"cors.allowed_origins": true,
}

// Option configures Load.
type Option func(*loader)

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

type loader struct {
	dir string
	k   *koanf.Koanf
}

// Load merges, lowest precedence first: built-in defaults, base.yaml,
// {profile}.yaml and APP_* environment variables. The result is validated.
//
// Environment names are matched against keys already loaded, so underscores
// inside a field name survive:
//
//	APP_SERVER_READ_TIMEOUT        -> server.read_timeout
//	APP_VOTING_ALLOW_SELF_APPROVE  -> voting.allow_self_approve
//	APP_NOTIFIER_WEBHOOKS=a,b      -> notifier.webhooks [a b]
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{dir: defaultConfigDir, k: koanf.New(".")}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(l.dir, name+".yaml")
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}
	if err := l.k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: l.envMapper(),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// envMapper resolves APP_FOO_BAR_BAZ against the keys loaded so far. Unknown
// names fall back to replacing every underscore with a dot.
func (l *loader) envMapper() func(string, string) (string, any) {
	known := make(map[string]string)
	for _, key := range l.k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name, value string) (string, any) {
		flat := strings.ToLower(strings.TrimPrefix(name, envPrefix))
		key, ok := known[flat]
		if !ok {
			return strings.ReplaceAll(flat, "_", "."), value
		}
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	}
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile must be a bare name, got %q", profile)
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for p := range strings.SplitSeq(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
