// Package config loads the oaslint profile from a .oaslint.toml file and
// OASLINT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/erraggy/oaslint/checks"
	"github.com/erraggy/oaslint/internal/report"
	"github.com/erraggy/oaslint/issue"
	"github.com/erraggy/oaslint/oaserrors"
)

// FileName is the profile looked up from the working directory upwards.
const FileName = ".oaslint.toml"

// Config is the analysis profile.
type Config struct {
	// Strict turns structural problems into validation failures.
	Strict bool `toml:"strict"`
	// Jobs is the number of files analyzed in parallel.
	Jobs int `toml:"jobs"`
	// Format is the default output format.
	Format string `toml:"format"`
	// MaxDepth bounds the traversal depth (0 keeps the walker default).
	MaxDepth int `toml:"max_depth"`

	Rules RulesConfig `toml:"rules"`
	// Severity overrides rule severities by rule key.
	Severity map[string]string `toml:"severity"`

	// Path is the file the profile was read from, empty for defaults.
	Path string `toml:"-"`
}

// RulesConfig selects rules by key. An empty Enable list means every
// registered rule.
type RulesConfig struct {
	Enable  []string `toml:"enable"`
	Disable []string `toml:"disable"`
}

// Default returns the built-in profile.
func Default() Config {
	return Config{Jobs: 1, Format: string(report.FormatText)}
}

// Find looks for FileName in startDir and its parents.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("config: failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("config: failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load reads a profile on top of the defaults. Unknown keys are rejected so
// typos do not silently change nothing.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, &oaserrors.ConfigError{Option: "config", Value: path, Message: "failed to parse TOML", Cause: err}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, &oaserrors.ConfigError{Option: "config", Value: path, Message: fmt.Sprintf("unknown key %q", undecoded[0].String())}
	}
	cfg.Path = path
	return cfg, cfg.Validate()
}

// Resolve loads the profile at path, or the one found from the working
// directory when path is empty, then applies the environment.
func Resolve(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		found, ok, err := Find(".")
		if err != nil {
			return Config{}, err
		}
		if ok {
			path = found
		}
	}
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return Config{}, err
		}
	}
	cfg = cfg.ApplyEnv()
	return cfg, cfg.Validate()
}

// ApplyEnv overrides the profile with OASLINT_STRICT, OASLINT_JOBS,
// OASLINT_FORMAT and OASLINT_DISABLE (comma-separated rule keys, added to
// the disabled rules). Invalid values log a warning and are ignored.
func (c Config) ApplyEnv() Config {
	c.Strict = EnvBool("OASLINT_STRICT", c.Strict)
	c.Jobs = EnvInt("OASLINT_JOBS", c.Jobs)
	if v := os.Getenv("OASLINT_FORMAT"); v != "" {
		if _, err := report.ParseFormat(v); err != nil {
			slog.Warn("invalid format env var, ignoring", "key", "OASLINT_FORMAT", "value", v)
		} else {
			c.Format = v
		}
	}
	if v := os.Getenv("OASLINT_DISABLE"); v != "" {
		c.Rules.Disable = append(append([]string(nil), c.Rules.Disable...), SplitList(v)...)
	}
	return c
}

// Validate checks the profile values.
func (c Config) Validate() error {
	if c.Jobs < 0 {
		return &oaserrors.ConfigError{Option: "jobs", Value: c.Jobs, Message: "must not be negative"}
	}
	if c.MaxDepth < 0 {
		return &oaserrors.ConfigError{Option: "max_depth", Value: c.MaxDepth, Message: "must not be negative"}
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	for key, name := range c.Severity {
		if _, err := issue.ParseSeverity(name); err != nil {
			return &oaserrors.ConfigError{Option: "severity." + key, Value: name, Cause: err}
		}
	}
	return nil
}

// SelectRules returns the rules of reg selected by the profile, with
// severity overrides applied. Overrides for unknown rules are errors.
func (c Config) SelectRules(reg *checks.Registry) ([]checks.Rule, error) {
	rules, err := reg.Select(c.Rules.Enable, c.Rules.Disable)
	if err != nil {
		return nil, err
	}
	for key, name := range c.Severity {
		if _, ok := reg.Lookup(key); !ok {
			return nil, &oaserrors.ConfigError{Option: "severity", Value: key, Message: "unknown rule"}
		}
		sev, err := issue.ParseSeverity(name)
		if err != nil {
			return nil, &oaserrors.ConfigError{Option: "severity." + key, Value: name, Cause: err}
		}
		for i := range rules {
			if rules[i].Key == key {
				rules[i] = rules[i].WithSeverity(sev)
			}
		}
	}
	return rules, nil
}

// SplitList splits a comma-separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
