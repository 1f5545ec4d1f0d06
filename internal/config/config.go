// Package config loads the token tables that parameterize quick affixes and
// naming conventions. Built-in tables match the rigging vocabulary the tool
// ships with; a TOML file can extend or override them.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// TokensEnvVar names the environment variable pointing at a tokens file.
const TokensEnvVar = "RENAMER_TOKENS"

// Tokens holds the quick-affix tables and the convention catalog entries.
type Tokens struct {
	QuickPrefixes []string          `toml:"quick_prefixes"`
	QuickSuffixes []string          `toml:"quick_suffixes"`
	Conventions   map[string]string `toml:"conventions"`
}

// DefaultTokens returns the built-in token tables.
func DefaultTokens() Tokens {
	return Tokens{
		QuickPrefixes: []string{"C", "L", "R", "U", "D", "F", "B"},
		QuickSuffixes: []string{
			"grp", "skn", "jnt", "geo", "ctl", "loc",
			"pxy", "eff", "ikhandle", "ikrp", "iksc",
			"ikspr", "ikspl", "crv", "bsp", "drv", "auto", "rbn",
		},
		Conventions: map[string]string{
			"Rig":        "RIG_",
			"Animation":  "ANIM_",
			"Geometry":   "GEO_",
			"Controller": "CTRL_",
		},
	}
}

// TokensPath returns the tokens file path from the environment, or "" when
// unset. An explicit --tokens flag takes precedence over the environment.
func TokensPath() string {
	return os.Getenv(TokensEnvVar)
}

// LoadTokens decodes a TOML tokens file and merges it over the built-ins:
// quick tokens are appended (duplicates dropped), conventions are merged with
// file entries winning. An empty path returns the built-ins unchanged.
func LoadTokens(path string) (Tokens, error) {
	tokens := DefaultTokens()

	if path == "" {
		return tokens, nil
	}

	var file Tokens
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Tokens{}, fmt.Errorf("failed to load tokens file %s: %w", path, err)
	}

	tokens.QuickPrefixes = appendUnique(tokens.QuickPrefixes, file.QuickPrefixes)
	tokens.QuickSuffixes = appendUnique(tokens.QuickSuffixes, file.QuickSuffixes)

	for label, token := range file.Conventions {
		tokens.Conventions[label] = token
	}

	return tokens, nil
}

func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, tok := range base {
		seen[tok] = true
	}

	for _, tok := range extra {
		if !seen[tok] {
			seen[tok] = true

			base = append(base, tok)
		}
	}

	return base
}
