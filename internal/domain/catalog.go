package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kitbash/renamer/internal/config"
	m "github.com/kitbash/renamer/internal/model"
)

// ErrUnknownConvention reports a convention label outside the catalog. The
// UI validates labels before calling, so hitting this is a caller bug and
// fails the whole call rather than being skipped.
var ErrUnknownConvention = errors.New("unknown naming convention")

// ErrUnknownToken reports a quick token present in neither affix table.
var ErrUnknownToken = errors.New("unknown quick token")

// Catalog maps naming-convention labels to prefix tokens and holds the
// quick-affix tables. Static and read-only once built.
type Catalog struct {
	conventions map[string]string
	prefixes    []string
	suffixes    []string
}

// NewCatalog builds a Catalog from the loaded token tables.
func NewCatalog(tokens config.Tokens) *Catalog {
	conventions := make(map[string]string, len(tokens.Conventions))
	for label, token := range tokens.Conventions {
		conventions[label] = token
	}

	return &Catalog{
		conventions: conventions,
		prefixes:    append([]string(nil), tokens.QuickPrefixes...),
		suffixes:    append([]string(nil), tokens.QuickSuffixes...),
	}
}

// Token returns the prefix token for a convention label.
func (c *Catalog) Token(label string) (string, error) {
	token, ok := c.conventions[label]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownConvention, label)
	}

	return token, nil
}

// Labels returns the convention labels in sorted order.
func (c *Catalog) Labels() []string {
	labels := make([]string, 0, len(c.conventions))
	for label := range c.conventions {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	return labels
}

// QuickAffix resolves a one-click token into the Affix it parameterizes:
// prefix-table tokens attach before the name, suffix-table tokens after,
// both with an underscore separator. The tables are data, not per-button
// logic, so the transform engine stays the single source of truth.
func (c *Catalog) QuickAffix(token string) (m.Affix, error) {
	for _, p := range c.prefixes {
		if p == token {
			return m.Affix{Text: token, Position: m.PositionPrefix, Separator: m.SeparatorUnderscore}, nil
		}
	}

	for _, s := range c.suffixes {
		if s == token {
			return m.Affix{Text: token, Position: m.PositionSuffix, Separator: m.SeparatorUnderscore}, nil
		}
	}

	return m.Affix{}, fmt.Errorf("%w: %q", ErrUnknownToken, token)
}

// QuickPrefixes returns the prefix token table.
func (c *Catalog) QuickPrefixes() []string {
	return append([]string(nil), c.prefixes...)
}

// QuickSuffixes returns the suffix token table.
func (c *Catalog) QuickSuffixes() []string {
	return append([]string(nil), c.suffixes...)
}
