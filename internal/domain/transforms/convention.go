package transforms

import (
	m "github.com/kitbash/renamer/internal/model"
)

// ApplyConventionTag prepends the convention token unconditionally. Tokens
// carry their own separator ("RIG_", "GEO_", ...), so nothing is inserted.
func ApplyConventionTag(op m.ConventionTag, oldName string) string {
	return op.Token + oldName
}
