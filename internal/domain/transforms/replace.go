package transforms

import (
	"strings"

	m "github.com/kitbash/renamer/internal/model"
)

// ApplySearchReplace replaces all non-overlapping occurrences of op.Search
// in oldName with op.Replace, case-sensitively. A name without the search
// term passes through unchanged. An empty search term is a no-op: the
// strings package would otherwise insert the replacement between every
// character.
func ApplySearchReplace(op m.SearchReplace, oldName string) string {
	if op.Search == "" {
		return oldName
	}

	return strings.ReplaceAll(oldName, op.Search, op.Replace)
}
