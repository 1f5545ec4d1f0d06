package transforms

import (
	"fmt"

	m "github.com/kitbash/renamer/internal/model"
)

// ApplyTrim removes the first or last character (rune) of oldName. Names of
// one character or less fail with ErrNameTooShort and stay unmodified.
func ApplyTrim(op m.Trim, oldName string) (string, error) {
	runes := []rune(oldName)
	if len(runes) <= 1 {
		return "", fmt.Errorf("%w: %q", ErrNameTooShort, oldName)
	}

	if op.Side == m.SideLast {
		return string(runes[:len(runes)-1]), nil
	}

	return string(runes[1:]), nil
}
