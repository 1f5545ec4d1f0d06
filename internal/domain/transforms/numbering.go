package transforms

import (
	"fmt"

	m "github.com/kitbash/renamer/internal/model"
)

// ApplyNumbering renames to op.Base plus (op.Start + index) as a decimal
// integer zero-padded to op.Padding digits. When the number has more digits
// than the padding the field widens; it is never truncated. The old name is
// discarded entirely.
func ApplyNumbering(op m.Numbering, _ string, index int) string {
	padding := op.Padding
	if padding < 1 {
		padding = 1
	}

	return fmt.Sprintf("%s%0*d", op.Base, padding, op.Start+index)
}
