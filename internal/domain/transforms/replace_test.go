package transforms

import (
	"testing"

	m "github.com/kitbash/renamer/internal/model"
)

func TestApplySearchReplace(t *testing.T) {
	tests := []struct {
		name    string
		op      m.SearchReplace
		oldName string
		want    string
	}{
		{
			name:    "single occurrence",
			op:      m.SearchReplace{Search: "Cube", Replace: "Sphere"},
			oldName: "pCube1",
			want:    "pSphere1",
		},
		{
			name:    "all occurrences",
			op:      m.SearchReplace{Search: "a", Replace: "o"},
			oldName: "banana",
			want:    "bonono",
		},
		{
			name:    "empty replace deletes",
			op:      m.SearchReplace{Search: "_old", Replace: ""},
			oldName: "arm_old_geo_old",
			want:    "arm_geo",
		},
		{
			name:    "no match passes through",
			op:      m.SearchReplace{Search: "leg", Replace: "arm"},
			oldName: "pCube1",
			want:    "pCube1",
		},
		{
			name:    "case sensitive",
			op:      m.SearchReplace{Search: "cube", Replace: "Sphere"},
			oldName: "pCube1",
			want:    "pCube1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplySearchReplace(tt.op, tt.oldName); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// Searching for the empty string must be a no-op, not an insertion between
// every character.
func TestApplySearchReplace_EmptySearchIsNoOp(t *testing.T) {
	op := m.SearchReplace{Search: "", Replace: "X"}

	for _, oldName := range []string{"", "a", "pCube1"} {
		if got := ApplySearchReplace(op, oldName); got != oldName {
			t.Errorf("empty search on %q: got %q, want unchanged", oldName, got)
		}
	}
}
