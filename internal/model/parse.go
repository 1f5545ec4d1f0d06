package model

import "fmt"

// ParseScope validates a scope flag value.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeSelected, ScopeHierarchy, ScopeAll:
		return Scope(s), nil
	}

	return "", fmt.Errorf("unknown scope %q (want %s, %s or %s)", s, ScopeSelected, ScopeHierarchy, ScopeAll)
}

// ParseSide validates a trim side argument.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideFirst, SideLast:
		return Side(s), nil
	}

	return "", fmt.Errorf("unknown side %q (want %s or %s)", s, SideFirst, SideLast)
}

// ParseSeparator validates an affix separator flag value.
func ParseSeparator(s string) (Separator, error) {
	switch Separator(s) {
	case SeparatorNone, SeparatorUnderscore:
		return Separator(s), nil
	}

	return "", fmt.Errorf("unknown separator %q (want %s or %s)", s, SeparatorNone, SeparatorUnderscore)
}
