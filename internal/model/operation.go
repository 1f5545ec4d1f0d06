package model

// OperationKind represents the category of rename operation.
type OperationKind string

const (
	// OpNumbering renames to a base name plus a zero-padded sequence number.
	OpNumbering OperationKind = "numbering"
	// OpAffix prepends or appends a text fragment.
	OpAffix OperationKind = "affix"
	// OpTrim removes the first or last character of the name.
	OpTrim OperationKind = "trim"
	// OpSearchReplace substitutes a literal substring.
	OpSearchReplace OperationKind = "search-replace"
	// OpConventionTag prepends a naming-convention token.
	OpConventionTag OperationKind = "convention-tag"
)

// Operation fully describes one user-triggered rename action.
// Implementations are immutable value types.
type Operation interface {
	Kind() OperationKind
}

// Position says which end of the name an affix attaches to.
type Position string

// Available Position values.
const (
	PositionPrefix Position = "prefix"
	PositionSuffix Position = "suffix"
)

// Separator is the character inserted between an affix and the name.
type Separator string

// Available Separator values.
const (
	SeparatorNone       Separator = "none"
	SeparatorUnderscore Separator = "underscore"
)

// Side says which end of the name a trim removes from.
type Side string

// Available Side values.
const (
	SideFirst Side = "first"
	SideLast  Side = "last"
)

// Numbering renames each target to Base plus (Start + index), zero-padded
// to Padding digits. The field widens when the number outgrows the padding.
type Numbering struct {
	Base    string
	Start   int
	Padding int
}

// Kind implements Operation.
func (Numbering) Kind() OperationKind { return OpNumbering }

// Affix attaches Text to one end of the name. With SeparatorNone the text is
// concatenated bare; any desired separator must be part of Text itself.
type Affix struct {
	Text      string
	Position  Position
	Separator Separator
}

// Kind implements Operation.
func (Affix) Kind() OperationKind { return OpAffix }

// Trim removes a single character from one end of the name.
type Trim struct {
	Side Side
}

// Kind implements Operation.
func (Trim) Kind() OperationKind { return OpTrim }

// SearchReplace replaces every occurrence of Search with Replace,
// case-sensitively. An empty Replace deletes the occurrences.
type SearchReplace struct {
	Search  string
	Replace string
}

// Kind implements Operation.
func (SearchReplace) Kind() OperationKind { return OpSearchReplace }

// ConventionTag prepends a convention token. The token carries its own
// separator (e.g. "RIG_").
type ConventionTag struct {
	Token string
}

// Kind implements Operation.
func (ConventionTag) Kind() OperationKind { return OpConventionTag }
